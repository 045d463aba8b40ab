package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/clipboard"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/extract"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

func newExtractCommand(opts *options) *cobra.Command {
	var (
		language    string
		timestamps  bool
		format      string
		saveLocally bool
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Extrait la transcription d'une vidéo YouTube",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, _, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}

			outputFormat, err := model.ParseOutputFormat(format)
			if err != nil {
				return err
			}

			result, err := a.Service().ExtractVideo(cmd.Context(), extract.Options{
				URL:               args[0],
				Language:          language,
				IncludeTimestamps: timestamps,
				SaveLocally:       saveLocally,
			})
			if err != nil {
				return err
			}

			if toClipboard {
				if err := clipboard.WriteAll(result.Transcription.PlainText); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "copie dans le presse-papier impossible :", err)
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "transcription copiée dans le presse-papier")
				}
			}

			if outputFormat == model.FormatText {
				fmt.Fprintln(cmd.OutOrStdout(), extract.FormatText(result))
				return nil
			}
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "auto", "langue souhaitée (auto = langue originale détectée)")
	cmd.Flags().BoolVar(&timestamps, "timestamps", true, "inclure les timestamps dans la vue principale")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "format de sortie : json ou text")
	cmd.Flags().BoolVar(&saveLocally, "save", false, "sauvegarder dans le répertoire de sortie configuré")
	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "copier le texte brut dans le presse-papier")
	return cmd
}
