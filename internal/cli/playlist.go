package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPlaylistCommand(opts *options) *cobra.Command {
	var maxVideos int

	cmd := &cobra.Command{
		Use:   "playlist <url>",
		Short: "Extrait les transcriptions d'une playlist complète",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, _, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}

			result, err := a.Processor().Process(cmd.Context(), args[0], maxVideos)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Vidéo", "Durée", "Langue", "Statut"})
			for _, v := range result.Videos {
				status := "ok"
				if v.Status != "success" {
					status = "échec"
				}
				t.AppendRow(table.Row{v.Sequence, v.Title, v.Duration, v.Language, status})
			}
			t.AppendFooter(table.Row{"", "", "", "réussies", result.Successful})
			t.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "\nFichiers écrits sous : %s\n", result.Directory)
			if result.Failed > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Vidéos en échec : %d (détails dans playlist_metadata.json)\n", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxVideos, "max", "m", 0, "nombre maximal de vidéos traitées (défaut 50, plafond 100)")
	return cmd
}
