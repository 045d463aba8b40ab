package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Affiche ou modifie la configuration",
	}
	cmd.AddCommand(newConfigShowCommand(opts), newConfigSetOutputCommand(opts))
	return cmd
}

func newConfigShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Affiche la configuration courante",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Paramètre", "Valeur"})
			t.AppendRows([]table.Row{
				{"Fichier de configuration", cfg.Path()},
				{"Répertoire de sortie", cfg.OutputDirectory},
				{"Niveau de log", cfg.LogLevel},
				{"Binaire yt-dlp", cfg.YtDlp.Name},
				{"Chemin yt-dlp", cfg.YtDlp.Path},
				{"Avertissements yt-dlp", fmt.Sprintf("%t", cfg.YtDlp.ShowWarnings)},
			})
			t.Render()
			return nil
		},
	}
}

func newConfigSetOutputCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-output <répertoire>",
		Short: "Définit le répertoire de sauvegarde des transcriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := cfg.SetOutputDirectory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "répertoire de sortie configuré : %s\n", cfg.OutputDirectory)
			return nil
		},
	}
}
