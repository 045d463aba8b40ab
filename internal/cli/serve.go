package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/app"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/mcp"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Démarre le serveur MCP sur stdio",
		Long: "Démarre le serveur MCP : requêtes JSON-RPC sur stdin, réponses sur stdout.\n" +
			"C'est le mode utilisé par les clients MCP (Claude Desktop, etc.).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, a, logger, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}

			server := mcp.NewServer(app.Name, app.Version, logger)
			a.RegisterTools(server)

			logger.Info("serveur MCP démarré", "name", app.Name, "version", app.Version)
			return server.Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
