// Package cli définit les commandes du binaire ytextract : le serveur MCP
// (serve) et les commandes directes d'extraction, de playlist et de
// configuration.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/app"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/yt"
)

// options porte les flags persistants partagés par toutes les commandes.
type options struct {
	configPath string
}

// NewRootCommand construit l'arbre de commandes complet.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ytextract",
		Short:         "Extraction de transcriptions YouTube, en serveur MCP ou en ligne de commande",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "chemin du fichier de configuration")

	root.AddCommand(
		newServeCommand(opts),
		newExtractCommand(opts),
		newPlaylistCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// bootstrap charge la config, installe le logger et initialise le client
// yt-dlp. Commun à toutes les commandes.
func (o *options) bootstrap(ctx context.Context) (*config.Config, *app.App, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	// stdout est réservé à la sortie utile (et au protocole MCP en mode
	// serve) : tous les logs vont sur stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ytCfg := yt.NewConfig(cfg.YtDlp.ShowWarnings)
	client := yt.NewYtDlp(cfg.YtDlp.Name, cfg.YtDlp.ResolvedPath, *ytCfg)
	if err := client.CheckBinary(); err != nil {
		return nil, nil, nil, fmt.Errorf("yt-dlp introuvable : %w", err)
	}
	if version, err := client.GetVersion(ctx); err != nil {
		logger.Warn("version de yt-dlp indisponible", "error", err)
	} else {
		logger.Info("yt-dlp détecté", "version", version)
	}

	return cfg, app.New(cfg, client, logger), logger, nil
}

// parseLogLevel convertit le niveau configuré en slog.Level, info par défaut.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
