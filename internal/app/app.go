// Package app assemble les composants du serveur : pipeline d'extraction,
// processeur de playlists et exposition des quatre outils MCP.
package app

import (
	"log/slog"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/extract"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fallback"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/playlist"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/yt"
)

// Name et Version identifient le serveur auprès des clients MCP.
const (
	Name    = "youtube-extract-mcp"
	Version = "1.0.0"
)

// App porte les dépendances partagées par les outils.
type App struct {
	cfg       *config.Config
	service   *extract.Service
	processor *playlist.Processor
	logger    *slog.Logger
}

// New construit l'application complète à partir de la config et du client
// yt-dlp initialisé.
func New(cfg *config.Config, ytClient yt.Interface, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	service := extract.NewService(cfg, ytClient, fallback.New(logger), logger)
	return &App{
		cfg:       cfg,
		service:   service,
		processor: playlist.NewProcessor(cfg, ytClient, service, logger),
		logger:    logger,
	}
}

// Service expose le pipeline d'extraction (utilisé par la CLI directe).
func (a *App) Service() *extract.Service { return a.service }

// Processor expose le processeur de playlists.
func (a *App) Processor() *playlist.Processor { return a.processor }
