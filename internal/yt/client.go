package yt

import (
	"context"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/lang"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// Interface est l'abstraction utilisée par l'orchestrateur. Elle facilite le
// test en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)

	// Metadata exécute `yt-dlp -j` et retourne les métadonnées de la vidéo
	// avec les signaux de langue extraits du JSON.
	Metadata(ctx context.Context, url string) (*model.Meta, lang.Signals, error)

	// DownloadSubtitles télécharge les pistes de sous-titres demandées dans
	// outDir. alternative bascule sur les clients d'extraction de secours.
	DownloadSubtitles(ctx context.Context, url string, langs []string, outDir string, alternative bool) error

	// PlaylistEntries énumère les vidéos d'une playlist sans les télécharger.
	PlaylistEntries(ctx context.Context, url string, maxVideos int) (*model.PlaylistInfo, []model.PlaylistEntry, error)
}
