package yt

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/lang"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// NewYtDlp construit une instance. resolvedPath doit être le chemin résolu
// vers l'exécutable, ou vide pour retomber sur le nom.
func NewYtDlp(name string, resolvedPath string, cfg Config) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// exe retourne le chemin à exécuter : le path résolu, sinon le nom.
func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}

// CheckBinary vérifie que le binaire configuré existe et n'est pas un répertoire.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.exe()
	if y.Path == "" {
		// pas de path résolu : on vérifie via le PATH
		if _, err := exec.LookPath(exe); err != nil {
			return fmt.Errorf("yt-dlp introuvable dans le PATH (%s) : %w", exe, err)
		}
		return nil
	}

	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %v", exe, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// GetVersion exécute `yt-dlp --version` et retourne sa sortie.
// CombinedOutput capture stdout et stderr, ce qui facilite le diagnostic.
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()

	out, err := exec.CommandContext(vctx, y.exe(), "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("échec exécution yt-dlp --version : %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

// Metadata exécute `yt-dlp -j <url>` et décode les métadonnées de la vidéo.
func (y *YtDlp) Metadata(ctx context.Context, url string) (*model.Meta, lang.Signals, error) {
	mctx, cancel := context.WithTimeout(ctx, defaultMetadataTimeout)
	defer cancel()

	out, err := exec.CommandContext(mctx, y.exe(), y.Config.BuildMetadataArgs(url)...).CombinedOutput()
	if err != nil {
		return nil, lang.Signals{}, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", err, string(out))
	}

	jsonLine := lastJSONLine(string(out))
	if jsonLine == "" {
		return nil, lang.Signals{}, fmt.Errorf("aucun JSON détecté dans la sortie de yt-dlp: %s", string(out))
	}

	return parseVideoJSON([]byte(jsonLine))
}

// DownloadSubtitles télécharge les pistes de sous-titres demandées dans
// outDir, au format VTT. Une sortie sans erreur ne garantit pas qu'un
// fichier ait été produit : c'est à l'appelant d'inspecter outDir.
func (y *YtDlp) DownloadSubtitles(ctx context.Context, url string, langs []string, outDir string, alternative bool) error {
	dctx, cancel := context.WithTimeout(ctx, defaultDownloadTimeout)
	defer cancel()

	args := y.Config.BuildSubtitleArgs(url, langs, outDir, alternative)
	out, err := exec.CommandContext(dctx, y.exe(), args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("téléchargement des sous-titres échoué: %w, output: %s", err, string(out))
	}
	return nil
}

// PlaylistEntries énumère les vidéos d'une playlist via --flat-playlist.
// Chaque ligne de sortie est un objet JSON décrivant une vidéo.
func (y *YtDlp) PlaylistEntries(ctx context.Context, url string, maxVideos int) (*model.PlaylistInfo, []model.PlaylistEntry, error) {
	pctx, cancel := context.WithTimeout(ctx, defaultPlaylistTimeout)
	defer cancel()

	out, err := exec.CommandContext(pctx, y.exe(), y.Config.BuildPlaylistArgs(url, maxVideos)...).CombinedOutput()
	if err != nil {
		return nil, nil, fmt.Errorf("énumération de la playlist échouée: %w, output: %s", err, string(out))
	}

	info := &model.PlaylistInfo{URL: url}
	var entries []model.PlaylistEntry

	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}
		var e ytdlpPlaylistEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue // ligne de diagnostic mêlée à la sortie
		}
		if e.ID == "" {
			continue
		}
		if info.ID == "" && e.PlaylistID != "" {
			info.ID = e.PlaylistID
			info.Title = e.PlaylistTitle
			info.Uploader = e.Uploader
		}
		entries = append(entries, model.PlaylistEntry{ID: e.ID, Title: e.Title, URL: e.URL})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("lecture de la sortie de yt-dlp: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("aucune vidéo trouvée dans la playlist: %s", url)
	}
	if info.Title == "" {
		info.Title = "playlist"
	}
	return info, entries, nil
}

// lastJSONLine extrait la dernière ligne JSON d'une sortie où yt-dlp peut
// mêler avertissements et JSON.
func lastJSONLine(out string) string {
	var jsonLine string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line
		}
	}
	return jsonLine
}
