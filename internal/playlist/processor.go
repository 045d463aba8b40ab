// Package playlist traite une playlist YouTube complète : énumération des
// vidéos, extraction séquentielle des transcriptions via le pipeline
// principal et organisation des fichiers dans une arborescence dédiée avec
// index de navigation.
package playlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/extract"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fsutil"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/yt"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// Bornes du nombre de vidéos traitées par playlist.
const (
	DefaultMaxVideos = 50
	HardMaxVideos    = 100

	maxSeqTitleLen      = 50
	maxPlaylistTitleLen = 80
)

// Extractor est le pipeline d'extraction vidéo vu par le processeur.
type Extractor interface {
	ExtractVideo(ctx context.Context, opts extract.Options) (*model.ExtractResult, error)
}

// VideoResult est l'issue du traitement d'une vidéo de la playlist.
type VideoResult struct {
	Sequence int               `json:"sequence"`
	VideoID  string            `json:"video_id"`
	Title    string            `json:"title"`
	URL      string            `json:"url"`
	Duration string            `json:"duration,omitempty"`
	Language string            `json:"language,omitempty"`
	Status   string            `json:"status"`
	Brief    string            `json:"brief,omitempty"`
	Error    string            `json:"error,omitempty"`
	Files    map[string]string `json:"files,omitempty"`
}

// Result est l'issue complète du traitement d'une playlist.
type Result struct {
	Info       model.PlaylistInfo `json:"playlist_info"`
	Directory  string             `json:"directory"`
	Videos     []VideoResult      `json:"videos"`
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
}

// Processor traite les playlists séquentiellement : une vidéo à la fois,
// une vidéo en échec n'interrompt pas les suivantes.
type Processor struct {
	cfg       *config.Config
	yt        yt.Interface
	extractor Extractor
	logger    *slog.Logger
}

// NewProcessor construit le processeur de playlists.
func NewProcessor(cfg *config.Config, ytClient yt.Interface, extractor Extractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{cfg: cfg, yt: ytClient, extractor: extractor, logger: logger}
}

// ClampMaxVideos ramène la limite demandée dans [1, HardMaxVideos],
// DefaultMaxVideos si non renseignée.
func ClampMaxVideos(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxVideos
	case n > HardMaxVideos:
		return HardMaxVideos
	default:
		return n
	}
}

// Process traite la playlist complète et retourne le bilan.
func (p *Processor) Process(ctx context.Context, playlistURL string, maxVideos int) (*Result, error) {
	maxVideos = ClampMaxVideos(maxVideos)

	info, entries, err := p.yt.PlaylistEntries(ctx, playlistURL, maxVideos)
	if err != nil {
		return nil, fmt.Errorf("énumération de la playlist: %w", err)
	}
	if len(entries) > maxVideos {
		entries = entries[:maxVideos]
	}
	p.logger.Info("traitement de la playlist", "title", info.Title, "videos", len(entries), "limit", maxVideos)

	dir, err := p.createStructure(info.Title)
	if err != nil {
		return nil, err
	}

	result := &Result{Info: *info, Directory: dir}
	for i, entry := range entries {
		vr := p.processVideo(ctx, entry, i+1, dir)
		result.Videos = append(result.Videos, vr)
		if vr.Status == "success" {
			result.Successful++
		} else {
			result.Failed++
		}
	}

	if err := p.writeIndex(result); err != nil {
		p.logger.Warn("écriture de l'index de playlist échouée", "error", err)
	}
	if err := p.writeMetadata(result); err != nil {
		p.logger.Warn("écriture des métadonnées de playlist échouée", "error", err)
	}

	return result, nil
}

// createStructure crée l'arborescence de la playlist :
// {output}/playlists/{titre}_{YYYYMMDD}/ + transcripts/ + metadata/.
func (p *Processor) createStructure(title string) (string, error) {
	dirName := fmt.Sprintf("%s_%s",
		fsutil.SanitizeFilename(title, maxPlaylistTitleLen),
		time.Now().Format("20060102"),
	)
	dir := filepath.Join(p.cfg.OutputDirectory, "playlists", dirName)
	for _, sub := range []string{"transcripts", "metadata"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("création de l'arborescence de playlist: %w", err)
		}
	}
	return dir, nil
}

// processVideo traite une vidéo dans le contexte de la playlist : extraction
// via le pipeline principal puis écriture des fichiers préfixés par leur
// numéro de séquence.
func (p *Processor) processVideo(ctx context.Context, entry model.PlaylistEntry, sequence int, dir string) VideoResult {
	title := entry.TitleOrID()
	p.logger.Info("traitement de la vidéo", "sequence", sequence, "title", title)

	vr := VideoResult{
		Sequence: sequence,
		VideoID:  entry.ID,
		Title:    title,
		URL:      entry.WatchURL(),
	}

	res, err := p.extractor.ExtractVideo(ctx, extract.Options{
		URL:               entry.WatchURL(),
		IncludeTimestamps: true,
	})
	if err != nil {
		vr.Status = "failed"
		vr.Error = err.Error()
		return vr
	}
	if res.Transcription.Status != model.StatusSuccess {
		vr.Status = "failed"
		vr.Error = string(res.Transcription.Status)
		if res.Transcription.PrimaryError != "" {
			vr.Error = res.Transcription.PrimaryError
		}
		return vr
	}

	base := fmt.Sprintf("%02d_%s", sequence, fsutil.SanitizeFilename(title, maxSeqTitleLen))
	plainPath := filepath.Join(dir, "transcripts", base+"_plain.txt")
	stampsPath := filepath.Join(dir, "transcripts", base+"_timestamps.txt")
	metaPath := filepath.Join(dir, "metadata", base+".json")

	if err := fsutil.WriteFileAtomic(plainPath, []byte(res.Transcription.PlainText), 0o644); err != nil {
		vr.Status = "failed"
		vr.Error = err.Error()
		return vr
	}
	if res.Transcription.TimestampedText != "" {
		if err := fsutil.WriteFileAtomic(stampsPath, []byte(res.Transcription.TimestampedText), 0o644); err != nil {
			p.logger.Warn("écriture de la vue horodatée échouée", "error", err)
		}
	}

	metaBytes, err := json.MarshalIndent(videoMetadata(res), "", "  ")
	if err == nil {
		if werr := fsutil.WriteFileAtomic(metaPath, metaBytes, 0o644); werr != nil {
			p.logger.Warn("écriture des métadonnées de la vidéo échouée", "error", werr)
		}
	}

	vr.Status = "success"
	vr.Duration = res.Metadata.DurationMMSS()
	vr.Language = res.Transcription.Language
	vr.Brief = GenerateBrief(res.Metadata, res.Transcription.PlainText)
	vr.Files = map[string]string{
		"transcript_plain":      plainPath,
		"transcript_timestamps": stampsPath,
		"metadata":              metaPath,
	}
	return vr
}

// videoMetadata construit le JSON individuel d'une vidéo de playlist : un
// résumé sans le texte intégral.
func videoMetadata(res *model.ExtractResult) map[string]any {
	t := res.Transcription
	first100 := firstWords(t.PlainText, 100)
	return map[string]any{
		"video_info": map[string]any{
			"video_id":    res.VideoID,
			"title":       res.Metadata.Title,
			"duration":    res.Metadata.Duration,
			"view_count":  res.Metadata.ViewCount,
			"upload_date": res.Metadata.UploadDate,
			"channel":     res.Metadata.Channel,
		},
		"transcription_info": map[string]any{
			"plain_text_length":       len(t.PlainText),
			"timestamped_text_length": len(t.TimestampedText),
			"has_transcription":       t.WordCount() > 0,
			"first_100_words":         first100,
			"language":                t.Language,
		},
		"extraction_info": res.ExtractionInfo,
		"extracted_at":    time.Now().Format(time.RFC3339),
	}
}
