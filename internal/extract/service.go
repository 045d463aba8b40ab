// Package extract orchestre le pipeline complet d'extraction d'une
// transcription : métadonnées, téléchargement des pistes, sélection de la
// meilleure, reconstruction du texte, repli sur l'API de transcripts et
// sauvegarde locale optionnelle.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fallback"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/lang"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/subtitles"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/yt"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// validationSampleBytes : taille de l'échantillon soumis à la validation de
// langue du contenu.
const validationSampleBytes = 500

// Options paramètre une extraction de vidéo.
type Options struct {
	URL               string
	Language          string // code reconnu ou "auto" (défaut)
	IncludeTimestamps bool
	SaveLocally       bool
}

// Service est l'orchestrateur du pipeline. Toutes ses dépendances sont des
// interfaces pour rester substituables dans les tests.
type Service struct {
	cfg      *config.Config
	yt       yt.Interface
	fallback fallback.Interface
	logger   *slog.Logger

	// tempRoot est la racine des répertoires de travail éphémères.
	tempRoot string
}

// NewService construit l'orchestrateur.
func NewService(cfg *config.Config, ytClient yt.Interface, fb fallback.Interface, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		yt:       ytClient,
		fallback: fb,
		logger:   logger,
		tempRoot: filepath.Join(os.TempDir(), "youtube-extract-mcp"),
	}
}

// ExtractVideo exécute le pipeline complet pour une vidéo.
// L'échec des métadonnées n'est pas fatal : le pipeline continue avec des
// métadonnées dégradées. Les fichiers temporaires sont supprimés dans tous
// les cas, succès comme échec.
func (s *Service) ExtractVideo(ctx context.Context, opts Options) (*model.ExtractResult, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("%w: URL requise", ErrInvalidInput)
	}
	if opts.Language == "" {
		opts.Language = lang.Auto
	}

	videoID, err := yt.ExtractVideoID(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.logger.Info("extraction de la vidéo", "video_id", videoID, "language", opts.Language)

	meta, _, err := s.yt.Metadata(ctx, opts.URL)
	if err != nil {
		// métadonnées optionnelles : on continue avec un objet dégradé
		s.logger.Warn("extraction des métadonnées échouée", "error", err)
		meta = &model.Meta{Title: "Unknown_Title", OriginalLanguage: "es", DetectedFrom: "default", Error: err.Error()}
	}

	target := opts.Language
	if opts.Language == lang.Auto {
		target = meta.OriginalLanguage
		s.logger.Info("langue originale auto-détectée", "language", target, "from", meta.DetectedFrom)
	}
	chain := lang.BuildChain(target)

	transcription := s.extractTranscription(ctx, opts.URL, videoID, chain, opts.IncludeTimestamps)

	result := &model.ExtractResult{
		VideoID:       videoID,
		URL:           opts.URL,
		Metadata:      *meta,
		Transcription: *transcription,
		ExtractionInfo: model.ExtractionInfo{
			LanguageRequested: opts.Language,
			LanguageDetected:  meta.OriginalLanguage,
			LanguageExtracted: transcription.Language,
			LanguageUsed:      chain.Target(),
			HasTimestamps:     opts.IncludeTimestamps,
			Method:            transcription.SourceMethod,
			IsAutoGenerated:   transcription.IsAutoGenerated,
			SegmentsCount:     transcription.SegmentsCount,
			Status:            string(transcription.Status),
		},
	}

	if opts.SaveLocally {
		save := s.SaveLocally(result)
		result.LocalSave = save
	}

	return result, nil
}

// extractTranscription tente la voie principale (yt-dlp) puis le repli.
// Ne retourne jamais nil : les échecs sont encodés dans le Status.
func (s *Service) extractTranscription(ctx context.Context, url, videoID string, chain lang.Chain, includeTimestamps bool) *model.Transcription {
	t, primaryErr := s.extractViaYtDlp(ctx, url, videoID, chain, includeTimestamps)
	if primaryErr == nil {
		return t
	}
	s.logger.Warn("extraction via yt-dlp échouée", "error", primaryErr)
	s.logger.Info("tentative de repli via l'API de transcripts")

	fb, fbErr := s.fallback.Fetch(videoID, chain.Target())
	if fbErr != nil {
		return &model.Transcription{
			Language:      "error",
			Status:        model.StatusBothMethodsFailed,
			PrimaryError:  primaryErr.Error(),
			FallbackError: fbErr.Error(),
		}
	}

	if fb.Status == model.StatusSuccess {
		if includeTimestamps && fb.TimestampedText != "" {
			fb.Text = fb.TimestampedText
		} else {
			fb.Text = fb.PlainText
		}
	}
	return fb
}

// extractViaYtDlp télécharge les pistes, sélectionne la meilleure et
// reconstruit le texte. Le répertoire temporaire est supprimé avant retour.
func (s *Service) extractViaYtDlp(ctx context.Context, url, videoID string, chain lang.Chain, includeTimestamps bool) (*model.Transcription, error) {
	tempDir := filepath.Join(s.tempRoot, fmt.Sprintf("extract_%s_%s", videoID, uuid.NewString()))
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: création du répertoire temporaire: %v", ErrExtractionProcess, err)
	}
	defer os.RemoveAll(tempDir)

	files, err := s.downloadTracks(ctx, url, chain, tempDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}

	selected, err := lang.SelectBest(names, chain, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTracksProduced, err)
	}

	res, err := subtitles.ParseFile(filepath.Join(tempDir, selected))
	if err != nil {
		// échec doux : la description de l'erreur tient lieu de contenu
		msg := fmt.Sprintf("Error al procesar subtítulos: %v", err)
		res = subtitles.Result{Plain: msg, Timestamped: msg}
	}

	sample := res.Plain
	if len(sample) > validationSampleBytes {
		sample = sample[:validationSampleBytes]
	}
	if v := lang.ValidateContent(sample, chain.Target()); !v.Matches && v.Confidence > 0.7 {
		s.logger.Warn("langue du contenu différente de la langue attendue",
			"expected", chain.Target(), "detected", v.Detected, "confidence", v.Confidence)
	}

	detected := lang.DetectFromFilename(selected, chain)
	auto := lang.IsAutoGenerated(selected)

	t := &model.Transcription{
		PlainText:          res.Plain,
		TimestampedText:    res.Timestamped,
		Language:           detected,
		Status:             model.StatusSuccess,
		SourceMethod:       model.MethodYtDlp,
		SourceFile:         selected,
		AvailableFiles:     names,
		AvailableLanguages: lang.AvailableLanguages(names),
		IsAutoGenerated:    &auto,
		SegmentsCount:      len(res.Segments),
	}
	if includeTimestamps {
		t.Text = t.TimestampedText
	} else {
		t.Text = t.PlainText
	}
	return t, nil
}

// downloadTracks lance le téléchargement avec la combinaison de clients
// principale, puis la combinaison alternative si rien n'a été produit.
// Retourne les chemins des fichiers VTT trouvés.
func (s *Service) downloadTracks(ctx context.Context, url string, chain lang.Chain, tempDir string) ([]string, error) {
	primaryErr := s.yt.DownloadSubtitles(ctx, url, chain, tempDir, false)
	files, _ := filepath.Glob(filepath.Join(tempDir, "*.vtt"))
	if len(files) > 0 {
		return files, nil
	}

	s.logger.Info("aucune piste produite, tentative avec les clients alternatifs")
	altErr := s.yt.DownloadSubtitles(ctx, url, chain, tempDir, true)
	files, _ = filepath.Glob(filepath.Join(tempDir, "*.vtt"))
	if len(files) > 0 {
		return files, nil
	}

	switch {
	case primaryErr != nil:
		return nil, fmt.Errorf("%w: %v", ErrExtractionProcess, primaryErr)
	case altErr != nil:
		return nil, fmt.Errorf("%w: %v", ErrExtractionProcess, altErr)
	default:
		return nil, fmt.Errorf("%w pour les langues %v", ErrNoTracksProduced, chain)
	}
}
