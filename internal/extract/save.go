package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fsutil"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// maxTitleLen : longueur maximale du titre dans le nom de répertoire.
const maxTitleLen = 80

// SaveLocally persiste la transcription sous
// {output}/{canal}/{titre}_{YYYYMMDD}_{videoID}/ avec les deux vues
// textuelles et un metadata.json optimisé (sans le texte complet).
// Un échec de sauvegarde n'interrompt jamais l'extraction : il est encodé
// dans le LocalSave retourné.
func (s *Service) SaveLocally(result *model.ExtractResult) *model.LocalSave {
	title := result.Metadata.Title
	if title == "" {
		title = "Unknown_Title"
	}
	channel := result.Metadata.Channel
	if channel == "" {
		channel = "Unknown_Channel"
	}

	dirName := fmt.Sprintf("%s_%s_%s",
		fsutil.SanitizeFilename(title, maxTitleLen),
		time.Now().Format("20060102"),
		result.VideoID,
	)
	videoDir := filepath.Join(s.cfg.OutputDirectory, fsutil.SanitizeFilename(channel, 0), dirName)

	if err := os.MkdirAll(videoDir, 0o755); err != nil {
		s.logger.Error("création du répertoire de sauvegarde échouée", "dir", videoDir, "error", err)
		return &model.LocalSave{Status: "error", Error: err.Error()}
	}

	files := []struct {
		name    string
		content string
	}{
		{"transcript_plain.txt", result.Transcription.PlainText},
		{"transcript_timestamps.txt", timestampedOrPlain(result.Transcription)},
	}

	var created []string
	for _, f := range files {
		if err := fsutil.WriteFileAtomic(filepath.Join(videoDir, f.name), []byte(f.content), 0o644); err != nil {
			s.logger.Error("écriture de la transcription échouée", "file", f.name, "error", err)
			return &model.LocalSave{Status: "error", Error: err.Error()}
		}
		created = append(created, f.name)
	}

	metaBytes, err := json.MarshalIndent(optimizedMetadata(result), "", "  ")
	if err != nil {
		return &model.LocalSave{Status: "error", Error: err.Error()}
	}
	if err := fsutil.WriteFileAtomic(filepath.Join(videoDir, "metadata.json"), metaBytes, 0o644); err != nil {
		s.logger.Error("écriture des métadonnées échouée", "error", err)
		return &model.LocalSave{Status: "error", Error: err.Error()}
	}
	created = append(created, "metadata.json")

	s.logger.Info("transcription sauvegardée", "dir", videoDir)
	return &model.LocalSave{
		Status:       "success",
		Directory:    videoDir,
		FilesCreated: created,
	}
}

// timestampedOrPlain retourne la vue horodatée, ou la vue brute si la
// première manque (fallback sans timestamps).
func timestampedOrPlain(t model.Transcription) string {
	if t.TimestampedText != "" {
		return t.TimestampedText
	}
	return t.PlainText
}

// optimizedMetadata construit le contenu de metadata.json : un résumé de la
// transcription plutôt que son texte intégral.
func optimizedMetadata(result *model.ExtractResult) map[string]any {
	t := result.Transcription
	return map[string]any{
		"video_id": result.VideoID,
		"url":      result.URL,
		"metadata": result.Metadata,
		"transcription_summary": map[string]any{
			"language":                       t.Language,
			"status":                         t.Status,
			"source_file":                    t.SourceFile,
			"word_count":                     t.WordCount(),
			"character_count":                t.CharCount(),
			"estimated_reading_time_minutes": t.ReadingTimeMinutes(),
			"has_timestamps":                 t.TimestampedText != "" && t.TimestampedText != t.PlainText,
			"available_languages":            t.AvailableLanguages,
			"files_created": map[string]string{
				"plain_text":       "transcript_plain.txt",
				"timestamped_text": "transcript_timestamps.txt",
				"metadata":         "metadata.json",
			},
		},
		"extraction_info": result.ExtractionInfo,
		"generated_at":    time.Now().Format(time.RFC3339),
	}
}
