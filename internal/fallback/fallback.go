// Package fallback récupère une transcription via l'API de transcripts
// YouTube quand yt-dlp n'a produit aucune piste. Méthode de secours : moins
// fiable que la voie principale mais sans dépendance au binaire externe.
package fallback

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_formatters"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// Interface est l'abstraction vue par l'orchestrateur, factice dans les tests.
type Interface interface {
	Fetch(videoID, language string) (*model.Transcription, error)
}

// candidateCodes élargit un code langue aux variantes régionales que l'API
// expose couramment, la langue demandée d'abord.
func candidateCodes(language string) []string {
	switch language {
	case "es":
		return []string{"es", "es-ES", "es-419", "en", "en-US"}
	case "en":
		return []string{"en", "en-US", "en-GB", "es", "es-ES"}
	default:
		return []string{language, "en", "en-US", "es"}
	}
}

// Client interroge l'API de transcripts avec deux formateurs : un pour le
// texte brut, un pour la vue horodatée.
type Client struct {
	plain  *yt_transcript.YtTranscriptClient
	stamps *yt_transcript.YtTranscriptClient
	logger *slog.Logger
}

// New construit le client de secours.
func New(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	plainFormatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(false),
		yt_transcript_formatters.WithLanguageCode(false),
	)
	stampFormatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(true),
		yt_transcript_formatters.WithLanguageCode(false),
	)
	return &Client{
		plain:  yt_transcript.NewClient(yt_transcript.WithFormatter(plainFormatter)),
		stamps: yt_transcript.NewClient(yt_transcript.WithFormatter(stampFormatter)),
		logger: logger,
	}
}

// Fetch récupère la transcription d'une vidéo dans la langue demandée (ou
// une variante proche). Les deux vues sont récupérées ; si la vue horodatée
// échoue alors que la vue brute a réussi, on continue avec la vue brute seule.
func (c *Client) Fetch(videoID, language string) (*model.Transcription, error) {
	codes := candidateCodes(language)
	c.logger.Debug("tentative via l'API de transcripts", "video_id", videoID, "codes", codes)

	plainText, err := c.plain.GetFormattedTranscripts(videoID, codes, false)
	if err != nil {
		if isNoTranscript(err) {
			return &model.Transcription{
				Status:       model.StatusNoTranscription,
				Language:     language,
				SourceMethod: model.MethodFallback,
				Message:      "aucune transcription disponible pour cette vidéo",
			}, nil
		}
		return nil, fmt.Errorf("récupération via l'API de transcripts: %w", err)
	}

	t := &model.Transcription{
		PlainText:    strings.TrimSpace(plainText),
		Language:     language,
		Status:       model.StatusSuccess,
		SourceMethod: model.MethodFallback,
	}

	if stamped, serr := c.stamps.GetFormattedTranscripts(videoID, codes, false); serr == nil {
		t.TimestampedText = strings.TrimSpace(stamped)
	} else {
		c.logger.Warn("vue horodatée indisponible via le fallback", "error", serr)
	}
	t.Text = t.PlainText
	return t, nil
}

// isNoTranscript distingue "pas de transcription" d'une erreur technique.
func isNoTranscript(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no transcript") ||
		strings.Contains(msg, "transcripts are disabled") ||
		strings.Contains(msg, "not found")
}
