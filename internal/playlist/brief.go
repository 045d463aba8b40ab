package playlist

import (
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// Limites des briefs, en caractères.
const (
	maxBriefLen       = 200
	briefTitleLen     = 60
	briefDescLen      = 100
	briefFirstTextLen = 150
)

// introKeywords : tournures d'introduction typiques ; leur présence dans les
// premiers mots indique que l'ouverture de la transcription résume la vidéo.
var introKeywords = []string{
	"hoy vamos", "en este video", "vamos a ver", "aprenderemos",
	"explicaré", "tutorial", "today we", "in this video", "we're going to",
}

// GenerateBrief produit un résumé court d'une vidéo à partir de ses
// métadonnées et du début de sa transcription. Jamais plus de 200 caractères,
// pour rester utilisable dans une table d'index.
func GenerateBrief(meta model.Meta, plainText string) string {
	title := truncate(meta.Title, briefTitleLen)
	desc := truncate(meta.Description, briefDescLen)
	firstText := truncate(plainText, briefFirstTextLen)

	hasIntro := false
	lowerFirst := strings.ToLower(firstText)
	for _, kw := range introKeywords {
		if strings.Contains(lowerFirst, kw) {
			hasIntro = true
			break
		}
	}

	var brief string
	switch {
	case hasIntro && firstText != "":
		brief = firstText + "..."
	case desc != "":
		if firstText != "" {
			brief = desc + ". " + truncate(firstText, 50) + "..."
		} else {
			brief = desc
		}
	case firstText != "":
		brief = title + ". " + truncate(firstText, 80) + "..."
	default:
		brief = title
	}

	return truncate(brief, maxBriefLen)
}

// firstWords retourne les n premiers mots d'un texte, joints par des espaces.
func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// truncate coupe une chaîne à n bytes au plus, sans couper au milieu d'une rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// reculer jusqu'à une frontière de rune (0b10xxxxxx = byte de continuation)
	for n > 0 && (s[n]&0xC0) == 0x80 {
		n--
	}
	return s[:n]
}
