package extract

import (
	"fmt"
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// FormatText rend un résultat d'extraction sous forme de texte lisible,
// pour les appelants qui demandent format=text.
func FormatText(result *model.ExtractResult) string {
	meta := result.Metadata
	t := result.Transcription

	var out []string
	title := meta.Title
	if title == "" {
		title = "Unknown Title"
	}
	out = append(out, fmt.Sprintf("📺 **%s**", title))
	out = append(out, fmt.Sprintf("🔗 URL: %s", result.URL))

	channel := meta.Channel
	if channel == "" {
		channel = "Unknown"
	}
	out = append(out, fmt.Sprintf("📺 Canal: %s", channel))

	if d := meta.DurationMMSS(); d != "" {
		out = append(out, fmt.Sprintf("⏱️ Duración: %s", d))
	}
	out = append(out, fmt.Sprintf("👀 Vistas: %d", meta.ViewCount))
	out = append(out, fmt.Sprintf("🗣️ Idioma: %s", t.Language))
	out = append(out, "")

	if t.Text != "" {
		out = append(out, "📝 **Transcripción:**", "", t.Text)
	} else {
		out = append(out, "❌ No se pudo extraer la transcripción")
	}

	return strings.Join(out, "\n")
}
