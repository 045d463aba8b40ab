package playlist

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fsutil"
)

// writeIndex génère PLAYLIST_INDEX.md : tableau de navigation, liens vers
// les transcriptions et liens directs vers les vidéos.
func (p *Processor) writeIndex(result *Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# 📺 %s\n\n", result.Info.Title)
	fmt.Fprintf(&b, "**Playlist**: [%s](%s)  \n", result.Info.URL, result.Info.URL)
	fmt.Fprintf(&b, "**Procesado**: %s  \n", time.Now().Format("02 January 2006, 15:04"))
	fmt.Fprintf(&b, "**Videos**: %d/%d completados  \n", result.Successful, len(result.Videos))
	fmt.Fprintf(&b, "**Fallidos**: %d\n\n", result.Failed)

	b.WriteString("---\n\n## 📊 Resumen Rápido\n\n")
	b.WriteString("| # | Video | Duración | Estado | Brief |\n")
	b.WriteString("|---|-------|----------|--------|-------|\n")
	for _, v := range result.Videos {
		status := "✅"
		if v.Status != "success" {
			status = "❌"
		}
		duration := v.Duration
		if duration == "" {
			duration = "N/A"
		}
		brief := v.Brief
		if brief == "" {
			brief = "No brief available"
		}
		fmt.Fprintf(&b, "| %02d | %s | %s | %s | %s |\n",
			v.Sequence, truncate(v.Title, 40), duration, status, truncate(brief, 60))
	}

	b.WriteString("\n---\n\n## 📁 Archivos Generados\n\n### 📝 Transcripciones\n")
	for _, v := range result.Videos {
		if v.Status != "success" {
			continue
		}
		base := fmt.Sprintf("%02d_%s", v.Sequence, fsutil.SanitizeFilename(v.Title, maxSeqTitleLen))
		fmt.Fprintf(&b, "- [`%s_plain.txt`](./transcripts/%s_plain.txt)\n", base, base)
		fmt.Fprintf(&b, "- [`%s_timestamps.txt`](./transcripts/%s_timestamps.txt)\n", base, base)
	}

	b.WriteString("\n---\n\n## 🔍 Enlaces Directos\n\n")
	for _, v := range result.Videos {
		if v.Status != "success" {
			continue
		}
		base := fmt.Sprintf("%02d_%s", v.Sequence, fsutil.SanitizeFilename(v.Title, maxSeqTitleLen))
		fmt.Fprintf(&b, "- **Video %02d**: [%s](%s) → [`Transcripción`](./transcripts/%s_plain.txt)\n",
			v.Sequence, v.URL, v.URL, base)
	}

	return fsutil.WriteFileAtomic(filepath.Join(result.Directory, "PLAYLIST_INDEX.md"), []byte(b.String()), 0o644)
}

// writeMetadata génère playlist_metadata.json : bilan complet avec
// statistiques de réussite.
func (p *Processor) writeMetadata(result *Result) error {
	successRate := 0.0
	if len(result.Videos) > 0 {
		successRate = float64(result.Successful) / float64(len(result.Videos)) * 100
	}

	meta := map[string]any{
		"playlist_info": map[string]any{
			"title":            result.Info.Title,
			"url":              result.Info.URL,
			"total_videos":     len(result.Videos),
			"processed_videos": result.Successful,
			"failed_videos":    result.Failed,
			"processed_date":   time.Now().Format(time.RFC3339),
		},
		"videos": result.Videos,
		"statistics": map[string]any{
			"success_rate":        successRate,
			"total_files_created": result.Successful * 3,
		},
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(filepath.Join(result.Directory, "playlist_metadata.json"), data, 0o644)
}

// Summary produit le bilan textuel affiché à l'appelant MCP.
func (r *Result) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "📺 Playlist %q procesada exitosamente!\n\n", r.Info.Title)
	b.WriteString("📊 RESUMEN:\n")
	fmt.Fprintf(&b, "├── %d videos procesados exitosamente\n", r.Successful)
	fmt.Fprintf(&b, "├── %d videos fallaron\n", r.Failed)
	fmt.Fprintf(&b, "└── Ubicación: %s\n\n", r.Directory)
	b.WriteString("📋 ÍNDICE PRINCIPAL:\n📁 PLAYLIST_INDEX.md → Navegación completa con tabla y enlaces directos\n\n📝 TOP 5 VIDEOS:")

	shown := 0
	for _, v := range r.Videos {
		if v.Status != "success" || shown >= 5 {
			continue
		}
		shown++
		brief := v.Brief
		if brief == "" {
			brief = "No brief available"
		}
		fmt.Fprintf(&b, "\n%02d. %s → %s...", shown, truncate(v.Title, 50), truncate(brief, 80))
	}

	fmt.Fprintf(&b, "\n\n🔗 ACCESO RÁPIDO:\n")
	b.WriteString("• Índice completo: PLAYLIST_INDEX.md\n")
	b.WriteString("• Metadata técnica: playlist_metadata.json\n")
	fmt.Fprintf(&b, "• Transcripciones: /transcripts/ (%d archivos)\n", r.Successful*2)
	fmt.Fprintf(&b, "• Metadata individual: /metadata/ (%d archivos JSON)\n", r.Successful)

	if r.Failed > 0 {
		fmt.Fprintf(&b, "\n⚠️ Videos fallidos: %d (ver detalles en playlist_metadata.json)", r.Failed)
	}

	return b.String()
}
