// Package subtitles reconstruit, à partir d'un fichier de sous-titres VTT,
// deux représentations textuelles parallèles : un texte brut et un texte
// horodaté. Les pistes auto-générées par YouTube simulent des captions
// défilantes (chaque cue répète l'essentiel de la précédente plus quelques
// mots) ; la passe de fusion défait cette redondance sans perdre de contenu.
package subtitles

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// cueTiming matche une ligne de timing "HH:MM:SS.mmm --> HH:MM:SS.mmm" et
// capture les composantes du temps de départ.
var cueTiming = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*\d{2}:\d{2}:\d{2}\.\d{3}`)

// htmlTag : balises inline (<c>, <i>, <font>, timestamps <00:00:01.000>...).
var htmlTag = regexp.MustCompile(`<[^>]+>`)

// escapedTag : balises échappées résiduelles des pistes auto-générées.
var escapedTag = regexp.MustCompile(`&lt;.*?&gt;`)

// Result est le produit du parsing : les deux vues textuelles et les
// segments fusionnés qui les ont engendrées.
// Invariant : Plain est la concaténation (espaces) des textes des segments,
// Timestamped la forme "[MM:SS] texte" jointe par sauts de ligne.
type Result struct {
	Plain       string
	Timestamped string
	Segments    []model.Segment
}

// ParseFile lit un fichier de sous-titres et le transforme en Result.
// C'est la seule frontière où une erreur peut sortir du package ; Parse
// lui-même est total.
func ParseFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("lecture du fichier de sous-titres %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Parse transforme le contenu VTT brut en Result : extraction des cues,
// fusion des doublons, rendu des deux vues.
func Parse(raw string) Result {
	segments := MergeSegments(parseCues(raw))
	plain, timestamped := render(segments)
	return Result{
		Plain:       plain,
		Timestamped: timestamped,
		Segments:    segments,
	}
}

// parseCues découpe le contenu en segments : une cue = un timing + les
// lignes de texte qui suivent, nettoyées et dédupliquées au sein de la cue.
func parseCues(raw string) []model.Segment {
	lines := strings.Split(raw, "\n")
	var segments []model.Segment

	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		// en-têtes et lignes de métadonnées : on saute
		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "NOTE") ||
			strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") {
			i++
			continue
		}

		m := cueTiming.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		// temps de départ : heures repliées dans les minutes, secondes
		// tronquées (la partie .mmm est ignorée)
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		minutes += hours * 60

		// lignes de texte de la cue, jusqu'à une ligne vide ou un
		// nouveau timing ; doublons intra-cue éliminés avant jointure
		i++
		var textLines []string
		seen := make(map[string]struct{})
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !strings.Contains(lines[i], "-->") {
			clean := cleanLine(lines[i])
			if clean != "" {
				if _, dup := seen[clean]; !dup {
					textLines = append(textLines, clean)
					seen[clean] = struct{}{}
				}
			}
			i++
		}

		if len(textLines) == 0 {
			continue
		}
		total := model.Seconds(minutes*60 + seconds)
		segments = append(segments, model.Segment{
			Seconds:   total,
			Timestamp: fmt.Sprintf("%02d:%02d", minutes, seconds),
			Text:      strings.TrimSpace(strings.Join(textLines, " ")),
		})
	}

	return segments
}

// cleanLine retire le balisage d'une ligne de cue et normalise les espaces.
func cleanLine(line string) string {
	line = htmlTag.ReplaceAllString(line, "")
	line = escapedTag.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "&amp;", "&")
	line = strings.ReplaceAll(line, "&quot;", `"`)
	// un seul espace entre mots, aucun en début/fin
	return strings.Join(strings.Fields(line), " ")
}

// render produit les deux vues finales à partir des segments fusionnés.
func render(segments []model.Segment) (plain, timestamped string) {
	plainParts := make([]string, 0, len(segments))
	tsParts := make([]string, 0, len(segments))
	for _, seg := range segments {
		plainParts = append(plainParts, seg.Text)
		tsParts = append(tsParts, fmt.Sprintf("[%s] %s", seg.Timestamp, seg.Text))
	}
	return strings.TrimSpace(strings.Join(plainParts, " ")),
		strings.TrimSpace(strings.Join(tsParts, "\n"))
}
