package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Signals rassemble les signaux de langue extraits des métadonnées d'une
// vidéo, du plus fiable au moins fiable. Les listes de langues conservent
// l'ordre d'apparition dans le JSON de yt-dlp (le "premier" compte).
type Signals struct {
	// Language est le champ langue explicite de yt-dlp, éventuellement vide.
	Language string

	// AutoCaptionLangs : clés de automatic_captions. Signal le plus fiable :
	// les captions automatiques sont toujours générées dans la langue parlée.
	AutoCaptionLangs []string

	// SubtitleLangs : clés de subtitles. Signal plus faible, les sous-titres
	// manuels peuvent être des traductions.
	SubtitleLangs []string
}

// DetectOriginal devine la langue originale parlée d'une vidéo.
// Priorité : champ langue explicite > captions automatiques > sous-titres
// manuels > "en" par défaut. Le code retourné est toujours normalisé.
// Fonction pure.
func DetectOriginal(sig Signals) (code string, source string) {
	if sig.Language != "" {
		return Normalize(sig.Language), "language_field"
	}
	if len(sig.AutoCaptionLangs) > 0 {
		return Normalize(sig.AutoCaptionLangs[0]), "automatic_captions"
	}
	if len(sig.SubtitleLangs) > 0 {
		return Normalize(sig.SubtitleLangs[0]), "manual_subtitles"
	}
	return "en", "default"
}

// Normalize ramène un tag de langue à son code de base : "en-US" -> "en",
// "es_ES" -> "es". On passe par golang.org/x/text pour les tags BCP-47
// bien formés, avec un repli manuel (coupe sur -/_ puis minuscules) pour
// tout ce que le parseur refuse.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "en"
	}

	if tag, err := language.Parse(raw); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			return base.String()
		}
	}

	// repli : première composante avant '-' ou '_', en minuscules
	base := raw
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	return strings.ToLower(base)
}
