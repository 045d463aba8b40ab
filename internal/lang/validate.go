package lang

import (
	"strings"
	"unicode/utf8"
)

// minSampleRunes : en-dessous de cette taille, l'échantillon est jugé trop
// court pour porter un signal ; on ne bloque jamais sur si peu de texte.
const minSampleRunes = 50

// Mots-outils fréquents servant d'indicateurs lexicaux. Les scores sont des
// présences en sous-chaîne (insensible à la casse), pas des comptages de mots :
// c'est volontairement grossier, la validation est purement consultative.
var (
	spanishIndicators = []string{
		"es", "está", "son", "con", "por", "para", "una", "los", "las", "que", "cómo", "qué",
		"muy", "más", "todo", "como", "hacer", "este", "esta", "pueden", "tiene", "ser",
	}
	englishIndicators = []string{
		"the", "and", "this", "that", "with", "for", "you", "your", "are", "is", "can",
		"will", "have", "has", "they", "them", "what", "how", "very", "more", "all",
	}
)

// spanishChars : caractères propres à l'espagnol ; leur seule présence vaut
// un bonus de +3 au score espagnol.
const spanishChars = "ñáéíóú¿¡"

// Validation est le verdict consultatif du contrôle de langue du contenu.
type Validation struct {
	Matches      bool    `json:"matches"`
	Confidence   float64 `json:"confidence"`
	Detected     string  `json:"detected"`
	SpanishScore int     `json:"spanish_score,omitempty"`
	EnglishScore int     `json:"english_score,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// ValidateContent évalue si sample semble écrit dans la langue attendue.
// Résultat consultatif uniquement : l'appelant loggue un avertissement quand
// Matches est faux avec Confidence > 0.7, et continue quoi qu'il arrive.
func ValidateContent(sample, expected string) Validation {
	if utf8.RuneCountInString(sample) < minSampleRunes {
		return Validation{Matches: true, Confidence: 0.0, Detected: "unknown", Reason: "insufficient_text"}
	}

	lower := strings.ToLower(sample)

	spanishScore := 0
	for _, w := range spanishIndicators {
		if strings.Contains(lower, w) {
			spanishScore++
		}
	}
	englishScore := 0
	for _, w := range englishIndicators {
		if strings.Contains(lower, w) {
			englishScore++
		}
	}

	if strings.ContainsAny(lower, spanishChars) {
		spanishScore += 3
	}

	total := spanishScore + englishScore
	if total == 0 {
		return Validation{Matches: true, Confidence: 0.0, Detected: "unknown", Reason: "no_indicators"}
	}

	// l'espagnol l'emporte en cas d'égalité
	detected := "es"
	winning := spanishScore
	if englishScore > spanishScore {
		detected = "en"
		winning = englishScore
	}

	return Validation{
		Matches:      detected == expected,
		Confidence:   float64(winning) / float64(total),
		Detected:     detected,
		SpanishScore: spanishScore,
		EnglishScore: englishScore,
	}
}
