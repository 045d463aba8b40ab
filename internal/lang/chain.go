// Package lang regroupe les heuristiques de langue du pipeline : chaîne de
// priorité, classification des fichiers de sous-titres, sélection de la
// meilleure piste, détection de la langue originale et validation du contenu.
package lang

// Auto est la sentinelle passée par l'appelant pour demander la détection
// automatique de la langue originale.
const Auto = "auto"

// recognized est le catalogue fixe des langues reconnues, dans un ordre
// stable (l'ordre compte pour la table de motifs de classify).
var recognized = []string{"es", "en", "fr", "de", "it", "pt", "ja", "ko", "zh", "ru"}

// IsRecognized indique si code fait partie du catalogue.
func IsRecognized(code string) bool {
	for _, c := range recognized {
		if c == code {
			return true
		}
	}
	return false
}

// Chain est une séquence ordonnée de codes langue, dédupliquée, du plus
// prioritaire au moins prioritaire. Invariant : longueur >= 1, aucun doublon.
type Chain []string

// Target retourne la langue la plus prioritaire de la chaîne.
func (c Chain) Target() string {
	if len(c) == 0 {
		return "unknown"
	}
	return c[0]
}

// BuildChain construit la chaîne de repli pour la langue demandée.
// Le biais es/en est un choix assumé : le système vise d'abord du contenu
// hispanophone et anglophone ; un appelant qui veut autre chose passe un
// code reconnu explicite.
//
//   - "es" demandé          -> [es, en]
//   - "en" demandé          -> [en, es]
//   - autre code reconnu X  -> [X, en, es]
//   - inconnu ou "auto" non résolu -> [es, en]
func BuildChain(requested string) Chain {
	var options []string
	switch {
	case requested == "es":
		options = []string{"es", "en"}
	case requested == "en":
		options = []string{"en", "es"}
	case IsRecognized(requested):
		options = []string{requested, "en", "es"}
	default:
		options = []string{"es", "en"}
	}

	// déduplication en préservant la première occurrence
	seen := make(map[string]struct{}, len(options))
	chain := make(Chain, 0, len(options))
	for _, code := range options {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		chain = append(chain, code)
	}
	return chain
}
