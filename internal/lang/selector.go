package lang

import (
	"errors"
	"log/slog"
	"strings"
)

// ErrNoCandidates est retourné quand la sélection reçoit un ensemble vide.
var ErrNoCandidates = errors.New("aucun fichier de sous-titres candidat")

// SelectBest choisit le meilleur fichier de sous-titres parmi les candidats,
// selon une cascade de règles ordonnées (premier match gagnant) :
//
//  1. fichier auto-généré dont la langue classifiée == chain[0] ;
//  2. fichier auto-généré dont le nom contient ".{chain[0]}." (plus laxiste) ;
//  3. n'importe quel fichier en chain[0] (sous-titres manuels, l'auto ayant
//     déjà été épuisé au-dessus) ;
//  4. premier fichier auto-généré, toute langue confondue ;
//  5. premier fichier de la liste (dernier recours).
//
// Après sélection, une re-vérification stricte (chaîne réduite à chain[0])
// peut faire basculer vers un autre candidat : le match contre la chaîne
// complète peut retenir un fichier techniquement correct mais sous-optimal.
func SelectBest(files []string, chain Chain, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(files) == 0 {
		return "", ErrNoCandidates
	}
	if len(files) == 1 {
		// un seul candidat : la classification est sans objet
		logger.Debug("un seul fichier de sous-titres disponible", "file", files[0])
		return files[0], nil
	}

	target := chain.Target()
	selected := applyRules(files, chain, target, logger)

	// re-vérification post-sélection, plus stricte que la cascade :
	// on re-classifie avec la seule langue cible
	selectedLang := DetectFromFilename(selected, chain)
	if selectedLang != target {
		logger.Warn("langue du fichier retenu différente de la cible",
			"selected", selectedLang, "expected", target)
		if alt := findAlternative(files, target, selected); alt != "" {
			logger.Info("bascule vers un fichier alternatif", "file", alt)
			selected = alt
		}
	}

	return selected, nil
}

// applyRules déroule la cascade de sélection. files est non vide.
func applyRules(files []string, chain Chain, target string, logger *slog.Logger) string {
	// règle 1 : auto-généré dans la langue cible (le plus fiable)
	for _, f := range files {
		if IsAutoGenerated(f) && DetectFromFilename(f, chain) == target {
			logger.Debug("auto-généré dans la langue cible", "file", f)
			return f
		}
	}

	// règle 2 : auto-généré avec le motif ".{target}." dans le nom
	for _, f := range files {
		if IsAutoGenerated(f) && strings.Contains(strings.ToLower(f), "."+target+".") {
			logger.Debug("auto-généré avec motif de langue cible", "file", f)
			return f
		}
	}

	// règle 3 : n'importe quel fichier dans la langue cible (manuels inclus)
	for _, f := range files {
		if DetectFromFilename(f, chain) == target ||
			strings.Contains(strings.ToLower(f), "."+target+".") {
			logger.Debug("sous-titres manuels dans la langue cible", "file", f)
			return f
		}
	}

	// règle 4 : premier auto-généré, peu importe la langue
	for _, f := range files {
		if IsAutoGenerated(f) {
			logger.Debug("premier fichier auto-généré", "file", f)
			return f
		}
	}

	// règle 5 : premier fichier disponible
	logger.Warn("aucune règle satisfaite, premier fichier retenu", "file", files[0])
	return files[0]
}

// findAlternative cherche parmi les autres candidats un fichier dont la
// classification stricte (chaîne réduite à target) correspond à target.
// Retourne "" si aucun ne convient.
func findAlternative(files []string, target, current string) string {
	for _, f := range files {
		if f == current {
			continue
		}
		if DetectFromFilename(f, Chain{target}) == target {
			return f
		}
	}
	return ""
}
