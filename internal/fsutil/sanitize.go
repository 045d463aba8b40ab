package fsutil

import (
	"regexp"
	"strings"
)

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// et de répertoires. \x00-\x1F sont les caractères de contrôle.
var invalidFileRunes = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// SanitizeFilename nettoie une chaîne pour en faire un nom de fichier ou de
// répertoire sûr : chaque caractère interdit est remplacé par "_", puis la
// chaîne est tronquée à maxLen bytes (0 = pas de limite).
// Chaîne vide après nettoyage -> "untitled".
func SanitizeFilename(name string, maxLen int) string {
	clean := invalidFileRunes.ReplaceAllString(name, "_")
	clean = strings.TrimSpace(clean)

	if maxLen > 0 && len(clean) > maxLen {
		clean = clean[:maxLen]
	}

	// suppression des points terminaux (Windows n'aime pas)
	clean = strings.TrimRight(clean, ". ")

	if clean == "" {
		return "untitled"
	}
	return clean
}
