// Package clipboard est une façade fine au-dessus de atotto/clipboard,
// utilisée pour copier une transcription directement dans le presse-papier.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	return clipboard.ReadAll()
}
