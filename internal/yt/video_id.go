package yt

import (
	"fmt"
	"regexp"
)

// Formes d'URL YouTube acceptées, premier motif gagnant : watch classique
// (paramètre v= ou ID en fin de chemin), pages embed, liens courts youtu.be.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// ExtractVideoID isole l'identifiant à 11 caractères d'une URL YouTube.
// Une chaîne qui est déjà un ID nu est acceptée telle quelle.
func ExtractVideoID(url string) (string, error) {
	if bareVideoID.MatchString(url) {
		return url, nil
	}
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("impossible d'extraire l'ID vidéo de l'URL: %s", url)
}
