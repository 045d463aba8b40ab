package extract

import "errors"

// Erreurs sentinelles du pipeline, testables via errors.Is.
var (
	// ErrInvalidInput : URL ou paramètre irrécupérable fourni par l'appelant.
	ErrInvalidInput = errors.New("entrée invalide")

	// ErrExtractionProcess : échec du processus yt-dlp lui-même.
	ErrExtractionProcess = errors.New("échec du processus d'extraction")

	// ErrNoTracksProduced : yt-dlp s'est exécuté mais n'a produit aucun
	// fichier de sous-titres.
	ErrNoTracksProduced = errors.New("aucune piste de sous-titres produite")
)
