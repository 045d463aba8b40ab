package model

import "fmt"

// Seconds est un alias explicite pour représenter un instant en secondes
// depuis le début de la vidéo.
type Seconds int64

// TimestampMMSS formate Seconds en "MM:SS", les heures repliées dans les
// minutes. Exemple : 65 -> "01:05", 3661 -> "61:01".
func (s Seconds) TimestampMMSS() string {
	total := int64(s)
	m := total / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d", m, sec)
}

// AbsDiff retourne l'écart absolu entre deux instants, en secondes.
func (s Seconds) AbsDiff(o Seconds) Seconds {
	if s > o {
		return s - o
	}
	return o - s
}

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
func (s Seconds) TimestampHHMMSS() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// Status décrit l'issue d'une tentative d'extraction de transcription.
type Status string

const (
	StatusSuccess           Status = "success"
	StatusNoTranscription   Status = "no_transcription_available"
	StatusFallbackFailed    Status = "fallback_failed"
	StatusBothMethodsFailed Status = "both_methods_failed"
)

// SourceMethod indique quelle méthode a produit la transcription :
// yt-dlp (méthode principale) ou l'API de transcripts (fallback).
type SourceMethod string

const (
	MethodYtDlp    SourceMethod = "yt-dlp"
	MethodFallback SourceMethod = "youtube-transcript-api"
)

// OutputFormat est le format de rendu demandé par l'appelant.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// ParseOutputFormat convertit la chaîne demandée en OutputFormat,
// erreur si le format est inconnu.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}
