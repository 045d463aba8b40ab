package model

import "fmt"

// LangUnknown est le code retourné quand aucune langue n'a pu être déduite.
const LangUnknown = "unknown"

// SubtitleTrack décrit un fichier de sous-titres candidat découvert sur disque
// après un passage de yt-dlp. Immuable une fois classifié.
type SubtitleTrack struct {
	Filename      string `json:"filename"`
	Lang          string `json:"lang"`
	AutoGenerated bool   `json:"auto_generated"`
}

func (t SubtitleTrack) String() string {
	return fmt.Sprintf("SubtitleTrack(file=%s, lang=%s, auto=%t)", t.Filename, t.Lang, t.AutoGenerated)
}

// Segment représente une cue de sous-titres après nettoyage : timestamp de
// départ (secondes absolues + forme "MM:SS") et texte sans balisage.
type Segment struct {
	Seconds   Seconds `json:"seconds"`
	Timestamp string  `json:"timestamp"`
	Text      string  `json:"text"`
}

// LanguageInfo résume une langue disponible parmi les fichiers découverts.
type LanguageInfo struct {
	LanguageCode  string `json:"language_code"`
	Filename      string `json:"filename"`
	AutoGenerated bool   `json:"auto_generated"`
	Available     bool   `json:"available"`
}

// AvailableLanguages agrège les LanguageInfo par code langue.
type AvailableLanguages struct {
	TotalLanguages int                     `json:"total_languages"`
	Languages      map[string]LanguageInfo `json:"languages"`
	LanguageCodes  []string                `json:"language_codes"`
}
