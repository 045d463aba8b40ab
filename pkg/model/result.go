package model

import "strings"

// Transcription est le contrat de sortie du pipeline d'extraction, commun à la
// méthode principale (yt-dlp) et au fallback.
// Invariant : si Status == StatusSuccess, PlainText et TimestampedText sont
// tous deux définis (éventuellement vides si la piste n'avait aucune cue).
type Transcription struct {
	// Text est la vue demandée par l'appelant : TimestampedText si les
	// timestamps étaient demandés, sinon PlainText.
	Text            string `json:"text"`
	PlainText       string `json:"plain_text,omitempty"`
	TimestampedText string `json:"timestamped_text,omitempty"`

	Language     string       `json:"language"`
	Status       Status       `json:"status"`
	SourceMethod SourceMethod `json:"source_method,omitempty"`

	// SourceFile est le nom du fichier de sous-titres retenu (absent pour
	// le fallback, qui ne passe pas par le disque).
	SourceFile     string   `json:"source_file,omitempty"`
	AvailableFiles []string `json:"available_files,omitempty"`

	AvailableLanguages *AvailableLanguages `json:"available_languages,omitempty"`

	IsAutoGenerated *bool `json:"is_auto_generated,omitempty"`
	SegmentsCount   int   `json:"segments_count,omitempty"`

	// Erreurs préservées quand les deux méthodes ont échoué.
	PrimaryError  string `json:"primary_error,omitempty"`
	FallbackError string `json:"fallback_error,omitempty"`
	Message       string `json:"message,omitempty"`
}

// WordCount compte les mots du texte brut.
func (t Transcription) WordCount() int {
	return len(strings.Fields(t.PlainText))
}

// CharCount compte les caractères (bytes) du texte brut.
func (t Transcription) CharCount() int {
	return len(t.PlainText)
}

// ReadingTimeMinutes estime le temps de lecture (~200 mots/minute, minimum 1).
func (t Transcription) ReadingTimeMinutes() int {
	minutes := t.WordCount() / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ExtractionInfo retrace les décisions de langue et la méthode utilisée.
type ExtractionInfo struct {
	LanguageRequested string       `json:"language_requested"`
	LanguageDetected  string       `json:"language_detected"`
	LanguageExtracted string       `json:"language_extracted"`
	LanguageUsed      string       `json:"language_used"`
	HasTimestamps     bool         `json:"has_timestamps"`
	Method            SourceMethod `json:"method"`
	IsAutoGenerated   *bool        `json:"is_auto_generated,omitempty"`
	SegmentsCount     int          `json:"segments_count,omitempty"`
	Status            string       `json:"status"`
}

// LocalSave décrit l'issue d'une sauvegarde locale.
type LocalSave struct {
	Status       string   `json:"status"`
	Directory    string   `json:"directory,omitempty"`
	FilesCreated []string `json:"files_created,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// ExtractResult est la réponse complète de l'outil d'extraction d'une vidéo.
type ExtractResult struct {
	VideoID        string         `json:"video_id"`
	URL            string         `json:"url"`
	Metadata       Meta           `json:"metadata"`
	Transcription  Transcription  `json:"transcription"`
	ExtractionInfo ExtractionInfo `json:"extraction_info"`
	LocalSave      *LocalSave     `json:"local_save,omitempty"`
}
