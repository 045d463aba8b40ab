package model

import (
	"fmt"
	"strings"
)

// Meta regroupe les métadonnées extraites d'une vidéo YouTube, plus la langue
// originale détectée à partir de ces métadonnées.
type Meta struct {
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Duration         int64    `json:"duration,omitempty"`
	ViewCount        int64    `json:"view_count,omitempty"`
	LikeCount        int64    `json:"like_count,omitempty"`
	Channel          string   `json:"channel,omitempty"`
	UploadDate       string   `json:"upload_date,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Thumbnail        string   `json:"thumbnail,omitempty"`
	WebpageURL       string   `json:"webpage_url,omitempty"`
	OriginalLanguage string   `json:"original_language,omitempty"`
	DetectedFrom     string   `json:"detected_from,omitempty"`

	// Error est renseigné quand l'extraction des métadonnées a échoué mais
	// que le pipeline continue quand même (les métadonnées sont optionnelles).
	Error string `json:"error,omitempty"`
}

// DurationMMSS retourne la durée sous forme "M:SS" ("" si inconnue).
func (m Meta) DurationMMSS() string {
	if m.Duration <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", m.Duration/60, m.Duration%60)
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[Title=%q, Channel=%s, Duration=%ds, Lang=%s]",
		m.Title, m.Channel, m.Duration, m.OriginalLanguage)
}

// PlaylistInfo décrit une playlist (métadonnées de tête, pas les vidéos).
type PlaylistInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Uploader string `json:"uploader,omitempty"`
}

// PlaylistEntry est une vidéo énumérée par un listing --flat-playlist.
type PlaylistEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// WatchURL reconstruit l'URL de lecture à partir de l'ID si l'énumération
// n'a pas fourni d'URL directe.
func (e PlaylistEntry) WatchURL() string {
	if e.URL != "" {
		return e.URL
	}
	return "https://youtube.com/watch?v=" + e.ID
}

// TitleOrID retourne le titre, ou sinon l'ID de la vidéo.
func (e PlaylistEntry) TitleOrID() string {
	if s := strings.TrimSpace(e.Title); s != "" {
		return s
	}
	return e.ID
}
