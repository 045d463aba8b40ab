// Package yt encapsule l'exécution du binaire yt-dlp : extraction des
// métadonnées d'une vidéo, téléchargement des pistes de sous-titres et
// énumération des playlists.
package yt

import (
	"encoding/json"
	"time"
)

// Timeouts appliqués aux différents appels à yt-dlp.
const (
	defaultVersionTimeout  = 5 * time.Second
	defaultMetadataTimeout = 60 * time.Second
	defaultDownloadTimeout = 120 * time.Second
	defaultPlaylistTimeout = 60 * time.Second
)

// ytdlpVideo représente la sortie JSON brute retournée par yt-dlp pour une
// vidéo (`yt-dlp -j`). Seuls les champs exploités sont décodés.
//
// Subtitles et AutomaticCaptions restent des json.RawMessage : l'ordre des
// clés du JSON porte un signal (la première langue listée est la plus
// probable) et ne survit pas à un décodage en map Go.
type ytdlpVideo struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Duration          int64           `json:"duration"`
	ViewCount         int64           `json:"view_count"`
	LikeCount         int64           `json:"like_count"`
	Channel           string          `json:"channel"`
	Uploader          string          `json:"uploader"`
	UploadDate        string          `json:"upload_date"`
	Categories        []string        `json:"categories"`
	Tags              []string        `json:"tags"`
	Thumbnail         string          `json:"thumbnail"`
	WebpageURL        string          `json:"webpage_url"`
	Language          string          `json:"language"`
	Subtitles         json.RawMessage `json:"subtitles"`
	AutomaticCaptions json.RawMessage `json:"automatic_captions"`
}

// ytdlpPlaylistEntry est une ligne du listing `--flat-playlist --dump-json`.
type ytdlpPlaylistEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	PlaylistID    string `json:"playlist_id"`
	PlaylistTitle string `json:"playlist_title"`
	Uploader      string `json:"playlist_uploader"`
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin
// résolu) et sa configuration d'arguments.
type YtDlp struct {
	Name   string
	Path   string
	Config Config
}
