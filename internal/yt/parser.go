package yt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/lang"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// parseVideoJSON décode la sortie `-j` de yt-dlp en métadonnées exploitables
// et en signaux de langue. La langue originale est détectée ici, au plus près
// des données qui la déterminent.
func parseVideoJSON(data []byte) (*model.Meta, lang.Signals, error) {
	var v ytdlpVideo
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, lang.Signals{}, fmt.Errorf("décodage du JSON de yt-dlp: %w", err)
	}

	channel := v.Channel
	if channel == "" {
		channel = v.Uploader
	}

	sig := lang.Signals{
		Language:         v.Language,
		AutoCaptionLangs: orderedKeys(v.AutomaticCaptions),
		SubtitleLangs:    orderedKeys(v.Subtitles),
	}
	code, source := lang.DetectOriginal(sig)

	meta := &model.Meta{
		Title:            v.Title,
		Description:      v.Description,
		Duration:         v.Duration,
		ViewCount:        v.ViewCount,
		LikeCount:        v.LikeCount,
		Channel:          channel,
		UploadDate:       v.UploadDate,
		Categories:       v.Categories,
		Tags:             v.Tags,
		Thumbnail:        v.Thumbnail,
		WebpageURL:       v.WebpageURL,
		OriginalLanguage: code,
		DetectedFrom:     source,
	}
	return meta, sig, nil
}

// orderedKeys extrait les clés de premier niveau d'un objet JSON dans leur
// ordre d'apparition. Un décodage en map perdrait cet ordre, or la première
// langue listée par yt-dlp est un signal de détection.
func orderedKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		// sauter la valeur associée
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}
