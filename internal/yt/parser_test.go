package yt

import (
	"encoding/json"
	"testing"
)

func TestOrderedKeys(t *testing.T) {
	raw := json.RawMessage(`{"es":[{"ext":"vtt"}],"en":[{"ext":"vtt"}],"fr":[]}`)
	keys := orderedKeys(raw)
	want := []string{"es", "en", "fr"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, attendu %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, attendu %q (l'ordre du JSON doit être préservé)", i, keys[i], want[i])
		}
	}
}

func TestOrderedKeysEmpty(t *testing.T) {
	if keys := orderedKeys(nil); keys != nil {
		t.Errorf("nil -> %v, attendu nil", keys)
	}
	if keys := orderedKeys(json.RawMessage(`{}`)); len(keys) != 0 {
		t.Errorf("{} -> %v, attendu vide", keys)
	}
	if keys := orderedKeys(json.RawMessage(`[1,2]`)); keys != nil {
		t.Errorf("tableau -> %v, attendu nil", keys)
	}
}

func TestParseVideoJSON(t *testing.T) {
	data := []byte(`{
		"id": "dQw4w9WgXcQ",
		"title": "Un titre",
		"duration": 212,
		"uploader": "La chaîne",
		"upload_date": "20250101",
		"language": "es-ES",
		"automatic_captions": {"es": [], "en": []},
		"subtitles": {"en": []}
	}`)

	meta, sig, err := parseVideoJSON(data)
	if err != nil {
		t.Fatalf("parseVideoJSON: %v", err)
	}
	if meta.Title != "Un titre" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Channel != "La chaîne" {
		t.Errorf("Channel = %q, attendu le repli sur uploader", meta.Channel)
	}
	// le champ langue explicite prime et est normalisé
	if meta.OriginalLanguage != "es" || meta.DetectedFrom != "language_field" {
		t.Errorf("langue = (%s, %s), attendu (es, language_field)", meta.OriginalLanguage, meta.DetectedFrom)
	}
	if len(sig.AutoCaptionLangs) != 2 || sig.AutoCaptionLangs[0] != "es" {
		t.Errorf("AutoCaptionLangs = %v", sig.AutoCaptionLangs)
	}
}

func TestParseVideoJSONInvalid(t *testing.T) {
	if _, _, err := parseVideoJSON([]byte("pas du json")); err == nil {
		t.Fatal("attendu une erreur de décodage")
	}
}
