package subtitles

import (
	"strings"
	"testing"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:03.000
Hello and

00:00:02.000 --> 00:00:06.000
Hello and welcome

00:00:10.000 --> 00:00:14.000
Today we learn Python
`

func TestParseScrollingCaptions(t *testing.T) {
	res := Parse(sampleVTT)

	if len(res.Segments) != 2 {
		t.Fatalf("segments = %d, attendu 2 (%v)", len(res.Segments), res.Segments)
	}
	if got, want := res.Plain, "Hello and welcome Today we learn Python"; got != want {
		t.Errorf("Plain = %q, attendu %q", got, want)
	}
	want := "[00:00] Hello and welcome\n[00:10] Today we learn Python"
	if res.Timestamped != want {
		t.Errorf("Timestamped = %q, attendu %q", res.Timestamped, want)
	}
}

func TestParseCuesCleaning(t *testing.T) {
	raw := `WEBVTT

00:00:01.500 --> 00:00:04.000
<c.colorCCCCCC>Bonjour</c> &amp; bienvenue
Bonjour & bienvenue
&lt;b&gt;tout le monde&lt;/b&gt;
`
	segs := parseCues(raw)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, attendu 1", len(segs))
	}
	// balises retirées, entités décodées, lignes dupliquées fusionnées,
	// millisecondes tronquées
	if got, want := segs[0].Text, "Bonjour & bienvenue tout le monde"; got != want {
		t.Errorf("Text = %q, attendu %q", got, want)
	}
	if segs[0].Seconds != 1 {
		t.Errorf("Seconds = %d, attendu 1", segs[0].Seconds)
	}
	if segs[0].Timestamp != "00:01" {
		t.Errorf("Timestamp = %q, attendu 00:01", segs[0].Timestamp)
	}
}

func TestParseCuesHourFolding(t *testing.T) {
	raw := "WEBVTT\n\n01:02:05.000 --> 01:02:08.000\ntexte tardif\n"
	segs := parseCues(raw)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, attendu 1", len(segs))
	}
	// 1 h 02 min -> 62 minutes
	if segs[0].Timestamp != "62:05" {
		t.Errorf("Timestamp = %q, attendu 62:05", segs[0].Timestamp)
	}
	if segs[0].Seconds != 62*60+5 {
		t.Errorf("Seconds = %d, attendu %d", segs[0].Seconds, 62*60+5)
	}
}

func TestParseSkipsMetadataAndEmptyCues(t *testing.T) {
	raw := `WEBVTT
NOTE ceci est un commentaire
Kind: captions
Language: es

00:00:01.000 --> 00:00:02.000
<c></c>

00:00:03.000 --> 00:00:04.000
contenu réel
`
	segs := parseCues(raw)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, attendu 1 (cue vide après nettoyage ignorée)", len(segs))
	}
	if segs[0].Text != "contenu réel" {
		t.Errorf("Text = %q", segs[0].Text)
	}
}

func TestParseEmptyContent(t *testing.T) {
	res := Parse("")
	if res.Plain != "" || res.Timestamped != "" || len(res.Segments) != 0 {
		t.Errorf("contenu vide: attendu Result vide, obtenu %+v", res)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("/nonexistent/sous-titres.vtt"); err == nil {
		t.Fatal("attendu une erreur pour un fichier absent")
	}
}

func TestRenderTrimmed(t *testing.T) {
	res := Parse(sampleVTT)
	if strings.TrimSpace(res.Plain) != res.Plain {
		t.Error("Plain contient des espaces de bord")
	}
	if strings.TrimSpace(res.Timestamped) != res.Timestamped {
		t.Error("Timestamped contient des espaces de bord")
	}
}
