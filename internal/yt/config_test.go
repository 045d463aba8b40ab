package yt

import (
	"strings"
	"testing"
)

func TestBuildSubtitleArgs(t *testing.T) {
	cfg := NewConfig(false)
	args := cfg.BuildSubtitleArgs("https://youtu.be/abc12345678", []string{"es", "en"}, "/tmp/out", false)
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"--no-config",
		"--write-auto-subs",
		"--write-subs",
		"--sub-langs es,en",
		"--sub-format vtt",
		"--skip-download",
		"--extractor-args youtube:formats=missing_pot",
		"--extractor-args youtube:player_client=web,web_safari",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("arguments sans %q: %s", want, joined)
		}
	}
	if args[len(args)-1] != "https://youtu.be/abc12345678" {
		t.Errorf("l'URL doit être le dernier argument: %v", args)
	}
}

func TestBuildSubtitleArgsAlternative(t *testing.T) {
	cfg := NewConfig(false)
	args := cfg.BuildSubtitleArgs("u", []string{"es"}, "/tmp/out", true)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "youtube:player_client=android,web_embedded") {
		t.Errorf("la combinaison alternative doit changer les clients: %s", joined)
	}
	if strings.Contains(joined, "web_safari") {
		t.Errorf("les clients principaux ne doivent pas rester: %s", joined)
	}
}

func TestBuildPlaylistArgs(t *testing.T) {
	cfg := NewConfig(true)
	args := cfg.BuildPlaylistArgs("url", 25)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--flat-playlist") || !strings.Contains(joined, "--dump-json") {
		t.Errorf("arguments de playlist incomplets: %s", joined)
	}
	if !strings.Contains(joined, "--playlist-end 25") {
		t.Errorf("limite de playlist absente: %s", joined)
	}
	if strings.Contains(joined, "--no-warnings") {
		t.Errorf("showWarnings=true ne doit pas ajouter --no-warnings: %s", joined)
	}
}
