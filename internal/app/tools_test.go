package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/config"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/lang"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/mcp"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/yt"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// stubYt : client yt-dlp minimal pour les tests de l'app.
type stubYt struct{}

var _ yt.Interface = stubYt{}

func (stubYt) CheckBinary() error { return nil }

func (stubYt) GetVersion(ctx context.Context) (string, error) { return "test", nil }

func (stubYt) Metadata(ctx context.Context, url string) (*model.Meta, lang.Signals, error) {
	return &model.Meta{Title: "Test", OriginalLanguage: "es"}, lang.Signals{}, nil
}

func (stubYt) DownloadSubtitles(ctx context.Context, url string, langs []string, outDir string, alternative bool) error {
	return os.WriteFile(filepath.Join(outDir, "video.es.auto.vtt"),
		[]byte("WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nhola a todos\n"), 0o644)
}

func (stubYt) PlaylistEntries(ctx context.Context, url string, maxVideos int) (*model.PlaylistInfo, []model.PlaylistEntry, error) {
	return nil, nil, errors.New("pas de playlist en test")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	// la persistance de la config doit rester dans le bac à sable du test
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "config.yaml"))
	cfg := &config.Config{OutputDirectory: t.TempDir(), LogLevel: "info"}
	return New(cfg, stubYt{}, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestRegisterToolsExposesFourTools(t *testing.T) {
	a := newTestApp(t)
	s := mcp.NewServer(Name, Version, nil)
	a.RegisterTools(s)

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n")
	var out bytes.Buffer
	if err := s.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	var resp struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("réponse illisible: %v", err)
	}

	want := []string{"youtube_extract_video", "configure_output_directory", "show_current_config", "youtube_extract_playlist"}
	if len(resp.Result.Tools) != len(want) {
		t.Fatalf("tools = %d, attendu %d", len(resp.Result.Tools), len(want))
	}
	for i, name := range want {
		if resp.Result.Tools[i].Name != name {
			t.Errorf("tools[%d] = %s, attendu %s", i, resp.Result.Tools[i].Name, name)
		}
	}
}

func TestHandleExtractVideo(t *testing.T) {
	a := newTestApp(t)

	out, err := a.handleExtractVideo(context.Background(),
		json.RawMessage(`{"url":"https://youtu.be/dQw4w9WgXcQ"}`))
	if err != nil {
		t.Fatalf("handleExtractVideo: %v", err)
	}

	var result model.ExtractResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("la sortie JSON doit être un ExtractResult: %v", err)
	}
	if result.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %s", result.VideoID)
	}
	if result.Transcription.Status != model.StatusSuccess {
		t.Errorf("Status = %s", result.Transcription.Status)
	}
}

func TestHandleExtractVideoTextFormat(t *testing.T) {
	a := newTestApp(t)
	out, err := a.handleExtractVideo(context.Background(),
		json.RawMessage(`{"url":"dQw4w9WgXcQ","format":"text"}`))
	if err != nil {
		t.Fatalf("handleExtractVideo: %v", err)
	}
	if !strings.Contains(out, "Transcripción") {
		t.Errorf("sortie texte inattendue:\n%s", out)
	}
}

func TestHandleExtractVideoValidation(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.handleExtractVideo(context.Background(), json.RawMessage(`{}`)); err == nil {
		t.Error("URL manquante : erreur attendue")
	}
	if _, err := a.handleExtractVideo(context.Background(),
		json.RawMessage(`{"url":"dQw4w9WgXcQ","format":"xml"}`)); err == nil {
		t.Error("format inconnu : erreur attendue")
	}
}

func TestHandleConfigureOutputDirectory(t *testing.T) {
	a := newTestApp(t)
	target := filepath.Join(t.TempDir(), "transcriptions")

	out, err := a.handleConfigureOutputDirectory(context.Background(),
		json.RawMessage(`{"directory_path":`+mustQuote(target)+`}`))
	if err != nil {
		t.Fatalf("handleConfigureOutputDirectory: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Errorf("la réponse doit mentionner le répertoire:\n%s", out)
	}
	if a.cfg.OutputDirectory != target {
		t.Errorf("OutputDirectory = %s", a.cfg.OutputDirectory)
	}

	if _, err := a.handleConfigureOutputDirectory(context.Background(), json.RawMessage(`{}`)); err == nil {
		t.Error("chemin manquant : erreur attendue")
	}
}

func TestHandleShowConfig(t *testing.T) {
	a := newTestApp(t)
	out, err := a.handleShowConfig(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("handleShowConfig: %v", err)
	}
	if !strings.Contains(out, a.cfg.OutputDirectory) {
		t.Errorf("la config affichée doit contenir le répertoire de sortie:\n%s", out)
	}
	if !strings.Contains(out, config.EnvOutputDir) {
		t.Errorf("les variables d'environnement doivent être listées:\n%s", out)
	}
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
