package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("le fichier de configuration aurait dû être créé : %v", err)
	}
	if cfg.YtDlp.Name != "yt-dlp" && cfg.YtDlp.Name != "yt-dlp.exe" {
		t.Errorf("YtDlp.Name = %q", cfg.YtDlp.Name)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, attendu info", cfg.LogLevel)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d", cfg.ConfigVersion)
	}
}

func TestFileOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	fromFile := filepath.Join(dir, "depuis-le-fichier")

	t.Setenv(EnvOutputDir, filepath.Join(dir, "depuis-env"))
	if err := os.WriteFile(path, []byte("output_directory: "+fromFile+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDirectory != fromFile {
		t.Errorf("OutputDirectory = %q, le fichier doit primer sur l'environnement", cfg.OutputDirectory)
	}
}

func TestEnvironmentUsedWhenFileSilent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	fromEnv := filepath.Join(dir, "depuis-env")

	t.Setenv(EnvOutputDir, fromEnv)
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDirectory != fromEnv {
		t.Errorf("OutputDirectory = %q, attendu la valeur d'environnement %q", cfg.OutputDirectory, fromEnv)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out := filepath.Join(dir, "sorties")
	if err := cfg.SetOutputDirectory(out); err != nil {
		t.Fatalf("SetOutputDirectory: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("rechargement : %v", err)
	}
	if reloaded.OutputDirectory != out {
		t.Errorf("OutputDirectory = %q, attendu %q après persistance", reloaded.OutputDirectory, out)
	}
}

func TestResolveYtDlpPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.YtDlp.Path = "/opt/tools"
	cfg.ResolveYtDlpPath()
	want := filepath.Join("/opt/tools", cfg.YtDlp.Name)
	if cfg.YtDlp.ResolvedPath != want {
		t.Errorf("ResolvedPath = %q, attendu %q", cfg.YtDlp.ResolvedPath, want)
	}

	cfg.YtDlp.Path = filepath.Join("/opt/tools", cfg.YtDlp.Name)
	cfg.ResolveYtDlpPath()
	if cfg.YtDlp.ResolvedPath != want {
		t.Errorf("ResolvedPath = %q, attendu %q (chemin déjà complet)", cfg.YtDlp.ResolvedPath, want)
	}

	cfg.YtDlp.Path = ""
	cfg.ResolveYtDlpPath()
	if cfg.YtDlp.ResolvedPath != "" {
		t.Errorf("ResolvedPath = %q, attendu vide (résolution via PATH)", cfg.YtDlp.ResolvedPath)
	}
}
