// Package config charge et persiste la configuration du serveur dans un
// fichier YAML unique (~/.youtube-extract-mcp.yaml par défaut).
// Précédence : valeurs par défaut < variables d'environnement < fichier.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/assets"
	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fsutil"
)

const CurrentConfigVersion = 1

// Variables d'environnement reconnues.
const (
	EnvOutputDir  = "YOUTUBE_EXTRACT_OUTPUT_DIR"
	EnvConfigPath = "YOUTUBE_EXTRACT_CONFIG_PATH"
)

// Config regroupe les paramètres persistés du serveur.
type Config struct {
	// OutputDirectory est la racine des sauvegardes locales de transcriptions.
	OutputDirectory string `yaml:"output_directory"`

	// LogLevel : debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// yt-dlp
	YtDlp struct {
		Name         string `yaml:"name"`
		Path         string `yaml:"path"`
		ShowWarnings bool   `yaml:"show_warnings"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// defaultConfig retourne la configuration par défaut (fallback si l'asset
// embarqué est manquant). L'environnement est consulté ici : le fichier YAML,
// déserialisé par-dessus, prime sur lui.
func defaultConfig() *Config {
	c := &Config{}

	c.OutputDirectory = os.Getenv(EnvOutputDir)
	if c.OutputDirectory == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.OutputDirectory = filepath.Join(home, "Documents", "youtube-transcripts")
		} else {
			c.OutputDirectory = "youtube-transcripts"
		}
	}

	c.LogLevel = "info"

	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// DefaultPath retourne le chemin du fichier de configuration :
// YOUTUBE_EXTRACT_CONFIG_PATH si défini, sinon ~/.youtube-extract-mcp.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".youtube-extract-mcp.yaml"
	}
	return filepath.Join(home, ".youtube-extract-mcp.yaml")
}

// Load lit la config ; si le fichier n'existe pas, il est créé à partir du
// modèle embarqué dans internal/assets.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les
	// valeurs par défaut (et donc l'environnement).
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalize()

	return cfg, nil
}

// Path retourne le chemin du fichier d'où cette config a été chargée.
func (c *Config) Path() string {
	return c.configFilePath
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.OutputDirectory = strings.TrimSpace(c.OutputDirectory)
	if c.OutputDirectory == "" {
		c.OutputDirectory = defaultConfig().OutputDirectory
	}
	c.OutputDirectory = expandHome(filepath.Clean(c.OutputDirectory))

	c.LogLevel = strings.TrimSpace(strings.ToLower(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.ConfigVersion == 0 {
		c.ConfigVersion = CurrentConfigVersion
	}

	c.ResolveYtDlpPath()
}

// expandHome remplace un préfixe "~" par le répertoire personnel.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
		}
	}
	return p
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers
// l'exécutable. Appeler après avoir modifié YtDlp.Name ou YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		// pas de chemin explicite : résolution via le PATH au lancement
		c.YtDlp.ResolvedPath = ""
		return
	}
	cleanPath := expandHome(filepath.Clean(cfgPath))

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon cfgPath est un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
