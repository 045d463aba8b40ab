package yt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Arguments --extractor-args : la combinaison principale couvre la grande
// majorité des vidéos ; la combinaison alternative contourne certains
// blocages côté YouTube en se présentant comme d'autres clients.
const (
	extractorFormats         = "youtube:formats=missing_pot"
	extractorClientsPrimary  = "youtube:player_client=web,web_safari"
	extractorClientsFallback = "youtube:player_client=android,web_embedded"
)

// Config représente les flags ajoutables quand on utilise yt-dlp.
type Config struct {
	NoWarnings bool // true => ajouter --no-warnings
	NoProgress bool
	NoUpdate   bool
	NoConfig   bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewConfig initialise une configuration standard de yt-dlp, showWarnings
// vient du yaml de config.
func NewConfig(showWarnings bool) *Config {
	return &Config{
		NoWarnings: !showWarnings,
		NoProgress: true,
		NoUpdate:   true,
		NoConfig:   true,
	}
}

// base retourne les flags communs à tous les appels, --no-config en tête
// pour qu'aucune config locale ne modifie le comportement.
func (c *Config) base() []string {
	args := make([]string, 0, 8)
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}

// BuildMetadataArgs construit les arguments de `yt-dlp -j` (dump JSON sans
// téléchargement).
func (c *Config) BuildMetadataArgs(url string) []string {
	args := c.base()
	args = append(args, "-j", "--skip-download", url)
	return args
}

// BuildSubtitleArgs construit les arguments de téléchargement des pistes de
// sous-titres : pistes manuelles et auto-générées, format VTT, écrites dans
// outDir sous "{id}.{lang}.vtt".
func (c *Config) BuildSubtitleArgs(url string, langs []string, outDir string, alternative bool) []string {
	clients := extractorClientsPrimary
	if alternative {
		clients = extractorClientsFallback
	}

	args := c.base()
	args = append(args,
		"--write-auto-subs",
		"--write-subs",
		"--sub-langs", strings.Join(langs, ","),
		"--sub-format", "vtt",
		"--skip-download",
		"--extractor-args", extractorFormats,
		"--extractor-args", clients,
		"-o", filepath.Join(outDir, "%(id)s.%(ext)s"),
		url,
	)
	return args
}

// BuildPlaylistArgs construit les arguments d'énumération d'une playlist :
// une ligne JSON par vidéo, sans résolution individuelle des vidéos.
func (c *Config) BuildPlaylistArgs(url string, maxVideos int) []string {
	args := c.base()
	args = append(args, "--flat-playlist", "--dump-json")
	if maxVideos > 0 {
		args = append(args, "--playlist-end", fmt.Sprintf("%d", maxVideos))
	}
	args = append(args, url)
	return args
}
