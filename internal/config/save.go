package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/fsutil"
)

// Save écrit la configuration sur disque, sous verrou fichier : plusieurs
// clients MCP peuvent pointer sur la même config.
func (c *Config) Save() error {
	path := c.configFilePath
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(path), err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("verrouillage de la configuration impossible : %w", err)
	}
	if !locked {
		return fmt.Errorf("configuration verrouillée par un autre processus : %s", path)
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("sérialisation de la configuration : %w", err)
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("écriture de la configuration %s : %w", path, err)
	}
	c.configFilePath = path
	return nil
}

// SetOutputDirectory valide le répertoire demandé (création et test
// d'écriture), l'enregistre et persiste la configuration.
func (c *Config) SetOutputDirectory(dir string) error {
	dir = expandHome(filepath.Clean(dir))
	if err := fsutil.EnsureWritableDir(dir); err != nil {
		return fmt.Errorf("répertoire de sortie inutilisable : %w", err)
	}
	c.OutputDirectory = dir
	return c.Save()
}
