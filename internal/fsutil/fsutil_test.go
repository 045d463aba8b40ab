package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "sub", "out.txt")

	if err := WriteFileAtomic(dest, []byte("contenu"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "contenu" {
		t.Errorf("contenu = %q", data)
	}

	// réécriture : remplacement propre, pas de fichier temporaire résiduel
	if err := WriteFileAtomic(dest, []byte("autre"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic (réécriture): %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(dest))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("fichier temporaire résiduel : %s", e.Name())
		}
	}
}

func TestEnsureWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nouveau")
	if err := EnsureWritableDir(dir); err != nil {
		t.Fatalf("EnsureWritableDir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("le répertoire doit exister : %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".write_test")); !os.IsNotExist(err) {
		t.Error("le fichier témoin doit être supprimé")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"caractères interdits", `a<b>c:d"e/f\g|h?i*j`, 0, "a_b_c_d_e_f_g_h_i_j"},
		{"caractères de contrôle", "a\x00b\x1fc", 0, "a_b_c"},
		{"troncature", "abcdefghij", 5, "abcde"},
		{"points terminaux", "titre...", 0, "titre"},
		{"espaces terminaux après troncature", "abc def", 4, "abc"},
		{"vide", "", 0, "untitled"},
		{"que des espaces et des points", " .. ", 0, "untitled"},
		{"titre normal", "Mi Video Favorito", 0, "Mi Video Favorito"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("SanitizeFilename(%q, %d) = %q, attendu %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}
