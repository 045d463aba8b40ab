package yt

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/pas-une-video", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.ok && err != nil {
				t.Fatalf("ExtractVideoID(%q): %v", tt.url, err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("ExtractVideoID(%q): erreur attendue, obtenu %q", tt.url, got)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, attendu %q", tt.url, got, tt.want)
			}
		})
	}
}
