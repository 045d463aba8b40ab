package lang

import (
	"reflect"
	"testing"
)

func TestBuildChain(t *testing.T) {
	tests := []struct {
		requested string
		want      Chain
	}{
		{"es", Chain{"es", "en"}},
		{"en", Chain{"en", "es"}},
		{"fr", Chain{"fr", "en", "es"}},
		{"ja", Chain{"ja", "en", "es"}},
		{"xx", Chain{"es", "en"}},
		{"auto", Chain{"es", "en"}},
		{"", Chain{"es", "en"}},
	}
	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			got := BuildChain(tt.requested)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildChain(%q) = %v, attendu %v", tt.requested, got, tt.want)
			}
		})
	}
}

func TestChainNoDuplicates(t *testing.T) {
	for _, code := range recognized {
		chain := BuildChain(code)
		seen := make(map[string]bool)
		for _, c := range chain {
			if seen[c] {
				t.Errorf("BuildChain(%q) contient un doublon: %v", code, chain)
			}
			seen[c] = true
		}
		if chain.Target() != code {
			t.Errorf("BuildChain(%q).Target() = %q", code, chain.Target())
		}
	}
}

func TestIsRecognized(t *testing.T) {
	if !IsRecognized("es") || !IsRecognized("ru") {
		t.Error("les codes du catalogue doivent être reconnus")
	}
	if IsRecognized("xx") || IsRecognized("") || IsRecognized("auto") {
		t.Error("les codes hors catalogue ne doivent pas être reconnus")
	}
}
