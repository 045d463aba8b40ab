package lang

import (
	"regexp"
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// autoMarkers : motifs (insensibles à la casse) qui signalent un fichier de
// sous-titres généré automatiquement par YouTube.
var autoMarkers = []string{"auto", "generated", "automatic", ".a."}

// surfaceForms associe chaque langue reconnue à ses formes de surface
// observées dans les noms de fichiers yt-dlp : code ISO, nom anglais,
// nom natif, code à 3 lettres.
var surfaceForms = map[string][]string{
	"es": {".es.", ".es-", ".spanish.", ".español.", ".spa."},
	"en": {".en.", ".en-", ".english.", ".eng."},
	"fr": {".fr.", ".fr-", ".french.", ".français.", ".fra."},
	"de": {".de.", ".de-", ".german.", ".deutsch.", ".ger."},
	"it": {".it.", ".it-", ".italian.", ".italiano.", ".ita."},
	"pt": {".pt.", ".pt-", ".portuguese.", ".português.", ".por."},
	"ja": {".ja.", ".ja-", ".japanese.", ".日本語.", ".jpn."},
	"ko": {".ko.", ".ko-", ".korean.", ".한국어.", ".kor."},
	"zh": {".zh.", ".zh-", ".chinese.", ".中文.", ".chi."},
	"ru": {".ru.", ".ru-", ".russian.", ".русский.", ".rus."},
}

// genericLangToken capture un token de 2 lettres borné par des points/tirets,
// dernier recours quand aucune forme de surface ne correspond.
var genericLangToken = regexp.MustCompile(`\.([a-z]{2})[-.]`)

// IsAutoGenerated indique si le nom de fichier porte un marqueur de
// génération automatique.
func IsAutoGenerated(filename string) bool {
	lower := strings.ToLower(filename)
	for _, marker := range autoMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// DetectFromFilename déduit le code langue d'un nom de fichier de sous-titres.
// Ordre de résolution, premier match gagnant :
//  1. motif exact ".{code}." pour chaque code de la chaîne, dans l'ordre ;
//  2. table étendue des formes de surface, dans l'ordre du catalogue ;
//  3. token générique à 2 lettres, accepté seulement s'il est reconnu ;
//  4. sinon "unknown".
//
// Fonction pure : aucun effet de bord.
func DetectFromFilename(filename string, chain Chain) string {
	lower := strings.ToLower(filename)

	// 1) codes de la chaîne, en ordre de priorité
	for _, code := range chain {
		if strings.Contains(lower, "."+code+".") {
			return code
		}
	}

	// 2) formes de surface étendues (ordre stable du catalogue)
	for _, code := range recognized {
		for _, form := range surfaceForms[code] {
			if strings.Contains(lower, form) {
				return code
			}
		}
	}

	// 3) dernier essai : extraire n'importe quel token de 2 lettres
	if m := genericLangToken.FindStringSubmatch(lower); m != nil {
		if _, ok := surfaceForms[m[1]]; ok {
			return m[1]
		}
	}

	return model.LangUnknown
}

// Classify construit la piste classifiée pour un nom de fichier donné.
func Classify(filename string, chain Chain) model.SubtitleTrack {
	return model.SubtitleTrack{
		Filename:      filename,
		Lang:          DetectFromFilename(filename, chain),
		AutoGenerated: IsAutoGenerated(filename),
	}
}

// AvailableLanguages résume les langues couvertes par un ensemble de fichiers
// découverts (première occurrence par langue, comme l'exige le contrat de
// sortie available_languages).
func AvailableLanguages(filenames []string) *model.AvailableLanguages {
	out := &model.AvailableLanguages{
		Languages: make(map[string]model.LanguageInfo),
	}
	for _, f := range filenames {
		code := DetectFromFilename(f, nil)
		if _, seen := out.Languages[code]; seen {
			continue
		}
		out.Languages[code] = model.LanguageInfo{
			LanguageCode:  code,
			Filename:      f,
			AutoGenerated: IsAutoGenerated(f),
			Available:     true,
		}
		out.LanguageCodes = append(out.LanguageCodes, code)
	}
	out.TotalLanguages = len(out.Languages)
	return out
}
