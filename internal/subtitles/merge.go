package subtitles

import (
	"strings"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/pkg/model"
)

// Fenêtres temporelles et seuils de la fusion. En secondes pour les deux
// premières, en nombre de mots pour les suivantes.
const (
	directWindow     = 3 // continuation par préfixe
	fuzzyWindow      = 5 // continuation par chevauchement de mots
	overlapProbe     = 3 // mots comparés de part et d'autre de la jonction
	overlapThreshold = 2 // mots communs requis pour fusionner
	dedupTail        = 5 // fenêtre d'exclusion lors de l'ajout de mots
)

// MergeSegments élimine les redondances entre segments consécutifs, héritage
// du défilement des captions auto-générées. Cascade de règles entre le
// dernier segment retenu et le segment courant, première règle applicable :
//
//	a. textes identiques : courant absorbé ;
//	b. l'un contient l'autre : on garde le plus long ;
//	c. le courant prolonge le retenu (préfixe) à <= 3 s : remplacement ;
//	d. le retenu prolonge le courant (préfixe) à <= 3 s : courant absorbé ;
//	e. chevauchement d'au moins 2 mots entre la fin de l'un et le début de
//	   l'autre à <= 5 s : concaténation mot à mot sans doublon ;
//	f. sinon : le courant devient un nouveau segment retenu.
//
// Le timestamp d'un segment fusionné reste celui du segment retenu. Les cas
// de chevauchement sont toujours résolus, jamais dupliqués.
func MergeSegments(segments []model.Segment) []model.Segment {
	if len(segments) == 0 {
		return nil
	}

	kept := make([]model.Segment, 0, len(segments))
	kept = append(kept, segments[0])

	for _, seg := range segments[1:] {
		last := &kept[len(kept)-1]
		gap := last.Seconds.AbsDiff(seg.Seconds)

		switch {
		case seg.Text == last.Text:
			// a. doublon exact

		case strings.Contains(last.Text, seg.Text) || strings.Contains(seg.Text, last.Text):
			// b. inclusion : le plus long gagne
			if len(seg.Text) > len(last.Text) {
				last.Text = seg.Text
			}

		case strings.HasPrefix(seg.Text, last.Text) && gap <= directWindow:
			// c. continuation directe vers l'avant
			last.Text = seg.Text

		case strings.HasPrefix(last.Text, seg.Text) && gap <= directWindow:
			// d. continuation directe vers l'arrière : rien à ajouter

		case gap <= fuzzyWindow && junctionOverlap(last.Text, seg.Text) >= overlapThreshold:
			// e. chevauchement flou : on recolle sans dupliquer
			last.Text = appendWithoutDuplicates(last.Text, seg.Text)

		default:
			// f. segment réellement nouveau
			kept = append(kept, seg)
		}
	}

	return kept
}

// junctionOverlap compte les mots communs entre la fin de prev et le début
// de next, sur une fenêtre de overlapProbe mots de chaque côté.
func junctionOverlap(prev, next string) int {
	prevWords := strings.Fields(prev)
	nextWords := strings.Fields(next)
	if len(prevWords) < overlapThreshold || len(nextWords) < overlapThreshold {
		return 0
	}

	tail := prevWords
	if len(tail) > overlapProbe {
		tail = tail[len(tail)-overlapProbe:]
	}
	head := nextWords
	if len(head) > overlapProbe {
		head = head[:overlapProbe]
	}

	count := 0
	for _, w := range head {
		for _, t := range tail {
			if w == t {
				count++
				break
			}
		}
	}
	return count
}

// appendWithoutDuplicates ajoute à base les mots de extra absents des
// dedupTail derniers mots courants. La fenêtre glisse au fil des ajouts,
// ce qui absorbe les répétitions immédiates de la jonction sans toucher
// au reste du texte.
func appendWithoutDuplicates(base, extra string) string {
	combined := base
	for _, word := range strings.Fields(extra) {
		tail := strings.Fields(combined)
		if len(tail) > dedupTail {
			tail = tail[len(tail)-dedupTail:]
		}
		dup := false
		for _, t := range tail {
			if t == word {
				dup = true
				break
			}
		}
		if !dup {
			combined += " " + word
		}
	}
	return strings.TrimSpace(combined)
}
