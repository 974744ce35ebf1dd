package match

import (
	"slices"
	"strings"
)

const (
	// residencePenalty is subtracted when two static property names live on
	// different classes.
	residencePenalty = 0.1
	// reorderWeight caps the score of names made of the same words in
	// another order, so a spelling match still ranks first.
	reorderWeight = 0.95
)

// Score rates how close candidate is to name, from 0 to 1.
//
// Names are compared on their simple part: "GridPane.rowIndex" is scored as
// "rowIndex", and a package-qualified class as its last segment. The
// residence only matters when both names carry one and they differ. An fx:id
// built from the same words in another order ("buttonOk", "okButton") scores
// close to an exact match.
func Score(name, candidate string) float64 {
	nameRes, nameSimple := split(name)
	candRes, candSimple := split(candidate)

	s := max(Similarity(fold(nameSimple), fold(candSimple)), reorderWeight*overlap(nameSimple, candSimple))

	if nameRes != "" && candRes != "" && !strings.EqualFold(nameRes, candRes) {
		s -= residencePenalty
	}

	return max(s, 0)
}

// split returns the residence and simple name of a qualified name. For
// "javafx.scene.layout.GridPane.rowIndex" it is ("GridPane", "rowIndex").
func split(qualified string) (residence, simple string) {
	i := strings.LastIndexByte(qualified, '.')
	if i < 0 {
		return "", qualified
	}

	prefix := qualified[:i]

	return prefix[strings.LastIndexByte(prefix, '.')+1:], qualified[i+1:]
}

// overlap is the Dice coefficient of the lowercase word sets of a and b.
func overlap(a, b string) float64 {
	wa, wb := lowerWords(a), lowerWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	common := 0

	for _, w := range wa {
		if slices.Contains(wb, w) {
			common++
		}
	}

	return 2 * float64(common) / float64(len(wa)+len(wb))
}

func lowerWords(ident string) []string {
	ws := words(ident)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}

	slices.Sort(ws)

	return slices.Compact(ws)
}
