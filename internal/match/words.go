package match

import (
	"strings"
	"unicode"
)

// words splits an identifier at separators, case changes and digit runs:
// "GridPane.rowIndex" -> [Grid Pane row Index], "XMLLoader2" -> [XML Loader 2].
func words(ident string) []string {
	var (
		out  []string
		word []rune
	)

	flush := func() {
		if len(word) > 0 {
			out = append(out, string(word))
			word = word[:0]
		}
	}

	runes := []rune(ident)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if len(word) > 0 && startsWord(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return out
}

func isSeparator(r rune) bool {
	switch r {
	case '.', '_', '-', '$', ' ':
		return true
	default:
		return false
	}
}

// startsWord reports whether runes[i] opens a new word. i is never zero.
func startsWord(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]

	switch {
	case unicode.IsDigit(r) != unicode.IsDigit(prev):
		return true
	case unicode.IsUpper(r) && !unicode.IsUpper(prev):
		return true
	case unicode.IsUpper(r):
		// Last capital of an acronym followed by a lowercase word.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	default:
		return false
	}
}

// fold lowercases ident and drops its separators, so "ok_button" and
// "okButton" fold to the same key.
func fold(ident string) string {
	return strings.ToLower(strings.Join(words(ident), ""))
}
