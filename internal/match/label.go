package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a property or class identifier into a label:
// "prefWidth" -> "Pref Width", "GridPane.rowIndex" -> "Grid Pane Row Index".
func DisplayName(ident string) string {
	// A Caser keeps state between calls, so each label gets its own.
	titler := cases.Title(language.English)

	var out []string

	for _, w := range words(ident) {
		out = append(out, titler.String(w))
	}

	return strings.Join(out, " ")
}
