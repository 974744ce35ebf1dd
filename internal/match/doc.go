// Package match ranks identifiers found in scene documents (fx:ids, class
// names, qualified property names) against a typo and turns property names
// into display labels.
//
// Key functions:
//   - Distance and Similarity: rune edit distance and its [0, 1] form
//   - Score: similarity aware of residence classes and reordered words
//   - Suggest: ranks known names close to an unknown one
//   - DisplayName: turns "prefWidth" into "Pref Width"
package match
