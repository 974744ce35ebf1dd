// Package selection tracks which objects of a document are selected.
//
// A Group is an immutable snapshot: the selected objects in document order
// and their deepest common ancestor. A Selection holds the current Group,
// replaces it on every change and refreshes it after every document
// revision so that objects removed from the tree drop out of the selection.
package selection
