// Package treepath provides ordering utilities over the object tree of a
// model.Document.
//
// A Path is the root-to-object sequence of objects (properties are not part
// of a path). Ordering follows document pre-order: an ancestor precedes its
// descendants, and siblings are ordered by their position in the parent's
// child list.
package treepath
