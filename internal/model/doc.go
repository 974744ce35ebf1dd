// Package model holds the structural object model of an edited scene
// document.
//
// Objects live in an arena owned by the Document and are addressed by ID.
// Parent links are IDs, so the tree has no owning back-references and
// cycles are rejected at attach time.
//
// Object variants:
//   - Instance: a class identity plus ordered properties
//   - Collection: an ordered list of items without instance identity
//   - Intrinsic: an include or a reference to another object's fx:id
//   - Property: a literal value or an ordered list of nested objects,
//     optionally attached to a residence class (static property)
//
// Every structural mutation must happen between BeginUpdate and EndUpdate.
// The outermost EndUpdate runs the refresh hooks (materialized graph
// derivation), bumps the revision and notifies subscribers exactly once.
package model
