// Package live materializes the structural tree of a model.Document into a
// graph of live nodes: resolved references, property values and layout
// bounds in document coordinates.
//
// Derive is a pure function of the document. Bind registers it as a refresh
// hook so the graph is re-derived once at the end of every outer
// transaction, before revision listeners run.
//
// References whose target fx:id cannot be found stay in the tree but
// materialize to nothing; they are reported as warnings with suggestions.
package live
