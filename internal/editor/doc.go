// Package editor ties the editing core together for one open document.
//
// An Editor owns the current document, its materialized graph binding, its
// undo history and its selection. Replacing the document (New, Open)
// rebuilds all of them and notifies OnDocumentReplaced listeners; every
// completed transaction notifies OnRevision listeners with the new scene
// graph revision.
package editor
