// Package prune decides which properties of an instance become invalid when
// the instance is relocated under a new parent.
//
// Two kinds of properties are candidates: static properties, whose residence
// class names the container kind they constrain (GridPane.rowIndex), and
// catalogue properties flagged with the "context" trim policy (layoutX,
// rotate, scaleX...), which only make sense under an instance parent.
// Candidates are pruned unless the new parent is an instance of exactly
// their residence class. An unknown residence prunes.
//
// A controller attachment is dropped whenever the instance gets a parent,
// since only a root may carry one.
package prune
