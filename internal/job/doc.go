// Package job implements reversible edits of a model.Document.
//
// A Job carries the parameters of one edit and whatever it captures while
// executing so that it can be undone. Its lifecycle is strict:
//
//	constructed -> executed -> undone -> redone -> undone -> ...
//
// Calling Execute twice, Undo before Execute or Redo without Undo panics.
// Redo re-applies captured parameters and never recomputes them.
//
// Primitive jobs (SetRoot, AddProperty, AddValue, Detach...) wrap one model
// mutation. Compound edits are Batch jobs whose sub-jobs are computed lazily
// on first execution, so each step sees the tree left by the previous one.
// A Batch has no rollback: a sub-job panicking leaves earlier sub-jobs
// applied.
//
// Manager keeps the undo/redo history and Factory builds jobs by kind name.
package job
