package job

import (
	"fmt"
	"slices"

	"scene-designer/internal/catalog"
	"scene-designer/internal/common"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
)

// GenericDescription labels jobs whose description cannot be produced.
const GenericDescription = "Edit"

// Job is a reversible edit.
type Job interface {
	// IsExecutable is a pure precondition check. Jobs that are not
	// executable must not be executed.
	IsExecutable() bool
	Execute()
	Undo()
	Redo()
	Description() string
}

// Env is what jobs need to reach: the document and its hierarchy masks.
type Env struct {
	Doc   *model.Document
	Masks *mask.Factory
}

// Catalog returns the catalogue behind the masks.
func (e Env) Catalog() *catalog.Catalog {
	return e.Masks.Catalog()
}

// Describe returns j's description, or GenericDescription when producing
// it fails.
func Describe(j Job) (s string) {
	defer func() {
		if recover() != nil {
			s = GenericDescription
		}
	}()

	s = j.Description()
	if s == "" {
		s = GenericDescription
	}

	return s
}

type state int

const (
	constructed state = iota
	executed
	undone
	redone
)

// String returns a human-readable lifecycle state name.
func (s state) String() string {
	switch s {
	case constructed:
		return "constructed"
	case executed:
		return "executed"
	case undone:
		return "undone"
	case redone:
		return "redone"
	default:
		return common.UnknownStr
	}
}

// lifecycle enforces the execute/undo/redo order.
type lifecycle struct {
	state state
}

func (l *lifecycle) toExecuted() {
	if l.state != constructed {
		panic(fmt.Sprintf("Execute called on an already %v job", l.state))
	}

	l.state = executed
}

func (l *lifecycle) toUndone() {
	if l.state != executed && l.state != redone {
		panic(fmt.Sprintf("Undo called on a %v job", l.state))
	}

	l.state = undone
}

func (l *lifecycle) toRedone() {
	if l.state != undone {
		panic(fmt.Sprintf("Redo called on a %v job", l.state))
	}

	l.state = redone
}

// Batch runs an ordered list of sub-jobs as one edit. Execute and Redo run
// them forward, Undo in reverse.
type Batch struct {
	lifecycle

	doc         *model.Document
	describe    func() string
	executable  func() bool
	makeSubJobs func() []Job
	subJobs     []Job
}

// NewBatch creates a batch over fixed sub-jobs.
func NewBatch(doc *model.Document, description string, jobs ...Job) *Batch {
	return &Batch{
		doc:      doc,
		describe: func() string { return description },
		executable: func() bool {
			for _, j := range jobs {
				if !j.IsExecutable() {
					return false
				}
			}

			return true
		},
		makeSubJobs: func() []Job { return jobs },
	}
}

// IsExecutable checks the batch precondition.
func (b *Batch) IsExecutable() bool {
	return b.executable == nil || b.executable()
}

// Execute computes the sub-jobs and executes them in order.
func (b *Batch) Execute() {
	b.toExecuted()

	b.doc.Update(func() {
		b.subJobs = b.makeSubJobs()
		for _, j := range b.subJobs {
			j.Execute()
		}
	})
}

// Undo undoes the sub-jobs in reverse order.
func (b *Batch) Undo() {
	b.toUndone()

	b.doc.Update(func() {
		for i := len(b.subJobs) - 1; i >= 0; i-- {
			b.subJobs[i].Undo()
		}
	})
}

// Redo redoes the sub-jobs in order.
func (b *Batch) Redo() {
	b.toRedone()

	b.doc.Update(func() {
		for _, j := range b.subJobs {
			j.Redo()
		}
	})
}

// Description returns the batch label.
func (b *Batch) Description() string {
	if b.describe == nil {
		return GenericDescription
	}

	return b.describe()
}

// SubJobs returns the sub-jobs computed by the first execution.
func (b *Batch) SubJobs() []Job {
	return slices.Clone(b.subJobs)
}
