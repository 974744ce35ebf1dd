package job

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultHistoryLimit is the number of undoable jobs kept by default.
const DefaultHistoryLimit = 100

var (
	// ErrNotExecutable is returned when pushing a job whose precondition fails.
	ErrNotExecutable = errors.New("job is not executable")
	// ErrNothingToUndo is returned by Undo on an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo on an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Manager is the undo/redo history of one document.
type Manager struct {
	undo     []Job
	redo     []Job
	limit    int
	revision uint64
	log      logrus.FieldLogger
	subs     []func(revision uint64)
}

// NewManager creates a history keeping at most limit undoable jobs.
// A limit of zero or less keeps everything.
func NewManager(limit int, log logrus.FieldLogger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Manager{limit: limit, log: log}
}

// Push executes j and records it. Pushing clears the redo stack.
func (m *Manager) Push(j Job) error {
	if !j.IsExecutable() {
		return fmt.Errorf("%s: %w", Describe(j), ErrNotExecutable)
	}

	j.Execute()

	m.undo = append(m.undo, j)
	m.redo = nil

	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}

	m.changed("execute", j)

	return nil
}

// Undo undoes the last executed or redone job.
func (m *Manager) Undo() error {
	if len(m.undo) == 0 {
		return ErrNothingToUndo
	}

	j := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	j.Undo()

	m.redo = append(m.redo, j)
	m.changed("undo", j)

	return nil
}

// Redo redoes the last undone job.
func (m *Manager) Redo() error {
	if len(m.redo) == 0 {
		return ErrNothingToRedo
	}

	j := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	j.Redo()

	m.undo = append(m.undo, j)
	m.changed("redo", j)

	return nil
}

// CanUndo returns true when there is a job to undo.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo returns true when there is a job to redo.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDescription returns the label of the job Undo would revert.
func (m *Manager) UndoDescription() string {
	if len(m.undo) == 0 {
		return ""
	}

	return Describe(m.undo[len(m.undo)-1])
}

// RedoDescription returns the label of the job Redo would re-apply.
func (m *Manager) RedoDescription() string {
	if len(m.redo) == 0 {
		return ""
	}

	return Describe(m.redo[len(m.redo)-1])
}

// History returns the labels of the undoable jobs, oldest first.
func (m *Manager) History() []string {
	out := make([]string, len(m.undo))
	for i, j := range m.undo {
		out[i] = Describe(j)
	}

	return out
}

// Clear forgets the whole history, typically when the document is replaced.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
	m.changed("clear", nil)
}

// Revision is bumped by every history change.
func (m *Manager) Revision() uint64 { return m.revision }

// Subscribe registers fn to be called after every history change.
func (m *Manager) Subscribe(fn func(revision uint64)) {
	m.subs = append(m.subs, fn)
}

func (m *Manager) changed(op string, j Job) {
	m.revision++

	entry := m.log.WithFields(logrus.Fields{
		"op":       op,
		"undo":     len(m.undo),
		"redo":     len(m.redo),
		"revision": m.revision,
	})
	if j != nil {
		entry = entry.WithField("job", Describe(j))
	}

	entry.Debug("history changed")

	for _, fn := range m.subs {
		fn(m.revision)
	}
}
