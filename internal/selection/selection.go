package selection

import (
	"slices"

	"scene-designer/internal/model"
	"scene-designer/internal/treepath"
)

// Selection is the current selection of one document.
type Selection struct {
	doc      *model.Document
	group    Group
	revision uint64

	subs    map[int]func(Group)
	nextSub int
	detach  func()
}

// New creates an empty selection following doc.
func New(doc *model.Document) *Selection {
	s := &Selection{
		doc:  doc,
		subs: make(map[int]func(Group)),
	}

	s.detach = doc.Subscribe(func(uint64) { s.Refresh() })

	return s
}

// Close stops following the document.
func (s *Selection) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}

// Group returns the current group.
func (s *Selection) Group() Group { return s.group }

// Revision counts selection changes.
func (s *Selection) Revision() uint64 { return s.revision }

// Objects returns the selected objects in document order.
func (s *Selection) Objects() []model.ID { return s.group.Objects() }

// IsEmpty returns true when nothing is selected.
func (s *Selection) IsEmpty() bool { return s.group.IsEmpty() }

// Contains returns true when id is selected.
func (s *Selection) Contains(id model.ID) bool { return s.group.Contains(id) }

// CommonAncestor returns the deepest object containing the whole selection.
func (s *Selection) CommonAncestor() model.ID { return s.group.Ancestor() }

// CommonPath returns the path from the root to CommonAncestor.
func (s *Selection) CommonPath() treepath.Path { return s.group.Path() }

// Select replaces the selection with ids. Objects outside the tree are ignored.
func (s *Selection) Select(ids ...model.ID) {
	s.set(s.attached(ids))
}

// Add adds ids to the selection.
func (s *Selection) Add(ids ...model.ID) {
	s.set(s.attached(append(s.group.Objects(), ids...)))
}

// Toggle selects id when it is not selected and deselects it otherwise.
func (s *Selection) Toggle(id model.ID) {
	objects := s.group.Objects()

	if i := slices.Index(objects, id); i >= 0 {
		s.set(slices.Delete(objects, i, i+1))
		return
	}

	s.set(s.attached(append(objects, id)))
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.set(nil)
}

// Refresh drops objects no longer in the tree and recomputes the group
// against the current structure.
func (s *Selection) Refresh() {
	s.set(s.attached(s.group.Objects()))
}

// Subscribe registers fn to be called with the new group after every change.
// The returned function unsubscribes.
func (s *Selection) Subscribe(fn func(Group)) func() {
	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn

	return func() { delete(s.subs, key) }
}

func (s *Selection) attached(ids []model.ID) []model.ID {
	return slices.DeleteFunc(slices.Clone(ids), func(id model.ID) bool {
		return !s.doc.IsAttached(id) || !s.doc.Kind(id).IsObject()
	})
}

func (s *Selection) set(ids []model.ID) {
	group := NewGroup(s.doc, ids...)
	if group.Equal(s.group) {
		return
	}

	s.group = group
	s.revision++

	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		if fn, ok := s.subs[k]; ok {
			fn(group)
		}
	}
}
