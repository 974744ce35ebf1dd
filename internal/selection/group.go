package selection

import (
	"slices"

	"scene-designer/internal/model"
	"scene-designer/internal/treepath"
)

// Group is a set of selected objects with its derived common ancestor.
type Group struct {
	objects  []model.ID
	ancestor model.ID
	path     treepath.Path
}

// NewGroup builds a group from ids. Duplicates and None are dropped and the
// objects are kept in document order.
func NewGroup(doc *model.Document, ids ...model.ID) Group {
	seen := make(map[model.ID]bool, len(ids))

	var objects []model.ID

	for _, id := range ids {
		if id == model.None || seen[id] {
			continue
		}

		seen[id] = true
		objects = append(objects, id)
	}

	if len(objects) == 0 {
		return Group{}
	}

	objects = treepath.Sort(doc, objects)

	path := treepath.Of(doc, objects[0])
	for _, id := range objects[1:] {
		path = path.Common(treepath.Of(doc, id))
	}

	return Group{objects: objects, ancestor: path.Leaf(), path: path}
}

// Objects returns the selected objects in document order.
func (g Group) Objects() []model.ID { return slices.Clone(g.objects) }

// Len returns the number of selected objects.
func (g Group) Len() int { return len(g.objects) }

// IsEmpty returns true when nothing is selected.
func (g Group) IsEmpty() bool { return len(g.objects) == 0 }

// Contains returns true when id is selected.
func (g Group) Contains(id model.ID) bool { return slices.Contains(g.objects, id) }

// Single returns the only selected object.
func (g Group) Single() (model.ID, bool) {
	if len(g.objects) != 1 {
		return model.None, false
	}

	return g.objects[0], true
}

// Ancestor returns the deepest object containing every selected object. A
// single selected object is its own ancestor. None when the group is empty
// or spans unrelated trees.
func (g Group) Ancestor() model.ID { return g.ancestor }

// Path returns the path from the root to Ancestor.
func (g Group) Path() treepath.Path { return slices.Clone(g.path) }

// Equal returns true when both groups select the same objects in the same order.
func (g Group) Equal(other Group) bool {
	return slices.Equal(g.objects, other.objects) && g.path.Equal(other.path)
}
