package treepath

import (
	"slices"
	"sort"
	"strings"

	"scene-designer/internal/model"
)

// Path is a root-to-object sequence of object IDs.
type Path []model.ID

// Of returns the path from the top of id's tree down to id. For a detached
// object the path starts at the top of its detached subtree.
func Of(doc *model.Document, id model.ID) Path {
	if id == model.None {
		return nil
	}

	var p Path
	for cur := id; cur != model.None; cur = doc.ParentObject(cur) {
		p = append(p, cur)
	}

	slices.Reverse(p)

	return p
}

// Leaf returns the last object of the path, or None when empty.
func (p Path) Leaf() model.ID {
	if len(p) == 0 {
		return model.None
	}

	return p[len(p)-1]
}

// Root returns the first object of the path, or None when empty.
func (p Path) Root() model.ID {
	if len(p) == 0 {
		return model.None
	}

	return p[0]
}

// Format renders the path as "VBox#box/Button#ok" for logs and diagnostics.
func (p Path) Format(doc *model.Document) string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = doc.Describe(id)
	}

	return strings.Join(parts, "/")
}

// Equal returns true when both paths hold the same objects.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// IsPrefixOf returns true when p is a (possibly equal) prefix of other.
func (p Path) IsPrefixOf(other Path) bool {
	return len(p) <= len(other) && slices.Equal(p, other[:len(p)])
}

// Common returns the longest shared prefix of p and other.
func (p Path) Common(other Path) Path {
	n := min(len(p), len(other))

	i := 0
	for i < n && p[i] == other[i] {
		i++
	}

	return slices.Clone(p[:i])
}

// CommonPath returns the longest shared prefix of the paths of a and b.
func CommonPath(doc *model.Document, a, b model.ID) Path {
	return Of(doc, a).Common(Of(doc, b))
}

// CommonAncestor returns the deepest object whose subtree contains all ids,
// or None when ids is empty or spans several trees.
func CommonAncestor(doc *model.Document, ids ...model.ID) model.ID {
	if len(ids) == 0 {
		return model.None
	}

	common := Of(doc, ids[0])
	for _, id := range ids[1:] {
		common = common.Common(Of(doc, id))
	}

	return common.Leaf()
}

// IsBefore returns true when a comes strictly before b in document order.
// Objects of different trees are unordered.
func IsBefore(doc *model.Document, a, b model.ID) bool {
	return compare(doc, Of(doc, a), Of(doc, b)) < 0
}

// IsAfter returns true when a comes strictly after b in document order.
func IsAfter(doc *model.Document, a, b model.ID) bool {
	return compare(doc, Of(doc, a), Of(doc, b)) > 0
}

// compare orders two paths: negative when pa precedes pb, positive when it
// follows, zero when equal or unrelated.
func compare(doc *model.Document, pa, pb Path) int {
	common := pa.Common(pb)

	switch {
	case len(common) == 0:
		return 0
	case len(pa) == len(common) && len(pb) == len(common):
		return 0
	case len(pa) == len(common):
		// a is an ancestor of b
		return -1
	case len(pb) == len(common):
		return 1
	}

	ancestor := common.Leaf()
	ia := doc.ChildIndex(ancestor, pa[len(common)])
	ib := doc.ChildIndex(ancestor, pb[len(common)])

	return ia - ib
}

// Top returns the earliest object of ids in document order, or None.
func Top(doc *model.Document, ids ...model.ID) model.ID {
	best := model.None

	for _, id := range ids {
		if best == model.None || IsBefore(doc, id, best) {
			best = id
		}
	}

	return best
}

// Bottom returns the latest object of ids in document order, or None.
func Bottom(doc *model.Document, ids ...model.ID) model.ID {
	best := model.None

	for _, id := range ids {
		if best == model.None || IsAfter(doc, id, best) {
			best = id
		}
	}

	return best
}

// Sort returns ids in document order. The sort is stable: objects that are
// unordered with respect to each other keep their relative input order.
func Sort(doc *model.Document, ids []model.ID) []model.ID {
	paths := make(map[model.ID]Path, len(ids))
	for _, id := range ids {
		paths[id] = Of(doc, id)
	}

	out := slices.Clone(ids)
	sort.SliceStable(out, func(i, j int) bool {
		return compare(doc, paths[out[i]], paths[out[j]]) < 0
	})

	return out
}
