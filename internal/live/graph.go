package live

import (
	"slices"

	"scene-designer/internal/diagnostic"
	"scene-designer/internal/geom"
	"scene-designer/internal/model"
)

// Property is the materialized value of one instance property.
type Property struct {
	// Name is the qualified property name.
	Name    string
	Complex bool
	Literal string
	// Values are the objects of a complex property, in order. Unresolved
	// references are kept here so the graph re-exports losslessly.
	Values []model.ID
}

// Node is the materialized form of one object.
type Node struct {
	ID   model.ID
	Kind model.Kind

	// Class is the instance class, or the item type of a collection.
	Class      string
	FxID       string
	Controller string
	Properties []Property
	// Items are the collection items, unresolved references included.
	Items []model.ID

	// Intrinsic, Source and Target describe includes and references.
	// Target is None for includes and unresolved references.
	Intrinsic model.IntrinsicType
	Source    string
	Target    model.ID

	// Children are the materialized child nodes in document order.
	Children []model.ID
	Bounds   geom.Rect
}

// IsResolved returns false for references whose target is missing.
func (n *Node) IsResolved() bool {
	return n.Kind != model.KindIntrinsic || n.Intrinsic != model.IntrinsicReference || n.Target != model.None
}

// Property returns the materialized property with the given qualified name.
func (n *Node) Property(name string) (Property, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return Property{}, false
}

// Graph is the materialized object graph of a document at one revision.
type Graph struct {
	revision uint64
	root     model.ID
	nodes    map[model.ID]*Node
	order    []model.ID
	diags    diagnostic.Diagnostics
}

// Revision returns the document revision the graph was derived for.
func (g *Graph) Revision() uint64 { return g.revision }

// Root returns the root node id, or None for an empty document.
func (g *Graph) Root() model.ID { return g.root }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// IDs returns the node ids in document pre-order.
func (g *Graph) IDs() []model.ID { return slices.Clone(g.order) }

// Node returns the node materialized for id.
func (g *Graph) Node(id model.ID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Bounds returns the bounds of id, or an empty rectangle when id has no node.
func (g *Graph) Bounds(id model.ID) geom.Rect {
	if n, ok := g.nodes[id]; ok {
		return n.Bounds
	}

	return geom.Rect{}
}

// Resolve returns the object a reference points at, id itself for any
// other materialized object, and None for unresolved references.
func (g *Graph) Resolve(id model.ID) model.ID {
	n, ok := g.nodes[id]
	if !ok {
		return model.None
	}

	if n.Kind == model.KindIntrinsic && n.Intrinsic == model.IntrinsicReference {
		return n.Target
	}

	return id
}

// Diagnostics returns the non-fatal problems found while materializing.
func (g *Graph) Diagnostics() diagnostic.Diagnostics { return g.diags }

// Hit returns the deepest instance or collection whose bounds contain p.
// Later siblings are painted on top and win ties.
func (g *Graph) Hit(p geom.Point) model.ID {
	return g.hit(g.root, p)
}

func (g *Graph) hit(id model.ID, p geom.Point) model.ID {
	n, ok := g.nodes[id]
	if !ok || n.Kind == model.KindIntrinsic || !n.Bounds.Contains(p) {
		return model.None
	}

	for i := len(n.Children) - 1; i >= 0; i-- {
		if found := g.hit(n.Children[i], p); found != model.None {
			return found
		}
	}

	return id
}
