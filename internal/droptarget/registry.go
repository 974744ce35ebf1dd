package droptarget

import (
	"scene-designer/internal/catalog"
	"scene-designer/internal/geom"
	"scene-designer/internal/live"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
)

// DefaultBand is the edge band thickness of an empty region.
const DefaultBand = 20.0

// Resolver finds the drop target of pointer inside the container described by m.
type Resolver interface {
	Resolve(m *mask.Mask, g *live.Graph, pointer geom.Point) (Target, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(m *mask.Mask, g *live.Graph, pointer geom.Point) (Target, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(m *mask.Mask, g *live.Graph, pointer geom.Point) (Target, bool) {
	return f(m, g, pointer)
}

// LinearResolver targets the main accessory of a list layout.
type LinearResolver struct {
	Axis geom.Axis
}

// Resolve walks the child midpoints of the main accessory.
func (r LinearResolver) Resolve(m *mask.Mask, g *live.Graph, pointer geom.Point) (Target, bool) {
	main, ok := m.MainAccessory()
	if !ok {
		return Target{}, false
	}

	var (
		rects   []geom.Rect
		indices []int
	)

	for i, c := range m.Children(main) {
		if n, ok := g.Node(c); ok && n.IsResolved() {
			rects = append(rects, n.Bounds)
			indices = append(indices, i)
		}
	}

	index := Linear(rects, r.Axis, pointer)
	if index != Append {
		index = indices[index]
	}

	return Target{Container: m.ID(), Accessory: main.Name, Index: index}, true
}

// RegionResolver targets the region accessory under the pointer. An edge
// band is as thick as the child occupying it, or Band when it is empty.
type RegionResolver struct {
	Band float64
}

// Resolve picks the region holding the pointer.
func (r RegionResolver) Resolve(m *mask.Mask, g *live.Graph, pointer geom.Point) (Target, bool) {
	regions := make(map[string]catalog.Accessory)

	for _, acc := range m.Accessories() {
		if acc.Region != "" {
			regions[acc.Region] = acc
		}
	}

	if len(regions) == 0 {
		return Target{}, false
	}

	thickness := func(region string, axis geom.Axis) float64 {
		if acc, ok := regions[region]; ok {
			if c := m.Child(acc, 0); c != model.None {
				if b := g.Bounds(c); !b.IsEmpty() {
					return b.Extent(axis)
				}
			}
		}

		return r.Band
	}

	bands := geom.Insets{
		Top:    thickness(live.RegionTop, geom.Vertical),
		Bottom: thickness(live.RegionBottom, geom.Vertical),
		Left:   thickness(live.RegionLeft, geom.Horizontal),
		Right:  thickness(live.RegionRight, geom.Horizontal),
	}

	acc, ok := regions[Region(g.Bounds(m.ID()), bands, pointer)]
	if !ok {
		acc, ok = regions[live.RegionCenter]
	}

	if !ok {
		return Target{}, false
	}

	return Target{Container: m.ID(), Accessory: acc.Name, Index: Append}, true
}

// AppendResolver appends to the main accessory, for free positioning and
// for layouts without a placement rule.
var AppendResolver = ResolverFunc(func(m *mask.Mask, _ *live.Graph, _ geom.Point) (Target, bool) {
	main, ok := m.MainAccessory()
	if !ok {
		return Target{}, false
	}

	return Target{Container: m.ID(), Accessory: main.Name, Index: Append}, true
})

// SingleResolver targets the one slot of a single-content container.
var SingleResolver = ResolverFunc(func(m *mask.Mask, _ *live.Graph, _ geom.Point) (Target, bool) {
	main, ok := m.MainAccessory()
	if !ok {
		return Target{}, false
	}

	return Target{Container: m.ID(), Accessory: main.Name, Index: 0}, true
})

// Registry maps layouts to resolvers.
type Registry struct {
	table      map[catalog.Layout]Resolver
	collection Resolver
	fallback   Resolver
}

// NewRegistry creates a registry with the built-in resolvers. band is the
// thickness of empty region bands; zero or less means DefaultBand.
func NewRegistry(band float64) *Registry {
	if band <= 0 {
		band = DefaultBand
	}

	return &Registry{
		table: map[catalog.Layout]Resolver{
			catalog.LayoutVertical:   LinearResolver{Axis: geom.Vertical},
			catalog.LayoutHorizontal: LinearResolver{Axis: geom.Horizontal},
			catalog.LayoutRegion:     RegionResolver{Band: band},
			catalog.LayoutFree:       AppendResolver,
			catalog.LayoutSingle:     SingleResolver,
			catalog.LayoutNone:       AppendResolver,
		},
		collection: LinearResolver{Axis: geom.Vertical},
		fallback:   AppendResolver,
	}
}

// Register replaces the resolver of layout.
func (r *Registry) Register(layout catalog.Layout, res Resolver) {
	r.table[layout] = res
}

// Resolve resolves pointer inside the container described by m. It
// returns false when the object has no accessory a drop could target.
func (r *Registry) Resolve(m *mask.Mask, g *live.Graph, pointer geom.Point) (Target, bool) {
	if !m.IsContainer() {
		return Target{}, false
	}

	res := r.fallback

	switch {
	case m.IsCollection():
		res = r.collection
	default:
		if found, ok := r.table[m.Layout()]; ok {
			res = found
		}
	}

	return res.Resolve(m, g, pointer)
}

// At resolves a drop at pointer anywhere in the document: the deepest
// container under the pointer that can take a drop wins.
func (r *Registry) At(doc *model.Document, masks *mask.Factory, g *live.Graph, pointer geom.Point) (Target, bool) {
	for id := g.Hit(pointer); id != model.None; id = doc.ParentObject(id) {
		if t, ok := r.Resolve(masks.Get(doc, id), g, pointer); ok {
			return t, true
		}
	}

	return Target{}, false
}
