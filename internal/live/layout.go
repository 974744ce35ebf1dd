package live

import (
	"strconv"
	"strings"

	"scene-designer/internal/catalog"
	"scene-designer/internal/geom"
	"scene-designer/internal/model"
)

// Size of an instance without children and without a preferred size.
const (
	LeafWidth  = 100.0
	LeafHeight = 25.0
)

// Region names used by region layouts.
const (
	RegionTop    = "top"
	RegionBottom = "bottom"
	RegionLeft   = "left"
	RegionRight  = "right"
	RegionCenter = "center"
)

type size struct {
	w, h float64
}

type slots struct {
	layout  catalog.Layout
	flow    []model.ID
	regions map[string]model.ID
}

func (d *deriver) layout(root model.ID) {
	d.sizes = make(map[model.ID]size)
	d.place(root, geom.Point{})
}

// slotsOf splits the children of id into the ones its layout arranges.
// Children outside the arrangement (tooltips, graphics) sit at the origin.
func (d *deriver) slotsOf(id model.ID) slots {
	m := d.masks.Get(d.doc, id)

	s := slots{layout: m.Layout()}
	if m.IsCollection() {
		s.layout = catalog.LayoutVertical
	}

	if s.layout == catalog.LayoutRegion {
		s.regions = make(map[string]model.ID)

		for _, acc := range m.Accessories() {
			if acc.Region == "" {
				continue
			}

			for _, c := range m.Children(acc) {
				if d.materialized(c) {
					s.regions[acc.Region] = c
					break
				}
			}
		}

		return s
	}

	if main, ok := m.MainAccessory(); ok {
		for _, c := range m.Children(main) {
			if d.materialized(c) {
				s.flow = append(s.flow, c)
			}
		}
	}

	return s
}

func (d *deriver) materialized(id model.ID) bool {
	n, ok := d.graph.nodes[id]
	return ok && n.IsResolved()
}

func (d *deriver) measure(id model.ID) size {
	if s, ok := d.sizes[id]; ok {
		return s
	}

	n := d.graph.nodes[id]
	if n.Kind == model.KindIntrinsic {
		d.sizes[id] = size{}
		return size{}
	}

	for _, c := range n.Children {
		d.measure(c)
	}

	s := d.contentSize(id, d.slotsOf(id))

	if n.Kind == model.KindInstance {
		if w, ok := d.number(id, "prefWidth"); ok {
			s.w = w
		}

		if h, ok := d.number(id, "prefHeight"); ok {
			s.h = h
		}
	}

	d.sizes[id] = s

	return s
}

func (d *deriver) contentSize(id model.ID, s slots) size {
	if len(s.flow) == 0 && len(s.regions) == 0 {
		return size{w: LeafWidth, h: LeafHeight}
	}

	var out size

	switch s.layout {
	case catalog.LayoutVertical, catalog.LayoutHorizontal:
		spacing, _ := d.number(id, "spacing")

		for i, c := range s.flow {
			cs := d.measure(c)
			gap := spacing
			if i == 0 {
				gap = 0
			}

			if s.layout == catalog.LayoutVertical {
				out.w = max(out.w, cs.w)
				out.h += cs.h + gap
			} else {
				out.w += cs.w + gap
				out.h = max(out.h, cs.h)
			}
		}
	case catalog.LayoutFree:
		for _, c := range s.flow {
			cs := d.measure(c)
			x, _ := d.number(c, "layoutX")
			y, _ := d.number(c, "layoutY")
			out.w = max(out.w, x+cs.w)
			out.h = max(out.h, y+cs.h)
		}
	case catalog.LayoutRegion:
		top := d.regionSize(s, RegionTop)
		bottom := d.regionSize(s, RegionBottom)
		left := d.regionSize(s, RegionLeft)
		right := d.regionSize(s, RegionRight)
		center := d.regionSize(s, RegionCenter)

		out.w = max(top.w, bottom.w, left.w+center.w+right.w)
		out.h = top.h + bottom.h + max(left.h, center.h, right.h)
	default:
		for _, c := range s.flow {
			cs := d.measure(c)
			out.w = max(out.w, cs.w)
			out.h = max(out.h, cs.h)
		}
	}

	return out
}

func (d *deriver) regionSize(s slots, region string) size {
	if c, ok := s.regions[region]; ok {
		return d.measure(c)
	}

	return size{}
}

func (d *deriver) place(id model.ID, origin geom.Point) {
	n := d.graph.nodes[id]
	own := d.measure(id)
	n.Bounds = geom.NewRect(origin.X, origin.Y, own.w, own.h)

	s := d.slotsOf(id)
	placed := make(map[model.ID]bool, len(n.Children))

	at := func(c model.ID, x, y float64) {
		d.place(c, geom.Point{X: x, Y: y})
		placed[c] = true
	}

	switch s.layout {
	case catalog.LayoutVertical, catalog.LayoutHorizontal:
		spacing, _ := d.number(id, "spacing")
		cursor := origin

		for _, c := range s.flow {
			at(c, cursor.X, cursor.Y)

			cs := d.measure(c)
			if s.layout == catalog.LayoutVertical {
				cursor.Y += cs.h + spacing
			} else {
				cursor.X += cs.w + spacing
			}
		}
	case catalog.LayoutFree:
		for _, c := range s.flow {
			x, _ := d.number(c, "layoutX")
			y, _ := d.number(c, "layoutY")
			at(c, origin.X+x, origin.Y+y)
		}
	case catalog.LayoutRegion:
		top := d.regionSize(s, RegionTop)
		left := d.regionSize(s, RegionLeft)

		for region, c := range s.regions {
			cs := d.measure(c)

			switch region {
			case RegionTop:
				at(c, origin.X, origin.Y)
			case RegionBottom:
				at(c, origin.X, origin.Y+own.h-cs.h)
			case RegionLeft:
				at(c, origin.X, origin.Y+top.h)
			case RegionRight:
				at(c, origin.X+own.w-cs.w, origin.Y+top.h)
			default:
				at(c, origin.X+left.w, origin.Y+top.h)
			}
		}
	default:
		for _, c := range s.flow {
			at(c, origin.X, origin.Y)
		}
	}

	for _, c := range n.Children {
		if !placed[c] {
			d.place(c, origin)
		}
	}
}

// number reads a numeric literal property of an instance.
func (d *deriver) number(id model.ID, name string) (float64, bool) {
	pid := d.doc.Property(id, name)
	if pid == model.None {
		return 0, false
	}

	p := d.doc.Object(pid)
	if p.IsComplex() {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(p.Literal()), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
