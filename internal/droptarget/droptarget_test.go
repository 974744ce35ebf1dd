package droptarget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-designer/internal/catalog"
	"scene-designer/internal/geom"
	"scene-designer/internal/live"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
)

func TestLinear(t *testing.T) {
	three := []geom.Rect{
		geom.NewRect(0, 0, 50, 10),
		geom.NewRect(0, 10, 50, 10),
		geom.NewRect(0, 20, 50, 10),
	}
	row := []geom.Rect{
		geom.NewRect(0, 0, 10, 50),
		geom.NewRect(10, 0, 10, 50),
		geom.NewRect(20, 0, 10, 50),
	}

	tests := []struct {
		name     string
		children []geom.Rect
		axis     geom.Axis
		pointer  geom.Point
		want     int
	}{
		{"between first and second midpoints", three, geom.Vertical, geom.Point{Y: 14}, 1},
		{"before everything", three, geom.Vertical, geom.Point{Y: -3}, 0},
		{"on a midpoint goes before", three, geom.Vertical, geom.Point{Y: 5}, 0},
		{"on the second midpoint", three, geom.Vertical, geom.Point{Y: 15}, 1},
		{"past the last midpoint appends", three, geom.Vertical, geom.Point{Y: 26}, Append},
		{"no children appends", nil, geom.Vertical, geom.Point{Y: 0}, Append},
		{"horizontal axis reads x", row, geom.Horizontal, geom.Point{X: 14, Y: 40}, 1},
		{"horizontal axis appends", row, geom.Horizontal, geom.Point{X: 26, Y: 0}, Append},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Linear(tt.children, tt.axis, tt.pointer))
		})
	}
}

func TestRegion(t *testing.T) {
	bounds := geom.NewRect(0, 0, 100, 100)
	bands := geom.Uniform(20)

	tests := []struct {
		pointer geom.Point
		want    string
	}{
		{geom.Point{X: 50, Y: 50}, live.RegionCenter},
		{geom.Point{X: 5, Y: 50}, live.RegionLeft},
		{geom.Point{X: 95, Y: 50}, live.RegionRight},
		{geom.Point{X: 50, Y: 5}, live.RegionTop},
		{geom.Point{X: 50, Y: 95}, live.RegionBottom},
		{geom.Point{X: 5, Y: 5}, live.RegionTop},
		{geom.Point{X: 500, Y: 500}, live.RegionCenter},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Region(bounds, bands, tt.pointer), "pointer %v", tt.pointer)
	}

	assert.Equal(t, live.RegionCenter, Region(bounds, geom.Insets{}, geom.Point{X: 0, Y: 0}), "no bands")
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "3.children[end]", Target{Container: 3, Accessory: "children", Index: Append}.String())
	assert.Equal(t, "3.top[0]", Target{Container: 3, Accessory: "top"}.String())
	assert.True(t, Target{Index: Append}.IsAppend())
}

type scene struct {
	doc   *model.Document
	masks *mask.Factory
	graph *live.Graph
}

func newScene(t *testing.T, build func(doc *model.Document) model.ID) scene {
	t.Helper()

	doc := model.NewDocument("", catalog.Default())
	doc.Update(func() { doc.SetRoot(build(doc)) })

	masks := mask.NewFactory(catalog.Default())

	return scene{doc: doc, masks: masks, graph: live.Derive(doc, masks)}
}

func (s scene) resolve(id model.ID, p geom.Point) (Target, bool) {
	return NewRegistry(0).Resolve(s.masks.Get(s.doc, id), s.graph, p)
}

func withChildren(doc *model.Document, class, accessory string, kids ...model.ID) model.ID {
	id := doc.NewInstance(class)
	p := doc.NewComplexProperty("", accessory)
	doc.AddProperty(id, p, -1)

	for _, k := range kids {
		doc.AddValue(p, k, -1)
	}

	return id
}

func TestVerticalContainer(t *testing.T) {
	var box model.ID

	s := newScene(t, func(doc *model.Document) model.ID {
		box = withChildren(doc, "VBox", "children", doc.NewInstance("Button"), doc.NewInstance("Label"))
		return box
	})

	// Children span 0..25 and 25..50; midpoints 12.5 and 37.5.
	for y, want := range map[float64]int{5: 0, 12.5: 0, 30: 1, 45: Append} {
		target, ok := s.resolve(box, geom.Point{X: 10, Y: y})
		require.True(t, ok)
		assert.Equal(t, Target{Container: box, Accessory: "children", Index: want}, target, "y=%v", y)
	}
}

func TestHorizontalContainerSkipsUnresolved(t *testing.T) {
	var row model.ID

	s := newScene(t, func(doc *model.Document) model.ID {
		row = withChildren(doc, "HBox", "children",
			doc.NewIntrinsic(model.IntrinsicReference, "missing"),
			doc.NewInstance("Button"),
		)

		return row
	})

	// The unresolved reference has no geometry; the button at index 1 spans 0..100.
	target, ok := s.resolve(row, geom.Point{X: 20, Y: 5})
	require.True(t, ok)
	assert.Equal(t, 1, target.Index)
}

func TestRegionContainer(t *testing.T) {
	var pane model.ID

	s := newScene(t, func(doc *model.Document) model.ID {
		top := doc.NewInstance("Button")
		doc.AddProperty(top, doc.NewLiteralProperty("", "prefHeight", "30"), -1)

		pane = withChildren(doc, "BorderPane", "top", top)
		doc.AddProperty(pane, doc.NewLiteralProperty("", "prefWidth", "200"), -1)
		doc.AddProperty(pane, doc.NewLiteralProperty("", "prefHeight", "200"), -1)

		return pane
	})

	tests := []struct {
		pointer geom.Point
		want    string
	}{
		{geom.Point{X: 100, Y: 25}, "top"},
		{geom.Point{X: 5, Y: 100}, "left"},
		{geom.Point{X: 100, Y: 100}, "center"},
		{geom.Point{X: 195, Y: 100}, "right"},
		{geom.Point{X: 100, Y: 190}, "bottom"},
	}

	for _, tt := range tests {
		target, ok := s.resolve(pane, tt.pointer)
		require.True(t, ok)
		assert.Equal(t, Target{Container: pane, Accessory: tt.want, Index: Append}, target, "pointer %v", tt.pointer)
	}
}

func TestOtherLayouts(t *testing.T) {
	var free, scroll, bag, label model.ID

	s := newScene(t, func(doc *model.Document) model.ID {
		free = doc.NewInstance("Pane")
		scroll = doc.NewInstance("ScrollPane")
		label = doc.NewInstance("Label")
		bag = doc.NewCollection("")

		for _, id := range []model.ID{free, scroll, label} {
			doc.AddItem(bag, id, -1)
		}

		return bag
	})

	target, ok := s.resolve(free, geom.Point{})
	require.True(t, ok)
	assert.Equal(t, Target{Container: free, Accessory: "children", Index: Append}, target)

	target, ok = s.resolve(scroll, geom.Point{})
	require.True(t, ok)
	assert.Equal(t, Target{Container: scroll, Accessory: "content", Index: 0}, target)

	target, ok = s.resolve(bag, geom.Point{Y: 1})
	require.True(t, ok)
	assert.Equal(t, Target{Container: bag, Accessory: mask.ItemsAccessory, Index: 0}, target)

	_, ok = s.resolve(label, geom.Point{})
	assert.False(t, ok, "a label has no main accessory")
}

func TestRegistryAt(t *testing.T) {
	var box, button model.ID

	s := newScene(t, func(doc *model.Document) model.ID {
		button = doc.NewInstance("Button")
		box = withChildren(doc, "VBox", "children", button)

		return box
	})

	r := NewRegistry(0)

	target, ok := r.At(s.doc, s.masks, s.graph, geom.Point{X: 10, Y: 20})
	require.True(t, ok)
	assert.Equal(t, Target{Container: box, Accessory: "children", Index: Append}, target)

	_, ok = r.At(s.doc, s.masks, s.graph, geom.Point{X: 500, Y: 500})
	assert.False(t, ok)
}

func TestRegistryRegister(t *testing.T) {
	var box model.ID

	s := newScene(t, func(doc *model.Document) model.ID {
		box = withChildren(doc, "VBox", "children", doc.NewInstance("Button"))
		return box
	})

	r := NewRegistry(0)
	r.Register(catalog.LayoutVertical, AppendResolver)

	target, ok := r.Resolve(s.masks.Get(s.doc, box), s.graph, geom.Point{})
	require.True(t, ok)
	assert.True(t, target.IsAppend())
}
