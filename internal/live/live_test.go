package live

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-designer/internal/catalog"
	"scene-designer/internal/geom"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
)

type fixture struct {
	doc                 *model.Document
	box, ok, label      model.ID
	reference, dangling model.ID
}

// newFixture builds
//
//	VBox#box spacing=10
//	  children: Button#okButton prefWidth=80, Label, ref(okButton), ref(okButon)
func newFixture(t *testing.T) fixture {
	t.Helper()

	doc := model.NewDocument("", catalog.Default())
	f := fixture{
		doc:       doc,
		box:       doc.NewInstance("VBox"),
		ok:        doc.NewInstance("Button"),
		label:     doc.NewInstance("Label"),
		reference: doc.NewIntrinsic(model.IntrinsicReference, "okButton"),
		dangling:  doc.NewIntrinsic(model.IntrinsicReference, "okButon"),
	}

	doc.Update(func() {
		doc.SetRoot(f.box)
		doc.SetFxID(f.box, "box")
		doc.SetFxID(f.ok, "okButton")
		doc.AddProperty(f.box, doc.NewLiteralProperty("", "spacing", "10"), -1)
		doc.AddProperty(f.ok, doc.NewLiteralProperty("", "prefWidth", "80"), -1)

		children := doc.NewComplexProperty("", "children")
		doc.AddProperty(f.box, children, -1)

		for _, c := range []model.ID{f.ok, f.label, f.reference, f.dangling} {
			doc.AddValue(children, c, -1)
		}
	})

	return f
}

func masks() *mask.Factory {
	return mask.NewFactory(catalog.Default())
}

func TestDeriveNodes(t *testing.T) {
	f := newFixture(t)
	g := Derive(f.doc, masks())

	assert.Equal(t, f.box, g.Root())
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, []model.ID{f.box, f.ok, f.label, f.reference, f.dangling}, g.IDs())
	assert.Equal(t, f.doc.Revision(), g.Revision())

	box, ok := g.Node(f.box)
	require.True(t, ok)
	assert.Equal(t, "VBox", box.Class)
	assert.Equal(t, "box", box.FxID)
	assert.Equal(t, []model.ID{f.ok, f.label, f.reference}, box.Children, "unresolved references materialize to nothing")

	spacing, ok := box.Property("spacing")
	require.True(t, ok)
	assert.Equal(t, "10", spacing.Literal)

	children, ok := box.Property("children")
	require.True(t, ok)
	assert.True(t, children.Complex)
	assert.Len(t, children.Values, 4, "the property keeps every structural value")

	assert.Equal(t, f.ok, g.Resolve(f.reference))
	assert.Equal(t, model.None, g.Resolve(f.dangling))
	assert.Equal(t, f.label, g.Resolve(f.label))
}

func TestUnresolvedReferenceDiagnostic(t *testing.T) {
	f := newFixture(t)
	g := Derive(f.doc, masks())

	diags := g.Diagnostics()
	assert.False(t, diags.HasErrors())

	unresolved := diags.ByCode("unresolved_reference")
	require.Len(t, unresolved, 1, spew.Sdump(diags))
	assert.Equal(t, []string{"okButton"}, unresolved[0].Suggestions)
	assert.Equal(t, "VBox#box/reference(okButon)", unresolved[0].Object)

	dangling, ok := g.Node(f.dangling)
	require.True(t, ok)
	assert.False(t, dangling.IsResolved())
}

func TestUnknownClassDiagnostic(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	root := doc.NewInstance("Buton")
	abstract := doc.NewInstance("Control")

	doc.Update(func() {
		doc.SetRoot(root)

		graphic := doc.NewComplexProperty("", "graphic")
		doc.AddProperty(root, graphic, -1)
		doc.AddValue(graphic, abstract, -1)
	})

	diags := Derive(doc, masks()).Diagnostics()

	unknown := diags.ByCode("unknown_class")
	require.Len(t, unknown, 1)
	assert.Contains(t, unknown[0].Suggestions, "Button")
	assert.Len(t, diags.ByCode("abstract_class"), 1)
}

func TestVerticalLayout(t *testing.T) {
	f := newFixture(t)
	g := Derive(f.doc, masks())

	assert.Equal(t, geom.NewRect(0, 0, 80, LeafHeight), g.Bounds(f.ok))
	assert.Equal(t, geom.NewRect(0, 35, LeafWidth, LeafHeight), g.Bounds(f.label))
	assert.Equal(t, geom.NewRect(0, 70, 0, 0), g.Bounds(f.reference))
	assert.Equal(t, geom.NewRect(0, 0, 100, 70), g.Bounds(f.box))
	assert.Equal(t, geom.Rect{}, g.Bounds(f.dangling))
}

func TestRegionLayout(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	pane := doc.NewInstance("BorderPane")
	top := doc.NewInstance("Button")
	center := doc.NewInstance("Label")

	doc.Update(func() {
		doc.SetRoot(pane)
		doc.AddProperty(top, doc.NewLiteralProperty("", "prefWidth", "200"), -1)
		doc.AddProperty(top, doc.NewLiteralProperty("", "prefHeight", "20"), -1)

		for name, child := range map[string]model.ID{"top": top, "center": center} {
			p := doc.NewComplexProperty("", name)
			doc.AddProperty(pane, p, -1)
			doc.AddValue(p, child, -1)
		}
	})

	g := Derive(doc, masks())

	assert.Equal(t, geom.NewRect(0, 0, 200, 45), g.Bounds(pane))
	assert.Equal(t, geom.NewRect(0, 0, 200, 20), g.Bounds(top))
	assert.Equal(t, geom.NewRect(0, 20, LeafWidth, LeafHeight), g.Bounds(center))
}

func TestFreeLayout(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	pane := doc.NewInstance("Pane")
	button := doc.NewInstance("Button")

	doc.Update(func() {
		doc.SetRoot(pane)
		doc.AddProperty(button, doc.NewLiteralProperty("", "layoutX", "10"), -1)
		doc.AddProperty(button, doc.NewLiteralProperty("", "layoutY", "5"), -1)

		children := doc.NewComplexProperty("", "children")
		doc.AddProperty(pane, children, -1)
		doc.AddValue(children, button, -1)
	})

	g := Derive(doc, masks())

	assert.Equal(t, geom.NewRect(10, 5, LeafWidth, LeafHeight), g.Bounds(button))
	assert.Equal(t, geom.NewRect(0, 0, 110, 30), g.Bounds(pane))
}

func TestHit(t *testing.T) {
	f := newFixture(t)
	g := Derive(f.doc, masks())

	assert.Equal(t, f.label, g.Hit(geom.Point{X: 5, Y: 40}))
	assert.Equal(t, f.ok, g.Hit(geom.Point{X: 5, Y: 5}))
	assert.Equal(t, f.box, g.Hit(geom.Point{X: 90, Y: 10}))
	assert.Equal(t, model.None, g.Hit(geom.Point{X: 5, Y: 200}))
}

func TestEmptyDocument(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	g := Derive(doc, masks())

	assert.Equal(t, model.None, g.Root())
	assert.Zero(t, g.Len())
	assert.Equal(t, model.None, g.Hit(geom.Point{}))
}

func TestBindRefreshesOncePerTransaction(t *testing.T) {
	f := newFixture(t)
	b := Bind(f.doc, masks(), nil)

	first := b.Graph()
	assert.Equal(t, f.doc.Revision(), first.Revision())

	var seen []uint64

	f.doc.Subscribe(func(rev uint64) {
		seen = append(seen, b.Graph().Revision())
		assert.Equal(t, rev, b.Graph().Revision())
	})

	f.doc.Update(func() {
		f.doc.SetLiteral(f.doc.Property(f.ok, "prefWidth"), "150")
		f.doc.SetFxID(f.box, "outer")
	})

	assert.Len(t, seen, 1)
	assert.NotSame(t, first, b.Graph())
	assert.Equal(t, 150.0, b.Graph().Bounds(f.ok).Width)

	box, _ := b.Graph().Node(f.box)
	assert.Equal(t, "outer", box.FxID)
}
