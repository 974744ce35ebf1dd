package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-designer/internal/catalog"
	"scene-designer/internal/model"
)

func newBorderPane(t *testing.T) (doc *model.Document, pane, top, center model.ID) {
	t.Helper()

	doc = model.NewDocument("", catalog.Default())
	pane = doc.NewInstance("BorderPane")
	top = doc.NewInstance("ToolBar")
	center = doc.NewInstance("VBox")

	doc.Update(func() {
		doc.SetRoot(pane)

		tp := doc.NewComplexProperty("", "top")
		doc.AddProperty(pane, tp, -1)
		doc.AddValue(tp, top, -1)

		cp := doc.NewComplexProperty("", "center")
		doc.AddProperty(pane, cp, -1)
		doc.AddValue(cp, center, -1)

		doc.SetFxID(center, "content")
	})

	return doc, pane, top, center
}

func TestMaskAccessories(t *testing.T) {
	doc, pane, top, center := newBorderPane(t)
	f := NewFactory(catalog.Default())

	m := f.Get(doc, pane)
	assert.True(t, m.IsContainer())
	assert.Equal(t, "BorderPane", m.Class())
	assert.Equal(t, catalog.LayoutRegion, m.Layout())
	assert.Len(t, m.Accessories(), 5)

	_, hasMain := m.MainAccessory()
	assert.False(t, hasMain)

	topAcc, ok := m.Accessory("top")
	require.True(t, ok)
	assert.Equal(t, 1, m.Count(topAcc))
	assert.Equal(t, top, m.Child(topAcc, 0))
	assert.Equal(t, model.None, m.Child(topAcc, 1))

	acc, index, ok := m.AccessoryOf(center)
	require.True(t, ok)
	assert.Equal(t, "center", acc.Name)
	assert.Equal(t, 0, index)

	left, _ := m.Accessory("left")
	assert.Empty(t, m.Children(left))
	assert.Equal(t, model.None, m.Property(left))
}

func TestMaskAcceptance(t *testing.T) {
	doc, pane, top, center := newBorderPane(t)
	f := NewFactory(catalog.Default())
	m := f.Get(doc, pane)

	topAcc, _ := m.Accessory("top")
	leftAcc, _ := m.Accessory("left")

	assert.False(t, m.IsAccepting(topAcc, "Button"), "single slot already full")
	assert.True(t, m.Accepts(topAcc, "Button"), "type check ignores cardinality")
	assert.True(t, m.IsAccepting(leftAcc, "Button"))
	assert.False(t, m.IsAccepting(leftAcc, "Tab"), "Tab is not a Node")
	assert.True(t, m.IsAccepting(leftAcc, ""), "unknown class passes the type check")

	assert.True(t, m.IsAcceptingObject(topAcc, top), "an object does not block its own slot")
	assert.False(t, m.IsAcceptingObject(topAcc, center))

	vbox := f.Get(doc, center)
	main, ok := vbox.MainAccessory()
	require.True(t, ok)
	assert.Equal(t, "children", main.Name)
	assert.True(t, vbox.IsAccepting(main, "Button"))
	assert.False(t, vbox.IsFreePositioning())
	assert.Equal(t, catalog.LayoutVertical, vbox.Layout())
}

func TestMaskCustomAcceptor(t *testing.T) {
	doc, pane, _, _ := newBorderPane(t)

	onlyLabels := func(_ *catalog.Catalog, _ catalog.Accessory, class string) bool {
		return class == "Label"
	}

	m := NewFactory(catalog.Default(), WithAcceptor(onlyLabels)).Get(doc, pane)
	left, _ := m.Accessory("left")

	assert.True(t, m.IsAccepting(left, "Label"))
	assert.False(t, m.IsAccepting(left, "Button"))
}

func TestCollectionMask(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	root := doc.NewCollection("Button")
	a := doc.NewInstance("Button")

	doc.Update(func() {
		doc.SetRoot(root)
		doc.AddItem(root, a, -1)
	})

	m := NewFactory(catalog.Default()).Get(doc, root)
	assert.True(t, m.IsCollection())
	assert.Equal(t, catalog.LayoutNone, m.Layout())

	main, ok := m.MainAccessory()
	require.True(t, ok)
	assert.Equal(t, ItemsAccessory, main.Name)
	assert.Equal(t, []model.ID{a}, m.Children(main))
	assert.True(t, m.IsAccepting(main, "Button"))
	assert.False(t, m.IsAccepting(main, "VBox"))
}

func TestLeafMask(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	ref := doc.NewIntrinsic(model.IntrinsicReference, "x")

	m := NewFactory(catalog.Default()).Get(doc, ref)
	assert.False(t, m.IsContainer())
	assert.Empty(t, m.Accessories())

	_, ok := m.MainAccessory()
	assert.False(t, ok)
}

func TestClassMask(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	m := NewFactory(catalog.Default()).ForClass(doc, "VBox")

	assert.Equal(t, model.None, m.ID())
	assert.Equal(t, catalog.LayoutVertical, m.Layout())

	main, ok := m.MainAccessory()
	require.True(t, ok)
	assert.Equal(t, "children", main.Name)
	assert.Zero(t, m.Count(main))
	assert.True(t, m.IsAccepting(main, "Button"))

	assert.False(t, NewFactory(catalog.Default()).ForClass(doc, "Nope").IsContainer())
}

func TestPropertyQueries(t *testing.T) {
	doc := model.NewDocument("", catalog.Default())
	area := doc.NewInstance("TextArea")
	m := NewFactory(catalog.Default()).Get(doc, area)

	assert.True(t, m.IsMultiline("text"))
	assert.True(t, m.IsResourceKey("text"))
	assert.False(t, m.IsReadOnly("text"))
	assert.True(t, m.IsReadOnly("baselineOffset"))
	assert.False(t, m.IsMultiline("GridPane.rowIndex"))
	assert.Equal(t, "Pref Width", m.DisplayName("prefWidth"))

	_, ok := m.PropertyMeta("GridPane.rowIndex")
	assert.True(t, ok)
}

func TestObjectClass(t *testing.T) {
	doc, pane, _, center := newBorderPane(t)
	ref := doc.NewIntrinsic(model.IntrinsicReference, "content")
	dangling := doc.NewIntrinsic(model.IntrinsicReference, "nope")
	include := doc.NewIntrinsic(model.IntrinsicInclude, "other.scene.yaml")

	assert.Equal(t, "BorderPane", ObjectClass(doc, pane))
	assert.Equal(t, "VBox", ObjectClass(doc, ref))
	assert.Equal(t, "", ObjectClass(doc, dangling))
	assert.Equal(t, "", ObjectClass(doc, include))
	assert.Equal(t, "", ObjectClass(doc, model.None))
	assert.Equal(t, "VBox", ObjectClass(doc, center))
}
