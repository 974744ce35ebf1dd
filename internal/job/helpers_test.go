package job

import (
	"fmt"
	"strings"
	"testing"

	"scene-designer/internal/catalog"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
)

type fixture struct {
	env      Env
	doc      *model.Document
	children model.ID

	box, ok, title, row, check, free model.ID
}

// newFixture builds
//
//	VBox#box controller=app.MainController spacing=10
//	  children:
//	    Button#ok text=OK GridPane.rowIndex=1 layoutX=5
//	    Label#title
//	    HBox#row children: CheckBox#check
//	    Pane#free
func newFixture(t *testing.T) fixture {
	t.Helper()

	doc := model.NewDocument("", catalog.Default())
	f := fixture{
		env:   Env{Doc: doc, Masks: mask.NewFactory(catalog.Default())},
		doc:   doc,
		box:   doc.NewInstance("VBox"),
		ok:    doc.NewInstance("Button"),
		title: doc.NewInstance("Label"),
		row:   doc.NewInstance("HBox"),
		check: doc.NewInstance("CheckBox"),
		free:  doc.NewInstance("Pane"),
	}

	doc.Update(func() {
		doc.SetRoot(f.box)
		doc.SetController(f.box, "app.MainController")
		doc.AddProperty(f.box, doc.NewLiteralProperty("", "spacing", "10"), -1)

		f.children = doc.NewComplexProperty("", "children")
		doc.AddProperty(f.box, f.children, -1)

		for _, c := range []model.ID{f.ok, f.title, f.row, f.free} {
			doc.AddValue(f.children, c, -1)
		}

		names := map[model.ID]string{
			f.box: "box", f.ok: "ok", f.title: "title", f.row: "row", f.check: "check", f.free: "free",
		}
		for id, name := range names {
			doc.SetFxID(id, name)
		}

		doc.AddProperty(f.ok, doc.NewLiteralProperty("", "text", "OK"), -1)
		doc.AddProperty(f.ok, doc.NewLiteralProperty("GridPane", "rowIndex", "1"), -1)
		doc.AddProperty(f.ok, doc.NewLiteralProperty("", "layoutX", "5"), -1)

		rc := doc.NewComplexProperty("", "children")
		doc.AddProperty(f.row, rc, -1)
		doc.AddValue(rc, f.check, -1)
	})

	return f
}

func propertyNames(doc *model.Document, id model.ID) []string {
	var out []string
	for _, p := range doc.Object(id).Properties() {
		out = append(out, doc.Object(p).QualifiedName())
	}

	return out
}

// snapshot renders the attached tree with object ids, so two snapshots are
// equal only when the same objects sit at the same places with the same
// properties.
func snapshot(doc *model.Document) string {
	var b strings.Builder

	var walk func(id model.ID, depth int)
	walk = func(id model.ID, depth int) {
		o := doc.Object(id)
		indent := strings.Repeat("  ", depth)

		switch o.Kind() {
		case model.KindInstance:
			fmt.Fprintf(&b, "%s#%d %s fx=%q controller=%q\n", indent, id, o.Class(), o.FxID(), o.Controller())

			for _, pid := range o.Properties() {
				p := doc.Object(pid)
				if !p.IsComplex() {
					fmt.Fprintf(&b, "%s  .%s=%q\n", indent, p.QualifiedName(), p.Literal())
					continue
				}

				fmt.Fprintf(&b, "%s  .%s\n", indent, p.QualifiedName())

				for _, v := range p.Values() {
					walk(v, depth+2)
				}
			}
		case model.KindCollection:
			fmt.Fprintf(&b, "%s#%d collection %s fx=%q\n", indent, id, o.Class(), o.FxID())

			for _, item := range o.Items() {
				walk(item, depth+1)
			}
		case model.KindIntrinsic:
			fmt.Fprintf(&b, "%s#%d %v %s\n", indent, id, o.IntrinsicType(), o.Source())
		}
	}

	if doc.Root() != model.None {
		walk(doc.Root(), 0)
	}

	return b.String()
}
