package live

import (
	"fmt"

	"scene-designer/internal/mask"
	"scene-designer/internal/match"
	"scene-designer/internal/model"
	"scene-designer/internal/treepath"
)

// maxSuggestions bounds the suggestions attached to one diagnostic.
const maxSuggestions = 3

// Derive materializes doc. It never mutates the document.
func Derive(doc *model.Document, masks *mask.Factory) *Graph {
	d := &deriver{
		doc:   doc,
		masks: masks,
		graph: &Graph{
			revision: doc.Revision(),
			root:     doc.Root(),
			nodes:    make(map[model.ID]*Node),
		},
	}

	if doc.Root() == model.None {
		return d.graph
	}

	d.fxIDs = doc.FxIDs()
	d.visit(doc.Root())
	d.layout(doc.Root())

	return d.graph
}

type deriver struct {
	doc   *model.Document
	masks *mask.Factory
	graph *Graph
	fxIDs []string
	sizes map[model.ID]size
}

func (d *deriver) visit(id model.ID) {
	o := d.doc.Object(id)
	n := &Node{ID: id, Kind: o.Kind()}

	d.graph.nodes[id] = n
	d.graph.order = append(d.graph.order, id)

	switch o.Kind() {
	case model.KindInstance:
		n.Class = o.Class()
		n.FxID = o.FxID()
		n.Controller = o.Controller()
		d.checkClass(id, n.Class)

		for _, pid := range o.Properties() {
			p := d.doc.Object(pid)
			n.Properties = append(n.Properties, Property{
				Name:    p.QualifiedName(),
				Complex: p.IsComplex(),
				Literal: p.Literal(),
				Values:  p.Values(),
			})
		}
	case model.KindCollection:
		n.Class = o.Class()
		n.FxID = o.FxID()
		n.Items = o.Items()
	case model.KindIntrinsic:
		n.Intrinsic = o.IntrinsicType()
		n.Source = o.Source()

		if n.Intrinsic == model.IntrinsicReference {
			n.Target = d.resolve(id, n.Source)
		}
	}

	for _, c := range d.doc.ChildObjects(id) {
		d.visit(c)

		if d.graph.nodes[c].IsResolved() {
			n.Children = append(n.Children, c)
		}
	}
}

func (d *deriver) resolve(id model.ID, source string) model.ID {
	target := d.doc.FindByFxID(source)
	if target != model.None && target != id {
		return target
	}

	d.graph.diags.AddWarningWithSuggestions(
		"unresolved_reference",
		fmt.Sprintf("no object with fx:id %q", source),
		treepath.Of(d.doc, id).Format(d.doc),
		"",
		match.Suggest(source, d.fxIDs, maxSuggestions, match.DefaultMinScore),
	)

	return model.None
}

func (d *deriver) checkClass(id model.ID, class string) {
	cat := d.masks.Catalog()
	if cat == nil || cat.HasClass(class) {
		return
	}

	object := treepath.Of(d.doc, id).Format(d.doc)

	if _, declared := cat.Class(class); declared {
		d.graph.diags.AddWarning("abstract_class", fmt.Sprintf("class %q is abstract", class), object, "")
		return
	}

	d.graph.diags.AddWarningWithSuggestions(
		"unknown_class",
		fmt.Sprintf("unknown class %q", class),
		object,
		"",
		match.Suggest(class, cat.ClassNames(), maxSuggestions, match.DefaultMinScore),
	)
}
