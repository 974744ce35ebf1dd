package serial

import (
	"fmt"

	"scene-designer/internal/diagnostic"
	"scene-designer/internal/live"
	"scene-designer/internal/model"
)

// Load reads the scene file at path into a new document.
func Load(path string, classes model.ClassResolver) (*model.Document, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := ToDocument(f, path, classes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Save writes the structural tree of doc to path.
func Save(doc *model.Document, path string) error {
	return WriteFile(FromDocument(doc), path)
}

// ToDocument builds a document from f. Duplicate fx:ids and properties are
// rejected; class names are not checked here, materialization reports them.
func ToDocument(f *File, location string, classes model.ClassResolver) (*model.Document, error) {
	doc := model.NewDocument(location, classes)
	if f.Root == nil {
		return doc, nil
	}

	b := builder{doc: doc, fxIDs: make(map[string]string)}

	doc.Update(func() {
		doc.SetRoot(b.node(f.Root, "root"))
	})

	if err := b.diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	return doc, nil
}

type builder struct {
	doc   *model.Document
	fxIDs map[string]string
	diags diagnostic.Diagnostics
}

func (b *builder) node(n *Node, at string) model.ID {
	var id model.ID

	switch n.Kind {
	case model.KindInstance:
		id = b.doc.NewInstance(n.Class)
		b.doc.SetController(id, n.Controller)

		for _, p := range n.Properties {
			if b.doc.Property(id, p.Name) != model.None {
				b.diags.AddError("duplicate_property", fmt.Sprintf("property %q set twice", p.Name), at, p.Name)
				continue
			}

			b.doc.AddProperty(id, b.property(p, at+"/"+p.Name), -1)
		}
	case model.KindCollection:
		id = b.doc.NewCollection(n.Class)

		for i, item := range n.Items {
			b.doc.AddItem(id, b.node(item, fmt.Sprintf("%s[%d]", at, i)), -1)
		}
	default:
		return b.doc.NewIntrinsic(n.Intrinsic, n.Source)
	}

	if n.FxID != "" {
		if first, dup := b.fxIDs[n.FxID]; dup {
			b.diags.AddError("duplicate_fx_id", fmt.Sprintf("fx:id %q already used at %s", n.FxID, first), at, "")
		} else {
			b.fxIDs[n.FxID] = at
		}

		b.doc.SetFxID(id, n.FxID)
	}

	return id
}

func (b *builder) property(p Property, at string) model.ID {
	residence, name := model.SplitQualifiedName(p.Name)

	if !p.IsComplex() {
		return b.doc.NewLiteralProperty(residence, name, *p.Value)
	}

	id := b.doc.NewComplexProperty(residence, name)
	for i, o := range p.Objects {
		b.doc.AddValue(id, b.node(o, fmt.Sprintf("%s[%d]", at, i)), -1)
	}

	return id
}

// FromDocument renders the attached tree of doc.
func FromDocument(doc *model.Document) *File {
	f := &File{Version: CurrentVersion}
	if doc.Root() != model.None {
		f.Root = fromObject(doc, doc.Root())
	}

	return f
}

func fromObject(doc *model.Document, id model.ID) *Node {
	o := doc.Object(id)
	n := &Node{Kind: o.Kind()}

	switch o.Kind() {
	case model.KindInstance:
		n.Class = o.Class()
		n.FxID = o.FxID()
		n.Controller = o.Controller()

		for _, pid := range o.Properties() {
			p := doc.Object(pid)
			if !p.IsComplex() {
				n.Properties = append(n.Properties, Literal(p.QualifiedName(), p.Literal()))
				continue
			}

			prop := Complex(p.QualifiedName())
			for _, v := range p.Values() {
				prop.Objects = append(prop.Objects, fromObject(doc, v))
			}

			n.Properties = append(n.Properties, prop)
		}
	case model.KindCollection:
		n.Class = o.Class()
		n.FxID = o.FxID()

		for _, item := range o.Items() {
			n.Items = append(n.Items, fromObject(doc, item))
		}
	case model.KindIntrinsic:
		n.Intrinsic = o.IntrinsicType()
		n.Source = o.Source()
	}

	return n
}

// FromLive renders a materialized graph. The result equals FromDocument of
// the document the graph was derived from.
func FromLive(g *live.Graph) *File {
	f := &File{Version: CurrentVersion}
	if g.Root() != model.None {
		f.Root = fromNode(g, g.Root())
	}

	return f
}

func fromNode(g *live.Graph, id model.ID) *Node {
	ln, ok := g.Node(id)
	if !ok {
		panic(fmt.Sprintf("graph has no node for object %d", id))
	}

	n := &Node{
		Kind:       ln.Kind,
		Class:      ln.Class,
		FxID:       ln.FxID,
		Controller: ln.Controller,
	}

	switch ln.Kind {
	case model.KindInstance:
		for _, p := range ln.Properties {
			if !p.Complex {
				n.Properties = append(n.Properties, Literal(p.Name, p.Literal))
				continue
			}

			prop := Complex(p.Name)
			for _, v := range p.Values {
				prop.Objects = append(prop.Objects, fromNode(g, v))
			}

			n.Properties = append(n.Properties, prop)
		}
	case model.KindCollection:
		for _, item := range ln.Items {
			n.Items = append(n.Items, fromNode(g, item))
		}
	case model.KindIntrinsic:
		n.Intrinsic = ln.Intrinsic
		n.Source = ln.Source
	}

	return n
}
