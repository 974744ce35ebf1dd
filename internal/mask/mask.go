package mask

import (
	"scene-designer/internal/catalog"
	"scene-designer/internal/match"
	"scene-designer/internal/model"
)

// ItemsAccessory is the name of the implicit main accessory of a collection.
const ItemsAccessory = "items"

// Acceptor decides whether an accessory accepts objects of class. An empty
// class means the class is unknown (includes, unresolved references).
// It only answers the type question; cardinality is checked by the mask.
type Acceptor func(cat *catalog.Catalog, acc catalog.Accessory, class string) bool

// DefaultAcceptor accepts class when the accessory declares no content
// restriction, when class is unknown, or when class is (a subclass of) one
// of the declared content classes.
func DefaultAcceptor(cat *catalog.Catalog, acc catalog.Accessory, class string) bool {
	if len(acc.Content) == 0 || class == "" {
		return true
	}

	for _, content := range acc.Content {
		if cat.IsSubclassOf(class, content) {
			return true
		}
	}

	return false
}

// Factory creates masks for the objects of a document.
type Factory struct {
	catalog *catalog.Catalog
	accept  Acceptor
}

// Option configures a Factory.
type Option func(*Factory)

// WithAcceptor replaces the type acceptance predicate.
func WithAcceptor(a Acceptor) Option {
	return func(f *Factory) { f.accept = a }
}

// NewFactory creates a mask factory over cat.
func NewFactory(cat *catalog.Catalog, opts ...Option) *Factory {
	f := &Factory{catalog: cat, accept: DefaultAcceptor}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Catalog returns the catalogue masks are built from.
func (f *Factory) Catalog() *catalog.Catalog { return f.catalog }

// Get returns the mask of id. Objects that cannot hold children (intrinsics,
// properties, None) get a mask without accessories.
func (f *Factory) Get(doc *model.Document, id model.ID) *Mask {
	m := &Mask{doc: doc, id: id, catalog: f.catalog, accept: f.accept}

	switch doc.Kind(id) {
	case model.KindInstance:
		m.class = doc.Object(id).Class()
		m.accessories = f.catalog.Accessories(m.class)
	case model.KindCollection:
		var content []string
		if item := doc.Object(id).Class(); item != "" {
			content = []string{item}
		}

		m.accessories = []catalog.Accessory{{
			Name:        ItemsAccessory,
			Content:     content,
			Cardinality: catalog.Multiple,
			Main:        true,
		}}
	}

	return m
}

// ForClass returns the mask a new, still empty instance of class would have.
// Its ID is None.
func (f *Factory) ForClass(doc *model.Document, class string) *Mask {
	return &Mask{
		doc:         doc,
		class:       class,
		catalog:     f.catalog,
		accept:      f.accept,
		accessories: f.catalog.Accessories(class),
	}
}

// Mask is the hierarchy view of one object.
type Mask struct {
	doc         *model.Document
	id          model.ID
	class       string
	catalog     *catalog.Catalog
	accept      Acceptor
	accessories []catalog.Accessory
}

// ID returns the object the mask describes.
func (m *Mask) ID() model.ID { return m.id }

// Document returns the document the object belongs to.
func (m *Mask) Document() *model.Document { return m.doc }

// Class returns the class of an instance, empty otherwise.
func (m *Mask) Class() string { return m.class }

// IsCollection returns true when the object is a bare collection.
func (m *Mask) IsCollection() bool { return m.doc.Kind(m.id) == model.KindCollection }

// IsContainer returns true when the object exposes at least one accessory.
func (m *Mask) IsContainer() bool { return len(m.accessories) > 0 }

// Accessories returns the accessories in catalogue order.
func (m *Mask) Accessories() []catalog.Accessory {
	out := make([]catalog.Accessory, len(m.accessories))
	copy(out, m.accessories)

	return out
}

// Accessory returns the accessory with the given name.
func (m *Mask) Accessory(name string) (catalog.Accessory, bool) {
	for _, acc := range m.accessories {
		if acc.Name == name {
			return acc, true
		}
	}

	return catalog.Accessory{}, false
}

// MainAccessory returns the accessory holding ordinary children, if any.
func (m *Mask) MainAccessory() (catalog.Accessory, bool) {
	for _, acc := range m.accessories {
		if acc.Main {
			return acc, true
		}
	}

	return catalog.Accessory{}, false
}

// Layout returns the layout kind of the object.
func (m *Mask) Layout() catalog.Layout {
	if m.class == "" {
		return catalog.LayoutNone
	}

	return m.catalog.Layout(m.class)
}

// IsFreePositioning returns true when the main accessory uses absolute positioning.
func (m *Mask) IsFreePositioning() bool {
	main, ok := m.MainAccessory()
	return ok && main.FreePositioning
}

// Property returns the property backing an accessory, or None when the
// accessory is empty or the object is a collection.
func (m *Mask) Property(acc catalog.Accessory) model.ID {
	if m.IsCollection() {
		return model.None
	}

	return m.doc.Property(m.id, acc.Name)
}

// Children returns the objects currently held by acc.
func (m *Mask) Children(acc catalog.Accessory) []model.ID {
	if m.IsCollection() {
		return m.doc.Object(m.id).Items()
	}

	if p := m.Property(acc); p != model.None && m.doc.Object(p).IsComplex() {
		return m.doc.Object(p).Values()
	}

	return nil
}

// Count returns the number of objects held by acc.
func (m *Mask) Count(acc catalog.Accessory) int {
	return len(m.Children(acc))
}

// Child returns the object at index i of acc, or None when out of range.
func (m *Mask) Child(acc catalog.Accessory, i int) model.ID {
	children := m.Children(acc)
	if i < 0 || i >= len(children) {
		return model.None
	}

	return children[i]
}

// AccessoryOf returns the accessory holding child and its index there.
func (m *Mask) AccessoryOf(child model.ID) (catalog.Accessory, int, bool) {
	for _, acc := range m.accessories {
		for i, c := range m.Children(acc) {
			if c == child {
				return acc, i, true
			}
		}
	}

	return catalog.Accessory{}, -1, false
}

// Accepts answers the type question only: can acc ever hold class.
func (m *Mask) Accepts(acc catalog.Accessory, class string) bool {
	return m.accept(m.catalog, acc, class)
}

// IsAccepting returns true when acc can take one more object of class.
func (m *Mask) IsAccepting(acc catalog.Accessory, class string) bool {
	if !m.Accepts(acc, class) {
		return false
	}

	return acc.IsCollection() || m.Count(acc) == 0
}

// IsAcceptingObject returns true when acc can take obj. An object already
// held by acc does not count against its cardinality.
func (m *Mask) IsAcceptingObject(acc catalog.Accessory, obj model.ID) bool {
	if !m.Accepts(acc, ObjectClass(m.doc, obj)) {
		return false
	}

	if acc.IsCollection() {
		return true
	}

	children := m.Children(acc)

	return len(children) == 0 || (len(children) == 1 && children[0] == obj)
}

// PropertyMeta returns the catalogue metadata of a property of the object,
// given its qualified name.
func (m *Mask) PropertyMeta(qualified string) (catalog.PropertyMeta, bool) {
	residence, name := model.SplitQualifiedName(qualified)
	return m.catalog.Property(m.class, residence, name)
}

// IsReadOnly returns true for properties an editor must not change.
func (m *Mask) IsReadOnly(qualified string) bool {
	meta, ok := m.PropertyMeta(qualified)
	return ok && meta.ReadOnly
}

// IsMultiline returns true for properties edited with a multi-line editor.
func (m *Mask) IsMultiline(qualified string) bool {
	meta, ok := m.PropertyMeta(qualified)
	return ok && meta.Multiline
}

// IsResourceKey returns true for properties whose value may be an i18n key.
func (m *Mask) IsResourceKey(qualified string) bool {
	meta, ok := m.PropertyMeta(qualified)
	return ok && meta.ResourceKey
}

// DisplayName returns the label editors show for a property.
func (m *Mask) DisplayName(qualified string) string {
	return match.DisplayName(qualified)
}

// ObjectClass returns the class an object materializes as: the class of an
// instance, the class of a resolvable reference target, empty otherwise.
func ObjectClass(doc *model.Document, id model.ID) string {
	o := doc.Object(id)
	if o == nil {
		return ""
	}

	switch o.Kind() {
	case model.KindInstance:
		return o.Class()
	case model.KindIntrinsic:
		if o.IntrinsicType() != model.IntrinsicReference {
			return ""
		}

		target := doc.FindByFxID(o.Source())
		if target == model.None || target == id || doc.Kind(target) != model.KindInstance {
			return ""
		}

		return doc.Object(target).Class()
	default:
		return ""
	}
}
