package model

import (
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"

	"scene-designer/internal/common"
)

// ClassResolver is the class-resolution context of a document: it tells
// whether a class name can be materialized.
type ClassResolver interface {
	HasClass(name string) bool
}

// Document is one edited artifact: the object arena, its root, and the
// transaction and revision state.
type Document struct {
	id       ulid.ULID
	location string
	classes  ClassResolver

	// objects[0] is always nil so that None never addresses an object.
	objects []*Object
	root    ID

	revision uint64
	depth    int

	hooks   []func(*Document)
	subs    map[int]func(revision uint64)
	nextSub int
}

// NewDocument creates an empty document resolving classes with classes.
func NewDocument(location string, classes ClassResolver) *Document {
	return &Document{
		id:       ulid.Make(),
		location: location,
		classes:  classes,
		objects:  []*Object{nil},
		subs:     make(map[int]func(uint64)),
	}
}

// ID returns the unique identity of this document instance.
func (d *Document) ID() ulid.ULID { return d.id }

// Location returns the source location the document was loaded from.
func (d *Document) Location() string { return d.location }

// SetLocation changes the source location (save as). It is not a structural change.
func (d *Document) SetLocation(location string) { d.location = location }

// Classes returns the class-resolution context.
func (d *Document) Classes() ClassResolver { return d.classes }

// Root returns the root object, or None for an empty document.
func (d *Document) Root() ID { return d.root }

// Revision returns the scene graph revision, bumped by every outer transaction.
func (d *Document) Revision() uint64 { return d.revision }

// --- transactions ---

// BeginUpdate opens a (possibly nested) transaction.
func (d *Document) BeginUpdate() {
	d.depth++
}

// EndUpdate closes a transaction. Closing the outermost one runs the refresh
// hooks, bumps the revision and notifies subscribers once.
func (d *Document) EndUpdate() {
	if d.depth == 0 {
		panic("EndUpdate called without a matching BeginUpdate")
	}

	d.depth--
	if d.depth > 0 {
		return
	}

	for _, hook := range d.hooks {
		hook(d)
	}

	d.revision++

	for _, key := range d.subscriberKeys() {
		if fn, ok := d.subs[key]; ok {
			fn(d.revision)
		}
	}
}

// Update runs fn inside a transaction.
func (d *Document) Update(fn func()) {
	d.BeginUpdate()
	defer d.EndUpdate()

	fn()
}

// IsUpdating returns true while a transaction is open.
func (d *Document) IsUpdating() bool { return d.depth > 0 }

// UpdateDepth returns the current transaction nesting depth.
func (d *Document) UpdateDepth() int { return d.depth }

// AddRefreshHook registers fn to run at the end of every outer transaction,
// before the revision is bumped. Hooks run in registration order.
func (d *Document) AddRefreshHook(fn func(*Document)) {
	d.hooks = append(d.hooks, fn)
}

// Subscribe registers fn to be called with the new revision after every
// outer transaction. The returned function unsubscribes.
func (d *Document) Subscribe(fn func(revision uint64)) func() {
	key := d.nextSub
	d.nextSub++
	d.subs[key] = fn

	return func() { delete(d.subs, key) }
}

func (d *Document) subscriberKeys() []int {
	keys := make([]int, 0, len(d.subs))
	for k := range d.subs {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func (d *Document) mustUpdate(op string) {
	if d.depth == 0 {
		panic(fmt.Sprintf("%s called outside of a transaction", op))
	}
}

// --- construction of detached objects ---

func (d *Document) alloc(o *Object) ID {
	o.id = ID(len(d.objects))
	d.objects = append(d.objects, o)

	return o.id
}

// NewInstance creates a detached instance of class.
func (d *Document) NewInstance(class string) ID {
	return d.alloc(&Object{kind: KindInstance, class: class})
}

// NewCollection creates a detached collection with the given declared item type.
func (d *Document) NewCollection(itemType string) ID {
	return d.alloc(&Object{kind: KindCollection, class: itemType})
}

// NewIntrinsic creates a detached include or reference pointing at source.
func (d *Document) NewIntrinsic(t IntrinsicType, source string) ID {
	return d.alloc(&Object{kind: KindIntrinsic, intrinsic: t, source: source})
}

// NewLiteralProperty creates a detached literal property.
func (d *Document) NewLiteralProperty(residence, name, value string) ID {
	return d.alloc(&Object{kind: KindProperty, residence: residence, name: name, literal: value})
}

// NewComplexProperty creates a detached property holding objects.
func (d *Document) NewComplexProperty(residence, name string) ID {
	return d.alloc(&Object{kind: KindProperty, residence: residence, name: name, complex: true})
}

// --- queries ---

// Object returns the object addressed by id, or nil for None.
// It panics on ids that were never allocated by this document.
func (d *Document) Object(id ID) *Object {
	if id == None {
		return nil
	}

	if id < 0 || int(id) >= len(d.objects) {
		panic(fmt.Sprintf("object %d does not belong to this document", id))
	}

	return d.objects[id]
}

// Contains returns true when id addresses an object of this document.
func (d *Document) Contains(id ID) bool {
	return id > None && int(id) < len(d.objects)
}

// Kind returns the kind of id, or zero for None.
func (d *Document) Kind(id ID) Kind {
	if o := d.Object(id); o != nil {
		return o.kind
	}

	return 0
}

// Parent returns the direct parent of id (property, collection or instance).
func (d *Document) Parent(id ID) ID {
	if o := d.Object(id); o != nil {
		return o.parent
	}

	return None
}

// ParentObject returns the closest ancestor that is not a property:
// the instance owning the parent property, or the parent collection.
func (d *Document) ParentObject(id ID) ID {
	p := d.Parent(id)
	if d.Kind(p) == KindProperty {
		return d.Parent(p)
	}

	return p
}

// ParentProperty returns the property holding id, or None when id sits in
// a collection, is the root, or is detached.
func (d *Document) ParentProperty(id ID) ID {
	if p := d.Parent(id); d.Kind(p) == KindProperty {
		return p
	}

	return None
}

// IndexInParent returns the position of id in its direct parent, or -1.
func (d *Document) IndexInParent(id ID) int {
	p := d.Object(d.Parent(id))
	if p == nil {
		return -1
	}

	return slices.Index(p.children(), id)
}

// ChildObjects returns the child objects of id in document order: for an
// instance, the values of its complex properties in property order; for a
// collection, its items.
func (d *Document) ChildObjects(id ID) []ID {
	o := d.Object(id)
	if o == nil {
		return nil
	}

	switch o.kind {
	case KindCollection:
		return slices.Clone(o.items)
	case KindInstance:
		var out []ID

		for _, pid := range o.props {
			if p := d.objects[pid]; p.complex {
				out = append(out, p.values...)
			}
		}

		return out
	default:
		return nil
	}
}

// ChildIndex returns the position of child in ChildObjects(parent), or -1.
func (d *Document) ChildIndex(parent, child ID) int {
	return slices.Index(d.ChildObjects(parent), child)
}

// IsAttached returns true when id is reachable from the root.
func (d *Document) IsAttached(id ID) bool {
	if id == None || d.root == None {
		return false
	}

	for cur := id; cur != None; cur = d.Parent(cur) {
		if cur == d.root {
			return true
		}
	}

	return false
}

// IsAncestor returns true when ancestor is id itself or one of its parents.
func (d *Document) IsAncestor(ancestor, id ID) bool {
	for cur := id; cur != None; cur = d.Parent(cur) {
		if cur == ancestor {
			return true
		}
	}

	return false
}

// Walk visits the objects of the subtree rooted at id in pre-order.
// Properties are not visited. Returning false from fn prunes the subtree.
func (d *Document) Walk(id ID, fn func(ID) bool) {
	if id == None {
		return
	}

	if !fn(id) {
		return
	}

	for _, c := range d.ChildObjects(id) {
		d.Walk(c, fn)
	}
}

// FindByFxID returns the attached object carrying fxID, or None.
func (d *Document) FindByFxID(fxID string) ID {
	found := None

	d.Walk(d.root, func(id ID) bool {
		if found != None {
			return false
		}

		o := d.objects[id]
		if (o.kind == KindInstance || o.kind == KindCollection) && o.fxID == fxID && fxID != "" {
			found = id
			return false
		}

		return true
	})

	return found
}

// FxIDs returns all fx:ids declared in the attached tree, in document order.
func (d *Document) FxIDs() []string {
	var out []string

	d.Walk(d.root, func(id ID) bool {
		o := d.objects[id]
		if (o.kind == KindInstance || o.kind == KindCollection) && o.fxID != "" {
			out = append(out, o.fxID)
		}

		return true
	})

	return out
}

// Property returns the property of instance with the given qualified name, or None.
func (d *Document) Property(instance ID, qualified string) ID {
	o := d.Object(instance)
	if o == nil || o.kind != KindInstance {
		return None
	}

	for _, pid := range o.props {
		p := d.objects[pid]
		if QualifiedName(p.residence, p.name) == qualified {
			return pid
		}
	}

	return None
}

// Describe returns a short human-readable label for id, for logs and errors.
func (d *Document) Describe(id ID) string {
	o := d.Object(id)
	if o == nil {
		return "none"
	}

	switch o.kind {
	case KindInstance, KindCollection:
		label := common.SimpleName(o.class)
		if label == "" {
			label = "Collection"
		}

		if o.fxID != "" {
			return label + "#" + o.fxID
		}

		return label
	case KindIntrinsic:
		return fmt.Sprintf("%v(%s)", o.intrinsic, o.source)
	case KindProperty:
		return QualifiedName(o.residence, o.name)
	default:
		return common.UnknownStr
	}
}
