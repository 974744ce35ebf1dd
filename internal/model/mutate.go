package model

import (
	"fmt"

	"scene-designer/internal/common"
)

// SetRoot replaces the root object. The new root must be a detached object
// (or None to empty the document); the previous root becomes detached.
func (d *Document) SetRoot(id ID) {
	d.mustUpdate("SetRoot")

	if id != None {
		o := d.Object(id)
		if !o.kind.IsObject() {
			panic(fmt.Sprintf("cannot use %v %d as root", o.kind, id))
		}

		d.mustBeDetached(id)
	}

	d.root = id
}

// AddProperty attaches the detached property prop to instance at index
// (negative appends). An instance cannot hold two properties with the same
// qualified name.
func (d *Document) AddProperty(instance, prop ID, index int) {
	d.mustUpdate("AddProperty")

	inst := d.Object(instance)
	inst.mustBe(KindInstance)

	p := d.Object(prop)
	p.mustBe(KindProperty)
	d.mustBeDetached(prop)

	if d.Property(instance, p.QualifiedName()) != None {
		panic(fmt.Sprintf("%s already has a property %q", d.Describe(instance), p.QualifiedName()))
	}

	d.attach(inst, p, index)
}

// RemoveProperty detaches prop from its instance and returns the instance
// and the index the property had.
func (d *Document) RemoveProperty(prop ID) (ID, int) {
	d.mustUpdate("RemoveProperty")
	d.Object(prop).mustBe(KindProperty)

	return d.detach(prop)
}

// AddValue attaches the detached object obj to the complex property prop at
// index (negative appends).
func (d *Document) AddValue(prop, obj ID, index int) {
	d.mustUpdate("AddValue")

	p := d.Object(prop)
	p.mustBe(KindProperty)

	if !p.complex {
		panic(fmt.Sprintf("property %s is a literal and cannot hold objects", p.QualifiedName()))
	}

	d.attachObject(p, obj, index)
}

// AddItem attaches the detached object obj to collection at index
// (negative appends).
func (d *Document) AddItem(collection, obj ID, index int) {
	d.mustUpdate("AddItem")

	c := d.Object(collection)
	c.mustBe(KindCollection)

	d.attachObject(c, obj, index)
}

// Detach removes an object or property from its direct parent and returns
// that parent and the index it had there. Detaching the root clears the root.
func (d *Document) Detach(id ID) (ID, int) {
	d.mustUpdate("Detach")

	if id == d.root {
		d.root = None
		return None, -1
	}

	return d.detach(id)
}

// SetLiteral changes the value of a literal property.
func (d *Document) SetLiteral(prop ID, value string) {
	d.mustUpdate("SetLiteral")

	p := d.Object(prop)
	p.mustBe(KindProperty)

	if p.complex {
		panic(fmt.Sprintf("property %s holds objects and has no literal value", p.QualifiedName()))
	}

	p.literal = value
}

// SetFxID changes the fx:id of an instance or collection.
func (d *Document) SetFxID(id ID, fxID string) {
	d.mustUpdate("SetFxID")

	o := d.Object(id)
	o.mustBe(KindInstance, KindCollection)
	o.fxID = fxID
}

// SetController changes the controller class of an instance.
func (d *Document) SetController(id ID, controller string) {
	d.mustUpdate("SetController")

	o := d.Object(id)
	o.mustBe(KindInstance)
	o.controller = controller
}

func (d *Document) attachObject(parent *Object, obj ID, index int) {
	o := d.Object(obj)
	if !o.kind.IsObject() {
		panic(fmt.Sprintf("cannot attach %v %d as a value", o.kind, obj))
	}

	d.mustBeDetached(obj)

	if d.IsAncestor(obj, parent.id) {
		panic(fmt.Sprintf("attaching %s under %s would create a cycle", d.Describe(obj), d.Describe(parent.id)))
	}

	d.attach(parent, o, index)
}

func (d *Document) attach(parent, child *Object, index int) {
	parent.setChildren(common.Insert(parent.children(), index, child.id))
	child.parent = parent.id
}

func (d *Document) detach(id ID) (ID, int) {
	o := d.Object(id)
	if o.parent == None {
		panic(fmt.Sprintf("%s has no parent", d.Describe(id)))
	}

	parent := d.Object(o.parent)
	index := d.IndexInParent(id)

	parent.setChildren(common.RemoveAt(parent.children(), index))
	o.parent = None

	return parent.id, index
}

func (d *Document) mustBeDetached(id ID) {
	if d.Object(id).parent != None || id == d.root {
		panic(fmt.Sprintf("%s is already attached", d.Describe(id)))
	}
}
