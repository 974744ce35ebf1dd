package model

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ID addresses an object in the document arena.
type ID int

// None is the zero ID, used for "no object".
const None ID = 0

// Object is a node of the structural tree. Which fields are meaningful
// depends on Kind; accessors panic when used on the wrong variant.
type Object struct {
	id     ID
	kind   Kind
	parent ID

	// Instance and Collection. For a collection, class is the declared item type.
	class string
	fxID  string

	// Instance only.
	controller string
	props      []ID

	// Collection only.
	items []ID

	// Intrinsic only.
	intrinsic IntrinsicType
	source    string

	// Property only.
	name      string
	residence string
	literal   string
	values    []ID
	complex   bool
}

// ID returns the arena address of the object.
func (o *Object) ID() ID { return o.id }

// Kind returns the variant tag.
func (o *Object) Kind() Kind { return o.kind }

// Parent returns the direct parent: a Property or a Collection for objects,
// the owning Instance for properties, None when detached or root.
func (o *Object) Parent() ID { return o.parent }

// Class returns the instance class, or the declared item type of a collection.
func (o *Object) Class() string {
	o.mustBe(KindInstance, KindCollection)
	return o.class
}

// FxID returns the fx:id of an instance or collection.
func (o *Object) FxID() string {
	o.mustBe(KindInstance, KindCollection)
	return o.fxID
}

// Controller returns the controller class attached to an instance.
func (o *Object) Controller() string {
	o.mustBe(KindInstance)
	return o.controller
}

// Properties returns the instance properties in declaration order.
func (o *Object) Properties() []ID {
	o.mustBe(KindInstance)
	return slices.Clone(o.props)
}

// Items returns the collection items in order.
func (o *Object) Items() []ID {
	o.mustBe(KindCollection)
	return slices.Clone(o.items)
}

// IntrinsicType returns whether an intrinsic is a reference or an include.
func (o *Object) IntrinsicType() IntrinsicType {
	o.mustBe(KindIntrinsic)
	return o.intrinsic
}

// Source returns the fx:id (reference) or location (include) an intrinsic points at.
func (o *Object) Source() string {
	o.mustBe(KindIntrinsic)
	return o.source
}

// Name returns the simple property name (without residence class).
func (o *Object) Name() string {
	o.mustBe(KindProperty)
	return o.name
}

// Residence returns the residence class of a static property, or empty.
func (o *Object) Residence() string {
	o.mustBe(KindProperty)
	return o.residence
}

// IsStatic returns true when the property has a residence class.
func (o *Object) IsStatic() bool {
	return o.Residence() != ""
}

// QualifiedName returns "Residence.name" for static properties and "name" otherwise.
func (o *Object) QualifiedName() string {
	o.mustBe(KindProperty)
	return QualifiedName(o.residence, o.name)
}

// IsComplex returns true when the property holds objects rather than a literal.
func (o *Object) IsComplex() bool {
	o.mustBe(KindProperty)
	return o.complex
}

// Literal returns the literal value of a literal property.
func (o *Object) Literal() string {
	o.mustBe(KindProperty)
	return o.literal
}

// Values returns the objects held by a complex property.
func (o *Object) Values() []ID {
	o.mustBe(KindProperty)
	return slices.Clone(o.values)
}

func (o *Object) mustBe(kinds ...Kind) {
	if !slices.Contains(kinds, o.kind) {
		panic(fmt.Sprintf("object %d is a %v, expected one of %v", o.id, o.kind, kinds))
	}
}

// children returns the direct arena children list of the object, whatever
// its variant: properties of an instance, items of a collection, values of
// a complex property.
func (o *Object) children() []ID {
	switch o.kind {
	case KindInstance:
		return o.props
	case KindCollection:
		return o.items
	case KindProperty:
		return o.values
	default:
		return nil
	}
}

func (o *Object) setChildren(ids []ID) {
	switch o.kind {
	case KindInstance:
		o.props = ids
	case KindCollection:
		o.items = ids
	case KindProperty:
		o.values = ids
	default:
		panic(fmt.Sprintf("object %d (%v) cannot hold children", o.id, o.kind))
	}
}

// QualifiedName joins a residence class and a property name.
func QualifiedName(residence, name string) string {
	if residence == "" {
		return name
	}

	return residence + "." + name
}

// SplitQualifiedName splits "GridPane.rowIndex" into its residence class and
// name. A prefix is only treated as a residence class when its simple name
// starts with an upper case letter, so "fx.id"-like names stay untouched.
func SplitQualifiedName(qualified string) (residence, name string) {
	i := strings.LastIndexByte(qualified, '.')
	if i <= 0 || i == len(qualified)-1 {
		return "", qualified
	}

	prefix := qualified[:i]

	simple := prefix
	if j := strings.LastIndexByte(prefix, '.'); j >= 0 {
		simple = prefix[j+1:]
	}

	if simple == "" || !unicode.IsUpper([]rune(simple)[0]) {
		return "", qualified
	}

	return prefix, qualified[i+1:]
}
