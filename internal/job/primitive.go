package job

import (
	"fmt"

	"scene-designer/internal/match"
	"scene-designer/internal/model"
)

// isDetachedObject reports whether id is an object that can be attached.
func isDetachedObject(doc *model.Document, id model.ID) bool {
	return doc.Kind(id).IsObject() && doc.Parent(id) == model.None && doc.Root() != id
}

// SetRoot replaces the document root.
type SetRoot struct {
	lifecycle

	doc      *model.Document
	root     model.ID
	previous model.ID
}

// NewSetRoot creates a job making root (a detached object, or None) the root.
func NewSetRoot(doc *model.Document, root model.ID) *SetRoot {
	return &SetRoot{doc: doc, root: root}
}

// IsExecutable returns true when root differs from the current root.
func (j *SetRoot) IsExecutable() bool {
	if j.root == j.doc.Root() {
		return false
	}

	return j.root == model.None || isDetachedObject(j.doc, j.root)
}

func (j *SetRoot) Execute() {
	j.toExecuted()

	j.doc.Update(func() {
		j.previous = j.doc.Root()
		j.doc.SetRoot(j.root)
	})
}

func (j *SetRoot) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.SetRoot(j.previous) })
}

func (j *SetRoot) Redo() {
	j.toRedone()
	j.doc.Update(func() { j.doc.SetRoot(j.root) })
}

func (j *SetRoot) Description() string {
	return "Set root " + j.doc.Describe(j.root)
}

// AddProperty attaches a detached property to an instance.
type AddProperty struct {
	lifecycle

	doc      *model.Document
	instance model.ID
	prop     model.ID
	index    int
}

// NewAddProperty creates a job adding prop to instance at index (negative appends).
func NewAddProperty(doc *model.Document, instance, prop model.ID, index int) *AddProperty {
	return &AddProperty{doc: doc, instance: instance, prop: prop, index: index}
}

func (j *AddProperty) IsExecutable() bool {
	if j.doc.Kind(j.instance) != model.KindInstance || j.doc.Kind(j.prop) != model.KindProperty {
		return false
	}

	if j.doc.Parent(j.prop) != model.None {
		return false
	}

	return j.doc.Property(j.instance, j.doc.Object(j.prop).QualifiedName()) == model.None
}

func (j *AddProperty) Execute() {
	j.toExecuted()
	j.doc.Update(j.apply)
}

func (j *AddProperty) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.RemoveProperty(j.prop) })
}

func (j *AddProperty) Redo() {
	j.toRedone()
	j.doc.Update(j.apply)
}

func (j *AddProperty) apply() {
	j.doc.AddProperty(j.instance, j.prop, j.index)
}

func (j *AddProperty) Description() string {
	return "Add " + match.DisplayName(j.doc.Describe(j.prop))
}

// RemoveProperty detaches a property from its instance.
type RemoveProperty struct {
	lifecycle

	doc      *model.Document
	prop     model.ID
	instance model.ID
	index    int
}

// NewRemoveProperty creates a job removing prop from its instance.
func NewRemoveProperty(doc *model.Document, prop model.ID) *RemoveProperty {
	return &RemoveProperty{doc: doc, prop: prop}
}

func (j *RemoveProperty) IsExecutable() bool {
	return j.doc.Kind(j.prop) == model.KindProperty && j.doc.Parent(j.prop) != model.None
}

func (j *RemoveProperty) Execute() {
	j.toExecuted()
	j.doc.Update(func() { j.instance, j.index = j.doc.RemoveProperty(j.prop) })
}

func (j *RemoveProperty) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.AddProperty(j.instance, j.prop, j.index) })
}

func (j *RemoveProperty) Redo() {
	j.toRedone()
	j.doc.Update(func() { j.doc.RemoveProperty(j.prop) })
}

func (j *RemoveProperty) Description() string {
	return "Remove " + match.DisplayName(j.doc.Describe(j.prop))
}

// ModifyValue changes the value of a literal property.
type ModifyValue struct {
	lifecycle

	doc      *model.Document
	prop     model.ID
	value    string
	previous string
}

// NewModifyValue creates a job setting the literal value of prop.
func NewModifyValue(doc *model.Document, prop model.ID, value string) *ModifyValue {
	return &ModifyValue{doc: doc, prop: prop, value: value}
}

func (j *ModifyValue) IsExecutable() bool {
	if j.doc.Kind(j.prop) != model.KindProperty {
		return false
	}

	p := j.doc.Object(j.prop)

	return !p.IsComplex() && p.Literal() != j.value
}

func (j *ModifyValue) Execute() {
	j.toExecuted()

	j.doc.Update(func() {
		j.previous = j.doc.Object(j.prop).Literal()
		j.doc.SetLiteral(j.prop, j.value)
	})
}

func (j *ModifyValue) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.SetLiteral(j.prop, j.previous) })
}

func (j *ModifyValue) Redo() {
	j.toRedone()
	j.doc.Update(func() { j.doc.SetLiteral(j.prop, j.value) })
}

func (j *ModifyValue) Description() string {
	return "Set " + match.DisplayName(j.doc.Describe(j.prop))
}

// ModifyFxID changes the fx:id of an instance or collection.
type ModifyFxID struct {
	lifecycle

	doc      *model.Document
	obj      model.ID
	fxID     string
	previous string
}

// NewModifyFxID creates a job renaming obj. An empty fxID clears it.
func NewModifyFxID(doc *model.Document, obj model.ID, fxID string) *ModifyFxID {
	return &ModifyFxID{doc: doc, obj: obj, fxID: fxID}
}

// IsExecutable returns true when the fx:id changes and is not used elsewhere.
func (j *ModifyFxID) IsExecutable() bool {
	k := j.doc.Kind(j.obj)
	if k != model.KindInstance && k != model.KindCollection {
		return false
	}

	if j.doc.Object(j.obj).FxID() == j.fxID {
		return false
	}

	return j.fxID == "" || j.doc.FindByFxID(j.fxID) == model.None
}

func (j *ModifyFxID) Execute() {
	j.toExecuted()

	j.doc.Update(func() {
		j.previous = j.doc.Object(j.obj).FxID()
		j.doc.SetFxID(j.obj, j.fxID)
	})
}

func (j *ModifyFxID) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.SetFxID(j.obj, j.previous) })
}

func (j *ModifyFxID) Redo() {
	j.toRedone()
	j.doc.Update(func() { j.doc.SetFxID(j.obj, j.fxID) })
}

func (j *ModifyFxID) Description() string {
	if j.fxID == "" {
		return "Clear fx:id"
	}

	return fmt.Sprintf("Set fx:id %q", j.fxID)
}

// ClearController drops the controller attachment of an instance.
type ClearController struct {
	lifecycle

	doc      *model.Document
	obj      model.ID
	previous string
}

// NewClearController creates a job clearing the controller of obj.
func NewClearController(doc *model.Document, obj model.ID) *ClearController {
	return &ClearController{doc: doc, obj: obj}
}

func (j *ClearController) IsExecutable() bool {
	return j.doc.Kind(j.obj) == model.KindInstance && j.doc.Object(j.obj).Controller() != ""
}

func (j *ClearController) Execute() {
	j.toExecuted()

	j.doc.Update(func() {
		j.previous = j.doc.Object(j.obj).Controller()
		j.doc.SetController(j.obj, "")
	})
}

func (j *ClearController) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.SetController(j.obj, j.previous) })
}

func (j *ClearController) Redo() {
	j.toRedone()
	j.doc.Update(func() { j.doc.SetController(j.obj, "") })
}

func (j *ClearController) Description() string {
	return "Clear controller of " + j.doc.Describe(j.obj)
}

// AddValue attaches a detached object to a complex property or a collection.
type AddValue struct {
	lifecycle

	doc    *model.Document
	parent model.ID
	obj    model.ID
	index  int
}

// NewAddValue creates a job attaching obj to parent at index (negative appends).
func NewAddValue(doc *model.Document, parent, obj model.ID, index int) *AddValue {
	return &AddValue{doc: doc, parent: parent, obj: obj, index: index}
}

func (j *AddValue) IsExecutable() bool {
	switch j.doc.Kind(j.parent) {
	case model.KindCollection:
	case model.KindProperty:
		if !j.doc.Object(j.parent).IsComplex() {
			return false
		}
	default:
		return false
	}

	return isDetachedObject(j.doc, j.obj) && !j.doc.IsAncestor(j.obj, j.parent)
}

func (j *AddValue) Execute() {
	j.toExecuted()
	j.doc.Update(j.apply)
}

func (j *AddValue) Undo() {
	j.toUndone()
	j.doc.Update(func() { j.doc.Detach(j.obj) })
}

func (j *AddValue) Redo() {
	j.toRedone()
	j.doc.Update(j.apply)
}

func (j *AddValue) apply() {
	attach(j.doc, j.parent, j.obj, j.index)
}

func (j *AddValue) Description() string {
	return fmt.Sprintf("Add %s to %s", j.doc.Describe(j.obj), j.doc.Describe(j.parent))
}

// Detach removes an object from its parent, or clears the root.
type Detach struct {
	lifecycle

	doc    *model.Document
	obj    model.ID
	parent model.ID
	index  int
}

// NewDetach creates a job detaching obj.
func NewDetach(doc *model.Document, obj model.ID) *Detach {
	return &Detach{doc: doc, obj: obj}
}

func (j *Detach) IsExecutable() bool {
	return j.doc.Kind(j.obj).IsObject() && (j.doc.Parent(j.obj) != model.None || j.doc.Root() == j.obj)
}

func (j *Detach) Execute() {
	j.toExecuted()
	j.doc.Update(func() { j.parent, j.index = j.doc.Detach(j.obj) })
}

func (j *Detach) Undo() {
	j.toUndone()

	j.doc.Update(func() {
		if j.parent == model.None {
			j.doc.SetRoot(j.obj)
			return
		}

		attach(j.doc, j.parent, j.obj, j.index)
	})
}

func (j *Detach) Redo() {
	j.toRedone()
	j.doc.Update(func() { j.doc.Detach(j.obj) })
}

func (j *Detach) Description() string {
	return "Detach " + j.doc.Describe(j.obj)
}

func attach(doc *model.Document, parent, obj model.ID, index int) {
	if doc.Kind(parent) == model.KindCollection {
		doc.AddItem(parent, obj, index)
		return
	}

	doc.AddValue(parent, obj, index)
}
