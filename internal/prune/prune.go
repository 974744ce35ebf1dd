package prune

import (
	"scene-designer/internal/catalog"
	"scene-designer/internal/common"
	"scene-designer/internal/model"
)

// ActionKind tells what a pruning action removes.
type ActionKind int

const (
	// RemoveProperty removes Action.Property from Action.Object.
	RemoveProperty ActionKind = iota
	// ClearController clears the controller attachment of Action.Object.
	ClearController
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case RemoveProperty:
		return "remove-property"
	case ClearController:
		return "clear-controller"
	default:
		return common.UnknownStr
	}
}

// Action is one reversible removal to perform before a relocation.
type Action struct {
	Kind     ActionKind
	Object   model.ID
	Property model.ID
}

// Plan returns the actions that make obj valid under newParent. newParent is
// the instance or collection that will hold obj, or None when obj becomes a
// root or stays detached. Property removals come first, in property order,
// then the controller clear. Objects other than instances need nothing.
func Plan(doc *model.Document, cat *catalog.Catalog, obj, newParent model.ID) []Action {
	if doc.Kind(obj) != model.KindInstance {
		return nil
	}

	o := doc.Object(obj)

	var out []Action

	for _, pid := range o.Properties() {
		p := doc.Object(pid)
		if !isTrimmingNeeded(doc, cat, o.Class(), p, newParent) {
			continue
		}

		if shouldPrune(doc, p, newParent) {
			out = append(out, Action{Kind: RemoveProperty, Object: obj, Property: pid})
		}
	}

	if o.Controller() != "" && newParent != model.None {
		out = append(out, Action{Kind: ClearController, Object: obj})
	}

	return out
}

// isTrimmingNeeded asks the trim policy whether p depends on its parent.
func isTrimmingNeeded(doc *model.Document, cat *catalog.Catalog, class string, p *model.Object, newParent model.ID) bool {
	if p.IsStatic() {
		return true
	}

	if cat == nil {
		return false
	}

	meta, ok := cat.Property(class, "", p.Name())
	if !ok || meta.Trim != catalog.TrimContext {
		return false
	}

	return doc.Kind(newParent) != model.KindInstance
}

func shouldPrune(doc *model.Document, p *model.Object, newParent model.ID) bool {
	if !p.IsStatic() {
		return true
	}

	if doc.Kind(newParent) != model.KindInstance {
		return true
	}

	return common.SimpleName(p.Residence()) != common.SimpleName(doc.Object(newParent).Class())
}
