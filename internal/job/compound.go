package job

import (
	"fmt"
	"slices"

	"scene-designer/internal/catalog"
	"scene-designer/internal/mask"
	"scene-designer/internal/match"
	"scene-designer/internal/model"
	"scene-designer/internal/prune"
	"scene-designer/internal/treepath"
)

// accessory resolves an accessory of container by name; an empty name
// selects the main accessory.
func accessory(m *mask.Mask, name string) (catalog.Accessory, bool) {
	if name == "" {
		return m.MainAccessory()
	}

	return m.Accessory(name)
}

func validIndex(index, count int) bool {
	return index < 0 || index <= count
}

// NewModifyProperty creates a job setting the literal property called
// qualified on instance, creating it when missing. Accessories hold objects
// and cannot be set to a literal.
func NewModifyProperty(env Env, instance model.ID, qualified, value string) *Batch {
	doc := env.Doc

	return &Batch{
		doc:      doc,
		describe: func() string { return "Set " + match.DisplayName(qualified) },
		executable: func() bool {
			if doc.Kind(instance) != model.KindInstance {
				return false
			}

			m := env.Masks.Get(doc, instance)
			if _, ok := m.Accessory(qualified); ok || m.IsReadOnly(qualified) {
				return false
			}

			p := doc.Property(instance, qualified)
			if p == model.None {
				return true
			}

			return NewModifyValue(doc, p, value).IsExecutable()
		},
		makeSubJobs: func() []Job {
			if p := doc.Property(instance, qualified); p != model.None {
				return []Job{NewModifyValue(doc, p, value)}
			}

			residence, name := model.SplitQualifiedName(qualified)
			p := doc.NewLiteralProperty(residence, name, value)

			return []Job{NewAddProperty(doc, instance, p, -1)}
		},
	}
}

// NewUnsetProperty creates a job removing the property called qualified
// from instance.
func NewUnsetProperty(env Env, instance model.ID, qualified string) *Batch {
	doc := env.Doc

	return &Batch{
		doc:      doc,
		describe: func() string { return "Unset " + match.DisplayName(qualified) },
		executable: func() bool {
			return doc.Property(instance, qualified) != model.None &&
				!env.Masks.Get(doc, instance).IsReadOnly(qualified)
		},
		makeSubJobs: func() []Job {
			return []Job{NewRemoveProperty(doc, doc.Property(instance, qualified))}
		},
	}
}

// NewInsertInto creates a job inserting the detached obj into an accessory
// of container at index (negative appends). The accessory property is
// created when the accessory is empty.
func NewInsertInto(env Env, container model.ID, accessoryName string, obj model.ID, index int) *Batch {
	doc := env.Doc

	return &Batch{
		doc: doc,
		describe: func() string {
			return fmt.Sprintf("Insert %s into %s", doc.Describe(obj), doc.Describe(container))
		},
		executable: func() bool {
			k := doc.Kind(container)
			if k != model.KindInstance && k != model.KindCollection {
				return false
			}

			if !isDetachedObject(doc, obj) || doc.IsAncestor(obj, container) {
				return false
			}

			m := env.Masks.Get(doc, container)

			acc, ok := accessory(m, accessoryName)
			if !ok || !m.IsAcceptingObject(acc, obj) || !validIndex(index, m.Count(acc)) {
				return false
			}

			p := m.Property(acc)

			return p == model.None || doc.Object(p).IsComplex()
		},
		makeSubJobs: func() []Job {
			if doc.Kind(container) == model.KindCollection {
				return []Job{NewAddValue(doc, container, obj, index)}
			}

			m := env.Masks.Get(doc, container)
			acc, _ := accessory(m, accessoryName)

			var out []Job

			p := m.Property(acc)
			if p == model.None {
				p = doc.NewComplexProperty("", acc.Name)
				out = append(out, NewAddProperty(doc, container, p, -1))
			}

			return append(out, NewAddValue(doc, p, obj, index))
		},
	}
}

// NewRemoveObject creates a job detaching obj from its parent. An accessory
// property left empty is removed as well.
func NewRemoveObject(env Env, obj model.ID) *Batch {
	return removeObject(env, obj, false)
}

// removeObject detaches obj. With keepSlot an emptied accessory property
// stays in place, at its index, for a later sub-job of the same batch to refill.
func removeObject(env Env, obj model.ID, keepSlot bool) *Batch {
	doc := env.Doc

	return &Batch{
		doc:        doc,
		describe:   func() string { return "Remove " + doc.Describe(obj) },
		executable: NewDetach(doc, obj).IsExecutable,
		makeSubJobs: func() []Job {
			out := []Job{NewDetach(doc, obj)}

			if p := doc.ParentProperty(obj); !keepSlot && p != model.None && len(doc.Object(p).Values()) == 1 {
				out = append(out, NewRemoveProperty(doc, p))
			}

			return out
		},
	}
}

// pruneJobs turns the pruning plan of obj under newParent into jobs.
func pruneJobs(env Env, obj, newParent model.ID) []Job {
	var out []Job

	for _, a := range prune.Plan(env.Doc, env.Catalog(), obj, newParent) {
		switch a.Kind {
		case prune.RemoveProperty:
			out = append(out, NewRemoveProperty(env.Doc, a.Property))
		case prune.ClearController:
			out = append(out, NewClearController(env.Doc, a.Object))
		}
	}

	return out
}

// NewPruneProperties creates a job removing what obj cannot keep under newParent.
func NewPruneProperties(env Env, obj, newParent model.ID) *Batch {
	doc := env.Doc

	return &Batch{
		doc:         doc,
		describe:    func() string { return "Prune properties of " + doc.Describe(obj) },
		executable:  func() bool { return len(prune.Plan(doc, env.Catalog(), obj, newParent)) > 0 },
		makeSubJobs: func() []Job { return pruneJobs(env, obj, newParent) },
	}
}

// NewRelocate creates a job moving the attached obj into an accessory of
// container at index (negative appends). Pruning and controller clearing
// run before the move, so the tree never holds an invalid property.
func NewRelocate(env Env, obj, container model.ID, accessoryName string, index int) *Batch {
	doc := env.Doc

	return &Batch{
		doc: doc,
		describe: func() string {
			return fmt.Sprintf("Move %s to %s", doc.Describe(obj), doc.Describe(container))
		},
		executable: func() bool {
			if !doc.Kind(obj).IsObject() || doc.Parent(obj) == model.None {
				return false
			}

			k := doc.Kind(container)
			if (k != model.KindInstance && k != model.KindCollection) || doc.IsAncestor(obj, container) {
				return false
			}

			m := env.Masks.Get(doc, container)

			acc, ok := accessory(m, accessoryName)
			if !ok || !m.IsAcceptingObject(acc, obj) || !validIndex(index, m.Count(acc)) {
				return false
			}

			if doc.ParentObject(obj) != container {
				return true
			}

			cur, at, _ := m.AccessoryOf(obj)
			if cur.Name != acc.Name {
				return true
			}

			last := m.Count(acc) - 1

			return index != at && index != at+1 && !(index < 0 && at == last)
		},
		makeSubJobs: func() []Job {
			m := env.Masks.Get(doc, container)
			acc, _ := accessory(m, accessoryName)

			target := index
			cur, at, same := m.AccessoryOf(obj)
			same = same && cur.Name == acc.Name

			if same && target > at {
				target--
			}

			out := pruneJobs(env, obj, container)
			out = append(out, removeObject(env, obj, same), NewInsertInto(env, container, acc.Name, obj, target))

			return out
		},
	}
}

// topmost sorts ids in document order, dropping duplicates and objects
// whose ancestor is in the set.
func topmost(doc *model.Document, ids []model.ID) []model.ID {
	sorted := treepath.Sort(doc, ids)

	var out []model.ID

	for _, id := range sorted {
		if slices.ContainsFunc(out, func(kept model.ID) bool { return doc.IsAncestor(kept, id) }) {
			continue
		}

		out = append(out, id)
	}

	return out
}

// NewDelete creates a job removing objs. Objects are removed last first so
// that undo restores them at their original indices.
func NewDelete(env Env, objs ...model.ID) *Batch {
	doc := env.Doc

	return &Batch{
		doc: doc,
		describe: func() string {
			if len(objs) == 1 {
				return "Delete " + doc.Describe(objs[0])
			}

			return fmt.Sprintf("Delete %d objects", len(objs))
		},
		executable: func() bool {
			if len(objs) == 0 {
				return false
			}

			for _, id := range objs {
				if !NewDetach(doc, id).IsExecutable() {
					return false
				}
			}

			return true
		},
		makeSubJobs: func() []Job {
			ids := topmost(doc, objs)

			out := make([]Job, 0, len(ids))
			for i := len(ids) - 1; i >= 0; i-- {
				out = append(out, NewRemoveObject(env, ids[i]))
			}

			return out
		},
	}
}

// slotOf returns the parent object of id and the accessory holding it.
func slotOf(env Env, id model.ID) (model.ID, catalog.Accessory, int, bool) {
	parent := env.Doc.ParentObject(id)
	if parent == model.None {
		return model.None, catalog.Accessory{}, -1, false
	}

	acc, index, ok := env.Masks.Get(env.Doc, parent).AccessoryOf(id)

	return parent, acc, index, ok
}

// NewWrap creates a job moving objs, which must share one accessory (or be
// the root alone), into the main accessory of a new instance of class. The
// new instance takes the place of the first object. It is created by the
// first execution.
func NewWrap(env Env, class string, objs ...model.ID) *Batch {
	doc := env.Doc
	ids := topmost(doc, objs)

	return &Batch{
		doc: doc,
		describe: func() string {
			return "Wrap in " + class
		},
		executable: func() bool {
			if len(ids) == 0 || len(ids) != len(objs) || !env.Catalog().HasClass(class) {
				return false
			}

			wm := env.Masks.ForClass(doc, class)

			main, ok := wm.MainAccessory()
			if !ok || (!main.IsCollection() && len(ids) > 1) {
				return false
			}

			for _, id := range ids {
				if !doc.Kind(id).IsObject() || !wm.Accepts(main, mask.ObjectClass(doc, id)) {
					return false
				}
			}

			if ids[0] == doc.Root() {
				return len(ids) == 1
			}

			parent, acc, _, ok := slotOf(env, ids[0])
			if !ok || !env.Masks.Get(doc, parent).Accepts(acc, class) {
				return false
			}

			for _, id := range ids[1:] {
				p, a, _, ok := slotOf(env, id)
				if !ok || p != parent || a.Name != acc.Name {
					return false
				}
			}

			return true
		},
		makeSubJobs: func() []Job {
			wrapper := doc.NewInstance(class)
			main, _ := env.Masks.Get(doc, wrapper).MainAccessory()
			parent, acc, first, _ := slotOf(env, ids[0])

			var out []Job
			for _, id := range ids {
				out = append(out, pruneJobs(env, id, wrapper)...)
			}

			for i := len(ids) - 1; i >= 0; i-- {
				out = append(out, removeObject(env, ids[i], parent != model.None))
			}

			for _, id := range ids {
				out = append(out, NewInsertInto(env, wrapper, main.Name, id, -1))
			}

			if parent == model.None {
				return append(out, NewSetRoot(doc, wrapper))
			}

			return append(out, NewInsertInto(env, parent, acc.Name, wrapper, first))
		},
	}
}

// NewUnwrap creates a job replacing container by the children of its main
// accessory. A root container can only be unwrapped around a single child.
func NewUnwrap(env Env, container model.ID) *Batch {
	doc := env.Doc

	children := func() []model.ID {
		m := env.Masks.Get(doc, container)
		if main, ok := m.MainAccessory(); ok {
			return m.Children(main)
		}

		return nil
	}

	return &Batch{
		doc:      doc,
		describe: func() string { return "Unwrap " + doc.Describe(container) },
		executable: func() bool {
			if doc.Kind(container) != model.KindInstance {
				return false
			}

			kids := children()
			if len(kids) == 0 {
				return false
			}

			if doc.Root() == container {
				return len(kids) == 1 && doc.Kind(kids[0]) != model.KindIntrinsic
			}

			parent, acc, _, ok := slotOf(env, container)
			if !ok || (!acc.IsCollection() && len(kids) > 1) {
				return false
			}

			pm := env.Masks.Get(doc, parent)
			for _, kid := range kids {
				if !pm.Accepts(acc, mask.ObjectClass(doc, kid)) {
					return false
				}
			}

			return true
		},
		makeSubJobs: func() []Job {
			kids := children()
			parent, acc, at, _ := slotOf(env, container)

			var out []Job
			for _, kid := range kids {
				out = append(out, pruneJobs(env, kid, parent)...)
			}

			for i := len(kids) - 1; i >= 0; i-- {
				out = append(out, NewRemoveObject(env, kids[i]))
			}

			out = append(out, removeObject(env, container, parent != model.None))

			if parent == model.None {
				return append(out, NewSetRoot(doc, kids[0]))
			}

			for i, kid := range kids {
				out = append(out, NewInsertInto(env, parent, acc.Name, kid, at+i))
			}

			return out
		},
	}
}
