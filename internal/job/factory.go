package job

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"scene-designer/internal/common"
	"scene-designer/internal/model"
)

// Kinds of jobs registered by NewFactory.
const (
	KindSetRoot         = "set-root"
	KindSet             = "set"
	KindUnset           = "unset"
	KindFxID            = "fxid"
	KindClearController = "clear-controller"
	KindInsert          = "insert"
	KindRemove          = "remove"
	KindPrune           = "prune"
	KindMove            = "move"
	KindDelete          = "delete"
	KindWrap            = "wrap"
	KindUnwrap          = "unwrap"
)

var (
	// ErrUnknownKind is returned by Create for unregistered kinds.
	ErrUnknownKind = errors.New("unknown job kind")
	// ErrInvalidParams is returned when parameters do not fit the kind.
	ErrInvalidParams = errors.New("invalid job parameters")
)

// Params carries the parameters of any job kind. Each kind reads the
// fields it needs.
type Params struct {
	// Objects are the objects the job acts on.
	Objects []model.ID
	// Target is the container, new parent or instance the job acts on.
	Target model.ID
	// Accessory names the target accessory; empty selects the main one.
	Accessory string
	// Index is the insertion index; negative appends.
	Index int
	// Property is a qualified property name.
	Property string
	// Value is a literal value, fx:id or class name.
	Value string
}

func (p Params) single() (model.ID, error) {
	if !common.IsSingle(p.Objects) {
		return model.None, fmt.Errorf("want exactly one object, got %d: %w", len(p.Objects), ErrInvalidParams)
	}

	return p.Objects[0], nil
}

// Constructor builds a job of one kind.
type Constructor func(env Env, p Params) (Job, error)

// Factory builds jobs by kind from an explicit registration table.
type Factory struct {
	env   Env
	table map[string]Constructor
}

// NewFactory creates a factory with every built-in kind registered.
func NewFactory(env Env) *Factory {
	f := &Factory{env: env, table: make(map[string]Constructor)}

	f.Register(KindSetRoot, func(env Env, p Params) (Job, error) {
		return NewSetRoot(env.Doc, p.Target), nil
	})
	f.Register(KindSet, func(env Env, p Params) (Job, error) {
		if p.Property == "" {
			return nil, fmt.Errorf("missing property name: %w", ErrInvalidParams)
		}

		return NewModifyProperty(env, p.Target, p.Property, p.Value), nil
	})
	f.Register(KindUnset, func(env Env, p Params) (Job, error) {
		if p.Property == "" {
			return nil, fmt.Errorf("missing property name: %w", ErrInvalidParams)
		}

		return NewUnsetProperty(env, p.Target, p.Property), nil
	})
	f.Register(KindFxID, func(env Env, p Params) (Job, error) {
		return NewModifyFxID(env.Doc, p.Target, p.Value), nil
	})
	f.Register(KindClearController, func(env Env, p Params) (Job, error) {
		return NewClearController(env.Doc, p.Target), nil
	})
	f.Register(KindInsert, func(env Env, p Params) (Job, error) {
		obj, err := p.single()
		if err != nil {
			return nil, err
		}

		return NewInsertInto(env, p.Target, p.Accessory, obj, p.Index), nil
	})
	f.Register(KindRemove, func(env Env, p Params) (Job, error) {
		obj, err := p.single()
		if err != nil {
			return nil, err
		}

		return NewRemoveObject(env, obj), nil
	})
	f.Register(KindPrune, func(env Env, p Params) (Job, error) {
		obj, err := p.single()
		if err != nil {
			return nil, err
		}

		return NewPruneProperties(env, obj, p.Target), nil
	})
	f.Register(KindMove, func(env Env, p Params) (Job, error) {
		obj, err := p.single()
		if err != nil {
			return nil, err
		}

		return NewRelocate(env, obj, p.Target, p.Accessory, p.Index), nil
	})
	f.Register(KindDelete, func(env Env, p Params) (Job, error) {
		return NewDelete(env, p.Objects...), nil
	})
	f.Register(KindWrap, func(env Env, p Params) (Job, error) {
		if p.Value == "" {
			return nil, fmt.Errorf("missing wrapper class: %w", ErrInvalidParams)
		}

		return NewWrap(env, p.Value, p.Objects...), nil
	})
	f.Register(KindUnwrap, func(env Env, p Params) (Job, error) {
		return NewUnwrap(env, p.Target), nil
	})

	return f
}

// Register adds or replaces the constructor of kind.
func (f *Factory) Register(kind string, ctor Constructor) {
	f.table[kind] = ctor
}

// Kinds returns the registered kinds, sorted.
func (f *Factory) Kinds() []string {
	out := make([]string, 0, len(f.table))
	for k := range f.table {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

// Create builds a job of kind.
func (f *Factory) Create(kind string, p Params) (Job, error) {
	ctor, ok := f.table[kind]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", kind, f.Kinds(), ErrUnknownKind)
	}

	p.Objects = slices.Clone(p.Objects)

	j, err := ctor(f.env, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s job: %w", kind, err)
	}

	return j, nil
}
