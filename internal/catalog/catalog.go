package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"scene-designer/internal/common"
	"scene-designer/internal/diagnostic"
)

// SupportedMajor is the catalogue format major version this build reads.
const SupportedMajor = "v1"

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalogue. It panics if the embedded
// catalogue is invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalogue is invalid: %v", err))
		}

		defaultCatalog = c
	})

	return defaultCatalog
}

// Catalog is the closed set of component classes known to the editor.
// It implements model.ClassResolver.
type Catalog struct {
	version string
	classes map[string]*Class
	order   []string
}

// LoadFile loads and parses a YAML catalogue from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses and validates YAML catalogue data.
func Parse(data []byte) (*Catalog, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue YAML: %w", err)
	}

	return New(f)
}

// New builds a catalogue from its file form after validating it.
func New(f File) (*Catalog, error) {
	c := &Catalog{
		version: f.Version,
		classes: make(map[string]*Class, len(f.Classes)),
	}

	diags := &diagnostic.Diagnostics{}

	switch {
	case !semver.IsValid(f.Version):
		diags.AddError("invalid_version", fmt.Sprintf("catalogue version %q is not a semantic version", f.Version), "", "")
	case semver.Major(f.Version) != SupportedMajor:
		diags.AddError("unsupported_version",
			fmt.Sprintf("catalogue version %s is not supported, want %s.x", f.Version, SupportedMajor), "", "")
	}

	for i := range f.Classes {
		cls := f.Classes[i]
		if cls.Name == "" {
			diags.AddError("missing_class_name", fmt.Sprintf("class #%d has no name", i), "", "")
			continue
		}

		if _, dup := c.classes[cls.Name]; dup {
			diags.AddError("duplicate_class", fmt.Sprintf("duplicate class %q", cls.Name), cls.Name, "")
			continue
		}

		c.classes[cls.Name] = &cls
		c.order = append(c.order, cls.Name)
	}

	c.validate(diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	return c, nil
}

func (c *Catalog) validate(diags *diagnostic.Diagnostics) {
	for _, name := range c.order {
		cls := c.classes[name]

		if cls.Super != "" && c.classes[cls.Super] == nil {
			diags.AddError("unknown_super", fmt.Sprintf("unknown superclass %q", cls.Super), name, "")
			continue
		}

		if c.hasSuperCycle(name) {
			diags.AddError("super_cycle", "superclass chain loops", name, "")
			continue
		}

		for _, acc := range cls.Accessories {
			for _, content := range acc.Content {
				if c.classes[content] == nil {
					diags.AddError("unknown_content",
						fmt.Sprintf("accessory accepts unknown class %q", content), name, acc.Name)
				}
			}
		}
	}

	if diags.HasErrors() {
		return
	}

	for _, name := range c.order {
		mains := 0

		for _, acc := range c.Accessories(name) {
			if acc.Main {
				mains++
			}
		}

		if mains > 1 {
			diags.AddError("multiple_main", "more than one main accessory", name, "")
		}
	}
}

func (c *Catalog) hasSuperCycle(name string) bool {
	seen := map[string]bool{}

	for cur := name; cur != ""; {
		if seen[cur] {
			return true
		}

		seen[cur] = true

		cls := c.classes[cur]
		if cls == nil {
			return false
		}

		cur = cls.Super
	}

	return false
}

// Version returns the catalogue version.
func (c *Catalog) Version() string { return c.version }

// ClassNames returns the declared class names in declaration order.
func (c *Catalog) ClassNames() []string { return slices.Clone(c.order) }

// Class returns the class declaration for name. Qualified names are looked
// up by their simple name.
func (c *Catalog) Class(name string) (*Class, bool) {
	if cls, ok := c.classes[name]; ok {
		return cls, true
	}

	cls, ok := c.classes[common.SimpleName(name)]

	return cls, ok
}

// HasClass returns true when name can be materialized: it is declared and
// not abstract.
func (c *Catalog) HasClass(name string) bool {
	cls, ok := c.Class(name)
	return ok && !cls.Abstract
}

// chain returns the class and its superclasses, most derived first.
func (c *Catalog) chain(name string) []*Class {
	var out []*Class

	cls, ok := c.Class(name)
	for ok && len(out) <= len(c.classes) {
		out = append(out, cls)
		if cls.Super == "" {
			break
		}

		cls, ok = c.classes[cls.Super]
	}

	return out
}

// IsSubclassOf returns true when class is super or inherits from it.
func (c *Catalog) IsSubclassOf(class, super string) bool {
	want := common.SimpleName(super)

	for _, cls := range c.chain(class) {
		if cls.Name == want {
			return true
		}
	}

	return false
}

// Accessories returns the accessories of class: inherited ones first, in
// superclass order, then the class's own. A redeclared accessory replaces
// the inherited one at its inherited position.
func (c *Catalog) Accessories(class string) []Accessory {
	chain := c.chain(class)

	var out []Accessory

	for i := len(chain) - 1; i >= 0; i-- {
		for _, acc := range chain[i].Accessories {
			idx := slices.IndexFunc(out, func(a Accessory) bool { return a.Name == acc.Name })
			if idx >= 0 {
				out[idx] = acc
			} else {
				out = append(out, acc)
			}
		}
	}

	return out
}

// Layout returns the effective layout of class.
func (c *Catalog) Layout(class string) Layout {
	for _, cls := range c.chain(class) {
		if cls.Layout != LayoutInherit {
			return cls.Layout
		}
	}

	return LayoutNone
}

// Property returns the metadata of a property as seen on an instance of
// class. Static properties (non-empty residence) are looked up on the
// residence class.
func (c *Catalog) Property(class, residence, name string) (PropertyMeta, bool) {
	if residence != "" {
		for _, cls := range c.chain(residence) {
			for _, p := range cls.Statics {
				if p.Name == name {
					return p, true
				}
			}
		}

		return PropertyMeta{}, false
	}

	for _, cls := range c.chain(class) {
		for _, p := range cls.Properties {
			if p.Name == name {
				return p, true
			}
		}
	}

	return PropertyMeta{}, false
}

// PropertyNames returns every non-static property name known for class,
// most derived first, without duplicates.
func (c *Catalog) PropertyNames(class string) []string {
	var out []string

	for _, cls := range c.chain(class) {
		for _, p := range cls.Properties {
			if !slices.Contains(out, p.Name) {
				out = append(out, p.Name)
			}
		}
	}

	return out
}

// File returns the catalogue in its YAML file form.
func (c *Catalog) File() File {
	f := File{Version: c.version}
	for _, name := range c.order {
		f.Classes = append(f.Classes, *c.classes[name])
	}

	return f
}

// Marshal serializes a catalogue to YAML.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c.File())
}
