package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"scene-designer/internal/common"
)

// Layout tells how a container arranges the children of its main accessory.
// It selects the drop-target algorithm and the materialized geometry.
type Layout int

const (
	// LayoutInherit takes the layout of the superclass.
	LayoutInherit Layout = iota
	// LayoutNone has no geometric placement rule; drops append.
	LayoutNone
	// LayoutFree places children at their own layoutX/layoutY.
	LayoutFree
	// LayoutVertical stacks children top to bottom.
	LayoutVertical
	// LayoutHorizontal stacks children left to right.
	LayoutHorizontal
	// LayoutRegion places children in five named regions.
	LayoutRegion
	// LayoutSingle holds a single content child filling the container.
	LayoutSingle
)

var layoutNames = map[Layout]string{
	LayoutInherit:    "inherit",
	LayoutNone:       "none",
	LayoutFree:       "free",
	LayoutVertical:   "vertical",
	LayoutHorizontal: "horizontal",
	LayoutRegion:     "region",
	LayoutSingle:     "single",
}

// String returns a human-readable layout name.
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}

	return common.UnknownStr
}

// UnmarshalYAML implements custom YAML unmarshaling for Layout.
func (l *Layout) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, layoutNames, l)
}

// MarshalYAML implements custom YAML marshaling for Layout.
func (l Layout) MarshalYAML() (any, error) {
	return l.String(), nil
}

// Cardinality tells how many objects an accessory can hold.
type Cardinality int

const (
	// Single accessories hold at most one object.
	Single Cardinality = iota
	// Multiple accessories hold an ordered list of objects.
	Multiple
)

var cardinalityNames = map[Cardinality]string{
	Single:   "single",
	Multiple: "multiple",
}

// String returns a human-readable cardinality name.
func (c Cardinality) String() string {
	if name, ok := cardinalityNames[c]; ok {
		return name
	}

	return common.UnknownStr
}

// UnmarshalYAML implements custom YAML unmarshaling for Cardinality.
func (c *Cardinality) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, cardinalityNames, c)
}

// MarshalYAML implements custom YAML marshaling for Cardinality.
func (c Cardinality) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Visibility classifies how prominently an accessory is offered to the user.
type Visibility int

const (
	Standard Visibility = iota
	Expert
	Hidden
)

var visibilityNames = map[Visibility]string{
	Standard: "standard",
	Expert:   "expert",
	Hidden:   "hidden",
}

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}

	return common.UnknownStr
}

// UnmarshalYAML implements custom YAML unmarshaling for Visibility.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, visibilityNames, v)
}

// MarshalYAML implements custom YAML marshaling for Visibility.
func (v Visibility) MarshalYAML() (any, error) {
	return v.String(), nil
}

// Trim is the trimming policy of a property when its object changes parent.
type Trim int

const (
	// TrimNever keeps the property whatever the new parent.
	TrimNever Trim = iota
	// TrimContext marks position/rotation/scale-like properties that only
	// make sense under an instance parent.
	TrimContext
)

var trimNames = map[Trim]string{
	TrimNever:   "never",
	TrimContext: "context",
}

// String returns a human-readable trim policy name.
func (t Trim) String() string {
	if name, ok := trimNames[t]; ok {
		return name
	}

	return common.UnknownStr
}

// UnmarshalYAML implements custom YAML unmarshaling for Trim.
func (t *Trim) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, trimNames, t)
}

// MarshalYAML implements custom YAML marshaling for Trim.
func (t Trim) MarshalYAML() (any, error) {
	return t.String(), nil
}

func unmarshalEnum[E comparable](node *yaml.Node, names map[E]string, out *E) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar, got %v", node.Line, node.Kind)
	}

	for value, name := range names {
		if name == node.Value {
			*out = value
			return nil
		}
	}

	return fmt.Errorf("line %d: unknown value %q", node.Line, node.Value)
}

// Accessory describes one named child slot of a container class.
type Accessory struct {
	// Name is the property holding the slot's objects.
	Name string `yaml:"name"`
	// Content lists the accepted classes; subclasses are accepted too.
	Content []string `yaml:"content,omitempty"`
	// Cardinality tells whether the slot holds one object or a list.
	Cardinality Cardinality `yaml:"cardinality"`
	// Main marks the slot holding ordinary children.
	Main bool `yaml:"main,omitempty"`
	// FreePositioning marks absolute-layout slots.
	FreePositioning bool `yaml:"free,omitempty"`
	// Visibility classifies the slot for editors.
	Visibility Visibility `yaml:"visibility,omitempty"`
	// Region names the area of a region layout this slot occupies.
	Region string `yaml:"region,omitempty"`
}

// IsCollection returns true when the accessory holds a list of objects.
func (a Accessory) IsCollection() bool {
	return a.Cardinality == Multiple
}

// PropertyMeta describes a value property.
type PropertyMeta struct {
	Name        string `yaml:"name"`
	ReadOnly    bool   `yaml:"readOnly,omitempty"`
	Multiline   bool   `yaml:"multiline,omitempty"`
	ResourceKey bool   `yaml:"resourceKey,omitempty"`
	Trim        Trim   `yaml:"trim,omitempty"`
}

// Class describes one component class of the catalogue.
type Class struct {
	Name        string         `yaml:"name"`
	Super       string         `yaml:"super,omitempty"`
	Abstract    bool           `yaml:"abstract,omitempty"`
	Layout      Layout         `yaml:"layout,omitempty"`
	Accessories []Accessory    `yaml:"accessories,omitempty"`
	Properties  []PropertyMeta `yaml:"properties,omitempty"`
	// Statics are the static properties this class is the residence of.
	Statics []PropertyMeta `yaml:"statics,omitempty"`
}

// File is the YAML document a catalogue is loaded from.
type File struct {
	Version string  `yaml:"version"`
	Classes []Class `yaml:"classes"`
}
