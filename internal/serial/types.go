package serial

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"scene-designer/internal/model"
)

var (
	// ErrNodeKind is returned for nodes that are not exactly one kind.
	ErrNodeKind = errors.New("node must be exactly one of instance, collection, reference or include")
	// ErrNodeField is returned for fields a node kind cannot carry.
	ErrNodeField = errors.New("field not allowed on this node kind")
	// ErrProperty is returned for malformed properties.
	ErrProperty = errors.New("invalid property")
)

// File is the top-level structure of a scene file.
type File struct {
	Version string `yaml:"version"`
	Root    *Node  `yaml:"root,omitempty"`
}

// Node is one object of the tree.
type Node struct {
	Kind      model.Kind
	Intrinsic model.IntrinsicType

	// Class is the instance class or the declared collection item type.
	Class string
	// Source is the fx:id of a reference or the location of an include.
	Source string

	FxID       string
	Controller string
	Properties []Property
	Items      []*Node
}

// Property is one instance property. A nil Value marks a complex property.
type Property struct {
	Name    string  `yaml:"name"`
	Value   *string `yaml:"value,omitempty"`
	Objects []*Node `yaml:"objects,omitempty"`
}

// Literal returns a literal property.
func Literal(name, value string) Property {
	return Property{Name: name, Value: &value}
}

// Complex returns a property holding objects.
func Complex(name string, objects ...*Node) Property {
	return Property{Name: name, Objects: objects}
}

// IsComplex returns true when the property holds objects.
func (p Property) IsComplex() bool { return p.Value == nil }

type rawNode struct {
	Instance   *string    `yaml:"instance,omitempty"`
	Collection *string    `yaml:"collection,omitempty"`
	Reference  *string    `yaml:"reference,omitempty"`
	Include    *string    `yaml:"include,omitempty"`
	FxID       string     `yaml:"fx:id,omitempty"`
	Controller string     `yaml:"fx:controller,omitempty"`
	Properties []Property `yaml:"properties,omitempty"`
	Items      []*Node    `yaml:"items,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Node.
// Exactly one of instance, collection, reference or include must be set.
func (n *Node) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %v", node.Line, node.Kind)
	}

	var raw rawNode
	if err := node.Decode(&raw); err != nil {
		return err
	}

	kinds := 0

	for _, set := range []*string{raw.Instance, raw.Collection, raw.Reference, raw.Include} {
		if set != nil {
			kinds++
		}
	}

	if kinds != 1 {
		return fmt.Errorf("line %d: %w", node.Line, ErrNodeKind)
	}

	*n = Node{
		FxID:       raw.FxID,
		Controller: raw.Controller,
		Properties: raw.Properties,
		Items:      raw.Items,
	}

	var bad string

	switch {
	case raw.Instance != nil:
		n.Kind = model.KindInstance
		n.Class = *raw.Instance

		if n.Class == "" {
			return fmt.Errorf("line %d: instance has no class: %w", node.Line, ErrNodeKind)
		}

		if len(raw.Items) > 0 {
			bad = "items"
		}
	case raw.Collection != nil:
		n.Kind = model.KindCollection
		n.Class = *raw.Collection

		switch {
		case raw.Controller != "":
			bad = "fx:controller"
		case len(raw.Properties) > 0:
			bad = "properties"
		}
	default:
		n.Kind = model.KindIntrinsic
		n.Intrinsic = model.IntrinsicReference
		src := raw.Reference

		if raw.Include != nil {
			n.Intrinsic = model.IntrinsicInclude
			src = raw.Include
		}

		n.Source = *src

		switch {
		case raw.FxID != "":
			bad = "fx:id"
		case raw.Controller != "":
			bad = "fx:controller"
		case len(raw.Properties) > 0:
			bad = "properties"
		case len(raw.Items) > 0:
			bad = "items"
		}
	}

	if bad != "" {
		return fmt.Errorf("line %d: %s on %s: %w", node.Line, bad, n.kindName(), ErrNodeField)
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Node.
func (n *Node) MarshalYAML() (any, error) {
	raw := rawNode{
		FxID:       n.FxID,
		Controller: n.Controller,
		Properties: n.Properties,
		Items:      n.Items,
	}

	switch n.Kind {
	case model.KindInstance:
		raw.Instance = &n.Class
	case model.KindCollection:
		raw.Collection = &n.Class
	case model.KindIntrinsic:
		if n.Intrinsic == model.IntrinsicInclude {
			raw.Include = &n.Source
		} else {
			raw.Reference = &n.Source
		}
	default:
		return nil, fmt.Errorf("cannot marshal %v: %w", n.Kind, ErrNodeKind)
	}

	return raw, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Property.
// A property needs a name and cannot carry both a value and objects.
func (p *Property) UnmarshalYAML(node *yaml.Node) error {
	type plain Property

	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.Name == "" {
		return fmt.Errorf("line %d: property has no name: %w", node.Line, ErrProperty)
	}

	if raw.Value != nil && len(raw.Objects) > 0 {
		return fmt.Errorf("line %d: property %s has both a value and objects: %w", node.Line, raw.Name, ErrProperty)
	}

	*p = Property(raw)

	return nil
}

func (n *Node) kindName() string {
	switch n.Kind {
	case model.KindInstance:
		return "instance"
	case model.KindCollection:
		return "collection"
	default:
		return n.Intrinsic.String()
	}
}
