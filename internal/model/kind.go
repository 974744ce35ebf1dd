package model

import "scene-designer/internal/common"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags the variant of an Object.
type Kind int

const (
	_ Kind = iota // zero value is an invalid kind

	KindInstance
	KindCollection
	KindIntrinsic
	KindProperty
)

// IsObject returns true for the variants that can be placed as values
// of a property or items of a collection.
func (k Kind) IsObject() bool {
	switch k {
	default:
		return false
	case KindInstance, KindCollection, KindIntrinsic:
		return true
	}
}

// IntrinsicType distinguishes the intrinsic object flavours.
type IntrinsicType int

const (
	// IntrinsicReference points at another object of the same document by fx:id.
	IntrinsicReference IntrinsicType = iota
	// IntrinsicInclude points at another document by location.
	IntrinsicInclude
)

// String returns a human-readable intrinsic type name.
func (t IntrinsicType) String() string {
	switch t {
	case IntrinsicReference:
		return "reference"
	case IntrinsicInclude:
		return "include"
	default:
		return common.UnknownStr
	}
}
