// Package mask provides the hierarchy mask: a uniform, container-agnostic
// view of an object's child slots (accessories).
//
// Generic editing operations (insert, delete, relocate, wrap, unwrap, drop)
// are written once against a Mask instead of once per container class. A
// new container kind only needs a catalogue entry.
package mask
