// Package catalog holds the component and property metadata the editor
// knows about: classes and their superclasses, the accessories (child
// slots) each container class exposes, its layout kind, and per-property
// flags such as read-only, multiline, resource key and trimming policy.
//
// The catalogue is plain data loaded from YAML. A built-in catalogue is
// embedded in the binary; Default returns it. Supporting a new container
// kind means adding a class entry, not code.
package catalog
