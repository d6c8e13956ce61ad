package metamodel

import "errors"

var (
	// ErrNotManaged is returned when a type has no managed-type descriptor.
	ErrNotManaged = errors.New("type is not managed")
	// ErrUnknownType is returned when a type name cannot be resolved.
	ErrUnknownType = errors.New("unknown type")
)

// Metamodel answers structural questions about types.
type Metamodel interface {
	// Managed returns the descriptor of an entity or embeddable type.
	Managed(t Type) (ManagedType, error)
	// TypeByName returns the type registered under name.
	TypeByName(name string) (Type, error)
}

// ManagedType describes the members of an entity or embeddable.
type ManagedType interface {
	Type() Type
	// Attribute returns the named member, including inherited ones.
	Attribute(name string) (Attribute, bool)
	// TypeArguments returns the declared generic arguments of a plural member:
	// [element] for collections and [key, value] for maps. A nil result means the
	// arguments are unavailable and callers fall back to the attribute metadata.
	TypeArguments(name string) []Type
}
