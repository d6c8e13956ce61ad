package metamodel

import (
	"fmt"
	"sort"
)

// Schema is an in-memory Metamodel.
// It is safe for concurrent reads once building has finished.
type Schema struct {
	types map[string]*managedType
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{types: make(map[string]*managedType)}
}

type managedType struct {
	schema *Schema
	typ    Type
	super  string
	attrs  map[string]Attribute
	args   map[string][]Type
}

// Entity returns the builder for the named entity, creating it on first use.
func (s *Schema) Entity(name string) *TypeBuilder {
	return s.define(EntityType(name))
}

// Embeddable returns the builder for the named embeddable, creating it on first use.
func (s *Schema) Embeddable(name string) *TypeBuilder {
	return s.define(EmbeddableType(name))
}

func (s *Schema) define(t Type) *TypeBuilder {
	mt, ok := s.types[t.Name]
	if !ok || mt.typ.Kind != t.Kind {
		mt = &managedType{
			schema: s,
			typ:    t,
			attrs:  make(map[string]Attribute),
			args:   make(map[string][]Type),
		}
		s.types[t.Name] = mt
	}
	return &TypeBuilder{mt: mt}
}

// Managed returns the descriptor for t.
func (s *Schema) Managed(t Type) (ManagedType, error) {
	if !t.IsManaged() {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotManaged, t.Name, t.Kind)
	}
	mt, ok := s.types[t.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotManaged, t.Name)
	}
	return mt, nil
}

// TypeByName resolves managed types first, then basic types.
func (s *Schema) TypeByName(name string) (Type, error) {
	if mt, ok := s.types[name]; ok {
		return mt.typ, nil
	}
	if t, ok := BasicType(name); ok {
		return t, nil
	}
	return Type{}, fmt.Errorf("%w: %s", ErrUnknownType, name)
}

// Types lists the managed types sorted by name.
func (s *Schema) Types() []Type {
	out := make([]Type, 0, len(s.types))
	for _, mt := range s.types {
		out = append(out, mt.typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (mt *managedType) Type() Type {
	return mt.typ
}

func (mt *managedType) Attribute(name string) (Attribute, bool) {
	seen := make(map[string]bool)
	for cur := mt; cur != nil && !seen[cur.typ.Name]; cur = mt.schema.types[cur.super] {
		seen[cur.typ.Name] = true
		if a, ok := cur.attrs[name]; ok {
			return a, true
		}
		if cur.super == "" {
			break
		}
	}
	return Attribute{}, false
}

func (mt *managedType) TypeArguments(name string) []Type {
	seen := make(map[string]bool)
	for cur := mt; cur != nil && !seen[cur.typ.Name]; cur = mt.schema.types[cur.super] {
		seen[cur.typ.Name] = true
		if _, ok := cur.attrs[name]; ok {
			return cur.args[name]
		}
		if cur.super == "" {
			break
		}
	}
	return nil
}

// TypeBuilder adds members to a managed type.
type TypeBuilder struct {
	mt *managedType
}

// Type returns the identity of the type being built.
func (b *TypeBuilder) Type() Type {
	return b.mt.typ
}

// Extends declares the supertype whose attributes are inherited.
func (b *TypeBuilder) Extends(super Type) *TypeBuilder {
	b.mt.super = super.Name
	return b
}

// Attr adds a singular attribute.
func (b *TypeBuilder) Attr(name string, t Type) *TypeBuilder {
	b.mt.attrs[name] = Attribute{Name: name, Declaring: b.mt.typ, Type: t}
	delete(b.mt.args, name)
	return b
}

// Collection adds an unordered collection attribute.
func (b *TypeBuilder) Collection(name string, elem Type) *TypeBuilder {
	return b.plural(name, Collection, Type{}, elem)
}

// List adds an ordered list attribute.
func (b *TypeBuilder) List(name string, elem Type) *TypeBuilder {
	return b.plural(name, List, Type{}, elem)
}

// Set adds a set attribute.
func (b *TypeBuilder) Set(name string, elem Type) *TypeBuilder {
	return b.plural(name, Set, Type{}, elem)
}

// Map adds a map attribute.
func (b *TypeBuilder) Map(name string, key, value Type) *TypeBuilder {
	return b.plural(name, Map, key, value)
}

// Erased drops the declared type arguments of a plural attribute, leaving only
// the element and key metadata on the attribute itself.
func (b *TypeBuilder) Erased(name string) *TypeBuilder {
	delete(b.mt.args, name)
	return b
}

func (b *TypeBuilder) plural(name string, container, key, elem Type) *TypeBuilder {
	b.mt.attrs[name] = Attribute{
		Name:      name,
		Declaring: b.mt.typ,
		Type:      container,
		Element:   elem,
		Key:       key,
	}
	if container.IsMap() {
		b.mt.args[name] = []Type{key, elem}
	} else {
		b.mt.args[name] = []Type{elem}
	}
	return b
}
