// Package metamodel describes the structural types that query paths navigate:
// entities, embeddables, basic values, collections and maps.
//
// A Metamodel can be assembled in code with NewSchema, loaded from YAML with
// LoadYAML, derived from a DBML project with FromDBML, or derived from gorm
// models with FromModels.
package metamodel

import "fmt"

// Kind classifies a Type.
type Kind int

const (
	KindBasic Kind = iota
	KindEntity
	KindEmbeddable
	KindCollection
	KindList
	KindSet
	KindMap
	KindMapEntry
)

func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindEmbeddable:
		return "embeddable"
	case KindCollection:
		return "collection"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindMapEntry:
		return "map-entry"
	default:
		return "basic"
	}
}

// Type identifies a structural type. Types compare by value.
type Type struct {
	Name string
	Kind Kind
}

// Basic value types.
var (
	String    = Type{Name: "String", Kind: KindBasic}
	Integer   = Type{Name: "Integer", Kind: KindBasic}
	Long      = Type{Name: "Long", Kind: KindBasic}
	Double    = Type{Name: "Double", Kind: KindBasic}
	Decimal   = Type{Name: "Decimal", Kind: KindBasic}
	Boolean   = Type{Name: "Boolean", Kind: KindBasic}
	Date      = Type{Name: "Date", Kind: KindBasic}
	Time      = Type{Name: "Time", Kind: KindBasic}
	Timestamp = Type{Name: "Timestamp", Kind: KindBasic}
	Bytes     = Type{Name: "Bytes", Kind: KindBasic}
	UUID      = Type{Name: "UUID", Kind: KindBasic}
)

// Container types. Element and key types live on the Attribute.
var (
	Collection = Type{Name: "Collection", Kind: KindCollection}
	List       = Type{Name: "List", Kind: KindList}
	Set        = Type{Name: "Set", Kind: KindSet}
	Map        = Type{Name: "Map", Kind: KindMap}
	MapEntry   = Type{Name: "Map.Entry", Kind: KindMapEntry}
)

var basics = map[string]Type{}

func init() {
	for _, t := range []Type{String, Integer, Long, Double, Decimal, Boolean, Date, Time, Timestamp, Bytes, UUID} {
		basics[t.Name] = t
	}
}

// BasicType returns the basic type with the given name.
func BasicType(name string) (Type, bool) {
	t, ok := basics[name]
	return t, ok
}

// EntityType returns the identity of the named entity.
func EntityType(name string) Type {
	return Type{Name: name, Kind: KindEntity}
}

// EmbeddableType returns the identity of the named embeddable.
func EmbeddableType(name string) Type {
	return Type{Name: name, Kind: KindEmbeddable}
}

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool {
	return t == Type{}
}

// IsPlural reports whether t is a collection or map container.
func (t Type) IsPlural() bool {
	switch t.Kind {
	case KindCollection, KindList, KindSet, KindMap:
		return true
	}
	return false
}

// IsList reports whether t is assignable to a list.
func (t Type) IsList() bool {
	return t.Kind == KindList
}

// IsMap reports whether t is a map container.
func (t Type) IsMap() bool {
	return t.Kind == KindMap
}

// IsManaged reports whether t has attributes of its own.
func (t Type) IsManaged() bool {
	return t.Kind == KindEntity || t.Kind == KindEmbeddable
}

func (t Type) String() string {
	return t.Name
}

// Synthetic marks attributes that do not exist on a managed type but are
// produced by navigation.
type Synthetic int

const (
	NotSynthetic Synthetic = iota
	SyntheticListIndex
	SyntheticMapEntry
)

// Attribute is a member of a managed type. Attributes compare by value and are
// used as map keys in resolution results.
type Attribute struct {
	Name      string
	Declaring Type
	// Type is the declared type; for plural attributes the container.
	Type Type
	// Element is the element type metadata of a plural attribute (the value type for maps).
	Element Type
	// Key is the key type metadata of a map attribute.
	Key       Type
	Synthetic Synthetic
}

// IsPlural reports whether the attribute is a collection or map.
func (a Attribute) IsPlural() bool {
	return a.Type.IsPlural()
}

func (a Attribute) String() string {
	switch a.Synthetic {
	case SyntheticListIndex:
		return fmt.Sprintf("INDEX(%s.%s)", a.Declaring.Name, a.Name)
	case SyntheticMapEntry:
		return fmt.Sprintf("ENTRY(%s.%s)", a.Declaring.Name, a.Name)
	}
	return a.Declaring.Name + "." + a.Name
}

// ListIndexAttribute derives the synthetic attribute standing for the index of a list.
func ListIndexAttribute(list Attribute) Attribute {
	list.Synthetic = SyntheticListIndex
	return list
}

// MapEntryAttribute derives the synthetic attribute standing for the entries of a map.
func MapEntryAttribute(m Attribute) Attribute {
	m.Synthetic = SyntheticMapEntry
	return m
}
