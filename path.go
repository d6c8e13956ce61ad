package exprql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/exprql/internal/types"
)

// TryPath creates a path of plain properties from dotted text such as "a.address.city".
// Every segment must be a valid identifier.
func TryPath(dotted string) (*types.Path, error) {
	if dotted == "" {
		return nil, fmt.Errorf("empty path")
	}
	segments := strings.Split(dotted, ".")
	p := &types.Path{Elements: make([]types.PathElement, 0, len(segments))}
	for _, s := range segments {
		if !isValidIdentifier(s) {
			return nil, fmt.Errorf("invalid path segment '%s' in '%s'", s, dotted)
		}
		p.Elements = append(p.Elements, &types.Property{Name: s})
	}
	return p, nil
}

// Path creates a path of plain properties from dotted text.
// Panics if a segment is not a valid identifier.
func Path(dotted string) *types.Path {
	p, err := TryPath(dotted)
	if err != nil {
		panic(err)
	}
	return p
}

// PathOf creates a path from explicit elements, for steps that dotted text
// cannot express such as KEY(...) or TREAT(...).
func PathOf(elements ...types.PathElement) *types.Path {
	return &types.Path{Elements: elements}
}

// Prop creates a single property step.
func Prop(name string) *types.Property {
	return &types.Property{Name: name}
}

// At creates an indexed access base[index].
func At(base types.PathElement, index types.Expression) *types.Array {
	return &types.Array{Base: base, Index: index}
}

// Index creates INDEX(path).
func Index(p *types.Path) *types.ListIndex {
	return &types.ListIndex{Path: p}
}

// Key creates KEY(path).
func Key(p *types.Path) *types.MapKey {
	return &types.MapKey{Path: p}
}

// Value creates VALUE(path).
func Value(p *types.Path) *types.MapValue {
	return &types.MapValue{Path: p}
}

// Entry creates ENTRY(path).
func Entry(p *types.Path) *types.MapEntry {
	return &types.MapEntry{Path: p}
}

// TreatAs creates TREAT(expr AS typeName).
func TreatAs(expr types.Expression, typeName string) *types.Treat {
	return &types.Treat{Expr: expr, Type: typeName}
}

// isValidIdentifier allows letters, digits and underscores, not starting with a digit.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}
