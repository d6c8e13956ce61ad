package exprql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/exprql/internal/types"
)

// TryParam creates a named parameter, returning an error if the name is invalid.
func TryParam(name string) (*types.Parameter, error) {
	if !isValidParamName(name) {
		return nil, fmt.Errorf("invalid parameter name '%s': must be alphanumeric with underscores, starting with letter", name)
	}
	return &types.Parameter{Name: name}, nil
}

// Param creates a named parameter.
// This is the primary way to reference user values in queries.
func Param(name string) *types.Parameter {
	p, err := TryParam(name)
	if err != nil {
		panic(err)
	}
	return p
}

// CollectionParam creates a parameter bound to a collection, rendered without
// parentheses as the sole element of an IN list.
func CollectionParam(name string) *types.Parameter {
	p := Param(name)
	p.CollectionValued = true
	return p
}

// Unbound creates a parameter whose name is assigned later.
// Rendering fails until the name is set.
func Unbound() *types.Parameter {
	return &types.Parameter{}
}

// Only allows alphanumeric characters and underscores, must start with letter.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}

	first := name[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z')) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !isIdentChar(name[i]) {
			return false
		}
	}

	// Reject keywords that would read as query syntax after the colon.
	return !reservedWords[strings.ToLower(name)]
}

var reservedWords = map[string]bool{
	"select": true, "from": true, "where": true, "and": true, "or": true,
	"not": true, "null": true, "true": true, "false": true, "in": true,
	"like": true, "escape": true, "between": true, "is": true, "empty": true,
	"member": true, "of": true, "exists": true, "all": true, "any": true,
	"some": true, "case": true, "when": true, "then": true, "else": true,
	"end": true, "index": true, "key": true, "value": true, "entry": true,
	"treat": true, "as": true, "distinct": true,
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
