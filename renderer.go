package exprql

import (
	"strings"

	"github.com/zoobzio/exprql/internal/types"
)

// Renderer turns expression trees into query text.
// Implementations append to the caller's builder and never mutate the tree.
type Renderer interface {
	// Render appends the text of e to sb.
	Render(sb *strings.Builder, e types.Expression) error

	// RenderQuery renders e and reports the parameters the text requires.
	RenderQuery(e types.Expression) (*QueryResult, error)
}

// Plain renders paths exactly as written.
type Plain struct{}

// Render appends the text of e to sb.
func (Plain) Render(sb *strings.Builder, e types.Expression) error {
	return Render(sb, e)
}

// RenderQuery renders e and reports the parameters the text requires.
func (Plain) RenderQuery(e types.Expression) (*QueryResult, error) {
	return RenderQuery(e)
}

var (
	_ Renderer = Plain{}
	_ Renderer = PrefixRenderer{}
)
