package exprql

import (
	"strings"

	"github.com/zoobzio/exprql/internal/types"
)

// PrefixRenderer renders a tree as if it were written inside another
// correlation scope.
//
// Rules apply to every path, including paths nested in INDEX, KEY, VALUE,
// ENTRY and TREAT, in this order:
//   - a path that is exactly AliasToSubstitute renders as Substitute
//   - a path that is exactly Prefix renders unchanged
//   - a path whose first segment is AliasToSkip renders unchanged
//   - a path starting with a property or array access renders as Prefix.path
//
// An empty Prefix disables prefixing; empty alias fields match nothing.
type PrefixRenderer struct {
	Prefix            string
	AliasToSubstitute string
	Substitute        string
	AliasToSkip       string
}

// Render appends the relocated text of e to sb.
func (r PrefixRenderer) Render(sb *strings.Builder, e types.Expression) error {
	return renderInto(sb, e, r.path)
}

// RenderQuery renders e and reports the parameters the text requires.
func (r PrefixRenderer) RenderQuery(e types.Expression) (*QueryResult, error) {
	return renderQuery(e, r.path)
}

func (r PrefixRenderer) path(ctx *renderContext, p *types.Path) error {
	head, named := p.Head()
	if named && len(p.Elements) == 1 {
		if r.AliasToSubstitute != "" && head == r.AliasToSubstitute {
			ctx.buf.WriteString(r.Substitute)
			return nil
		}
		if head == r.Prefix {
			return ctx.pathElements(p)
		}
	}
	if named && r.AliasToSkip != "" && head == r.AliasToSkip {
		return ctx.pathElements(p)
	}
	if r.Prefix != "" && startsWithAttribute(p) {
		ctx.buf.WriteString(r.Prefix)
		ctx.buf.WriteByte('.')
	}
	return ctx.pathElements(p)
}

func startsWithAttribute(p *types.Path) bool {
	if len(p.Elements) == 0 {
		return false
	}
	switch p.Elements[0].(type) {
	case *types.Property, *types.Array:
		return true
	}
	return false
}
