package exprql

import (
	"bytes"
	"strings"

	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

// pathHook renders a path in place of the default dotted form.
type pathHook func(ctx *renderContext, p *types.Path) error

// renderContext carries the output buffer and parameter bookkeeping of one render call.
// The buffer is private so separators can be trimmed; the caller's builder only
// sees complete output.
type renderContext struct {
	buf        bytes.Buffer
	usedParams map[string]bool
	params     []string
	paths      pathHook
}

func newRenderContext(paths pathHook) *renderContext {
	return &renderContext{
		usedParams: make(map[string]bool),
		paths:      paths,
	}
}

// addParam records a parameter the first time it is rendered.
func (ctx *renderContext) addParam(name string) {
	if !ctx.usedParams[name] {
		ctx.params = append(ctx.params, name)
		ctx.usedParams[name] = true
	}
}

// Render appends the query text of e to sb.
// Nothing is appended when rendering fails.
func Render(sb *strings.Builder, e types.Expression) error {
	return renderInto(sb, e, nil)
}

// RenderQuery renders e and reports the parameters the text requires.
func RenderQuery(e types.Expression) (*QueryResult, error) {
	return renderQuery(e, nil)
}

func renderInto(sb *strings.Builder, e types.Expression, paths pathHook) error {
	ctx := newRenderContext(paths)
	if err := ctx.expr(e); err != nil {
		return err
	}
	sb.Write(ctx.buf.Bytes())
	return nil
}

func renderQuery(e types.Expression, paths pathHook) (*QueryResult, error) {
	ctx := newRenderContext(paths)
	if err := ctx.expr(e); err != nil {
		return nil, err
	}
	return &QueryResult{
		Text:           ctx.buf.String(),
		RequiredParams: ctx.params,
	}, nil
}

func (ctx *renderContext) expr(e types.Expression) error {
	switch n := e.(type) {
	case nil:
		return render.NewUnsupportedNodeError(nil, "missing operand")
	case types.Predicate:
		return ctx.predicate(n)
	case *types.Literal:
		ctx.literal(n)
		return nil
	case *types.Fragment:
		ctx.buf.WriteString(n.Text)
		return nil
	case *types.Composite:
		for _, part := range n.Parts {
			if err := ctx.expr(part); err != nil {
				return err
			}
		}
		return nil
	case *types.Parameter:
		return ctx.parameter(n)
	case *types.Function:
		return ctx.function(n.Name, n.Args, false)
	case *types.Aggregate:
		return ctx.function(n.Name, n.Args, n.Distinct)
	case *types.Arithmetic:
		return ctx.arithmetic(n)
	case *types.ArithmeticFactor:
		return ctx.factor(n)
	case *types.SubqueryExpression:
		if n.Query == nil {
			return render.NewUnsupportedNodeError(n, "subquery without query")
		}
		ctx.buf.WriteByte('(')
		ctx.buf.WriteString(n.Query.QueryString())
		ctx.buf.WriteByte(')')
		return nil
	case *types.GeneralCase:
		ctx.buf.WriteString("CASE ")
		return ctx.caseBody(n.WhenClauses, n.Default)
	case *types.SimpleCase:
		ctx.buf.WriteString("CASE ")
		if err := ctx.expr(n.Operand); err != nil {
			return err
		}
		ctx.buf.WriteByte(' ')
		return ctx.caseBody(n.WhenClauses, n.Default)
	case *types.Path:
		if ctx.paths != nil {
			return ctx.paths(ctx, n)
		}
		return ctx.pathElements(n)
	case types.PathElement:
		return ctx.pathElement(n)
	}
	return render.NewUnsupportedNodeError(e)
}

func (ctx *renderContext) literal(l *types.Literal) {
	switch l.Kind {
	case types.LitNull:
		ctx.buf.WriteString("NULL")
	case types.LitString:
		ctx.buf.WriteByte('\'')
		ctx.buf.WriteString(strings.ReplaceAll(l.Value, "'", "''"))
		ctx.buf.WriteByte('\'')
	case types.LitBoolean:
		ctx.buf.WriteString(strings.ToUpper(l.Value))
	case types.LitDate:
		ctx.temporal("d", l.Value)
	case types.LitTime:
		ctx.temporal("t", l.Value)
	case types.LitTimestamp:
		ctx.temporal("ts", l.Value)
	default:
		ctx.buf.WriteString(l.Value)
	}
}

func (ctx *renderContext) temporal(tag, value string) {
	ctx.buf.WriteByte('{')
	ctx.buf.WriteString(tag)
	ctx.buf.WriteString(" '")
	ctx.buf.WriteString(value)
	ctx.buf.WriteString("'}")
}

func (ctx *renderContext) parameter(p *types.Parameter) error {
	if !p.Bound() {
		return render.UnboundParameterError{Context: "cannot render :<unnamed>"}
	}
	ctx.addParam(p.Name)
	ctx.buf.WriteByte(':')
	ctx.buf.WriteString(p.Name)
	return nil
}

func (ctx *renderContext) function(name string, args []types.Expression, distinct bool) error {
	ctx.buf.WriteString(name)
	ctx.buf.WriteByte('(')
	if distinct {
		ctx.buf.WriteString("DISTINCT ")
	}
	if err := ctx.list(args); err != nil {
		return err
	}
	ctx.buf.WriteByte(')')
	return nil
}

// list renders comma-joined expressions.
func (ctx *renderContext) list(exprs []types.Expression) error {
	for i, e := range exprs {
		if i > 0 {
			ctx.buf.WriteByte(',')
		}
		if err := ctx.expr(e); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *renderContext) arithmetic(a *types.Arithmetic) error {
	if err := ctx.operand(a.Left, needsLeftParens(a)); err != nil {
		return err
	}
	ctx.buf.WriteByte(' ')
	ctx.buf.WriteString(string(a.Operator))
	ctx.buf.WriteByte(' ')
	return ctx.operand(a.Right, needsRightParens(a))
}

func (ctx *renderContext) operand(e types.Expression, parens bool) error {
	if !parens {
		return ctx.expr(e)
	}
	ctx.buf.WriteByte('(')
	if err := ctx.expr(e); err != nil {
		return err
	}
	ctx.buf.WriteByte(')')
	return nil
}

// needsLeftParens reports whether the left operand binds looser than a.
func needsLeftParens(a *types.Arithmetic) bool {
	left, ok := a.Left.(*types.Arithmetic)
	return ok && left.Operator.Precedence() < a.Operator.Precedence()
}

// needsRightParens also groups equal precedence on the right of - and /,
// since those operators are not associative.
func needsRightParens(a *types.Arithmetic) bool {
	right, ok := a.Right.(*types.Arithmetic)
	if !ok {
		return false
	}
	if right.Operator.Precedence() != a.Operator.Precedence() {
		return right.Operator.Precedence() < a.Operator.Precedence()
	}
	return a.Operator == types.Sub || a.Operator == types.Div
}

func (ctx *renderContext) factor(f *types.ArithmeticFactor) error {
	if !f.InvertSignum {
		return ctx.expr(f.Expr)
	}
	ctx.buf.WriteByte('-')
	_, grouped := f.Expr.(*types.Arithmetic)
	return ctx.operand(f.Expr, grouped)
}

func (ctx *renderContext) caseBody(whens []types.WhenClause, def types.Expression) error {
	for i, w := range whens {
		if i > 0 {
			ctx.buf.WriteByte(' ')
		}
		ctx.buf.WriteString("WHEN ")
		if err := ctx.expr(w.Condition); err != nil {
			return err
		}
		ctx.buf.WriteString(" THEN ")
		if err := ctx.expr(w.Result); err != nil {
			return err
		}
	}
	if def != nil {
		ctx.buf.WriteString(" ELSE ")
		if err := ctx.expr(def); err != nil {
			return err
		}
	}
	ctx.buf.WriteString(" END")
	return nil
}

// pathElements renders a path in its default dotted form.
func (ctx *renderContext) pathElements(p *types.Path) error {
	if len(p.Elements) == 0 {
		return render.NewUnsupportedNodeError(p, "empty path")
	}
	for i, el := range p.Elements {
		if i > 0 {
			ctx.buf.WriteByte('.')
		}
		if err := ctx.pathElement(el); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *renderContext) pathElement(el types.PathElement) error {
	switch n := el.(type) {
	case *types.Property:
		ctx.buf.WriteString(n.Name)
		return nil
	case *types.Array:
		if err := ctx.pathElement(n.Base); err != nil {
			return err
		}
		ctx.buf.WriteByte('[')
		if err := ctx.expr(n.Index); err != nil {
			return err
		}
		ctx.buf.WriteByte(']')
		return nil
	case *types.ListIndex:
		return ctx.wrapPath("INDEX", n.Path)
	case *types.MapKey:
		return ctx.wrapPath("KEY", n.Path)
	case *types.MapValue:
		return ctx.wrapPath("VALUE", n.Path)
	case *types.MapEntry:
		return ctx.wrapPath("ENTRY", n.Path)
	case *types.Treat:
		ctx.buf.WriteString("TREAT(")
		if err := ctx.expr(n.Expr); err != nil {
			return err
		}
		ctx.buf.WriteString(" AS ")
		ctx.buf.WriteString(n.Type)
		ctx.buf.WriteByte(')')
		return nil
	case nil:
		return render.NewUnsupportedNodeError(nil, "missing path element")
	}
	return render.NewUnsupportedNodeError(el)
}

func (ctx *renderContext) wrapPath(fn string, p *types.Path) error {
	if p == nil {
		return render.NewUnsupportedNodeError(nil, fn+" without path")
	}
	ctx.buf.WriteString(fn)
	ctx.buf.WriteByte('(')
	if err := ctx.expr(p); err != nil {
		return err
	}
	ctx.buf.WriteByte(')')
	return nil
}
