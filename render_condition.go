package exprql

import (
	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

func (ctx *renderContext) predicate(p types.Predicate) error {
	switch n := p.(type) {
	case *types.Compound:
		return ctx.compound(n)
	case *types.Not:
		if n.IsNegated() {
			return ctx.predicate(n.Predicate)
		}
		return ctx.not(n.Predicate)
	case *types.Comparison:
		return ctx.comparison(n)
	case *types.Between:
		return ctx.between(n)
	case *types.In:
		return ctx.in(n)
	case *types.Like:
		return ctx.like(n)
	case *types.IsNull:
		return ctx.postfix(n.Expr, n.IsNegated(), " IS NULL", " IS NOT NULL")
	case *types.IsEmpty:
		return ctx.postfix(n.Expr, n.IsNegated(), " IS EMPTY", " IS NOT EMPTY")
	case *types.MemberOf:
		return ctx.binary(n.Left, n.Right, n.IsNegated(), " MEMBER OF ", " NOT MEMBER OF ")
	case *types.Exists:
		if n.IsNegated() {
			ctx.buf.WriteString("NOT EXISTS ")
		} else {
			ctx.buf.WriteString("EXISTS ")
		}
		return ctx.expr(n.Expr)
	case *types.BooleanLiteral:
		if n.Value != n.IsNegated() {
			ctx.buf.WriteString("TRUE")
		} else {
			ctx.buf.WriteString("FALSE")
		}
		return nil
	}
	return render.NewUnsupportedNodeError(p)
}

// compound renders the children joined by the operator. Children that render
// nothing are dropped along with their separator.
func (ctx *renderContext) compound(c *types.Compound) error {
	if !c.IsNegated() {
		return ctx.compoundBody(c)
	}
	start := ctx.buf.Len()
	ctx.buf.WriteString("NOT (")
	body := ctx.buf.Len()
	if err := ctx.compoundBody(c); err != nil {
		return err
	}
	if ctx.buf.Len() == body {
		ctx.buf.Truncate(start)
		return nil
	}
	ctx.buf.WriteByte(')')
	return nil
}

func (ctx *renderContext) compoundBody(c *types.Compound) error {
	if len(c.Children) == 1 {
		return ctx.predicate(c.Children[0])
	}

	sep := " " + string(c.Operator) + " "
	end := -1
	for _, child := range c.Children {
		start := ctx.buf.Len()
		if err := ctx.child(child, isGroupOf(child, c.Operator.Opposite())); err != nil {
			return err
		}
		if ctx.buf.Len() == start {
			continue
		}
		ctx.buf.WriteString(sep)
		end = ctx.buf.Len()
	}
	if end != -1 && ctx.buf.Len() == end {
		ctx.buf.Truncate(end - len(sep))
	}
	return nil
}

// child renders p, wrapped in parentheses when grouped. The parentheses are
// removed again when p renders nothing.
func (ctx *renderContext) child(p types.Predicate, grouped bool) error {
	if !grouped {
		return ctx.predicate(p)
	}
	start := ctx.buf.Len()
	ctx.buf.WriteByte('(')
	if err := ctx.predicate(p); err != nil {
		return err
	}
	if ctx.buf.Len() == start+1 {
		ctx.buf.Truncate(start)
		return nil
	}
	ctx.buf.WriteByte(')')
	return nil
}

// not renders NOT p, grouping p only when it is itself an AND or OR.
func (ctx *renderContext) not(p types.Predicate) error {
	start := ctx.buf.Len()
	ctx.buf.WriteString("NOT ")
	body := ctx.buf.Len()
	if err := ctx.child(p, isGroup(p)); err != nil {
		return err
	}
	if ctx.buf.Len() == body {
		ctx.buf.Truncate(start)
	}
	return nil
}

// effective unwraps nodes that render exactly like their only child.
func effective(p types.Predicate) types.Predicate {
	for {
		switch n := p.(type) {
		case *types.Compound:
			if n.IsNegated() || len(n.Children) != 1 {
				return p
			}
			p = n.Children[0]
		case *types.Not:
			if !n.IsNegated() {
				return p
			}
			p = n.Predicate
		default:
			return p
		}
	}
}

// isGroup reports whether p renders as a bare AND or OR list.
func isGroup(p types.Predicate) bool {
	c, ok := effective(p).(*types.Compound)
	return ok && !c.IsNegated() && len(c.Children) > 1
}

func isGroupOf(p types.Predicate, op types.BooleanOperator) bool {
	c, ok := effective(p).(*types.Compound)
	return ok && !c.IsNegated() && len(c.Children) > 1 && c.Operator == op
}

// comparison renders a negated = as <> with the quantifier flipped; other
// negated comparisons get a NOT prefix.
func (ctx *renderContext) comparison(c *types.Comparison) error {
	op, q := c.Operator, c.Quantifier
	if c.IsNegated() {
		if op == types.EQ {
			// NOT (a = ALL s) holds exactly when a <> ANY s, and the reverse.
			op, q = types.NE, q.Flip()
		} else {
			ctx.buf.WriteString("NOT ")
		}
	}
	if err := ctx.expr(c.Left); err != nil {
		return err
	}
	ctx.buf.WriteByte(' ')
	ctx.buf.WriteString(string(op))
	ctx.buf.WriteByte(' ')
	if q == types.One {
		return ctx.expr(c.Right)
	}
	ctx.buf.WriteString(q.String())
	_, sub := c.Right.(*types.SubqueryExpression)
	return ctx.operand(c.Right, !sub)
}

func (ctx *renderContext) between(b *types.Between) error {
	if err := ctx.expr(b.Left); err != nil {
		return err
	}
	if b.IsNegated() {
		ctx.buf.WriteString(" NOT BETWEEN ")
	} else {
		ctx.buf.WriteString(" BETWEEN ")
	}
	if err := ctx.expr(b.Start); err != nil {
		return err
	}
	ctx.buf.WriteString(" AND ")
	return ctx.expr(b.End)
}

func (ctx *renderContext) in(in *types.In) error {
	if len(in.Right) == 0 {
		return render.NewUnsupportedNodeError(in, "IN requires at least one value")
	}
	if err := ctx.expr(in.Left); err != nil {
		return err
	}
	if in.IsNegated() {
		ctx.buf.WriteString(" NOT IN ")
	} else {
		ctx.buf.WriteString(" IN ")
	}
	if len(in.Right) == 1 && rendersOwnList(in.Right[0]) {
		return ctx.expr(in.Right[0])
	}
	ctx.buf.WriteByte('(')
	if err := ctx.list(in.Right); err != nil {
		return err
	}
	ctx.buf.WriteByte(')')
	return nil
}

// rendersOwnList reports whether e already stands for a whole list.
func rendersOwnList(e types.Expression) bool {
	switch n := e.(type) {
	case *types.SubqueryExpression:
		return true
	case *types.Parameter:
		return n.CollectionValued
	}
	return false
}

// like folds both operands and the escape character with UPPER unless the
// match is case sensitive.
func (ctx *renderContext) like(l *types.Like) error {
	fold := !l.CaseSensitive
	if err := ctx.folded(l.Left, fold); err != nil {
		return err
	}
	if l.IsNegated() {
		ctx.buf.WriteString(" NOT LIKE ")
	} else {
		ctx.buf.WriteString(" LIKE ")
	}
	if err := ctx.folded(l.Right, fold); err != nil {
		return err
	}
	if !l.HasEscape() {
		return nil
	}
	ctx.buf.WriteString(" ESCAPE ")
	return ctx.folded(Str(string(l.Escape)), fold)
}

func (ctx *renderContext) folded(e types.Expression, fold bool) error {
	if !fold {
		return ctx.expr(e)
	}
	ctx.buf.WriteString("UPPER(")
	if err := ctx.expr(e); err != nil {
		return err
	}
	ctx.buf.WriteByte(')')
	return nil
}

func (ctx *renderContext) postfix(e types.Expression, negated bool, plain, inverted string) error {
	if err := ctx.expr(e); err != nil {
		return err
	}
	if negated {
		ctx.buf.WriteString(inverted)
	} else {
		ctx.buf.WriteString(plain)
	}
	return nil
}

func (ctx *renderContext) binary(left, right types.Expression, negated bool, plain, inverted string) error {
	if err := ctx.expr(left); err != nil {
		return err
	}
	if negated {
		ctx.buf.WriteString(inverted)
	} else {
		ctx.buf.WriteString(plain)
	}
	return ctx.expr(right)
}
