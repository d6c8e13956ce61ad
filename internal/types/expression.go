package types

// Literal is a constant value.
// Value holds the canonical text of the literal; Kind decides how it renders.
type Literal struct {
	Value string
	Kind  LiteralKind
}

func (l *Literal) Copy(CopyContext) Expression {
	c := *l
	return &c
}

// Fragment is verbatim query text, used inside Composite.
type Fragment struct {
	Text string
}

func (f *Fragment) Copy(CopyContext) Expression {
	return &Fragment{Text: f.Text}
}

// Composite concatenates its parts verbatim.
type Composite struct {
	Parts []Expression
}

func (c *Composite) Copy(ctx CopyContext) Expression {
	return &Composite{Parts: copyExprs(c.Parts, ctx)}
}

// Function is a named function call.
type Function struct {
	Name string
	Args []Expression
}

func (f *Function) Copy(ctx CopyContext) Expression {
	return &Function{Name: f.Name, Args: copyExprs(f.Args, ctx)}
}

// Aggregate is a function call that may apply to distinct values only.
type Aggregate struct {
	Function
	Distinct bool
}

func (a *Aggregate) Copy(ctx CopyContext) Expression {
	return &Aggregate{
		Function: Function{Name: a.Name, Args: copyExprs(a.Args, ctx)},
		Distinct: a.Distinct,
	}
}

// Arithmetic is a binary numeric operation.
type Arithmetic struct {
	Left     Expression
	Right    Expression
	Operator ArithmeticOperator
}

func (a *Arithmetic) Copy(ctx CopyContext) Expression {
	return &Arithmetic{
		Left:     copyExpr(a.Left, ctx),
		Right:    copyExpr(a.Right, ctx),
		Operator: a.Operator,
	}
}

// ArithmeticFactor is a signed operand.
type ArithmeticFactor struct {
	Expr         Expression
	InvertSignum bool
}

func (f *ArithmeticFactor) Copy(ctx CopyContext) Expression {
	return &ArithmeticFactor{Expr: copyExpr(f.Expr, ctx), InvertSignum: f.InvertSignum}
}

// Treat narrows the static type of Expr to the named type.
type Treat struct {
	Expr Expression
	Type string
}

func (t *Treat) Copy(ctx CopyContext) Expression {
	return &Treat{Expr: copyExpr(t.Expr, ctx), Type: t.Type}
}

// SubqueryExpression wraps a nested query.
type SubqueryExpression struct {
	Query Subquery
}

func (s *SubqueryExpression) Copy(ctx CopyContext) Expression {
	return ctx.CopySubquery(s)
}

func (*Literal) expressionNode()            {}
func (*Fragment) expressionNode()           {}
func (*Composite) expressionNode()          {}
func (*Function) expressionNode()           {}
func (*Aggregate) expressionNode()          {}
func (*Arithmetic) expressionNode()         {}
func (*ArithmeticFactor) expressionNode()   {}
func (*Treat) expressionNode()              {}
func (*SubqueryExpression) expressionNode() {}

func (*Treat) pathElement() {}
