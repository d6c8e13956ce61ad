package types

// negation is the polarity flag shared by all predicates.
type negation struct {
	Negated bool
}

// IsNegated reports whether the predicate is negated.
func (n *negation) IsNegated() bool {
	return n.Negated
}

// Negate flips the negation flag.
func (n *negation) Negate() {
	n.Negated = !n.Negated
}

// Compound joins its children with AND or OR.
type Compound struct {
	Operator BooleanOperator
	Children []Predicate
	negation
}

// Add appends a child. Only owning builders call this.
func (c *Compound) Add(p Predicate) {
	c.Children = append(c.Children, p)
}

func (c *Compound) Copy(ctx CopyContext) Expression { return c.CopyPredicate(ctx) }

func (c *Compound) CopyPredicate(ctx CopyContext) Predicate {
	return &Compound{Operator: c.Operator, Children: copyPredicates(c.Children, ctx), negation: c.negation}
}

// Not negates its inner predicate textually.
type Not struct {
	Predicate Predicate
	negation
}

func (n *Not) Copy(ctx CopyContext) Expression { return n.CopyPredicate(ctx) }

func (n *Not) CopyPredicate(ctx CopyContext) Predicate {
	return &Not{Predicate: n.Predicate.CopyPredicate(ctx), negation: n.negation}
}

// Comparison is one of =, >, >=, <, <= with an optional quantifier.
type Comparison struct {
	Left       Expression
	Right      Expression
	Operator   ComparisonOperator
	Quantifier Quantifier
	negation
}

func (c *Comparison) Copy(ctx CopyContext) Expression { return c.CopyPredicate(ctx) }

func (c *Comparison) CopyPredicate(ctx CopyContext) Predicate {
	return &Comparison{
		Left:       copyExpr(c.Left, ctx),
		Right:      copyExpr(c.Right, ctx),
		Operator:   c.Operator,
		Quantifier: c.Quantifier,
		negation:   c.negation,
	}
}

// Between is left BETWEEN start AND end.
type Between struct {
	Left  Expression
	Start Expression
	End   Expression
	negation
}

func (b *Between) Copy(ctx CopyContext) Expression { return b.CopyPredicate(ctx) }

func (b *Between) CopyPredicate(ctx CopyContext) Predicate {
	return &Between{
		Left:     copyExpr(b.Left, ctx),
		Start:    copyExpr(b.Start, ctx),
		End:      copyExpr(b.End, ctx),
		negation: b.negation,
	}
}

// In is left IN (right...).
type In struct {
	Left  Expression
	Right []Expression
	negation
}

func (in *In) Copy(ctx CopyContext) Expression { return in.CopyPredicate(ctx) }

func (in *In) CopyPredicate(ctx CopyContext) Predicate {
	return &In{Left: copyExpr(in.Left, ctx), Right: copyExprs(in.Right, ctx), negation: in.negation}
}

// Like is left LIKE right with optional case folding and escape character.
// A zero Escape means no ESCAPE clause.
type Like struct {
	Left          Expression
	Right         Expression
	Escape        rune
	CaseSensitive bool
	negation
}

// HasEscape reports whether an escape character is set.
func (l *Like) HasEscape() bool {
	return l.Escape != 0
}

func (l *Like) Copy(ctx CopyContext) Expression { return l.CopyPredicate(ctx) }

func (l *Like) CopyPredicate(ctx CopyContext) Predicate {
	return &Like{
		Left:          copyExpr(l.Left, ctx),
		Right:         copyExpr(l.Right, ctx),
		Escape:        l.Escape,
		CaseSensitive: l.CaseSensitive,
		negation:      l.negation,
	}
}

// IsNull is expr IS NULL.
type IsNull struct {
	Expr Expression
	negation
}

func (p *IsNull) Copy(ctx CopyContext) Expression { return p.CopyPredicate(ctx) }

func (p *IsNull) CopyPredicate(ctx CopyContext) Predicate {
	return &IsNull{Expr: copyExpr(p.Expr, ctx), negation: p.negation}
}

// IsEmpty is expr IS EMPTY.
type IsEmpty struct {
	Expr Expression
	negation
}

func (p *IsEmpty) Copy(ctx CopyContext) Expression { return p.CopyPredicate(ctx) }

func (p *IsEmpty) CopyPredicate(ctx CopyContext) Predicate {
	return &IsEmpty{Expr: copyExpr(p.Expr, ctx), negation: p.negation}
}

// MemberOf is left MEMBER OF right.
type MemberOf struct {
	Left  Expression
	Right Expression
	negation
}

func (m *MemberOf) Copy(ctx CopyContext) Expression { return m.CopyPredicate(ctx) }

func (m *MemberOf) CopyPredicate(ctx CopyContext) Predicate {
	return &MemberOf{Left: copyExpr(m.Left, ctx), Right: copyExpr(m.Right, ctx), negation: m.negation}
}

// Exists is EXISTS expr, normally over a subquery.
type Exists struct {
	Expr Expression
	negation
}

func (e *Exists) Copy(ctx CopyContext) Expression { return e.CopyPredicate(ctx) }

func (e *Exists) CopyPredicate(ctx CopyContext) Predicate {
	return &Exists{Expr: copyExpr(e.Expr, ctx), negation: e.negation}
}

// BooleanLiteral is a constant predicate.
type BooleanLiteral struct {
	Value bool
	negation
}

func (b *BooleanLiteral) Copy(ctx CopyContext) Expression { return b.CopyPredicate(ctx) }

func (b *BooleanLiteral) CopyPredicate(CopyContext) Predicate {
	return &BooleanLiteral{Value: b.Value, negation: b.negation}
}

func (*Compound) expressionNode()       {}
func (*Not) expressionNode()            {}
func (*Comparison) expressionNode()     {}
func (*Between) expressionNode()        {}
func (*In) expressionNode()             {}
func (*Like) expressionNode()           {}
func (*IsNull) expressionNode()         {}
func (*IsEmpty) expressionNode()        {}
func (*MemberOf) expressionNode()       {}
func (*Exists) expressionNode()         {}
func (*BooleanLiteral) expressionNode() {}
