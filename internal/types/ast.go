package types

// Expression is a node of the expression tree.
// The set of implementations is closed; renderers and resolvers switch on the
// concrete type.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type Expression interface {
	// Copy returns an independently owned deep copy of the node.
	Copy(ctx CopyContext) Expression
	expressionNode()
}

// Predicate is a boolean-valued expression carrying a negation flag.
type Predicate interface {
	Expression
	// IsNegated reports whether the predicate renders with inverted polarity.
	IsNegated() bool
	// Negate flips the negation flag. Applying it twice restores the original.
	Negate()
	// CopyPredicate is Copy narrowed to Predicate.
	CopyPredicate(ctx CopyContext) Predicate
}

// PathElement is an expression that may appear as a segment of a Path.
type PathElement interface {
	Expression
	pathElement()
}

// Subquery is an opaque handle to a nested query owned by a query builder.
// Its textual form is obtained on demand when rendering.
type Subquery interface {
	QueryString() string
}

// CopyContext controls substitution while copying a tree.
type CopyContext interface {
	// CopyParameter returns the replacement for a parameter node.
	CopyParameter(p *Parameter) Expression
	// CopySubquery returns the replacement for a subquery node.
	CopySubquery(s *SubqueryExpression) Expression
}

// CopyAll copies every node without substitution.
var CopyAll CopyContext = copyAll{}

type copyAll struct{}

func (copyAll) CopyParameter(p *Parameter) Expression {
	c := *p
	return &c
}

func (copyAll) CopySubquery(s *SubqueryExpression) Expression {
	return &SubqueryExpression{Query: s.Query}
}

// RebindParameters renames parameters while copying.
// Parameters missing from the mapping keep their name.
func RebindParameters(names map[string]string) CopyContext {
	return rebind(names)
}

type rebind map[string]string

func (r rebind) CopyParameter(p *Parameter) Expression {
	c := *p
	if name, ok := r[p.Name]; ok {
		c.Name = name
	}
	return &c
}

func (rebind) CopySubquery(s *SubqueryExpression) Expression {
	return CopyAll.CopySubquery(s)
}

// InlineParameters replaces bound parameters with the given expressions while copying.
func InlineParameters(values map[string]Expression) CopyContext {
	return inline(values)
}

type inline map[string]Expression

func (in inline) CopyParameter(p *Parameter) Expression {
	if v, ok := in[p.Name]; ok && v != nil {
		return v.Copy(CopyAll)
	}
	return CopyAll.CopyParameter(p)
}

func (inline) CopySubquery(s *SubqueryExpression) Expression {
	return CopyAll.CopySubquery(s)
}

// copyExpr copies a possibly nil expression.
func copyExpr(e Expression, ctx CopyContext) Expression {
	if e == nil {
		return nil
	}
	return e.Copy(ctx)
}

func copyExprs(exprs []Expression, ctx CopyContext) []Expression {
	if exprs == nil {
		return nil
	}
	out := make([]Expression, len(exprs))
	for i, e := range exprs {
		out[i] = copyExpr(e, ctx)
	}
	return out
}

func copyPredicates(preds []Predicate, ctx CopyContext) []Predicate {
	if preds == nil {
		return nil
	}
	out := make([]Predicate, len(preds))
	for i, p := range preds {
		out[i] = p.CopyPredicate(ctx)
	}
	return out
}
