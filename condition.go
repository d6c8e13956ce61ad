package exprql

import (
	"github.com/zoobzio/exprql/internal/types"
)

// Cmp creates a comparison with an explicit operator.
func Cmp(left types.Expression, op types.ComparisonOperator, right types.Expression) *types.Comparison {
	return &types.Comparison{Left: left, Right: right, Operator: op}
}

// Quantified creates a comparison against all or any of the right-hand values,
// e.g. a > ALL(subquery).
func Quantified(left types.Expression, op types.ComparisonOperator, q types.Quantifier, right types.Expression) *types.Comparison {
	return &types.Comparison{Left: left, Right: right, Operator: op, Quantifier: q}
}

// Eq creates left = right.
func Eq(left, right types.Expression) *types.Comparison {
	return Cmp(left, types.EQ, right)
}

// Ne creates a negated equality, rendered as left <> right.
func Ne(left, right types.Expression) *types.Comparison {
	c := Eq(left, right)
	c.Negate()
	return c
}

// Gt creates left > right.
func Gt(left, right types.Expression) *types.Comparison {
	return Cmp(left, types.GT, right)
}

// Ge creates left >= right.
func Ge(left, right types.Expression) *types.Comparison {
	return Cmp(left, types.GE, right)
}

// Lt creates left < right.
func Lt(left, right types.Expression) *types.Comparison {
	return Cmp(left, types.LT, right)
}

// Le creates left <= right.
func Le(left, right types.Expression) *types.Comparison {
	return Cmp(left, types.LE, right)
}

// Between creates left BETWEEN start AND end.
func Between(left, start, end types.Expression) *types.Between {
	return &types.Between{Left: left, Start: start, End: end}
}

// NotBetween creates left NOT BETWEEN start AND end.
func NotBetween(left, start, end types.Expression) *types.Between {
	b := Between(left, start, end)
	b.Negate()
	return b
}

// In creates left IN (values...).
func In(left types.Expression, values ...types.Expression) *types.In {
	return &types.In{Left: left, Right: values}
}

// NotIn creates left NOT IN (values...).
func NotIn(left types.Expression, values ...types.Expression) *types.In {
	in := In(left, values...)
	in.Negate()
	return in
}

// Like creates a case-sensitive left LIKE pattern.
func Like(left, pattern types.Expression) *types.Like {
	return &types.Like{Left: left, Right: pattern, CaseSensitive: true}
}

// ILike creates a case-insensitive LIKE; both operands are folded with UPPER.
func ILike(left, pattern types.Expression) *types.Like {
	return &types.Like{Left: left, Right: pattern}
}

// LikeEscape creates a LIKE with an ESCAPE character.
func LikeEscape(left, pattern types.Expression, escape rune, caseSensitive bool) *types.Like {
	return &types.Like{Left: left, Right: pattern, Escape: escape, CaseSensitive: caseSensitive}
}

// IsNull creates expr IS NULL.
func IsNull(expr types.Expression) *types.IsNull {
	return &types.IsNull{Expr: expr}
}

// IsNotNull creates expr IS NOT NULL.
func IsNotNull(expr types.Expression) *types.IsNull {
	p := IsNull(expr)
	p.Negate()
	return p
}

// IsEmpty creates collection IS EMPTY.
func IsEmpty(expr types.Expression) *types.IsEmpty {
	return &types.IsEmpty{Expr: expr}
}

// IsNotEmpty creates collection IS NOT EMPTY.
func IsNotEmpty(expr types.Expression) *types.IsEmpty {
	p := IsEmpty(expr)
	p.Negate()
	return p
}

// MemberOf creates left MEMBER OF collection.
func MemberOf(left, collection types.Expression) *types.MemberOf {
	return &types.MemberOf{Left: left, Right: collection}
}

// NotMemberOf creates left NOT MEMBER OF collection.
func NotMemberOf(left, collection types.Expression) *types.MemberOf {
	m := MemberOf(left, collection)
	m.Negate()
	return m
}

// Exists creates EXISTS subquery.
func Exists(expr types.Expression) *types.Exists {
	return &types.Exists{Expr: expr}
}

// NotExists creates NOT EXISTS subquery.
func NotExists(expr types.Expression) *types.Exists {
	e := Exists(expr)
	e.Negate()
	return e
}

// True creates the TRUE predicate.
func True() *types.BooleanLiteral {
	return &types.BooleanLiteral{Value: true}
}

// False creates the FALSE predicate.
func False() *types.BooleanLiteral {
	return &types.BooleanLiteral{Value: false}
}

// And groups predicates with AND.
// An empty group renders nothing.
func And(preds ...types.Predicate) *types.Compound {
	return &types.Compound{Operator: types.AND, Children: preds}
}

// Or groups predicates with OR.
// An empty group renders nothing.
func Or(preds ...types.Predicate) *types.Compound {
	return &types.Compound{Operator: types.OR, Children: preds}
}

// Not wraps a predicate in NOT.
func Not(p types.Predicate) *types.Not {
	return &types.Not{Predicate: p}
}

// Negated flips the negation flag of p and returns it.
func Negated[P types.Predicate](p P) P {
	p.Negate()
	return p
}
