package exprql

import (
	"github.com/zoobzio/exprql/internal/types"
)

// Fn creates a function call.
func Fn(name string, args ...types.Expression) *types.Function {
	return &types.Function{Name: name, Args: args}
}

// Agg creates an aggregate call such as COUNT(a.id).
func Agg(name string, args ...types.Expression) *types.Aggregate {
	return &types.Aggregate{Function: types.Function{Name: name, Args: args}}
}

// AggDistinct creates an aggregate over distinct values, e.g. COUNT(DISTINCT a.id).
func AggDistinct(name string, args ...types.Expression) *types.Aggregate {
	return &types.Aggregate{Function: types.Function{Name: name, Args: args}, Distinct: true}
}

// Count creates COUNT(expr).
func Count(expr types.Expression) *types.Aggregate {
	return Agg("COUNT", expr)
}

// CountDistinct creates COUNT(DISTINCT expr).
func CountDistinct(expr types.Expression) *types.Aggregate {
	return AggDistinct("COUNT", expr)
}

// Sum creates SUM(expr).
func Sum(expr types.Expression) *types.Aggregate {
	return Agg("SUM", expr)
}

// Avg creates AVG(expr).
func Avg(expr types.Expression) *types.Aggregate {
	return Agg("AVG", expr)
}

// Min creates MIN(expr).
func Min(expr types.Expression) *types.Aggregate {
	return Agg("MIN", expr)
}

// Max creates MAX(expr).
func Max(expr types.Expression) *types.Aggregate {
	return Agg("MAX", expr)
}

// Upper creates UPPER(expr).
func Upper(expr types.Expression) *types.Function {
	return Fn("UPPER", expr)
}

// Lower creates LOWER(expr).
func Lower(expr types.Expression) *types.Function {
	return Fn("LOWER", expr)
}

// Size creates SIZE(expr).
func Size(expr types.Expression) *types.Function {
	return Fn("SIZE", expr)
}

// TypeOf creates TYPE(expr).
func TypeOf(expr types.Expression) *types.Function {
	return Fn("TYPE", expr)
}

// Arith creates a binary arithmetic expression.
func Arith(left types.Expression, op types.ArithmeticOperator, right types.Expression) *types.Arithmetic {
	return &types.Arithmetic{Left: left, Right: right, Operator: op}
}

// Neg creates a sign-inverted operand: -expr.
func Neg(expr types.Expression) *types.ArithmeticFactor {
	return &types.ArithmeticFactor{Expr: expr, InvertSignum: true}
}

// Text creates a verbatim fragment.
func Text(s string) *types.Fragment {
	return &types.Fragment{Text: s}
}

// Concat creates a composite that renders its parts back to back.
func Concat(parts ...types.Expression) *types.Composite {
	return &types.Composite{Parts: parts}
}

// SubqueryOf wraps a nested query.
func SubqueryOf(q types.Subquery) *types.SubqueryExpression {
	return &types.SubqueryExpression{Query: q}
}

// RawSubquery is a Subquery given as query text.
type RawSubquery string

// QueryString returns the query text.
func (r RawSubquery) QueryString() string {
	return string(r)
}

// When creates a WHEN...THEN clause.
func When(condition, result types.Expression) types.WhenClause {
	return types.WhenClause{Condition: condition, Result: result}
}

// Case creates a general CASE. Pass nil as def to omit the ELSE branch.
func Case(def types.Expression, whens ...types.WhenClause) *types.GeneralCase {
	return &types.GeneralCase{Default: def, WhenClauses: whens}
}

// SimpleCaseOf creates CASE operand WHEN ... END.
// Pass nil as def to omit the ELSE branch.
func SimpleCaseOf(operand, def types.Expression, whens ...types.WhenClause) *types.SimpleCase {
	return &types.SimpleCase{Operand: operand, Default: def, WhenClauses: whens}
}
