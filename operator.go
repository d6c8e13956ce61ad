package exprql

import "github.com/zoobzio/exprql/internal/types"

// ComparisonOperator identifies a binary comparison.
type ComparisonOperator = types.ComparisonOperator

// Re-export comparison operator constants for public API.
const (
	EQ = types.EQ
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE
)

// BooleanOperator combines compound children.
type BooleanOperator = types.BooleanOperator

// Re-export boolean operator constants for public API.
const (
	AND = types.AND
	OR  = types.OR
)

// Quantifier modifies the right-hand side of a comparison.
type Quantifier = types.Quantifier

// Re-export quantifier constants for public API.
const (
	One = types.One
	All = types.All
	Any = types.Any
)

// ArithmeticOperator is a binary numeric operator.
type ArithmeticOperator = types.ArithmeticOperator

// Re-export arithmetic operator constants for public API.
const (
	Add = types.Add
	Sub = types.Sub
	Mul = types.Mul
	Div = types.Div
)
