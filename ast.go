// Package exprql provides the expression and predicate tree of a path-based
// query language, a renderer that turns trees back into query text, and a
// resolver that computes the types a navigation path can reach.
//
// # Building Trees
//
// Trees are built with the package-level constructors:
//
//	pred := exprql.Not(exprql.Or(
//		exprql.Eq(exprql.Path("a.name"), exprql.Str("x")),
//		exprql.Eq(exprql.Path("a.age"), exprql.Num(5)),
//	))
//
//	var sb strings.Builder
//	err := exprql.Render(&sb, pred)
//	// sb.String(): NOT (a.name = 'x' OR a.age = 5)
//
// Predicates carry a negation flag that only Negate changes. Rendering never
// mutates a tree, so one tree may be rendered by several goroutines once it is
// no longer being built.
//
// # Rendering Into Another Scope
//
// PrefixRenderer relocates a tree into a different correlation scope by
// prefixing or substituting path roots without touching the tree.
//
// # Path Resolution
//
// Resolve walks a path through a metamodel.Metamodel and returns every
// attribute the path can end on together with its effective type. CASE
// expressions fork the walk, so a single path may resolve to several attributes.
//
//	attrs, err := exprql.Resolve(schema, metamodel.EntityType("Person"), exprql.Path("p.address.city"), "p")
//
// # Output Format
//
// Parameters render as `:name`. String literals are single-quoted, temporal
// literals use JDBC escapes, and function arguments and IN lists are joined
// with commas.
package exprql

import "github.com/zoobzio/exprql/internal/types"

// Expression is any node of the tree.
// This is re-exported from internal/types for use by consumers.
type Expression = types.Expression

// Predicate is a boolean node with a negation flag.
type Predicate = types.Predicate

// PathElement is a node that may appear inside a path.
type PathElement = types.PathElement

// Subquery is an opaque nested query rendered through its QueryString.
type Subquery = types.Subquery

// CopyContext controls substitution while copying trees.
type CopyContext = types.CopyContext

// Expression nodes.
type (
	Literal            = types.Literal
	Fragment           = types.Fragment
	Composite          = types.Composite
	Parameter          = types.Parameter
	Function           = types.Function
	Aggregate          = types.Aggregate
	Arithmetic         = types.Arithmetic
	ArithmeticFactor   = types.ArithmeticFactor
	TreatExpression    = types.Treat
	SubqueryExpression = types.SubqueryExpression
	GeneralCase        = types.GeneralCase
	SimpleCase         = types.SimpleCase
	WhenClause         = types.WhenClause
)

// Path nodes.
type (
	PathExpression = types.Path
	Property       = types.Property
	Array          = types.Array
	ListIndex      = types.ListIndex
	MapKey         = types.MapKey
	MapValue       = types.MapValue
	MapEntry       = types.MapEntry
)

// Predicate nodes.
type (
	Compound          = types.Compound
	NotPredicate      = types.Not
	Comparison        = types.Comparison
	BetweenPredicate  = types.Between
	InPredicate       = types.In
	LikePredicate     = types.Like
	IsNullPredicate   = types.IsNull
	IsEmptyPredicate  = types.IsEmpty
	MemberOfPredicate = types.MemberOf
	ExistsPredicate   = types.Exists
	BooleanLiteral    = types.BooleanLiteral
)

// Copy contexts.
var (
	CopyAll          = types.CopyAll
	RebindParameters = types.RebindParameters
	InlineParameters = types.InlineParameters
)

// Equal reports whether two trees are structurally equal.
func Equal(a, b Expression) bool {
	return types.Equal(a, b)
}

// Hash returns a structural hash consistent with Equal.
func Hash(e Expression) uint64 {
	return types.Hash(e)
}
