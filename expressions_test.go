package exprql

import (
	"strings"
	"testing"

	"github.com/zoobzio/exprql/internal/types"
)

func TestFunctions(t *testing.T) {
	runRenderCases(t, []renderCase{
		{name: "no args", expr: Fn("CURRENT_DATE"), expected: "CURRENT_DATE()"},
		{name: "multiple args", expr: Fn("LOCATE", Str("x"), Path("p.name")), expected: "LOCATE('x',p.name)"},
		{name: "upper", expr: Upper(Path("p.name")), expected: "UPPER(p.name)"},
		{name: "lower", expr: Lower(Path("p.name")), expected: "LOWER(p.name)"},
		{name: "size", expr: Size(Path("p.items")), expected: "SIZE(p.items)"},
		{name: "type", expr: TypeOf(Path("p")), expected: "TYPE(p)"},
		{name: "nested", expr: Upper(Lower(Param("name"))), expected: "UPPER(LOWER(:name))"},
	})
}

func TestAggregates(t *testing.T) {
	runRenderCases(t, []renderCase{
		{name: "count", expr: Count(Path("p.id")), expected: "COUNT(p.id)"},
		{name: "count distinct", expr: CountDistinct(Path("p.id")), expected: "COUNT(DISTINCT p.id)"},
		{name: "sum", expr: Sum(Path("p.age")), expected: "SUM(p.age)"},
		{name: "avg", expr: Avg(Path("p.age")), expected: "AVG(p.age)"},
		{name: "min", expr: Min(Path("p.age")), expected: "MIN(p.age)"},
		{name: "max", expr: Max(Path("p.age")), expected: "MAX(p.age)"},
		{name: "custom distinct", expr: AggDistinct("STRING_AGG", Path("p.name"), Str(",")), expected: "STRING_AGG(DISTINCT p.name,',')"},
	})
}

func TestAggregate_DistinctFlag(t *testing.T) {
	if Count(Path("p.id")).Distinct {
		t.Error("Count() should not be distinct")
	}
	if !CountDistinct(Path("p.id")).Distinct {
		t.Error("CountDistinct() should be distinct")
	}
}

func TestArithmetic(t *testing.T) {
	a, b, c := Path("p.a"), Path("p.b"), Path("p.c")
	runRenderCases(t, []renderCase{
		{name: "simple", expr: Arith(a, Add, b), expected: "p.a + p.b"},
		{name: "tighter left", expr: Arith(Arith(a, Mul, b), Add, c), expected: "p.a * p.b + p.c"},
		{name: "looser left", expr: Arith(Arith(a, Add, b), Mul, c), expected: "(p.a + p.b) * p.c"},
		{name: "looser right", expr: Arith(a, Mul, Arith(b, Sub, c)), expected: "p.a * (p.b - p.c)"},
		{name: "associative right", expr: Arith(a, Add, Arith(b, Add, c)), expected: "p.a + p.b + p.c"},
		{name: "subtract right", expr: Arith(a, Sub, Arith(b, Add, c)), expected: "p.a - (p.b + p.c)"},
		{name: "divide right", expr: Arith(a, Div, Arith(b, Mul, c)), expected: "p.a / (p.b * p.c)"},
		{name: "negated path", expr: Neg(a), expected: "-p.a"},
		{name: "negated group", expr: Neg(Arith(a, Add, b)), expected: "-(p.a + p.b)"},
	})
}

func TestCase(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name: "general",
			expr: Case(Str("adult"),
				When(Lt(Path("p.age"), Num(18)), Str("minor")),
			),
			expected: "CASE WHEN p.age < 18 THEN 'minor' ELSE 'adult' END",
		},
		{
			name: "general without default",
			expr: Case(nil,
				When(IsNull(Path("p.name")), Str("?")),
				When(True(), Path("p.name")),
			),
			expected: "CASE WHEN p.name IS NULL THEN '?' WHEN TRUE THEN p.name END",
		},
		{
			name: "simple",
			expr: SimpleCaseOf(Path("p.age"), Null(),
				When(Num(1), Str("one")),
				When(Num(2), Str("two")),
			),
			expected: "CASE p.age WHEN 1 THEN 'one' WHEN 2 THEN 'two' ELSE NULL END",
		},
	})
}

func TestTextAndConcat(t *testing.T) {
	runRenderCases(t, []renderCase{
		{name: "text", expr: Text("CURRENT_TIMESTAMP"), expected: "CURRENT_TIMESTAMP"},
		{name: "concat", expr: Concat(Path("p.name"), Text(" || "), Str("!")), expected: "p.name || '!'"},
		{name: "empty concat", expr: Concat(), expected: ""},
	})
}

func TestSubqueries(t *testing.T) {
	q := RawSubquery("SELECT i.price FROM Item i")
	if q.QueryString() != "SELECT i.price FROM Item i" {
		t.Errorf("QueryString() = %q", q.QueryString())
	}
	runRenderCases(t, []renderCase{
		{name: "operand", expr: SubqueryOf(q), expected: "(SELECT i.price FROM Item i)"},
		{name: "in comparison", expr: Gt(Path("p.age"), SubqueryOf(RawSubquery("SELECT 1"))), expected: "p.age > (SELECT 1)"},
	})

	var sb strings.Builder
	if err := Render(&sb, &types.SubqueryExpression{}); err == nil {
		t.Error("expected error for subquery without query")
	}
}
