package exprql

import (
	"strings"
	"testing"
)

func renderWith(t *testing.T, r Renderer, e Expression) string {
	t.Helper()
	var sb strings.Builder
	if err := r.Render(&sb, e); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

func TestPrefixRenderer(t *testing.T) {
	outer := PrefixRenderer{Prefix: "outer"}
	substitute := PrefixRenderer{Prefix: "outer", AliasToSubstitute: "a", Substitute: "outer.owner"}
	skip := PrefixRenderer{Prefix: "outer", AliasToSkip: "sub"}

	tests := []struct {
		renderer PrefixRenderer
		expr     Expression
		name     string
		expected string
	}{
		{name: "prefixes paths", renderer: outer, expr: Eq(Path("a.name"), Param("n")), expected: "outer.a.name = :n"},
		{name: "leaves values", renderer: outer, expr: In(Path("a.id"), Num(1), Str("x")), expected: "outer.a.id IN (1,'x')"},
		{name: "substitutes alias", renderer: substitute, expr: Eq(Path("a"), Path("b.x")), expected: "outer.owner = outer.b.x"},
		{name: "substitution needs exact alias", renderer: substitute, expr: Path("a.x"), expected: "outer.a.x"},
		{name: "prefix itself", renderer: outer, expr: Path("outer"), expected: "outer"},
		{name: "skips alias", renderer: skip, expr: Eq(Path("sub.x"), Path("a.x")), expected: "sub.x = outer.a.x"},
		{name: "skips bare alias", renderer: skip, expr: Path("sub"), expected: "sub"},
		{name: "inside index", renderer: outer, expr: PathOf(Index(Path("a.items"))), expected: "INDEX(outer.a.items)"},
		{name: "inside key", renderer: outer, expr: PathOf(Key(Path("a.labels"))), expected: "KEY(outer.a.labels)"},
		{name: "inside treat", renderer: outer, expr: PathOf(TreatAs(Path("a.pet"), "Cat"), Prop("whiskers")), expected: "TREAT(outer.a.pet AS Cat).whiskers"},
		{name: "array head", renderer: outer, expr: PathOf(At(Prop("items"), Num(0)), Prop("name")), expected: "outer.items[0].name"},
		{name: "inside function", renderer: outer, expr: Upper(Path("a.name")), expected: "UPPER(outer.a.name)"},
		{name: "inside case", renderer: outer, expr: Case(Path("a.y"), When(IsNull(Path("a.x")), Path("a.z"))), expected: "CASE WHEN outer.a.x IS NULL THEN outer.a.z ELSE outer.a.y END"},
		{name: "no prefix", renderer: PrefixRenderer{}, expr: Path("a.x"), expected: "a.x"},
		{
			name:     "groups unchanged",
			renderer: outer,
			expr:     Not(Or(Eq(Path("a.name"), Str("x")), Eq(Path("a.age"), Num(5)))),
			expected: "NOT (outer.a.name = 'x' OR outer.a.age = 5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderWith(t, tt.renderer, tt.expr); got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPrefixRenderer_DoesNotMutate(t *testing.T) {
	pred := And(Eq(Path("a.x"), Param("x")), IsEmpty(PathOf(Value(Path("a.m")))))
	before := pred.CopyPredicate(CopyAll)

	_ = renderWith(t, PrefixRenderer{Prefix: "outer"}, pred)

	if !Equal(before, pred) {
		t.Error("prefix rendering changed the tree")
	}
	if got := renderWith(t, Plain{}, pred); got != "a.x = :x AND VALUE(a.m) IS EMPTY" {
		t.Errorf("plain render after prefix render = %q", got)
	}
}

func TestPrefixRenderer_RenderQuery(t *testing.T) {
	r := PrefixRenderer{Prefix: "outer"}
	result, err := r.RenderQuery(Eq(Path("a.x"), Param("x")))
	if err != nil {
		t.Fatalf("RenderQuery() error = %v", err)
	}
	if result.Text != "outer.a.x = :x" {
		t.Errorf("Text = %q", result.Text)
	}
	if len(result.RequiredParams) != 1 || result.RequiredParams[0] != "x" {
		t.Errorf("RequiredParams = %v", result.RequiredParams)
	}
}
