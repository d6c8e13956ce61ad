package exprql_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/metamodel"
	exprqltest "github.com/zoobzio/exprql/testing"
)

var person = metamodel.EntityType("Person")

func resolve(t *testing.T, expr exprql.Expression) map[metamodel.Attribute]metamodel.Type {
	t.Helper()
	attrs, err := exprql.Resolve(exprqltest.TestSchema(t), person, expr, "p")
	exprqltest.AssertNoError(t, err)
	return attrs
}

func TestResolve_Paths(t *testing.T) {
	tests := []struct {
		expr     exprql.Expression
		expected map[string]string
		name     string
	}{
		{name: "basic", expr: exprql.Path("p.name"), expected: map[string]string{"Person.name": "String"}},
		{name: "embeddable", expr: exprql.Path("p.address.city"), expected: map[string]string{"Address.city": "String"}},
		{name: "entity", expr: exprql.Path("p.pet"), expected: map[string]string{"Person.pet": "Animal"}},
		{name: "list element", expr: exprql.Path("p.items"), expected: map[string]string{"Person.items": "Item"}},
		{name: "through list", expr: exprql.Path("p.items.name"), expected: map[string]string{"Item.name": "String"}},
		{name: "set element", expr: exprql.Path("p.tags"), expected: map[string]string{"Person.tags": "String"}},
		{name: "map value", expr: exprql.Path("p.labels"), expected: map[string]string{"Person.labels": "String"}},
		{name: "through map", expr: exprql.Path("p.friends.age"), expected: map[string]string{"Person.age": "Integer"}},
		{name: "inherited", expr: exprql.Path("p.pet.lives.number"), expected: map[string]string{"Life.number": "Integer"}},
		{
			// INDEX() yields the list-index attribute typed Integer.
			name:     "list index",
			expr:     exprql.PathOf(exprql.Index(exprql.Path("p.items"))),
			expected: map[string]string{"INDEX(Person.items)": "Integer"},
		},
		{
			// An array access walks only its base, so [0] reaches the element type.
			name:     "array access",
			expr:     exprql.PathOf(exprql.Prop("p"), exprql.At(exprql.Prop("items"), exprql.Num(0)), exprql.Prop("price")),
			expected: map[string]string{"Item.price": "Decimal"},
		},
		{
			name:     "map key",
			expr:     exprql.PathOf(exprql.Key(exprql.Path("p.friends"))),
			expected: map[string]string{"Person.friends": "String"},
		},
		{
			name:     "map value navigation",
			expr:     exprql.PathOf(exprql.Value(exprql.Path("p.friends")), exprql.Prop("email")),
			expected: map[string]string{"Person.email": "String"},
		},
		{
			name:     "map entry",
			expr:     exprql.PathOf(exprql.Entry(exprql.Path("p.labels"))),
			expected: map[string]string{"ENTRY(Person.labels)": "Map.Entry"},
		},
		{
			name:     "treat",
			expr:     exprql.PathOf(exprql.TreatAs(exprql.Path("p.pet"), "Cat"), exprql.Prop("whiskers")),
			expected: map[string]string{"Cat.whiskers": "Integer"},
		},
		{
			name:     "treat inherited",
			expr:     exprql.PathOf(exprql.TreatAs(exprql.Path("p.pet"), "Dog"), exprql.Prop("lives")),
			expected: map[string]string{"Animal.lives": "Life"},
		},
		{
			name:     "treat end",
			expr:     exprql.TreatAs(exprql.Path("p.pet"), "Cat"),
			expected: map[string]string{"Person.pet": "Cat"},
		},
		{
			name:     "erased arguments",
			expr:     exprql.Path("p.nicknames"),
			expected: map[string]string{"Person.nicknames": "String"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprqltest.AssertResolved(t, tt.expected, resolve(t, tt.expr))
		})
	}
}

func TestResolve_RootOnly(t *testing.T) {
	attrs := resolve(t, exprql.Path("p"))
	if len(attrs) != 1 {
		t.Fatalf("len = %d, want 1", len(attrs))
	}
	if got := attrs[metamodel.Attribute{}]; got != person {
		t.Errorf("root resolves to %s, want Person", got)
	}
}

func TestResolve_TreatRootAlias(t *testing.T) {
	expr := exprql.PathOf(exprql.TreatAs(exprql.Path("a"), "Cat"), exprql.Prop("whiskers"))
	attrs, err := exprql.Resolve(exprqltest.TestSchema(t), metamodel.EntityType("Animal"), expr, "a")
	exprqltest.AssertNoError(t, err)
	exprqltest.AssertResolved(t, map[string]string{"Cat.whiskers": "Integer"}, attrs)
}

func TestResolve_WithoutAliasToSkip(t *testing.T) {
	attrs, err := exprql.Resolve(exprqltest.TestSchema(t), person, exprql.Path("address.zip"), "")
	exprqltest.AssertNoError(t, err)
	exprqltest.AssertResolved(t, map[string]string{"Address.zip": "String"}, attrs)
}

func TestResolve_CaseForks(t *testing.T) {
	expr := exprql.Case(exprql.Path("p.email"),
		exprql.When(exprql.Gt(exprql.Path("p.age"), exprql.Num(18)), exprql.Path("p.name")),
	)
	exprqltest.AssertResolved(t, map[string]string{
		"Person.name":  "String",
		"Person.email": "String",
	}, resolve(t, expr))
}

func TestResolve_CaseForksInsidePath(t *testing.T) {
	expr := exprql.PathOf(
		exprql.TreatAs(exprql.SimpleCaseOf(exprql.Path("p.age"), exprql.Path("p.pet"),
			exprql.When(exprql.Num(1), exprql.Path("p.pet")),
		), "Cat"),
		exprql.Prop("whiskers"),
	)
	exprqltest.AssertResolved(t, map[string]string{"Cat.whiskers": "Integer"}, resolve(t, expr))
}

func TestResolve_LastBranchWins(t *testing.T) {
	plain := exprql.Path("p.pet")
	narrowed := exprql.TreatAs(exprql.Path("p.pet"), "Cat")

	catLast := exprql.Case(narrowed, exprql.When(exprql.True(), plain))
	exprqltest.AssertResolved(t, map[string]string{"Person.pet": "Cat"}, resolve(t, catLast))

	animalLast := exprql.Case(plain, exprql.When(exprql.True(), narrowed))
	exprqltest.AssertResolved(t, map[string]string{"Person.pet": "Animal"}, resolve(t, animalLast))
}

func TestResolve_LogsErasedArguments(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	resolver := exprql.NewPathResolver(exprqltest.TestSchema(t), logger)

	_, err := resolver.Resolve(context.Background(), person, exprql.Path("p.nicknames"), "p")
	exprqltest.AssertNoError(t, err)
	if !strings.Contains(buf.String(), "type arguments unavailable") {
		t.Errorf("missing debug event, log = %q", buf.String())
	}
}

func TestResolve_UnresolvableAttribute(t *testing.T) {
	_, err := exprql.Resolve(exprqltest.TestSchema(t), person, exprql.Path("p.missing"), "p")
	if !errors.Is(err, exprql.ErrUnresolvableAttribute) {
		t.Fatalf("error = %v, want ErrUnresolvableAttribute", err)
	}
	var unresolvable exprql.UnresolvableAttributeError
	if !errors.As(err, &unresolvable) {
		t.Fatalf("error %T is not an UnresolvableAttributeError", err)
	}
	if unresolvable.Property != "missing" || unresolvable.Owner != person {
		t.Errorf("error = %+v", unresolvable)
	}
}

func TestResolve_BasicTypeHasNoAttributes(t *testing.T) {
	_, err := exprql.Resolve(exprqltest.TestSchema(t), person, exprql.Path("p.name.length"), "p")
	if !errors.Is(err, exprql.ErrUnresolvableAttribute) {
		t.Fatalf("error = %v, want ErrUnresolvableAttribute", err)
	}
	if !errors.Is(err, metamodel.ErrNotManaged) {
		t.Errorf("error = %v, want wrapped ErrNotManaged", err)
	}
}

func TestResolve_InvalidPath(t *testing.T) {
	tests := []struct {
		expr exprql.Expression
		name string
	}{
		{name: "index of set", expr: exprql.PathOf(exprql.Index(exprql.Path("p.tags")))},
		{name: "literal", expr: exprql.Str("x")},
		{name: "parameter", expr: exprql.Param("x")},
		{name: "predicate", expr: exprql.Eq(exprql.Path("p.name"), exprql.Str("x"))},
		{name: "function", expr: exprql.Upper(exprql.Path("p.name"))},
		{name: "arithmetic", expr: exprql.Arith(exprql.Path("p.age"), exprql.Add, exprql.Num(1))},
		{name: "subquery", expr: exprql.SubqueryOf(exprql.RawSubquery("SELECT 1"))},
		{name: "unknown treat type", expr: exprql.TreatAs(exprql.Path("p.pet"), "Horse")},
		{name: "literal case branch", expr: exprql.Case(exprql.Null(), exprql.When(exprql.True(), exprql.Path("p.name")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exprql.Resolve(exprqltest.TestSchema(t), person, tt.expr, "p")
			if !errors.Is(err, exprql.ErrInvalidPath) {
				t.Errorf("error = %v, want ErrInvalidPath", err)
			}
		})
	}
}

func TestPathResolver_NilMetamodel(t *testing.T) {
	r := &exprql.PathResolver{}
	if _, err := r.Resolve(context.Background(), person, exprql.Path("p.name"), "p"); err == nil {
		t.Error("expected error for resolver without metamodel")
	}
}

func TestResolve_FromYAML(t *testing.T) {
	doc := `
types:
  - name: Order
    attributes:
      - name: total
        type: Decimal
      - name: lines
        collection: list
        element: Line
  - name: Line
    attributes:
      - name: sku
        type: String
`
	schema, err := metamodel.LoadYAML(strings.NewReader(doc))
	exprqltest.AssertNoError(t, err)

	attrs, err := exprql.Resolve(schema, metamodel.EntityType("Order"), exprql.PathOf(exprql.Index(exprql.Path("o.lines"))), "o")
	exprqltest.AssertNoError(t, err)
	exprqltest.AssertResolved(t, map[string]string{"INDEX(Order.lines)": "Integer"}, attrs)
}
