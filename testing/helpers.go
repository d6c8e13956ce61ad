// Package testing provides test utilities for exprql.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/metamodel"
)

// TestSchema creates a metamodel covering every kind of navigation step.
//
//	Person   name, age, id, email, address (Address), pet (Animal),
//	         items List<Item>, tags Set<String>, labels Map<String,String>,
//	         friends Map<String,Person>, nicknames List<String> (erased)
//	Address  street, city, zip (embeddable)
//	Item     name, price
//	Animal   name, lives List<Life>
//	Cat      Animal + whiskers
//	Dog      Animal + bark
//	Life     number
func TestSchema(t testing.TB) *metamodel.Schema {
	t.Helper()

	s := metamodel.NewSchema()
	address := s.Embeddable("Address").
		Attr("street", metamodel.String).
		Attr("city", metamodel.String).
		Attr("zip", metamodel.String).
		Type()
	item := s.Entity("Item").
		Attr("name", metamodel.String).
		Attr("price", metamodel.Decimal).
		Type()
	life := s.Entity("Life").
		Attr("number", metamodel.Integer).
		Type()
	animal := s.Entity("Animal").
		Attr("name", metamodel.String).
		List("lives", life).
		Type()
	s.Entity("Cat").Extends(animal).Attr("whiskers", metamodel.Integer)
	s.Entity("Dog").Extends(animal).Attr("bark", metamodel.String)

	person := s.Entity("Person")
	person.
		Attr("name", metamodel.String).
		Attr("age", metamodel.Integer).
		Attr("id", metamodel.Long).
		Attr("email", metamodel.String).
		Attr("address", address).
		Attr("pet", animal).
		List("items", item).
		Set("tags", metamodel.String).
		Map("labels", metamodel.String, metamodel.String).
		Map("friends", metamodel.String, person.Type()).
		List("nicknames", metamodel.String).
		Erased("nicknames")
	return s
}

// TestInstance creates an instance rooted at Person under alias p.
func TestInstance(t testing.TB) *exprql.EXPRQL {
	t.Helper()

	instance, err := exprql.New(TestSchema(t), metamodel.EntityType("Person"), "p")
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// TestProject creates a DBML project with users and orders tables.
func TestProject(t testing.TB) *dbml.Project {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	return project
}

// MustRender renders e with the default renderer and fails the test on error.
func MustRender(t testing.TB, e exprql.Expression) string {
	t.Helper()
	var sb strings.Builder
	if err := exprql.Render(&sb, e); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	return sb.String()
}

// AssertText compares expected and actual query text.
func AssertText(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("Text mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertParams checks that the required params match expected values in order.
func AssertParams(t testing.TB, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Param count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Param %d mismatch\nExpected: %v\nActual: %v", i, expected, actual)
			return
		}
	}
}

// AssertResolved checks that a resolution result holds exactly the expected
// attribute names (as printed by Attribute.String) mapped to the expected type names.
func AssertResolved(t testing.TB, expected map[string]string, actual map[metamodel.Attribute]metamodel.Type) {
	t.Helper()
	got := make(map[string]string, len(actual))
	for attr, typ := range actual {
		got[attr.String()] = typ.Name
	}
	if len(got) != len(expected) {
		t.Errorf("Resolution size mismatch: expected %v, got %v", expected, got)
		return
	}
	for name, typ := range expected {
		if got[name] != typ {
			t.Errorf("Resolution of %s: expected %q, got %q (all: %v)", name, typ, got[name], got)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t testing.TB, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
