package metamodel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/exprql/metamodel"
)

const schemaYAML = `
types:
  - name: Person
    attributes:
      - name: name
        type: String
      - name: address
        type: Address
      - name: items
        collection: list
        element: Item
      - name: labels
        collection: map
        key: String
        element: Integer
        erased: true
  - name: Employee
    extends: Person
    attributes:
      - name: salary
        type: Decimal
  - name: Address
    kind: embeddable
    attributes:
      - name: city
        type: String
  - name: Item
    attributes:
      - name: title
        type: String
`

func TestLoadYAML(t *testing.T) {
	s, err := metamodel.LoadYAML(strings.NewReader(schemaYAML))
	require.NoError(t, err)

	emp, err := s.Managed(metamodel.EntityType("Employee"))
	require.NoError(t, err)

	addr, ok := emp.Attribute("address")
	require.True(t, ok)
	assert.Equal(t, metamodel.EmbeddableType("Address"), addr.Type)

	items, ok := emp.Attribute("items")
	require.True(t, ok)
	assert.Equal(t, metamodel.List, items.Type)
	assert.Equal(t, []metamodel.Type{metamodel.EntityType("Item")}, emp.TypeArguments("items"))

	labels, ok := emp.Attribute("labels")
	require.True(t, ok)
	assert.Equal(t, metamodel.String, labels.Key)
	assert.Equal(t, metamodel.Integer, labels.Element)
	assert.Nil(t, emp.TypeArguments("labels"))

	salary, ok := emp.Attribute("salary")
	require.True(t, ok)
	assert.Equal(t, metamodel.Decimal, salary.Type)
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "unknown type", doc: "types:\n  - name: A\n    attributes:\n      - name: x\n        type: Nope\n", want: "unknown type"},
		{name: "unknown kind", doc: "types:\n  - name: A\n    kind: table\n", want: "unknown kind"},
		{name: "unknown collection", doc: "types:\n  - name: A\n    attributes:\n      - name: x\n        collection: bagz\n        element: String\n", want: "unknown collection"},
		{name: "unknown field", doc: "types:\n  - name: A\n    colour: red\n", want: "colour"},
		{name: "missing name", doc: "types:\n  - kind: entity\n", want: "type without name"},
		{name: "missing map key", doc: "types:\n  - name: A\n    attributes:\n      - name: x\n        collection: map\n        element: String\n", want: "key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := metamodel.LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	s, err := metamodel.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Types())
}
