package metamodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/dbml"

	"github.com/zoobzio/exprql/metamodel"
)

func TestFromDBML(t *testing.T) {
	project := dbml.NewProject("test")
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar(64)"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	users.AddColumn(dbml.NewColumn("embedding", "vector"))
	project.AddTable(users)

	s, err := metamodel.FromDBML(project)
	require.NoError(t, err)

	mt, err := s.Managed(metamodel.EntityType("users"))
	require.NoError(t, err)

	want := map[string]metamodel.Type{
		"id":         metamodel.Long,
		"username":   metamodel.String,
		"age":        metamodel.Integer,
		"active":     metamodel.Boolean,
		"created_at": metamodel.Timestamp,
		"embedding":  {Name: "vector", Kind: metamodel.KindBasic},
	}
	for name, typ := range want {
		attr, ok := mt.Attribute(name)
		require.True(t, ok, name)
		assert.Equal(t, typ, attr.Type, name)
	}
}

func TestFromDBML_NilProject(t *testing.T) {
	_, err := metamodel.FromDBML(nil)
	require.Error(t, err)
}
