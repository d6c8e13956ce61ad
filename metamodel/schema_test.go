package metamodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/exprql/metamodel"
)

func petSchema() *metamodel.Schema {
	s := metamodel.NewSchema()
	animal := s.Entity("Animal").
		Attr("name", metamodel.String).
		List("lives", metamodel.EntityType("Life"))
	s.Entity("Cat").Extends(animal.Type()).
		Attr("whiskers", metamodel.Integer).
		Map("toys", metamodel.String, metamodel.EntityType("Toy")).
		Set("tags", metamodel.String).
		Erased("tags")
	s.Entity("Life").Attr("number", metamodel.Integer)
	s.Entity("Toy").Attr("color", metamodel.String)
	return s
}

func TestSchema_Managed(t *testing.T) {
	s := petSchema()

	mt, err := s.Managed(metamodel.EntityType("Cat"))
	require.NoError(t, err)
	assert.Equal(t, metamodel.EntityType("Cat"), mt.Type())

	_, err = s.Managed(metamodel.String)
	require.ErrorIs(t, err, metamodel.ErrNotManaged)

	_, err = s.Managed(metamodel.EntityType("Dog"))
	require.ErrorIs(t, err, metamodel.ErrNotManaged)
}

func TestSchema_InheritedAttribute(t *testing.T) {
	s := petSchema()
	cat, err := s.Managed(metamodel.EntityType("Cat"))
	require.NoError(t, err)

	name, ok := cat.Attribute("name")
	require.True(t, ok)
	assert.Equal(t, metamodel.EntityType("Animal"), name.Declaring)
	assert.Equal(t, metamodel.String, name.Type)

	assert.Equal(t, []metamodel.Type{metamodel.EntityType("Life")}, cat.TypeArguments("lives"))

	_, ok = cat.Attribute("missing")
	assert.False(t, ok)
}

func TestSchema_PluralMetadata(t *testing.T) {
	s := petSchema()
	cat, err := s.Managed(metamodel.EntityType("Cat"))
	require.NoError(t, err)

	toys, ok := cat.Attribute("toys")
	require.True(t, ok)
	assert.True(t, toys.IsPlural())
	assert.Equal(t, metamodel.Map, toys.Type)
	assert.Equal(t, metamodel.String, toys.Key)
	assert.Equal(t, metamodel.EntityType("Toy"), toys.Element)
	assert.Equal(t, []metamodel.Type{metamodel.String, metamodel.EntityType("Toy")}, cat.TypeArguments("toys"))

	tags, ok := cat.Attribute("tags")
	require.True(t, ok)
	assert.Equal(t, metamodel.String, tags.Element)
	assert.Nil(t, cat.TypeArguments("tags"), "erased attribute keeps no type arguments")
}

func TestSchema_TypeByName(t *testing.T) {
	s := petSchema()

	cat, err := s.TypeByName("Cat")
	require.NoError(t, err)
	assert.Equal(t, metamodel.KindEntity, cat.Kind)

	str, err := s.TypeByName("String")
	require.NoError(t, err)
	assert.Equal(t, metamodel.String, str)

	_, err = s.TypeByName("Nope")
	require.ErrorIs(t, err, metamodel.ErrUnknownType)
}

func TestSchema_Types(t *testing.T) {
	names := []string{}
	for _, typ := range petSchema().Types() {
		names = append(names, typ.Name)
	}
	assert.Equal(t, []string{"Animal", "Cat", "Life", "Toy"}, names)
}

func TestType_Predicates(t *testing.T) {
	assert.True(t, metamodel.List.IsList())
	assert.True(t, metamodel.List.IsPlural())
	assert.True(t, metamodel.Map.IsMap())
	assert.False(t, metamodel.Set.IsList())
	assert.False(t, metamodel.String.IsPlural())
	assert.True(t, metamodel.EmbeddableType("Address").IsManaged())
	assert.True(t, metamodel.Type{}.IsZero())
}

func TestSyntheticAttributes(t *testing.T) {
	lives := metamodel.Attribute{Name: "lives", Declaring: metamodel.EntityType("Animal"), Type: metamodel.List}

	idx := metamodel.ListIndexAttribute(lives)
	assert.Equal(t, metamodel.SyntheticListIndex, idx.Synthetic)
	assert.Equal(t, "INDEX(Animal.lives)", idx.String())
	assert.NotEqual(t, lives, idx)
	assert.Equal(t, idx, metamodel.ListIndexAttribute(lives), "synthetic attributes compare by value")

	entry := metamodel.MapEntryAttribute(lives)
	assert.Equal(t, "ENTRY(Animal.lives)", entry.String())
	assert.Equal(t, "Animal.lives", lives.String())
}
