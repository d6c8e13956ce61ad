package metamodel

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	gormschema "gorm.io/gorm/schema"
)

// FromModels builds a schema from gorm models.
//
// Columns become basic attributes, has-many and many-to-many relationships
// become list attributes, has-one and belongs-to relationships become entity
// attributes and named embedded structs become embeddables. Map and slice fields
// that gorm ignores (`gorm:"-"`) are added from their declared Go types.
// Attribute names are the snake_case form of the Go field names.
func FromModels(models ...any) (*Schema, error) {
	cache := &sync.Map{}
	namer := gormschema.NamingStrategy{}
	s := NewSchema()
	seen := make(map[string]bool)

	for _, m := range models {
		parsed, err := gormschema.Parse(m, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}
		s.addModel(parsed, namer, seen)
	}
	return s, nil
}

func (s *Schema) addModel(gs *gormschema.Schema, namer gormschema.Namer, seen map[string]bool) {
	if gs == nil || seen[gs.Name] {
		return
	}
	seen[gs.Name] = true
	b := s.Entity(gs.Name)

	for _, f := range gs.Fields {
		if f.DataType == "" {
			continue
		}
		s.addColumn(b, gs.ModelType, f, namer)
	}

	for _, rel := range gs.Relationships.Relations {
		if rel.FieldSchema == nil {
			continue
		}
		target := EntityType(rel.FieldSchema.Name)
		name := namer.ColumnName("", rel.Name)
		switch rel.Type {
		case gormschema.HasMany, gormschema.Many2Many:
			b.List(name, target)
		default:
			b.Attr(name, target)
		}
		s.addModel(rel.FieldSchema, namer, seen)
	}

	s.addIgnoredPlurals(b, gs.ModelType, namer)
}

// addColumn places a column on its owner, creating embeddables for named
// embedded structs along the bind path.
func (s *Schema) addColumn(b *TypeBuilder, model reflect.Type, f *gormschema.Field, namer gormschema.Namer) {
	owner := b
	rt := indirectType(model)
	if len(f.BindNames) > 1 {
		for _, bind := range f.BindNames[:len(f.BindNames)-1] {
			if rt.Kind() != reflect.Struct {
				break
			}
			sf, ok := rt.FieldByName(bind)
			if !ok {
				break
			}
			rt = indirectType(sf.Type)
			if sf.Anonymous {
				continue
			}
			emb := EmbeddableType(rt.Name())
			owner.Attr(namer.ColumnName("", bind), emb)
			owner = s.Embeddable(rt.Name())
		}
	}
	owner.Attr(namer.ColumnName("", f.Name), columnDataType(f))
}

// addIgnoredPlurals adds map and slice fields gorm does not persist itself.
func (s *Schema) addIgnoredPlurals(b *TypeBuilder, model reflect.Type, namer gormschema.Namer) {
	rt := indirectType(model)
	if rt.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Tag.Get("gorm") != "-" {
			continue
		}
		name := namer.ColumnName("", sf.Name)
		if _, exists := b.mt.attrs[name]; exists {
			continue
		}
		ft := indirectType(sf.Type)
		switch ft.Kind() {
		case reflect.Map:
			b.Map(name, goType(ft.Key()), goType(ft.Elem()))
		case reflect.Slice, reflect.Array:
			if ft.Elem().Kind() == reflect.Uint8 {
				b.Attr(name, Bytes)
				continue
			}
			b.List(name, goType(ft.Elem()))
		}
	}
}

func columnDataType(f *gormschema.Field) Type {
	switch f.DataType {
	case gormschema.Bool:
		return Boolean
	case gormschema.Int, gormschema.Uint:
		if f.Size > 0 && f.Size <= 32 {
			return Integer
		}
		return Long
	case gormschema.Float:
		return Double
	case gormschema.String:
		return String
	case gormschema.Time:
		return Timestamp
	case gormschema.Bytes:
		return Bytes
	}
	return Type{Name: string(f.DataType), Kind: KindBasic}
}

var timeType = reflect.TypeOf(time.Time{})

// goType maps a declared Go type to a structural type.
func goType(t reflect.Type) Type {
	t = indirectType(t)
	if t == timeType {
		return Timestamp
	}
	switch t.Kind() {
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Integer
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return Long
	case reflect.Float32, reflect.Float64:
		return Double
	case reflect.Struct:
		return EntityType(t.Name())
	}
	return Type{Name: t.String(), Kind: KindBasic}
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
