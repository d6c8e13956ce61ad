package metamodel

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
)

// FromDBML builds a schema with one entity per table and one basic attribute
// per column.
func FromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := NewSchema()
	for _, table := range project.Tables {
		b := s.Entity(table.Name)
		for _, col := range table.Columns {
			b.Attr(col.Name, columnType(col.Type))
		}
	}
	return s, nil
}

// columnType maps a SQL column type to a basic type.
// Unknown types keep their SQL name as an opaque basic type.
func columnType(sqlType string) Type {
	name := strings.ToLower(strings.TrimSpace(sqlType))
	if i := strings.IndexByte(name, '('); i != -1 {
		name = name[:i]
	}
	switch name {
	case "varchar", "char", "text", "character varying", "nvarchar", "string", "citext":
		return String
	case "int", "integer", "int4", "smallint", "int2", "serial":
		return Integer
	case "bigint", "int8", "bigserial":
		return Long
	case "real", "float", "float4", "float8", "double", "double precision":
		return Double
	case "numeric", "decimal", "money":
		return Decimal
	case "bool", "boolean":
		return Boolean
	case "date":
		return Date
	case "time", "timetz":
		return Time
	case "timestamp", "timestamptz", "datetime":
		return Timestamp
	case "bytea", "blob", "binary", "varbinary":
		return Bytes
	case "uuid", "uniqueidentifier":
		return UUID
	}
	return Type{Name: sqlType, Kind: KindBasic}
}
