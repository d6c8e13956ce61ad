package exprql

import (
	"fmt"
	"math/big"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/zoobzio/exprql/internal/types"
)

// Canonical layouts of temporal literal values.
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	TimestampLayout = "2006-01-02 15:04:05.999999999"
)

// Str creates a string literal.
func Str(s string) *types.Literal {
	return &types.Literal{Kind: types.LitString, Value: s}
}

// TryNum creates a numeric literal from an integer, float, decimal or numeric string.
func TryNum(v any) (*types.Literal, error) {
	var d decimal.Decimal
	switch n := v.(type) {
	case int:
		d = decimal.NewFromInt(int64(n))
	case int32:
		d = decimal.NewFromInt32(n)
	case int64:
		d = decimal.NewFromInt(n)
	case uint:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0)
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
	case float32:
		d = decimal.NewFromFloat32(n)
	case float64:
		d = decimal.NewFromFloat(n)
	case decimal.Decimal:
		d = n
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric literal %q: %w", n, err)
		}
		d = parsed
	default:
		return nil, fmt.Errorf("unsupported numeric literal type %T", v)
	}
	return &types.Literal{Kind: types.LitNumeric, Value: d.String()}, nil
}

// Num creates a numeric literal.
func Num(v any) *types.Literal {
	l, err := TryNum(v)
	if err != nil {
		panic(err)
	}
	return l
}

// Bool creates a boolean literal value.
// Use True or False for boolean predicates.
func Bool(v bool) *types.Literal {
	if v {
		return &types.Literal{Kind: types.LitBoolean, Value: "TRUE"}
	}
	return &types.Literal{Kind: types.LitBoolean, Value: "FALSE"}
}

// Null creates the NULL literal.
func Null() *types.Literal {
	return &types.Literal{Kind: types.LitNull, Value: "NULL"}
}

// Date creates a date literal.
func Date(t time.Time) *types.Literal {
	return &types.Literal{Kind: types.LitDate, Value: t.Format(DateLayout)}
}

// TimeOfDay creates a time literal.
func TimeOfDay(t time.Time) *types.Literal {
	return &types.Literal{Kind: types.LitTime, Value: t.Format(TimeLayout)}
}

// Timestamp creates a timestamp literal.
func Timestamp(t time.Time) *types.Literal {
	return &types.Literal{Kind: types.LitTimestamp, Value: t.Format(TimestampLayout)}
}

// TryTemporal parses s in any common date format and creates a literal of the
// given temporal kind.
func TryTemporal(kind types.LiteralKind, s string) (*types.Literal, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s literal %q: %w", kind, s, err)
	}
	switch kind {
	case types.LitDate:
		return Date(t), nil
	case types.LitTime:
		return TimeOfDay(t), nil
	case types.LitTimestamp:
		return Timestamp(t), nil
	}
	return nil, fmt.Errorf("%s is not a temporal literal kind", kind)
}

// Enum creates an enum literal from its qualified name, e.g. Status.ACTIVE.
func Enum(qualified string) *types.Literal {
	return &types.Literal{Kind: types.LitEnum, Value: qualified}
}

// Entity creates an entity type literal, as used with TYPE(alias) = Cat.
func Entity(name string) *types.Literal {
	return &types.Literal{Kind: types.LitEntity, Value: name}
}
