package exprql

import (
	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

// LiteralKind tags a literal's value.
type LiteralKind = types.LiteralKind

// Re-export literal kinds for public API.
const (
	LitNull      = types.LitNull
	LitString    = types.LitString
	LitNumeric   = types.LitNumeric
	LitBoolean   = types.LitBoolean
	LitDate      = types.LitDate
	LitTime      = types.LitTime
	LitTimestamp = types.LitTimestamp
	LitEnum      = types.LitEnum
	LitEntity    = types.LitEntity
)

// UnboundParameterError is returned when rendering a parameter without a name.
type UnboundParameterError = render.UnboundParameterError

// UnsupportedNodeError is returned when the renderer meets a node it cannot place.
type UnsupportedNodeError = render.UnsupportedNodeError

// ErrUnboundParameter matches every UnboundParameterError.
var ErrUnboundParameter = render.ErrUnboundParameter
