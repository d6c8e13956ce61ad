package render

import (
	"errors"
	"fmt"
)

// ErrUnboundParameter is matched by every UnboundParameterError.
var ErrUnboundParameter = errors.New("parameter is not bound")

// UnboundParameterError indicates a parameter node without a name reached the renderer.
type UnboundParameterError struct {
	Context string
}

func (e UnboundParameterError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s", ErrUnboundParameter, e.Context)
	}
	return ErrUnboundParameter.Error()
}

// Is makes errors.Is(err, ErrUnboundParameter) hold.
func (UnboundParameterError) Is(target error) bool {
	return target == ErrUnboundParameter
}

// UnsupportedNodeError indicates a node the renderer cannot place in the output.
type UnsupportedNodeError struct {
	Node string
	Hint string
}

func (e UnsupportedNodeError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("cannot render %s: %s", e.Node, e.Hint)
	}
	return fmt.Sprintf("cannot render %s", e.Node)
}

// NewUnsupportedNodeError creates a new unsupported node error.
func NewUnsupportedNodeError(node any, hint ...string) error {
	err := UnsupportedNodeError{Node: fmt.Sprintf("%T", node)}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
