package exprql

import (
	"errors"
	"fmt"

	"github.com/zoobzio/exprql/metamodel"
)

var (
	// ErrUnresolvableAttribute is matched by every UnresolvableAttributeError.
	ErrUnresolvableAttribute = errors.New("unresolvable attribute")
	// ErrInvalidPath is matched by every InvalidPathError.
	ErrInvalidPath = errors.New("invalid path")
)

// UnresolvableAttributeError indicates a property step named no attribute of
// the type it was applied to.
type UnresolvableAttributeError struct {
	Owner    metamodel.Type
	Err      error
	Property string
}

func (e UnresolvableAttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attribute '%s' not found on %s: %v", e.Property, e.Owner, e.Err)
	}
	return fmt.Sprintf("attribute '%s' not found on %s", e.Property, e.Owner)
}

// Is makes errors.Is(err, ErrUnresolvableAttribute) hold.
func (UnresolvableAttributeError) Is(target error) bool {
	return target == ErrUnresolvableAttribute
}

func (e UnresolvableAttributeError) Unwrap() error {
	return e.Err
}

// InvalidPathError indicates a node that cannot take part in navigation.
type InvalidPathError struct {
	Node   string
	Reason string
}

func (e InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path at %s: %s", e.Node, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidPath) hold.
func (InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

func invalidPath(node any, reason string) error {
	return InvalidPathError{Node: fmt.Sprintf("%T", node), Reason: reason}
}
