package exprql

import "github.com/zoobzio/exprql/metamodel"

// pathPosition is the state of one walk through a path.
// currentClass is always the container reached so far; valueClass and keyClass
// are the element types of a plural container.
type pathPosition struct {
	currentClass metamodel.Type
	valueClass   metamodel.Type
	keyClass     metamodel.Type
	attribute    metamodel.Attribute
}

// effectiveClass is the type the next step navigates from.
func (p pathPosition) effectiveClass() metamodel.Type {
	if !p.valueClass.IsZero() {
		return p.valueClass
	}
	if !p.keyClass.IsZero() {
		return p.keyClass
	}
	return p.currentClass
}

// positions is the ordered set of walks alive at one point of a path.
type positions []pathPosition

// each applies step to every position.
func (ps positions) each(step func(*pathPosition) error) error {
	for i := range ps {
		if err := step(&ps[i]); err != nil {
			return err
		}
	}
	return nil
}
