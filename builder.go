package exprql

import (
	"fmt"

	"github.com/zoobzio/exprql/internal/types"
)

// Builder provides a fluent API for assembling a predicate tree.
// The builder owns the compounds it creates; Build hands out an independent copy.
type Builder struct {
	root *types.Compound
	open []*types.Compound
	err  error
}

// Where creates a builder whose top-level group is an AND of preds.
func Where(preds ...types.Predicate) *Builder {
	b := &Builder{root: And()}
	b.open = []*types.Compound{b.root}
	return b.And(preds...)
}

// GetError returns the first error recorded by the builder.
func (b *Builder) GetError() error {
	return b.err
}

func (b *Builder) current() *types.Compound {
	return b.open[len(b.open)-1]
}

// And adds preds to the current group.
func (b *Builder) And(preds ...types.Predicate) *Builder {
	if b.err != nil {
		return b
	}
	for _, p := range preds {
		if p == nil {
			b.err = fmt.Errorf("predicate cannot be nil")
			return b
		}
		b.current().Add(p)
	}
	return b
}

// Or adds a single OR group of alternatives to the current group.
func (b *Builder) Or(alternatives ...types.Predicate) *Builder {
	if b.err != nil {
		return b
	}
	if len(alternatives) == 0 {
		b.err = fmt.Errorf("Or() requires at least one alternative")
		return b
	}
	for _, p := range alternatives {
		if p == nil {
			b.err = fmt.Errorf("predicate cannot be nil")
			return b
		}
	}
	b.current().Add(Or(alternatives...))
	return b
}

// BeginAnd opens a nested AND group inside the current group.
func (b *Builder) BeginAnd() *Builder {
	return b.begin(types.AND)
}

// BeginOr opens a nested OR group inside the current group.
func (b *Builder) BeginOr() *Builder {
	return b.begin(types.OR)
}

func (b *Builder) begin(op types.BooleanOperator) *Builder {
	if b.err != nil {
		return b
	}
	group := &types.Compound{Operator: op}
	b.current().Add(group)
	b.open = append(b.open, group)
	return b
}

// End closes the innermost open group.
func (b *Builder) End() *Builder {
	if b.err != nil {
		return b
	}
	if len(b.open) == 1 {
		b.err = fmt.Errorf("End() without an open group")
		return b
	}
	b.open = b.open[:len(b.open)-1]
	return b
}

// Not negates the current group as a whole.
func (b *Builder) Not() *Builder {
	if b.err != nil {
		return b
	}
	b.current().Negate()
	return b
}

// Build returns a copy of the assembled predicate.
func (b *Builder) Build() (types.Predicate, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.open) != 1 {
		return nil, fmt.Errorf("%d group(s) not closed", len(b.open)-1)
	}
	return b.root.CopyPredicate(types.CopyAll), nil
}

// MustBuild returns the assembled predicate or panics on error.
func (b *Builder) MustBuild() types.Predicate {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// Render builds and renders the predicate.
func (b *Builder) Render() (*QueryResult, error) {
	return b.RenderWith(Plain{})
}

// RenderWith builds the predicate and renders it with r.
func (b *Builder) RenderWith(r Renderer) (*QueryResult, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.RenderQuery(p)
}

// MustRender builds and renders the predicate or panics on error.
func (b *Builder) MustRender() *QueryResult {
	result, err := b.Render()
	if err != nil {
		panic(err)
	}
	return result
}
