package exprql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zoobzio/exprql/internal/types"
	"github.com/zoobzio/exprql/metamodel"
)

// PathResolver computes the attributes and types a path expression can reach.
// A PathResolver holds no per-call state and may be shared between goroutines.
type PathResolver struct {
	Metamodel metamodel.Metamodel
	// Logger receives debug events for case forks and erased type arguments.
	// A nil Logger discards them.
	Logger *slog.Logger
}

// NewPathResolver creates a resolver over mm.
func NewPathResolver(mm metamodel.Metamodel, logger *slog.Logger) *PathResolver {
	return &PathResolver{Metamodel: mm, Logger: logger}
}

// Resolve walks expr from root and returns every attribute the walk can end
// on, mapped to the type reached through it.
//
// When aliasToSkip is not empty, a leading path segment with that name stands
// for root itself. A path that names only the root resolves to the zero
// Attribute. CASE expressions fork the walk; when two branches end on the same
// attribute, the later branch wins.
func Resolve(mm metamodel.Metamodel, root metamodel.Type, expr types.Expression, aliasToSkip string) (map[metamodel.Attribute]metamodel.Type, error) {
	return NewPathResolver(mm, nil).Resolve(context.Background(), root, expr, aliasToSkip)
}

// Resolve walks expr from root. See the package-level Resolve.
func (r *PathResolver) Resolve(ctx context.Context, root metamodel.Type, expr types.Expression, aliasToSkip string) (map[metamodel.Attribute]metamodel.Type, error) {
	if r.Metamodel == nil {
		return nil, fmt.Errorf("path resolver has no metamodel")
	}
	w := &walker{
		ctx:         ctx,
		mm:          r.Metamodel,
		log:         r.logger(),
		aliasToSkip: aliasToSkip,
	}

	ps, err := w.expr(positions{{currentClass: root}}, expr)
	if err != nil {
		return nil, err
	}

	result := make(map[metamodel.Attribute]metamodel.Type, len(ps))
	for _, p := range ps {
		result[p.attribute] = p.effectiveClass()
	}
	return result, nil
}

func (r *PathResolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

type walker struct {
	ctx         context.Context
	mm          metamodel.Metamodel
	log         *slog.Logger
	aliasToSkip string
}

func (w *walker) expr(ps positions, e types.Expression) (positions, error) {
	switch n := e.(type) {
	case *types.Path:
		return w.path(ps, n)
	case *types.Property:
		return ps, ps.each(func(p *pathPosition) error {
			return w.property(p, n.Name)
		})
	case *types.Array:
		// The index selects an element; it does not change the type reached.
		return w.expr(ps, n.Base)
	case *types.ListIndex:
		return w.listIndex(ps, n)
	case *types.MapKey:
		ps, err := w.path(ps, n.Path)
		if err != nil {
			return nil, err
		}
		return ps, ps.each(func(p *pathPosition) error {
			p.valueClass = metamodel.Type{}
			return nil
		})
	case *types.MapValue:
		ps, err := w.path(ps, n.Path)
		if err != nil {
			return nil, err
		}
		return ps, ps.each(func(p *pathPosition) error {
			p.keyClass = metamodel.Type{}
			return nil
		})
	case *types.MapEntry:
		ps, err := w.path(ps, n.Path)
		if err != nil {
			return nil, err
		}
		return ps, ps.each(func(p *pathPosition) error {
			p.attribute = metamodel.MapEntryAttribute(p.attribute)
			p.valueClass = metamodel.MapEntry
			p.keyClass = metamodel.Type{}
			return nil
		})
	case *types.Treat:
		return w.treat(ps, n)
	case *types.GeneralCase:
		return w.fork(ps, n.WhenClauses, n.Default)
	case *types.SimpleCase:
		return w.fork(ps, n.WhenClauses, n.Default)
	case nil:
		return nil, invalidPath(nil, "missing path element")
	case types.Predicate:
		return nil, invalidPath(n, "predicates are not navigable")
	case *types.Literal:
		return nil, invalidPath(n, "literals are not navigable")
	case *types.Parameter:
		return nil, invalidPath(n, "parameters are not navigable")
	case *types.Arithmetic, *types.ArithmeticFactor:
		return nil, invalidPath(n, "arithmetic is not navigable")
	case *types.SubqueryExpression:
		return nil, invalidPath(n, "subqueries are not navigable")
	case *types.Function, *types.Aggregate:
		return nil, invalidPath(n, "function results are not navigable")
	}
	return nil, invalidPath(e, "not a path")
}

func (w *walker) path(ps positions, p *types.Path) (positions, error) {
	if p == nil {
		return nil, invalidPath(nil, "missing path")
	}
	elements := p.Elements
	if head, ok := p.Head(); ok && w.aliasToSkip != "" && head == w.aliasToSkip {
		elements = elements[1:]
	}
	var err error
	for _, el := range elements {
		if ps, err = w.expr(ps, el); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

// property steps to the named attribute of the effective class. Plural
// attributes take their element types from the declared type arguments, or
// from the attribute metadata when the arguments are erased.
func (w *walker) property(p *pathPosition, name string) error {
	owner := p.effectiveClass()
	mt, err := w.mm.Managed(owner)
	if err != nil {
		return UnresolvableAttributeError{Property: name, Owner: owner, Err: err}
	}
	attr, ok := mt.Attribute(name)
	if !ok {
		return UnresolvableAttributeError{Property: name, Owner: owner}
	}

	next := pathPosition{currentClass: attr.Type, attribute: attr}
	if attr.IsPlural() {
		args := mt.TypeArguments(name)
		switch {
		case attr.Type.IsMap() && len(args) == 2:
			next.keyClass, next.valueClass = args[0], args[1]
		case !attr.Type.IsMap() && len(args) == 1:
			next.valueClass = args[0]
		default:
			w.log.DebugContext(w.ctx, "type arguments unavailable, using attribute metadata",
				slog.String("attribute", attr.String()))
			next.keyClass, next.valueClass = attr.Key, attr.Element
		}
	}
	*p = next
	return nil
}

func (w *walker) listIndex(ps positions, n *types.ListIndex) (positions, error) {
	ps, err := w.path(ps, n.Path)
	if err != nil {
		return nil, err
	}
	return ps, ps.each(func(p *pathPosition) error {
		if !p.currentClass.IsList() {
			return invalidPath(n, fmt.Sprintf("INDEX requires a list, found %s", p.currentClass))
		}
		p.attribute = metamodel.ListIndexAttribute(p.attribute)
		p.keyClass = metamodel.Integer
		p.valueClass = metamodel.Type{}
		return nil
	})
}

// treat narrows every position to the named type without checking that the
// type is a subtype of what was reached.
func (w *walker) treat(ps positions, n *types.Treat) (positions, error) {
	if p, ok := n.Expr.(*types.Path); !ok || w.aliasToSkip == "" || !p.IsAlias(w.aliasToSkip) {
		var err error
		if ps, err = w.expr(ps, n.Expr); err != nil {
			return nil, err
		}
	}
	target, err := w.mm.TypeByName(n.Type)
	if err != nil {
		return nil, InvalidPathError{Node: fmt.Sprintf("TREAT(... AS %s)", n.Type), Reason: err.Error()}
	}
	w.log.DebugContext(w.ctx, "treat narrowed path",
		slog.String("type", target.Name),
		slog.Int("positions", len(ps)))
	return ps, ps.each(func(p *pathPosition) error {
		p.currentClass = target
		p.valueClass = target
		return nil
	})
}

// fork continues every position once per result branch. Each branch walks
// its own copy of the position.
func (w *walker) fork(ps positions, whens []types.WhenClause, def types.Expression) (positions, error) {
	branches := make([]types.Expression, 0, len(whens)+1)
	for _, wc := range whens {
		branches = append(branches, wc.Result)
	}
	if def != nil {
		branches = append(branches, def)
	}

	out := make(positions, 0, len(ps)*len(branches))
	for _, p := range ps {
		for _, b := range branches {
			res, err := w.expr(positions{p}, b)
			if err != nil {
				return nil, err
			}
			out = append(out, res...)
		}
	}
	w.log.DebugContext(w.ctx, "case expression forked path",
		slog.Int("branches", len(branches)),
		slog.Int("positions", len(out)))
	return out, nil
}
