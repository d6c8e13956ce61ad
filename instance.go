package exprql

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/exprql/internal/types"
	"github.com/zoobzio/exprql/metamodel"
)

// EXPRQL binds tree construction to a metamodel and a root alias.
// Paths created through it are validated by resolving them from the root.
type EXPRQL struct {
	resolver *PathResolver
	root     metamodel.Type
	alias    string
}

// New creates an instance navigating from root under alias.
func New(mm metamodel.Metamodel, root metamodel.Type, alias string) (*EXPRQL, error) {
	if mm == nil {
		return nil, fmt.Errorf("metamodel cannot be nil")
	}
	if !isValidIdentifier(alias) {
		return nil, fmt.Errorf("invalid alias '%s'", alias)
	}
	if _, err := mm.Managed(root); err != nil {
		return nil, fmt.Errorf("root type: %w", err)
	}
	return &EXPRQL{
		resolver: NewPathResolver(mm, nil),
		root:     root,
		alias:    alias,
	}, nil
}

// NewFromDBML creates an instance over a DBML project, rooted at the named table.
func NewFromDBML(project *dbml.Project, table, alias string) (*EXPRQL, error) {
	schema, err := metamodel.FromDBML(project)
	if err != nil {
		return nil, err
	}
	return New(schema, metamodel.EntityType(table), alias)
}

// NewFromModels creates an instance over gorm models, rooted at the type of root.
// Models reachable through relationships are added automatically; related
// lists models that are not.
func NewFromModels(root any, alias string, related ...any) (*EXPRQL, error) {
	schema, err := metamodel.FromModels(append([]any{root}, related...)...)
	if err != nil {
		return nil, err
	}
	rt := reflect.TypeOf(root)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return New(schema, metamodel.EntityType(rt.Name()), alias)
}

// WithLogger sets the logger used while resolving paths.
func (e *EXPRQL) WithLogger(logger *slog.Logger) *EXPRQL {
	e.resolver.Logger = logger
	return e
}

// Root returns the type paths navigate from.
func (e *EXPRQL) Root() metamodel.Type {
	return e.root
}

// Alias returns the root alias.
func (e *EXPRQL) Alias() string {
	return e.alias
}

// Resolver returns the resolver validating paths of this instance.
func (e *EXPRQL) Resolver() *PathResolver {
	return e.resolver
}

// TryF creates a validated path, returning an error if invalid.
// The dotted text may omit the root alias: "address.city" and "p.address.city"
// produce the same path.
func (e *EXPRQL) TryF(dotted string) (*types.Path, error) {
	if dotted != e.alias && !strings.HasPrefix(dotted, e.alias+".") {
		dotted = e.alias + "." + dotted
	}
	p, err := TryPath(dotted)
	if err != nil {
		return nil, err
	}
	if _, err := e.Resolve(context.Background(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// F creates a validated path.
func (e *EXPRQL) F(dotted string) *types.Path {
	p, err := e.TryF(dotted)
	if err != nil {
		panic(err)
	}
	return p
}

// TryP creates a validated parameter reference, returning an error if invalid.
func (*EXPRQL) TryP(name string) (*types.Parameter, error) {
	return TryParam(name)
}

// P creates a validated parameter reference.
func (e *EXPRQL) P(name string) *types.Parameter {
	p, err := e.TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

// TryT creates a validated TREAT of expr, returning an error if the type is unknown
// or the narrowed expression does not resolve.
func (e *EXPRQL) TryT(expr types.Expression, typeName string) (*types.Treat, error) {
	t := TreatAs(expr, typeName)
	if _, err := e.Resolve(context.Background(), t); err != nil {
		return nil, err
	}
	return t, nil
}

// T creates a validated TREAT.
func (e *EXPRQL) T(expr types.Expression, typeName string) *types.Treat {
	t, err := e.TryT(expr, typeName)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a comparison, returning an error if a path operand does not resolve.
func (e *EXPRQL) TryC(left types.Expression, op types.ComparisonOperator, right types.Expression) (*types.Comparison, error) {
	for _, operand := range []types.Expression{left, right} {
		if err := e.validateOperand(operand); err != nil {
			return nil, err
		}
	}
	return Cmp(left, op, right), nil
}

// C creates a validated comparison.
func (e *EXPRQL) C(left types.Expression, op types.ComparisonOperator, right types.Expression) *types.Comparison {
	c, err := e.TryC(left, op, right)
	if err != nil {
		panic(err)
	}
	return c
}

// TryNull creates an IS NULL predicate, returning an error if invalid.
func (e *EXPRQL) TryNull(operand types.Expression) (*types.IsNull, error) {
	if err := e.validateOperand(operand); err != nil {
		return nil, err
	}
	return IsNull(operand), nil
}

// Null creates an IS NULL predicate.
func (e *EXPRQL) Null(operand types.Expression) *types.IsNull {
	p, err := e.TryNull(operand)
	if err != nil {
		panic(err)
	}
	return p
}

// TryNotNull creates an IS NOT NULL predicate, returning an error if invalid.
func (e *EXPRQL) TryNotNull(operand types.Expression) (*types.IsNull, error) {
	p, err := e.TryNull(operand)
	if err != nil {
		return nil, err
	}
	p.Negate()
	return p, nil
}

// NotNull creates an IS NOT NULL predicate.
func (e *EXPRQL) NotNull(operand types.Expression) *types.IsNull {
	p, err := e.TryNotNull(operand)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAnd creates an AND group, returning an error if it is empty.
func (*EXPRQL) TryAnd(preds ...types.Predicate) (*types.Compound, error) {
	if len(preds) == 0 {
		return nil, fmt.Errorf("AND requires at least one predicate")
	}
	return And(preds...), nil
}

// And creates an AND group.
func (e *EXPRQL) And(preds ...types.Predicate) *types.Compound {
	c, err := e.TryAnd(preds...)
	if err != nil {
		panic(err)
	}
	return c
}

// TryOr creates an OR group, returning an error if it is empty.
func (*EXPRQL) TryOr(preds ...types.Predicate) (*types.Compound, error) {
	if len(preds) == 0 {
		return nil, fmt.Errorf("OR requires at least one predicate")
	}
	return Or(preds...), nil
}

// Or creates an OR group.
func (e *EXPRQL) Or(preds ...types.Predicate) *types.Compound {
	c, err := e.TryOr(preds...)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve resolves expr from the root, skipping the root alias.
func (e *EXPRQL) Resolve(ctx context.Context, expr types.Expression) (map[metamodel.Attribute]metamodel.Type, error) {
	return e.resolver.Resolve(ctx, e.root, expr, e.alias)
}

// TypeOf returns the single type expr resolves to.
func (e *EXPRQL) TypeOf(ctx context.Context, expr types.Expression) (metamodel.Type, error) {
	attrs, err := e.Resolve(ctx, expr)
	if err != nil {
		return metamodel.Type{}, err
	}
	if len(attrs) != 1 {
		return metamodel.Type{}, fmt.Errorf("expression resolves to %d attributes", len(attrs))
	}
	for _, t := range attrs {
		return t, nil
	}
	return metamodel.Type{}, nil
}

// validateOperand resolves navigable operands; values pass unchecked.
func (e *EXPRQL) validateOperand(operand types.Expression) error {
	switch operand.(type) {
	case *types.Path, *types.Treat:
		_, err := e.Resolve(context.Background(), operand)
		return err
	case nil:
		return fmt.Errorf("operand cannot be nil")
	}
	return nil
}
