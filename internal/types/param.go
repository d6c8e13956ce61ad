package types

// Parameter is a named placeholder.
// An empty Name means the parameter has not been bound yet; rendering fails
// until it is.
type Parameter struct {
	Name             string
	CollectionValued bool
}

// GetName returns the parameter name.
func (p *Parameter) GetName() string {
	return p.Name
}

// Bound reports whether the parameter has a name.
func (p *Parameter) Bound() bool {
	return p.Name != ""
}

func (p *Parameter) Copy(ctx CopyContext) Expression {
	return ctx.CopyParameter(p)
}

func (*Parameter) expressionNode() {}
