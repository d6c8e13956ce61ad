package types

// Path is an ordered sequence of navigation steps from a root alias.
type Path struct {
	Elements []PathElement
}

func (p *Path) Copy(ctx CopyContext) Expression {
	return p.copyPath(ctx)
}

func (p *Path) copyPath(ctx CopyContext) *Path {
	if p == nil {
		return nil
	}
	out := &Path{Elements: make([]PathElement, len(p.Elements))}
	for i, e := range p.Elements {
		out.Elements[i] = e.Copy(ctx).(PathElement) //nolint:forcetypeassert // path elements copy to path elements
	}
	return out
}

// Head returns the property name of the first segment, if it is a plain property.
func (p *Path) Head() (string, bool) {
	if len(p.Elements) == 0 {
		return "", false
	}
	prop, ok := p.Elements[0].(*Property)
	if !ok {
		return "", false
	}
	return prop.Name, true
}

// IsAlias reports whether the path is exactly the single property name.
func (p *Path) IsAlias(name string) bool {
	if len(p.Elements) != 1 {
		return false
	}
	head, ok := p.Head()
	return ok && head == name
}

// Property navigates to a named attribute.
type Property struct {
	Name string
}

func (p *Property) Copy(CopyContext) Expression {
	return &Property{Name: p.Name}
}

// Array accesses an element of Base by Index: base[index].
type Array struct {
	Base  PathElement
	Index Expression
}

func (a *Array) Copy(ctx CopyContext) Expression {
	return &Array{Base: a.Base.Copy(ctx).(PathElement), Index: copyExpr(a.Index, ctx)} //nolint:forcetypeassert // see copyPath
}

// ListIndex is INDEX(path): the position of a list element.
type ListIndex struct {
	Path *Path
}

func (l *ListIndex) Copy(ctx CopyContext) Expression {
	return &ListIndex{Path: l.Path.copyPath(ctx)}
}

// MapKey is KEY(path).
type MapKey struct {
	Path *Path
}

func (m *MapKey) Copy(ctx CopyContext) Expression {
	return &MapKey{Path: m.Path.copyPath(ctx)}
}

// MapValue is VALUE(path).
type MapValue struct {
	Path *Path
}

func (m *MapValue) Copy(ctx CopyContext) Expression {
	return &MapValue{Path: m.Path.copyPath(ctx)}
}

// MapEntry is ENTRY(path).
type MapEntry struct {
	Path *Path
}

func (m *MapEntry) Copy(ctx CopyContext) Expression {
	return &MapEntry{Path: m.Path.copyPath(ctx)}
}

func (*Path) expressionNode()      {}
func (*Property) expressionNode()  {}
func (*Array) expressionNode()     {}
func (*ListIndex) expressionNode() {}
func (*MapKey) expressionNode()    {}
func (*MapValue) expressionNode()  {}
func (*MapEntry) expressionNode()  {}

func (*Property) pathElement()  {}
func (*Array) pathElement()     {}
func (*ListIndex) pathElement() {}
func (*MapKey) pathElement()    {}
func (*MapValue) pathElement()  {}
func (*MapEntry) pathElement()  {}
