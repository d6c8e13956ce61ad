package types

// WhenClause is a single WHEN...THEN branch.
// For a general CASE the condition is a predicate; for a simple CASE it is a
// value compared against the operand.
type WhenClause struct {
	Condition Expression
	Result    Expression
}

func (w WhenClause) copy(ctx CopyContext) WhenClause {
	return WhenClause{Condition: copyExpr(w.Condition, ctx), Result: copyExpr(w.Result, ctx)}
}

func copyWhens(whens []WhenClause, ctx CopyContext) []WhenClause {
	if whens == nil {
		return nil
	}
	out := make([]WhenClause, len(whens))
	for i, w := range whens {
		out[i] = w.copy(ctx)
	}
	return out
}

// GeneralCase is CASE WHEN <predicate> THEN ... ELSE ... END.
type GeneralCase struct {
	Default     Expression
	WhenClauses []WhenClause
}

func (c *GeneralCase) Copy(ctx CopyContext) Expression {
	return &GeneralCase{Default: copyExpr(c.Default, ctx), WhenClauses: copyWhens(c.WhenClauses, ctx)}
}

// SimpleCase is CASE <operand> WHEN <value> THEN ... ELSE ... END.
type SimpleCase struct {
	Operand     Expression
	Default     Expression
	WhenClauses []WhenClause
}

func (c *SimpleCase) Copy(ctx CopyContext) Expression {
	return &SimpleCase{
		Operand:     copyExpr(c.Operand, ctx),
		Default:     copyExpr(c.Default, ctx),
		WhenClauses: copyWhens(c.WhenClauses, ctx),
	}
}

func (*GeneralCase) expressionNode() {}
func (*SimpleCase) expressionNode()  {}
