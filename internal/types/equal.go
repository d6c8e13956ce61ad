package types

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether two trees are structurally equal.
// Subqueries compare by their textual form.
func Equal(a, b Expression) bool {
	return Key(a) == Key(b)
}

// Hash returns a structural hash consistent with Equal.
func Hash(e Expression) uint64 {
	return xxhash.Sum64String(Key(e))
}

// Key returns the canonical structural encoding of a tree.
func Key(e Expression) string {
	var sb strings.Builder
	writeKey(&sb, e)
	return sb.String()
}

func writeKey(sb *strings.Builder, e Expression) {
	if e == nil {
		sb.WriteString("nil")
		return
	}
	if p, ok := e.(Predicate); ok && p.IsNegated() {
		sb.WriteByte('!')
	}
	switch n := e.(type) {
	case *Literal:
		sb.WriteString("lit:")
		sb.WriteString(n.Kind.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.Quote(n.Value))
	case *Fragment:
		sb.WriteString("frag:")
		sb.WriteString(strconv.Quote(n.Text))
	case *Parameter:
		sb.WriteString("param:")
		sb.WriteString(strconv.Quote(n.Name))
		if n.CollectionValued {
			sb.WriteString("[]")
		}
	case *Composite:
		writeList(sb, "composite", n.Parts)
	case *Function:
		writeList(sb, "fn:"+strconv.Quote(n.Name), n.Args)
	case *Aggregate:
		tag := "agg:" + strconv.Quote(n.Name)
		if n.Distinct {
			tag += ":distinct"
		}
		writeList(sb, tag, n.Args)
	case *Arithmetic:
		writeList(sb, "arith:"+string(n.Operator), []Expression{n.Left, n.Right})
	case *ArithmeticFactor:
		tag := "factor"
		if n.InvertSignum {
			tag += ":-"
		}
		writeList(sb, tag, []Expression{n.Expr})
	case *Treat:
		writeList(sb, "treat:"+strconv.Quote(n.Type), []Expression{n.Expr})
	case *SubqueryExpression:
		sb.WriteString("subquery:")
		if n.Query != nil {
			sb.WriteString(strconv.Quote(n.Query.QueryString()))
		}
	case *GeneralCase:
		sb.WriteString("case(")
		writeWhens(sb, n.WhenClauses)
		writeKey(sb, n.Default)
		sb.WriteByte(')')
	case *SimpleCase:
		sb.WriteString("scase(")
		writeKey(sb, n.Operand)
		sb.WriteByte(',')
		writeWhens(sb, n.WhenClauses)
		writeKey(sb, n.Default)
		sb.WriteByte(')')
	case *Path:
		parts := make([]Expression, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = el
		}
		writeList(sb, "path", parts)
	case *Property:
		sb.WriteString("prop:")
		sb.WriteString(strconv.Quote(n.Name))
	case *Array:
		writeList(sb, "array", []Expression{n.Base, n.Index})
	case *ListIndex:
		writeList(sb, "index", []Expression{pathOrNil(n.Path)})
	case *MapKey:
		writeList(sb, "key", []Expression{pathOrNil(n.Path)})
	case *MapValue:
		writeList(sb, "value", []Expression{pathOrNil(n.Path)})
	case *MapEntry:
		writeList(sb, "entry", []Expression{pathOrNil(n.Path)})
	case *Compound:
		parts := make([]Expression, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c
		}
		writeList(sb, string(n.Operator), parts)
	case *Not:
		writeList(sb, "not", []Expression{n.Predicate})
	case *Comparison:
		writeList(sb, string(n.Operator)+":"+n.Quantifier.String(), []Expression{n.Left, n.Right})
	case *Between:
		writeList(sb, "between", []Expression{n.Left, n.Start, n.End})
	case *In:
		sb.WriteString("in(")
		writeKey(sb, n.Left)
		sb.WriteByte(',')
		writeList(sb, "", n.Right)
		sb.WriteByte(')')
	case *Like:
		tag := "like:" + strconv.FormatBool(n.CaseSensitive) + ":" + strconv.QuoteRune(n.Escape)
		writeList(sb, tag, []Expression{n.Left, n.Right})
	case *IsNull:
		writeList(sb, "isnull", []Expression{n.Expr})
	case *IsEmpty:
		writeList(sb, "isempty", []Expression{n.Expr})
	case *MemberOf:
		writeList(sb, "memberof", []Expression{n.Left, n.Right})
	case *Exists:
		writeList(sb, "exists", []Expression{n.Expr})
	case *BooleanLiteral:
		sb.WriteString("bool:")
		sb.WriteString(strconv.FormatBool(n.Value))
	default:
		sb.WriteString("?")
	}
}

func writeList(sb *strings.Builder, tag string, exprs []Expression) {
	sb.WriteString(tag)
	sb.WriteByte('(')
	for i, e := range exprs {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeKey(sb, e)
	}
	sb.WriteByte(')')
}

func writeWhens(sb *strings.Builder, whens []WhenClause) {
	for _, w := range whens {
		writeList(sb, "when", []Expression{w.Condition, w.Result})
		sb.WriteByte(',')
	}
}

// pathOrNil avoids wrapping a nil *Path in a non-nil interface.
func pathOrNil(p *Path) Expression {
	if p == nil {
		return nil
	}
	return p
}
