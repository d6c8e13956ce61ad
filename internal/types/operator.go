package types

// ComparisonOperator identifies a binary comparison.
type ComparisonOperator string

const (
	EQ ComparisonOperator = "="
	GT ComparisonOperator = ">"
	GE ComparisonOperator = ">="
	LT ComparisonOperator = "<"
	LE ComparisonOperator = "<="

	// NE is only produced when rendering a negated EQ.
	NE ComparisonOperator = "<>"
)

// BooleanOperator combines the children of a compound predicate.
type BooleanOperator string

const (
	AND BooleanOperator = "AND"
	OR  BooleanOperator = "OR"
)

// Opposite returns the other boolean operator.
func (o BooleanOperator) Opposite() BooleanOperator {
	if o == AND {
		return OR
	}
	return AND
}

// Quantifier modifies the right-hand side of a comparison.
type Quantifier int

const (
	One Quantifier = iota
	All
	Any
)

func (q Quantifier) String() string {
	switch q {
	case All:
		return "ALL"
	case Any:
		return "ANY"
	default:
		return "ONE"
	}
}

// Flip swaps ALL and ANY. ONE is unchanged.
func (q Quantifier) Flip() Quantifier {
	switch q {
	case All:
		return Any
	case Any:
		return All
	default:
		return q
	}
}

// ArithmeticOperator is a binary numeric operator.
type ArithmeticOperator string

const (
	Add ArithmeticOperator = "+"
	Sub ArithmeticOperator = "-"
	Mul ArithmeticOperator = "*"
	Div ArithmeticOperator = "/"
)

// Precedence orders arithmetic operators; higher binds tighter.
func (o ArithmeticOperator) Precedence() int {
	switch o {
	case Mul, Div:
		return 2
	default:
		return 1
	}
}

// LiteralKind tags the value carried by a Literal.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitString
	LitNumeric
	LitBoolean
	LitDate
	LitTime
	LitTimestamp
	LitEnum
	LitEntity
)

func (k LiteralKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitNumeric:
		return "numeric"
	case LitBoolean:
		return "boolean"
	case LitDate:
		return "date"
	case LitTime:
		return "time"
	case LitTimestamp:
		return "timestamp"
	case LitEnum:
		return "enum"
	case LitEntity:
		return "entity"
	default:
		return "null"
	}
}
