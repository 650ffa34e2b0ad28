package ir

// BinaryOp is the closed set of arithmetic operators an Expression may
// carry.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
)

// ExprKind discriminates the Expression sum type. A switch over ExprKind
// is expected to be exhaustive everywhere an Expression is interpreted;
// the zero value ExprKind("") is never valid, and expr.Resolve rejects it
// like any other unknown kind.
type ExprKind string

const (
	ExprLiteral  ExprKind = "literal"
	ExprParamRef ExprKind = "paramRef"
	ExprBinary   ExprKind = "binary"
	ExprNeg      ExprKind = "neg"
)

// Expression is TrueForm's closed arithmetic sum type:
//
//	literal(value, optional unit) | paramRef(id) | binary(op, lhs, rhs) | neg(operand)
//
// Exactly one of the fields relevant to Kind is populated; which fields
// matter is determined entirely by Kind. This mirrors a tagged union in
// a language with real sum types, expressed the idiomatic Go way (a
// discriminant field plus payload fields, interpreted exhaustively by
// expr.Resolve, which rejects an unknown Kind).
type Expression struct {
	Kind ExprKind `json:"kind"`

	// literal
	Value float64 `json:"value,omitempty"`
	// Unit carries a LengthUnit or AngleUnit string, or empty to mean
	// "inherit the expected type's canonical/document unit". Interpreted
	// against the Scalar's expected ParamType by expr.Resolve.
	Unit string `json:"unit,omitempty"`

	// paramRef
	ParamID string `json:"paramId,omitempty"`

	// binary
	Op  BinaryOp    `json:"op,omitempty"`
	LHS *Expression `json:"lhs,omitempty"`
	RHS *Expression `json:"rhs,omitempty"`

	// neg
	Operand *Expression `json:"operand,omitempty"`
}

// Lit builds a unitless literal expression.
func Lit(value float64) *Expression {
	return &Expression{Kind: ExprLiteral, Value: value}
}

// LitUnit builds a literal expression carrying an explicit unit.
func LitUnit(value float64, unit string) *Expression {
	return &Expression{Kind: ExprLiteral, Value: value, Unit: unit}
}

// ParamRef builds a paramRef expression.
func ParamRef(id string) *Expression {
	return &Expression{Kind: ExprParamRef, ParamID: id}
}

// Binary builds a binary expression.
func Binary(op BinaryOp, lhs, rhs *Expression) *Expression {
	return &Expression{Kind: ExprBinary, Op: op, LHS: lhs, RHS: rhs}
}

// Neg builds a negation expression.
func Neg(operand *Expression) *Expression {
	return &Expression{Kind: ExprNeg, Operand: operand}
}

// Scalar is either a raw number (interpreted in document units) or an
// Expression tree. Exactly one of Number/Expr is meaningful, selected by
// IsExpr.
type Scalar struct {
	IsExpr bool        `json:"isExpr"`
	Number float64     `json:"number,omitempty"`
	Expr   *Expression `json:"expr,omitempty"`
}

// Num builds a raw-number Scalar.
func Num(v float64) Scalar { return Scalar{Number: v} }

// FromExpr builds an expression-backed Scalar.
func FromExpr(e *Expression) Scalar { return Scalar{IsExpr: true, Expr: e} }

// AsExpression normalizes a Scalar to an Expression tree: a raw number
// becomes a unitless literal so expr.Resolve has a single code path.
func (s Scalar) AsExpression() *Expression {
	if s.IsExpr {
		return s.Expr
	}
	return Lit(s.Number)
}
