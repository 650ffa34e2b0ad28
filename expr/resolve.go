package expr

import (
	"math"

	"github.com/trueform/compiler/ir"
)

// ResolveCtx binds one part's parameters, an optional override map, and
// the document's authoring length unit. Construct with NewResolveCtx;
// the zero value is not usable.
type ResolveCtx struct {
	DocUnits  ir.LengthUnit
	Params    map[string]ir.Parameter
	Overrides ir.Overrides

	memo      map[string]float64
	resolving map[string]bool
}

// NewResolveCtx builds a ResolveCtx for part, validating that every
// override id names a real parameter. Returns *ir.CoreError with
// ir.CodeValidationScalar on an unknown override id.
func NewResolveCtx(part *ir.Part, docUnits ir.LengthUnit, overrides ir.Overrides) (*ResolveCtx, error) {
	params := make(map[string]ir.Parameter, len(part.Params))
	for _, p := range part.Params {
		params[p.ID] = p
	}
	for id := range overrides {
		if _, ok := params[id]; !ok {
			return nil, ir.NewError(ir.CodeValidationScalar, "override references unknown parameter",
				"referenceKind", "param", "referenceId", id)
		}
	}
	return &ResolveCtx{
		DocUnits:  docUnits,
		Params:    params,
		Overrides: overrides,
		memo:      make(map[string]float64),
		resolving: make(map[string]bool),
	}, nil
}

// Resolve evaluates s against expected, returning a finite canonical
// value or an *ir.CoreError.
func Resolve(s ir.Scalar, expected ir.ParamType, ctx *ResolveCtx) (float64, error) {
	v, err := resolveNode(s.AsExpression(), expected, ctx)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ir.NewError(ir.CodeValidationScalar, "resolved value is not finite")
	}
	return v, nil
}

// ResolveDimension resolves d's nominal value, along with any tolerance
// or range band it carries, and enforces the sign/ordering rules that
// can only be checked once expressions are resolved to concrete
// numbers: tolerance > 0, plus/minus >= 0, min <= max. Returns the
// resolved nominal value.
func ResolveDimension(d ir.Dimension, expected ir.ParamType, ctx *ResolveCtx) (float64, error) {
	nominal, err := Resolve(d.Nominal, expected, ctx)
	if err != nil {
		return 0, err
	}
	if d.Tolerance != nil {
		tol, err := Resolve(*d.Tolerance, expected, ctx)
		if err != nil {
			return 0, err
		}
		if tol <= 0 {
			return 0, ir.NewError(ir.CodeValidationTolerance, "tolerance must be positive")
		}
	}
	if d.Plus != nil {
		plus, err := Resolve(*d.Plus, expected, ctx)
		if err != nil {
			return 0, err
		}
		if plus < 0 {
			return 0, ir.NewError(ir.CodeValidationTolerance, "plus tolerance must be non-negative")
		}
	}
	if d.Minus != nil {
		minus, err := Resolve(*d.Minus, expected, ctx)
		if err != nil {
			return 0, err
		}
		if minus < 0 {
			return 0, ir.NewError(ir.CodeValidationTolerance, "minus tolerance must be non-negative")
		}
	}
	var min, max float64
	var hasMin, hasMax bool
	if d.Min != nil {
		if min, err = Resolve(*d.Min, expected, ctx); err != nil {
			return 0, err
		}
		hasMin = true
	}
	if d.Max != nil {
		if max, err = Resolve(*d.Max, expected, ctx); err != nil {
			return 0, err
		}
		hasMax = true
	}
	if hasMin && hasMax && min > max {
		return 0, ir.NewError(ir.CodeValidationTolerance, "dimension min must not exceed max")
	}
	return nominal, nil
}

func resolveNode(e *ir.Expression, expected ir.ParamType, ctx *ResolveCtx) (float64, error) {
	if e == nil {
		return 0, ir.NewError(ir.CodeValidationScalar, "expression is nil")
	}
	switch e.Kind {
	case ir.ExprLiteral:
		return resolveLiteral(e, expected, ctx)
	case ir.ExprParamRef:
		return resolveParamRef(e.ParamID, expected, ctx)
	case ir.ExprBinary:
		return resolveBinary(e, expected, ctx)
	case ir.ExprNeg:
		v, err := resolveNode(e.Operand, expected, ctx)
		if err != nil {
			return 0, err
		}
		return -v, nil
	default:
		return 0, ir.NewError(ir.CodeValidationScalar, "unknown expression kind", "referenceKind", string(e.Kind))
	}
}

func resolveLiteral(e *ir.Expression, expected ir.ParamType, ctx *ResolveCtx) (float64, error) {
	switch expected {
	case ir.ParamLength:
		if e.Unit == "" {
			return ir.ToMM(e.Value, ctx.DocUnits), nil
		}
		u := ir.LengthUnit(e.Unit)
		if !ir.ValidLengthUnit(u) {
			return 0, ir.NewError(ir.CodeValidationScalar, "literal unit is not a length unit", "referenceKind", "unit", "referenceId", e.Unit)
		}
		return ir.ToMM(e.Value, u), nil
	case ir.ParamAngle:
		if e.Unit == "" {
			return e.Value, nil // bare literal in an angle context is already radians
		}
		u := ir.AngleUnit(e.Unit)
		if !ir.ValidAngleUnit(u) {
			return 0, ir.NewError(ir.CodeValidationScalar, "literal unit is not an angle unit", "referenceKind", "unit", "referenceId", e.Unit)
		}
		return ir.ToRad(e.Value, u), nil
	case ir.ParamCount:
		if e.Unit != "" {
			return 0, ir.NewError(ir.CodeValidationScalar, "count literals may not carry a unit")
		}
		if e.Value < 0 || math.Trunc(e.Value) != e.Value {
			return 0, ir.NewError(ir.CodeValidationScalar, "count literal must be a non-negative integer")
		}
		return e.Value, nil
	default:
		return 0, ir.NewError(ir.CodeValidationScalar, "unknown expected param type", "referenceKind", "type", "referenceId", string(expected))
	}
}

func resolveParamRef(id string, expected ir.ParamType, ctx *ResolveCtx) (float64, error) {
	param, ok := ctx.Params[id]
	if !ok {
		return 0, ir.NewError(ir.CodeValidationScalar, "paramRef references unknown parameter",
			"referenceKind", "param", "referenceId", id)
	}
	if param.Type != expected {
		return 0, ir.NewError(ir.CodeValidationScalar, "parameter type does not match expected type",
			"referenceKind", "param", "referenceId", id)
	}
	if v, ok := ctx.memo[id]; ok {
		return v, nil
	}
	if ctx.resolving[id] {
		return 0, ir.NewError(ir.CodeCycle, "parameter default expression forms a cycle",
			"referenceKind", "param", "referenceId", id)
	}
	ctx.resolving[id] = true
	defer delete(ctx.resolving, id)

	src := param.DefaultExpr.AsExpression()
	if override, ok := ctx.Overrides[id]; ok {
		src = override
	}
	v, err := resolveNode(src, param.Type, ctx)
	if err != nil {
		return 0, err
	}
	ctx.memo[id] = v
	return v, nil
}

func resolveBinary(e *ir.Expression, expected ir.ParamType, ctx *ResolveCtx) (float64, error) {
	l, err := resolveNode(e.LHS, expected, ctx)
	if err != nil {
		return 0, err
	}
	r, err := resolveNode(e.RHS, expected, ctx)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case ir.OpAdd:
		return l + r, nil
	case ir.OpSub:
		return l - r, nil
	case ir.OpMul:
		return l * r, nil
	case ir.OpDiv:
		if r == 0 {
			return 0, ir.NewError(ir.CodeValidationScalar, "division by zero")
		}
		return l / r, nil
	default:
		return 0, ir.NewError(ir.CodeValidationScalar, "unknown binary operator", "referenceKind", "op", "referenceId", string(e.Op))
	}
}
