// Package expr resolves ir.Scalar/ir.Expression trees to finite,
// canonical-unit float64 values: length in millimeters, angle in
// radians, count as a non-negative integer.
//
// A ResolveCtx binds one part's parameter set, an optional override map,
// and the document's length unit; Resolve walks an Expression tree
// against an expected ir.ParamType, propagating that expected type down
// so that bare numeric literals (which carry no unit of their own) are
// interpreted correctly at every node. paramRef resolution is memoized
// per parameter id within a ResolveCtx, per the specification's
// complexity requirement (linear in expression size, not exponential in
// diamond-shaped parameter references).
package expr
