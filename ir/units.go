package ir

// LengthUnit is one of the closed set {mm, cm, m, in}.
type LengthUnit string

const (
	LengthMM LengthUnit = "mm"
	LengthCM LengthUnit = "cm"
	LengthM  LengthUnit = "m"
	LengthIn LengthUnit = "in"
)

// lengthToMM gives the multiplicative factor converting a value in the
// given unit to millimeters, the canonical length unit.
var lengthToMM = map[LengthUnit]float64{
	LengthMM: 1.0,
	LengthCM: 10.0,
	LengthM:  1000.0,
	LengthIn: 25.4,
}

// ValidLengthUnit reports whether u is one of the closed set of length
// units.
func ValidLengthUnit(u LengthUnit) bool {
	_, ok := lengthToMM[u]
	return ok
}

// ToMM converts a value expressed in unit u to millimeters. The caller
// must have already validated u via ValidLengthUnit.
func ToMM(value float64, u LengthUnit) float64 {
	return value * lengthToMM[u]
}

// AngleUnit is one of the closed set {rad, deg}.
type AngleUnit string

const (
	AngleRad AngleUnit = "rad"
	AngleDeg AngleUnit = "deg"
)

const degToRad = 3.14159265358979323846 / 180.0

// ValidAngleUnit reports whether u is one of the closed set of angle
// units.
func ValidAngleUnit(u AngleUnit) bool {
	return u == AngleRad || u == AngleDeg
}

// ToRad converts a value expressed in unit u to radians.
func ToRad(value float64, u AngleUnit) float64 {
	if u == AngleDeg {
		return value * degToRad
	}
	return value
}

// ParamType is the closed set of parameter/scalar kinds.
type ParamType string

const (
	ParamLength ParamType = "length"
	ParamAngle  ParamType = "angle"
	ParamCount  ParamType = "count"
)

// ValidParamType reports whether t is one of {length, angle, count}.
func ValidParamType(t ParamType) bool {
	switch t {
	case ParamLength, ParamAngle, ParamCount:
		return true
	default:
		return false
	}
}

// Axis is the closed set of principal-axis directions accepted wherever
// the spec requires "an axis direction in {±X, ±Y, ±Z}".
type Axis string

const (
	AxisPlusX  Axis = "+X"
	AxisMinusX Axis = "-X"
	AxisPlusY  Axis = "+Y"
	AxisMinusY Axis = "-Y"
	AxisPlusZ  Axis = "+Z"
	AxisMinusZ Axis = "-Z"
)

// ValidAxis reports whether a is one of the six principal directions.
func ValidAxis(a Axis) bool {
	switch a {
	case AxisPlusX, AxisMinusX, AxisPlusY, AxisMinusY, AxisPlusZ, AxisMinusZ:
		return true
	default:
		return false
	}
}

// SchemaTag and IRVersion are the fixed constants every Document must
// carry. Validation rejects anything else.
const (
	SchemaTag       = "trueform.ir.v1"
	IRVersionLatest = 1
)
