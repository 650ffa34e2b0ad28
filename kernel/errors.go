package kernel

import "github.com/trueform/compiler/ir"

// ErrUnsupportedFeature builds the standard error an Adapter returns
// from Execute when asked to evaluate a FeatureKind its Capabilities
// did not advertise.
func ErrUnsupportedFeature(kind ir.FeatureKind) error {
	return ir.NewError(ir.CodeBackendUnsupportedFeature, "backend does not support this feature kind",
		"featureKind", string(kind))
}

// ErrMissingShape builds the standard error Execute returns when a
// required input KernelObject is absent from the request.
func ErrMissingShape(featureID, inputID string) error {
	return ir.NewError(ir.CodeBackendMissingShape, "backend input shape is missing",
		"featureId", featureID, "referenceId", inputID)
}

// ErrMissingCapability builds the standard error callers return when
// they type-assert for an optional capability (ValidityChecker,
// AssertionEvaluator) and the backend does not implement it.
func ErrMissingCapability(name string) error {
	return ir.NewError(ir.CodeBackendMissingCapability, "backend does not implement optional capability", "referenceId", name)
}
