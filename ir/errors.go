package ir

import (
	"errors"
	"fmt"
)

// Code is a stable, closed error taxonomy string. Callers should branch on
// Code rather than on Message, which is human-readable and may change.
//
// The set below mirrors the specification's error taxonomy exactly; do not
// add new codes without updating this list and the generating package's
// doc comment.
type Code string

const (
	// Validation (structural/semantic, detected before evaluation).
	CodeValidationSchema          Code = "validation_schema"
	CodeValidationContext         Code = "validation_context"
	CodeValidationDuplicate       Code = "validation_duplicate"
	CodeValidationShape           Code = "validation_shape"
	CodeValidationEnum            Code = "validation_enum"
	CodeValidationScalar          Code = "validation_scalar"
	CodeValidationSelector        Code = "validation_selector"
	CodeValidationProfile         Code = "validation_profile"
	CodeValidationTolerance       Code = "validation_tolerance"
	CodeValidationStagedFeature   Code = "validation_staged_feature"
	CodeValidationAssemblyRef     Code = "validation_assembly_ref"

	// Graph construction.
	CodeDepMissing           Code = "dep_missing"
	CodeProfileDuplicate     Code = "profile_duplicate"
	CodeProfileMissing       Code = "profile_missing"
	CodePatternMissing       Code = "pattern_missing"
	CodeDatumAxisMissing     Code = "datum_axis_missing"
	CodeDatumPlaneMissing    Code = "datum_plane_missing"
	CodeSelectorAnchorMiss   Code = "selector_anchor_missing"
	CodeSelectorNamedMissing Code = "selector_named_missing"
	CodePredCreatedByMissing Code = "pred_created_by_missing"
	CodeCycle                Code = "cycle"
	CodeMissingFeature       Code = "missing_feature"

	// Adapter contract violations.
	CodeBackendUnsupportedFeature Code = "backend_unsupported_feature"
	CodeBackendMissingShape       Code = "backend_missing_shape"
	CodeBackendMissingCapability  Code = "backend_missing_capability"

	// Resolver errors.
	CodeSelectorEmpty         Code = "selector_empty"
	CodeSelectorResolveFailed Code = "selector_resolve_failed"

	// Session/runtime errors.
	CodeBuildSessionNotFound Code = "build_session_not_found"
	CodeQuotaExceeded        Code = "quota_exceeded"
	CodeJobTimeout           Code = "job_timeout"
	CodeJobCanceled          Code = "job_canceled"
)

// CoreError is the single error envelope surfaced by every package in this
// module. Context carries optional structured fields (featureId,
// featureKind, referenceKind, referenceId, ...) named by the spec.
type CoreError struct {
	Code    Code
	Message string
	Context map[string]string
}

func (e *CoreError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Code, e.Message, e.Context)
}

// Is lets errors.Is(err, &CoreError{Code: X}) match on Code alone, so
// callers do not need to reach for errors.As just to branch on taxonomy.
func (e *CoreError) Is(target error) bool {
	var t *CoreError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// NewError builds a CoreError with an optional set of key/value context
// pairs (must come in pairs; an odd trailing key is dropped).
func NewError(code Code, message string, kv ...string) *CoreError {
	ce := &CoreError{Code: code, Message: message}
	if len(kv) > 0 {
		ce.Context = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			ce.Context[kv[i]] = kv[i+1]
		}
	}
	return ce
}

// WithContext returns a shallow copy of e with additional context merged
// in; existing keys are overwritten by kv.
func (e *CoreError) WithContext(kv ...string) *CoreError {
	out := &CoreError{Code: e.Code, Message: e.Message, Context: make(map[string]string, len(e.Context)+len(kv)/2)}
	for k, v := range e.Context {
		out.Context[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out.Context[kv[i]] = kv[i+1]
	}
	return out
}

// AsCode reports whether err is a *CoreError with the given Code.
func AsCode(err error, code Code) bool {
	var ce *CoreError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
