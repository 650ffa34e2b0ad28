package kernelfake

import (
	"context"
	"fmt"

	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
)

// Adapter is a deterministic, geometry-free kernel.Adapter. Every
// method is a pure function of its inputs; nothing is cached or mutated
// across calls, so repeated Execute calls with identical requests
// produce byte-identical results. Zero value is ready to use.
type Adapter struct{}

// New returns a ready-to-use Adapter.
func New() *Adapter { return &Adapter{} }

var supportedKinds = func() map[ir.FeatureKind]bool {
	m := make(map[ir.FeatureKind]bool, len(ir.AllFeatureKinds))
	for _, k := range ir.AllFeatureKinds {
		m[k] = true
	}
	return m
}()

// Capabilities reports support for every feature kind the core knows
// about; kernelfake exists to exercise the full evaluator, not to model
// a backend's real limitations.
func (a *Adapter) Capabilities() kernel.Capabilities {
	return kernel.Capabilities{
		Name:           "kernelfake",
		Version:        "1.0.0",
		SupportedKinds: supportedKinds,
		FeatureStages:  ir.DefaultFeatureStage,
	}
}

// Execute evaluates one feature. See adapter_kinds.go for the
// per-FeatureKind dispatch.
func (a *Adapter) Execute(_ context.Context, req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	if req.Feature == nil {
		return nil, ir.NewError(ir.CodeValidationShape, "execute request carries no feature")
	}
	fn, ok := executors[req.Feature.Kind]
	if !ok {
		return nil, kernel.ErrUnsupportedFeature(req.Feature.Kind)
	}
	return fn(req)
}

// Mesh returns a single fixed triangle for any object; kernelfake
// carries no real tessellation.
func (a *Adapter) Mesh(_ context.Context, obj kernel.KernelObject, _ kernel.MeshOptions) (*kernel.MeshData, error) {
	return &kernel.MeshData{
		Vertices: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []int{0, 1, 2},
	}, nil
}

// ExportStep renders a minimal placeholder payload naming each object.
func (a *Adapter) ExportStep(_ context.Context, objs []kernel.KernelObject, opts kernel.StepExportOptions) ([]byte, error) {
	out := fmt.Sprintf("ISO-10303-21;\nSCHEMA(%s);\n", opts.SchemaVersion)
	for _, o := range objs {
		out += fmt.Sprintf("#%s %s;\n", o.ID, o.Kind)
	}
	out += "END-ISO-10303-21;\n"
	return []byte(out), nil
}

// ExportStl renders a minimal placeholder payload naming each object.
func (a *Adapter) ExportStl(_ context.Context, objs []kernel.KernelObject, opts kernel.StlExportOptions) ([]byte, error) {
	out := "solid kernelfake\n"
	for _, o := range objs {
		out += fmt.Sprintf("  facet %s binary=%v\n", o.ID, opts.Binary)
	}
	out += "endsolid kernelfake\n"
	return []byte(out), nil
}

// CheckValidity always succeeds; kernelfake has no notion of an
// invalid solid. Implementing this makes Adapter satisfy
// kernel.ValidityChecker so tests can exercise that code path.
func (a *Adapter) CheckValidity(_ context.Context, _ kernel.KernelObject) error {
	return nil
}

// EvaluateAssertion reports every assertion as passing. Implementing
// this makes Adapter satisfy kernel.AssertionEvaluator.
func (a *Adapter) EvaluateAssertion(_ context.Context, _ ir.Assertion, _ map[string]kernel.KernelObject) (bool, error) {
	return true, nil
}
