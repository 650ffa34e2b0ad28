package kernel

import (
	"context"

	"github.com/trueform/compiler/ir"
)

// KernelObject is an opaque handle to one solid/surface/wireframe body
// living inside a backend's internal representation. The core never
// inspects its fields; it only threads KernelObjects between Execute
// calls and into Mesh/ExportStep/ExportStl.
type KernelObject struct {
	ID   string
	Kind string // "solid" | "surface" | "wireframe", backend-defined
}

// KernelSelection is one resolved face/edge/solid handle a backend
// returned from evaluating a feature. It carries two distinct
// identities, per the wire contract's "owner"/"ownerKey"/"createdBy"
// fields:
//
//   - OwnerKey is the stable output slot this selection belongs to —
//     the id of the feature that originally produced the solid. It
//     never changes as the solid is mutated by later features, which
//     is what lets evaluator re-key a named output (e.g. "body:main")
//     across a chain of hole/fillet/chamfer calls without the caller
//     losing track of it.
//   - CreatedBy is the feature that most recently touched this exact
//     selection. It starts equal to OwnerKey and is overwritten every
//     time a mutating feature re-emits the selection under the same
//     OwnerKey. The `createdBy` predicate (selector.Resolve) matches
//     against this field, not OwnerKey, since "what last touched this
//     face" is what a selector like fillet's "createdBy(hole1)" means.
//
// evaluator uses OwnerKey alone to prune stale selections: when a
// feature re-emits selections under an OwnerKey already present in the
// accumulated pool, every prior selection sharing that OwnerKey is
// dropped before the new ones are appended (SPEC_FULL §11).
//
// The descriptive fields (Normal, Planar, Role, Area, Z, Centroid) are
// geometric metadata the backend attaches so that selector.Resolve can
// apply predicate/rank filtering generically, without the core package
// needing any backend-specific geometry access. A backend that cannot
// compute a given field leaves it at its zero value; predicates and
// ranks that depend on an unset field treat it as that zero value, they
// never panic.
type KernelSelection struct {
	ID        string
	ObjectID  string
	Kind      ir.SelectorKind
	OwnerKey  string
	CreatedBy string

	Normal   ir.Axis
	Planar   bool
	Role     string
	Area     float64
	Z        float64
	Centroid [3]float64
}

// ExecuteRequest bundles everything Execute needs to evaluate one
// feature: the feature itself, its resolved numeric parameters (keyed
// by field name: "depth", "angle", "thickness", ...), the kernel
// objects produced by its dependencies (keyed by feature id), the
// selections resolved for each Selector the feature carries (keyed by
// that selector's role name in the feature's payload: "faces",
// "edges", "targets", "tools", "position", "path", "target"), and
// Upstream, the full selection pool accumulated by every feature
// evaluated so far. Each role's selections are already filtered and
// ranked by selector.Resolve before Execute is called; the backend
// does not re-apply predicates or rank rules. A feature that mutates
// an existing solid (hole, fillet, chamfer, shell, thicken, draft)
// uses Upstream to recover the full surviving face/edge set it must
// re-emit under the same OwnerKey, since its own Selections entries
// name only the faces/edges its selectors matched.
type ExecuteRequest struct {
	Feature        *ir.Feature
	ResolvedParams map[string]float64
	Inputs         map[string]KernelObject
	Selections     map[string][]KernelSelection
	Upstream       []KernelSelection
}

// BuildResult is what Execute returns for one evaluated feature: the
// object it produced (nil for annotation-only features such as
// cosmetic threads), any new selections it exposes for downstream
// features to query, and diagnostics the backend wants surfaced
// without failing the build.
type BuildResult struct {
	Object     *KernelObject
	Selections []KernelSelection
	Warnings   []string
}

// MeshOptions controls tessellation fidelity for Mesh.
type MeshOptions struct {
	LinearTolerance  float64
	AngularTolerance float64
}

// MeshData is a flat triangle mesh: Vertices is x,y,z-interleaved,
// Indices is a flat triangle index list (len % 3 == 0).
type MeshData struct {
	Vertices []float64
	Indices  []int
}

// StepExportOptions controls STEP export.
type StepExportOptions struct {
	SchemaVersion string // e.g. "AP214"
}

// StlExportOptions controls STL export.
type StlExportOptions struct {
	Binary bool
}

// Capabilities reports what a backend can evaluate, for callers that
// want to advertise supported operations before submitting a build;
// build also keys its cache on Name and Version. validate's
// staged-feature policy reads ir.DefaultFeatureStage, not this.
type Capabilities struct {
	Name           string
	Version        string
	SupportedKinds map[ir.FeatureKind]bool
	FeatureStages  map[ir.FeatureKind]ir.Stage
}

// Adapter is the boundary every geometry backend implements. All
// methods are expected to be safe for concurrent use by a single
// evaluator session driving one part's feature schedule; they are not
// required to be safe across concurrent sessions unless the backend
// documents otherwise.
type Adapter interface {
	Capabilities() Capabilities
	Execute(ctx context.Context, req ExecuteRequest) (*BuildResult, error)
	Mesh(ctx context.Context, obj KernelObject, opts MeshOptions) (*MeshData, error)
	ExportStep(ctx context.Context, objs []KernelObject, opts StepExportOptions) ([]byte, error)
	ExportStl(ctx context.Context, objs []KernelObject, opts StlExportOptions) ([]byte, error)
}

// ValidityChecker is an optional capability: a backend that can check
// solid validity implements it, and callers type-assert for it rather
// than requiring it on every Adapter.
type ValidityChecker interface {
	CheckValidity(ctx context.Context, obj KernelObject) error
}

// AssertionEvaluator is an optional capability: a backend that can
// evaluate part-level assertions (ir.Assertion) against built objects
// implements it. Adapters that don't support assertions simply don't
// implement this interface. Nothing in this module's evaluator or build
// packages calls it.
type AssertionEvaluator interface {
	EvaluateAssertion(ctx context.Context, assertion ir.Assertion, objs map[string]KernelObject) (bool, error)
}
