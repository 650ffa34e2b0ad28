package kernelfake

import (
	"fmt"
	"math"
	"sort"

	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
)

type executorFunc func(req kernel.ExecuteRequest) (*kernel.BuildResult, error)

var executors map[ir.FeatureKind]executorFunc

func init() {
	executors = map[ir.FeatureKind]executorFunc{
		ir.KindDatumPlane: noGeometry, ir.KindDatumAxis: noGeometry, ir.KindDatumFrame: noGeometry,
		ir.KindSketch: noGeometry, ir.KindThread: noGeometry,

		ir.KindExtrude: solidOfRevolutionLike, ir.KindRevolve: solidOfRevolutionLike,
		ir.KindLoft: solidOfRevolutionLike, ir.KindSweep: solidOfRevolutionLike,
		ir.KindPipe: solidOfRevolutionLike, ir.KindPipeSweep: solidOfRevolutionLike,
		ir.KindHexTubeSweep: solidOfRevolutionLike, ir.KindSurface: solidOfRevolutionLike,
		ir.KindBoolean: solidOfRevolutionLike,

		ir.KindPlane: planeOp,

		ir.KindShell: passThrough, ir.KindThicken: passThrough,
		ir.KindDraft: passThrough, ir.KindFillet: passThrough, ir.KindChamfer: passThrough,

		ir.KindMirror: reOwned,

		ir.KindHole: cutHole,

		ir.KindPatternLinear: patternInstances, ir.KindPatternCircular: patternInstances,
	}
}

func resolved(req kernel.ExecuteRequest, key string, def float64) float64 {
	if v, ok := req.ResolvedParams[key]; ok {
		return v
	}
	return def
}

// noGeometry covers datum/sketch/annotation features: no KernelObject,
// no selections.
func noGeometry(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	return &kernel.BuildResult{}, nil
}

// solidOfRevolutionLike covers every feature kind that produces a fresh
// solid from a profile-ish set of resolved parameters: three faces
// (top, bottom, side) tagged deterministically off the feature id and
// resolved depth/area. A fresh solid is its own OwnerKey; CreatedBy
// starts equal to OwnerKey since nothing has touched it yet.
func solidOfRevolutionLike(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	id := req.Feature.ID
	depth := resolved(req, "depth", 10)
	area := resolved(req, "area", 100)
	obj := kernel.KernelObject{ID: id, Kind: "solid"}
	sels := []kernel.KernelSelection{
		{ID: id + "#top", ObjectID: id, Kind: ir.SelectorFace, OwnerKey: id, CreatedBy: id,
			Normal: ir.AxisPlusZ, Planar: true, Area: area, Z: depth, Centroid: [3]float64{0, 0, depth}},
		{ID: id + "#bottom", ObjectID: id, Kind: ir.SelectorFace, OwnerKey: id, CreatedBy: id,
			Normal: ir.AxisMinusZ, Planar: true, Area: area, Z: 0, Centroid: [3]float64{0, 0, 0}},
		{ID: id + "#side", ObjectID: id, Kind: ir.SelectorFace, OwnerKey: id, CreatedBy: id,
			Planar: false, Area: area * 2, Z: depth / 2, Centroid: [3]float64{0, 0, depth / 2}},
	}
	return &kernel.BuildResult{Object: &obj, Selections: sels}, nil
}

// planeOp represents the standalone "plane" operation feature as a
// single planar face, distinct from a datum plane (which carries no
// geometry of its own).
func planeOp(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	id := req.Feature.ID
	offset := resolved(req, "offset", 0)
	sel := kernel.KernelSelection{ID: id + "#plane", Kind: ir.SelectorFace, OwnerKey: id, CreatedBy: id,
		Normal: ir.AxisPlusZ, Planar: true, Z: offset, Centroid: [3]float64{0, 0, offset}}
	return &kernel.BuildResult{Selections: []kernel.KernelSelection{sel}}, nil
}

// inputSelections flattens every role in req.Selections, in
// lexicographic role-name order, giving a deterministic view over
// whatever the evaluator resolved for this feature's selectors.
func inputSelections(req kernel.ExecuteRequest) []kernel.KernelSelection {
	roles := make([]string, 0, len(req.Selections))
	for role := range req.Selections {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	var out []kernel.KernelSelection
	for _, role := range roles {
		out = append(out, req.Selections[role]...)
	}
	return out
}

// inheritedOwnerKey returns the OwnerKey a mutating feature should
// re-emit its selections under: the stable slot its resolved selector
// roles point into. Falls back to "" (caller substitutes its own id)
// when the feature resolved no selections at all, which should not
// happen for any kind that reaches this helper.
func inheritedOwnerKey(req kernel.ExecuteRequest) string {
	for _, sel := range inputSelections(req) {
		return sel.OwnerKey
	}
	return ""
}

// reownSurvivors returns every selection in upstream whose OwnerKey
// equals ownerKey, re-tagged with CreatedBy = touchedBy. This is how a
// mutating feature re-emits the complete surviving face/edge set of
// the solid it touched, rather than only the handful its own selector
// roles happened to resolve.
func reownSurvivors(upstream []kernel.KernelSelection, ownerKey, touchedBy string) []kernel.KernelSelection {
	var out []kernel.KernelSelection
	for _, sel := range upstream {
		if sel.OwnerKey != ownerKey {
			continue
		}
		sel.CreatedBy = touchedBy
		out = append(out, sel)
	}
	return out
}

// passThrough covers modifier features (shell/thicken/draft/fillet/
// chamfer) that replace the input solid in place: every surviving face
// of the mutated solid is re-emitted under the same OwnerKey with
// CreatedBy updated to this feature.
func passThrough(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	id := req.Feature.ID
	ownerKey := inheritedOwnerKey(req)
	if ownerKey == "" {
		ownerKey = id
	}
	obj := kernel.KernelObject{ID: id, Kind: "solid"}
	sels := reownSurvivors(req.Upstream, ownerKey, id)
	if len(sels) == 0 {
		sels = reownSurvivors(inputSelections(req), ownerKey, id)
	}
	return &kernel.BuildResult{Object: &obj, Selections: sels}, nil
}

// reOwned covers features (mirror) that produce a visibly new,
// independent solid: a fresh OwnerKey of its own, not a mutation of
// the source's slot.
func reOwned(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	id := req.Feature.ID
	obj := kernel.KernelObject{ID: id, Kind: "solid"}
	src := inputSelections(req)
	out := make([]kernel.KernelSelection, len(src))
	for i, sel := range src {
		sel.ID = fmt.Sprintf("%s#%d", id, i)
		sel.OwnerKey = id
		sel.CreatedBy = id
		out[i] = sel
	}
	return &kernel.BuildResult{Object: &obj, Selections: out}, nil
}

// cutHole covers the hole feature: every surviving face of the parent
// solid is re-emitted under the parent's OwnerKey (CreatedBy updated
// to this feature), plus one new cylindrical bore face.
func cutHole(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	id := req.Feature.ID
	diameter := resolved(req, "diameter", 5)
	ownerKey := inheritedOwnerKey(req)
	if ownerKey == "" {
		ownerKey = id
	}
	obj := kernel.KernelObject{ID: id, Kind: "solid"}
	sels := reownSurvivors(req.Upstream, ownerKey, id)
	sels = append(sels, kernel.KernelSelection{
		ID: id + "#bore", ObjectID: id, Kind: ir.SelectorFace, OwnerKey: ownerKey, CreatedBy: id,
		Planar: false, Area: diameter * math.Pi, Role: "bore",
	})
	return &kernel.BuildResult{Object: &obj, Selections: sels}, nil
}

// patternInstances covers both pattern kinds: replicate the target's
// faces Count times, each instance attributed to this feature under a
// fresh OwnerKey of its own (a pattern is a new set of bodies, not a
// mutation of the target's slot) with a deterministic offset along Z
// for stable ordering in tests.
func patternInstances(req kernel.ExecuteRequest) (*kernel.BuildResult, error) {
	id := req.Feature.ID
	count := int(resolved(req, "count", 1))
	if count < 1 {
		count = 1
	}
	src := inputSelections(req)
	obj := kernel.KernelObject{ID: id, Kind: "solid"}
	var out []kernel.KernelSelection
	for n := 0; n < count; n++ {
		for i, sel := range src {
			sel.ID = fmt.Sprintf("%s#%d#%d", id, n, i)
			sel.OwnerKey = id
			sel.CreatedBy = id
			sel.Z += float64(n)
			sel.Centroid[2] += float64(n)
			out = append(out, sel)
		}
	}
	return &kernel.BuildResult{Object: &obj, Selections: out}, nil
}
