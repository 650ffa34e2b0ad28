package selector

import (
	"math"
	"sort"

	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
)

// ResolutionContext is the candidate pool a Resolve call searches.
// evaluator rebuilds it incrementally as features execute: All grows
// by one feature's worth of selections per step, and ByName gains an
// entry whenever a feature declares a Result name.
type ResolutionContext struct {
	All    []kernel.KernelSelection
	ByName map[string][]kernel.KernelSelection
}

// Resolve filters ctx's candidate pool through s's predicates, applies
// s's rank rules as a sequence of stable sorts (last rule dominates, as
// documented on ir.Rank), and returns the result ordered deterministically.
// A named selector is a lookup into ctx.ByName; s.Name may carry
// comma/newline-separated multi-ref syntax, in which case the first
// name found in ctx.ByName wins (spec.md's documented, if questionable,
// behavior — not something this resolver silently "fixes" to a union or
// a most-specific match). An empty result after predicate filtering is
// CodeSelectorEmpty; referencing an unknown named output is
// CodeSelectorNamedMissing.
func Resolve(s *ir.Selector, ctx ResolutionContext) ([]kernel.KernelSelection, error) {
	if s.Kind == ir.SelectorNamed {
		for _, name := range ir.SplitSelectorNames(s.Name) {
			if out, ok := ctx.ByName[name]; ok {
				return append([]kernel.KernelSelection(nil), out...), nil
			}
		}
		return nil, ir.NewError(ir.CodeSelectorNamedMissing, "named selector references unknown output", "referenceId", s.Name)
	}

	pool := make([]kernel.KernelSelection, 0, len(ctx.All))
	for _, sel := range ctx.All {
		if sel.Kind == s.Kind {
			pool = append(pool, sel)
		}
	}
	for _, p := range s.Predicates {
		pool = filterPredicate(pool, p)
	}
	if len(pool) == 0 {
		return nil, ir.NewError(ir.CodeSelectorEmpty, "selector matched no candidates")
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	for _, r := range s.Rank {
		less, err := rankLess(pool, r, ctx)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(pool, less)
	}
	return pool, nil
}

func filterPredicate(pool []kernel.KernelSelection, p ir.Predicate) []kernel.KernelSelection {
	out := pool[:0:0]
	for _, sel := range pool {
		switch p.Kind {
		case ir.PredNormal:
			if sel.Normal == p.Axis {
				out = append(out, sel)
			}
		case ir.PredPlanar:
			if sel.Planar {
				out = append(out, sel)
			}
		case ir.PredCreatedBy:
			if sel.CreatedBy == p.FeatureID {
				out = append(out, sel)
			}
		case ir.PredRole:
			if sel.Role == p.Role {
				out = append(out, sel)
			}
		}
	}
	return out
}

func rankLess(pool []kernel.KernelSelection, r ir.Rank, ctx ResolutionContext) (func(i, j int) bool, error) {
	switch r.Kind {
	case ir.RankMaxArea:
		return func(i, j int) bool { return pool[i].Area > pool[j].Area }, nil
	case ir.RankMinZ:
		return func(i, j int) bool { return pool[i].Z < pool[j].Z }, nil
	case ir.RankMaxZ:
		return func(i, j int) bool { return pool[i].Z > pool[j].Z }, nil
	case ir.RankClosestTo:
		target, err := Resolve(r.ClosestTo, ctx)
		if err != nil {
			return nil, err
		}
		ref := target[0].Centroid
		return func(i, j int) bool {
			return distance(pool[i].Centroid, ref) < distance(pool[j].Centroid, ref)
		}, nil
	default:
		return func(i, j int) bool { return false }, nil
	}
}

func distance(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
