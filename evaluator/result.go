package evaluator

import "github.com/trueform/compiler/kernel"

// Result is everything one full evaluation run produced: the kernel
// object for every feature that built one, every selection surfaced
// along the way, the subset of those grouped under a declared output
// name, the schedule order actually used, and any non-fatal backend
// warnings keyed by feature id.
type Result struct {
	Objects       map[string]kernel.KernelObject
	AllSelections []kernel.KernelSelection
	Outputs       map[string][]kernel.KernelSelection
	Order         []string
	Warnings      map[string][]string
}

// Prune returns a copy of r with every selection, object, and warning
// whose producing feature id is not in live discarded, and every
// declared output whose every surviving selection was dropped removed
// entirely. Order is not carried over; the copy's Order is empty. This is for a caller (build.PartialBuild) applying a
// structural edit that removes features outright from a document,
// before handing the trimmed Result to EvaluateIncremental as prior: a
// feature that no longer exists cannot be a valid replay source even
// though nothing marked it dirty. Filtering is by CreatedBy (the
// feature that most recently touched each selection), not OwnerKey
// (the stable output slot it belongs to) — removing a solid's original
// creator from live should not resurrect the selections a surviving
// mutating feature re-emitted under that OwnerKey.
func (r *Result) Prune(live map[string]bool) *Result {
	out := &Result{
		Objects:  make(map[string]kernel.KernelObject, len(r.Objects)),
		Outputs:  make(map[string][]kernel.KernelSelection, len(r.Outputs)),
		Warnings: make(map[string][]string, len(r.Warnings)),
	}
	for id, obj := range r.Objects {
		if live[id] {
			out.Objects[id] = obj
		}
	}
	for _, sel := range r.AllSelections {
		if live[sel.CreatedBy] {
			out.AllSelections = append(out.AllSelections, sel)
		}
	}
	for name, sels := range r.Outputs {
		var kept []kernel.KernelSelection
		for _, sel := range sels {
			if live[sel.CreatedBy] {
				kept = append(kept, sel)
			}
		}
		if len(kept) > 0 {
			out.Outputs[name] = kept
		}
	}
	for id, warnings := range r.Warnings {
		if live[id] {
			out.Warnings[id] = warnings
		}
	}
	return out
}
