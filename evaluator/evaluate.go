package evaluator

import (
	"context"

	"github.com/trueform/compiler/depgraph"
	"github.com/trueform/compiler/expr"
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
	"github.com/trueform/compiler/selector"
)

// Evaluate builds the dependency graph for part, schedules it
// deterministically, and drives every feature through adapter in
// order, threading resolved numeric parameters and selector results
// forward. It returns as soon as any step fails; ctx cancellation is
// checked between features so a caller can bound evaluation time.
//
// This is EvaluateIncremental with no prior Result to reuse from, i.e.
// a full rebuild.
func Evaluate(ctx context.Context, part *ir.Part, docUnits ir.LengthUnit, overrides ir.Overrides, adapter kernel.Adapter) (*Result, error) {
	return EvaluateIncremental(ctx, part, docUnits, overrides, adapter, nil, nil)
}

// EvaluateIncremental behaves like Evaluate, except that for every
// scheduled feature not present in dirty it skips parameter/selector
// resolution and the Execute call entirely, instead replaying that
// feature's object/selections verbatim from prior. dirty should
// contain every feature whose resolved inputs changed plus every
// feature downstream of one (build.PartialBuild computes this closure
// with DirtyClosure); a
// nil prior or nil dirty is equivalent to marking every feature dirty.
func EvaluateIncremental(ctx context.Context, part *ir.Part, docUnits ir.LengthUnit, overrides ir.Overrides, adapter kernel.Adapter, prior *Result, dirty map[string]bool) (*Result, error) {
	resCtx, err := expr.NewResolveCtx(part, docUnits, overrides)
	if err != nil {
		return nil, err
	}
	graph, err := depgraph.Build(part)
	if err != nil {
		return nil, err
	}
	order, err := depgraph.Schedule(graph)
	if err != nil {
		return nil, err
	}

	featureIndex := make(map[string]*ir.Feature, len(part.Features))
	for i := range part.Features {
		featureIndex[part.Features[i].ID] = &part.Features[i]
	}

	// priorSelectionsByCreator groups a prior Result's selections by the
	// feature that most recently touched each one, so replaying an
	// untouched feature id verbatim recovers exactly what that feature
	// id produced last time, regardless of which OwnerKey slot it
	// belongs to.
	priorSelectionsByCreator := make(map[string][]kernel.KernelSelection)
	if prior != nil {
		for _, sel := range prior.AllSelections {
			priorSelectionsByCreator[sel.CreatedBy] = append(priorSelectionsByCreator[sel.CreatedBy], sel)
		}
	}

	result := &Result{
		Objects:  make(map[string]kernel.KernelObject),
		Outputs:  make(map[string][]kernel.KernelSelection),
		Warnings: make(map[string][]string),
		Order:    order,
	}
	var allSelections []kernel.KernelSelection
	byName := make(map[string][]kernel.KernelSelection)
	// nameOwnerKey remembers which OwnerKey slot each declared output
	// name is bound to, so a later mutating feature (which re-emits
	// under the same OwnerKey but declares no Result of its own) keeps
	// that output's selections current.
	nameOwnerKey := make(map[string]string)

	for _, id := range order {
		if err := ctx.Err(); err != nil {
			return nil, ir.NewError(ir.CodeJobCanceled, "evaluation canceled", "featureId", id)
		}

		f, ok := featureIndex[id]
		if !ok {
			return nil, ir.NewError(ir.CodeMissingFeature, "scheduled feature id not found in part", "referenceId", id)
		}

		var newSelections []kernel.KernelSelection

		if prior != nil && dirty != nil && !dirty[id] {
			newSelections = priorSelectionsByCreator[id]
			if obj, ok := prior.Objects[id]; ok {
				result.Objects[id] = obj
			}
			if w, ok := prior.Warnings[id]; ok {
				result.Warnings[id] = w
			}
		} else {
			numeric, err := resolveNumericParams(f, resCtx)
			if err != nil {
				return nil, annotate(err, f.ID)
			}

			selResCtx := selector.ResolutionContext{All: allSelections, ByName: byName}
			roles := selectorRoles(f)
			selections := make(map[string][]kernel.KernelSelection, len(roles))
			for role, sel := range roles {
				resolved, err := selector.Resolve(sel, selResCtx)
				if err != nil {
					return nil, annotate(err, f.ID)
				}
				selections[role] = resolved
			}

			inputs := make(map[string]kernel.KernelObject, len(f.Deps))
			for _, dep := range f.Deps {
				if obj, ok := result.Objects[dep]; ok {
					inputs[dep] = obj
				}
			}

			res, err := adapter.Execute(ctx, kernel.ExecuteRequest{
				Feature:        f,
				ResolvedParams: numeric,
				Inputs:         inputs,
				Selections:     selections,
				Upstream:       allSelections,
			})
			if err != nil {
				return nil, annotate(err, f.ID)
			}

			if res.Object != nil {
				result.Objects[id] = *res.Object
			}
			newSelections = res.Selections
			if len(res.Warnings) > 0 {
				result.Warnings[id] = res.Warnings
			}
		}

		// Merge rule (SPEC_FULL §11): drop every previously accumulated
		// selection sharing an OwnerKey with one of this feature's new
		// selections before appending the new ones. A feature that
		// introduces a brand-new OwnerKey prunes nothing; a feature that
		// re-emits under an existing OwnerKey replaces everything rooted
		// there.
		if len(newSelections) > 0 {
			touched := make(map[string]bool, 2)
			for _, sel := range newSelections {
				touched[sel.OwnerKey] = true
			}
			kept := allSelections[:0:0]
			for _, sel := range allSelections {
				if !touched[sel.OwnerKey] {
					kept = append(kept, sel)
				}
			}
			allSelections = append(kept, newSelections...)
		}

		if f.Result != "" {
			if len(newSelections) > 0 {
				nameOwnerKey[f.Result] = newSelections[0].OwnerKey
			} else if _, ok := nameOwnerKey[f.Result]; !ok {
				nameOwnerKey[f.Result] = id
			}
		}

		byName = selectionsByOwnerKey(allSelections, nameOwnerKey)
		for name, sels := range byName {
			result.Outputs[name] = sels
		}
	}

	result.AllSelections = allSelections
	return result, nil
}

// selectionsByOwnerKey groups all into a map keyed by each declared
// output name in nameOwnerKey, selecting the selections whose OwnerKey
// matches that name's bound slot. Called after every feature so a
// `named(...)` selector or a cache consumer always sees the current
// surviving set for a name, even when the name's owning solid was last
// touched by a feature that declared no Result of its own.
func selectionsByOwnerKey(all []kernel.KernelSelection, nameOwnerKey map[string]string) map[string][]kernel.KernelSelection {
	out := make(map[string][]kernel.KernelSelection, len(nameOwnerKey))
	for name, key := range nameOwnerKey {
		var sels []kernel.KernelSelection
		for _, sel := range all {
			if sel.OwnerKey == key {
				sels = append(sels, sel)
			}
		}
		out[name] = sels
	}
	return out
}

// annotate adds featureId context to err if it is a *ir.CoreError that
// does not already carry one, so a failure deep in expr/selector still
// points back at the feature that triggered it.
func annotate(err error, featureID string) error {
	ce, ok := err.(*ir.CoreError)
	if !ok {
		return err
	}
	if _, has := ce.Context["featureId"]; has {
		return ce
	}
	return ce.WithContext("featureId", featureID)
}

// DirtyClosure returns dirty unioned with every feature reachable from
// it by following g's edges forward (a feature downstream of a changed
// one must be re-evaluated too, since its inputs may have changed).
func DirtyClosure(g *depgraph.Graph, seeds map[string]bool) map[string]bool {
	out := make(map[string]bool, len(seeds))
	var visit func(string)
	visited := make(map[string]bool)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		out[id] = true
		for _, e := range g.Edges() {
			if e.From == id {
				visit(e.To)
			}
		}
	}
	for id := range seeds {
		visit(id)
	}
	return out
}
