package depgraph

import "github.com/trueform/compiler/ir"

// Build infers the dependency graph for a part's feature list, applying
// the five inference rules in order: explicit deps, profileRef
// indirection, hole pattern.ref, datum references, and selector-derived
// references (named/createdBy/closestTo). Every feature is added as a
// node even if it has no incoming or outgoing edges, so Schedule always
// accounts for the full feature list.
func Build(p *ir.Part) (*Graph, error) {
	g := New()

	profileOwner := make(map[string]string, len(p.Features)) // profile name -> owning sketch feature id
	resultOwner := make(map[string]string, len(p.Features))  // output name (Result) -> producing feature id
	for i := range p.Features {
		f := &p.Features[i]
		g.AddNode(f.ID)
		if f.Result != "" {
			resultOwner[f.Result] = f.ID
		}
		if f.Kind != ir.KindSketch || f.Sketch == nil {
			continue
		}
		for _, np := range f.Sketch.Profiles {
			if _, dup := profileOwner[np.Name]; dup {
				return nil, ir.NewError(ir.CodeProfileDuplicate, "profile name declared by more than one sketch",
					"featureId", f.ID, "referenceId", np.Name)
			}
			profileOwner[np.Name] = f.ID
		}
	}

	for i := range p.Features {
		f := &p.Features[i]

		// Rule 1: explicit deps.
		for _, dep := range f.Deps {
			g.AddEdge(dep, f.ID)
		}

		// Rule 2: profileRef -> owning sketch.
		for _, name := range f.ProfileRefs() {
			owner, ok := profileOwner[name]
			if !ok {
				return nil, ir.NewError(ir.CodeProfileMissing, "profileRef references unknown profile",
					"featureId", f.ID, "referenceId", name)
			}
			g.AddEdge(owner, f.ID)
		}

		// Rule 3: hole pattern.ref -> pattern feature.
		if patternID, ok := f.PatternRef(); ok {
			g.AddEdge(patternID, f.ID)
		}

		// Rule 4: datum references -> referenced datum feature.
		for _, ref := range f.DatumRefs() {
			if ref.FromDatum && ref.DatumID != "" {
				g.AddEdge(ref.DatumID, f.ID)
			}
		}

		// Rule 5: selector-derived references, walking closestTo chains.
		for _, s := range f.Selectors() {
			s.Walk(func(sel *ir.Selector) {
				if sel.Kind == ir.SelectorNamed {
					for _, name := range ir.SplitSelectorNames(sel.Name) {
						if ir.IsSentinelSelectorName(name) {
							continue
						}
						if owner, ok := resultOwner[name]; ok {
							g.AddEdge(owner, f.ID)
						}
					}
				}
				if id, ok := sel.CreatedByID(); ok {
					g.AddEdge(id, f.ID)
				}
			})
		}
	}

	return g, nil
}
