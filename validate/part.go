package validate

import "github.com/trueform/compiler/ir"

// Part validates one part's structural invariants: unique feature ids,
// unique output names, unique param ids, unique datum labels, unique
// connector ids disjoint from feature ids, per-feature shape/enum
// checks, selector well-formedness and anchoring, tolerance rules, and
// the staged-feature admission policy.
func Part(p *ir.Part, policy ir.StagedPolicy) error {
	featureIDs := make(map[string]struct{}, len(p.Features))
	outputNames := make(map[string]struct{}, len(p.Features))
	profileNames := make(map[string]string, len(p.Features)) // name -> owning sketch feature id

	for i := range p.Features {
		f := &p.Features[i]
		if f.ID == "" {
			return ir.NewError(ir.CodeValidationShape, "feature id must be non-empty")
		}
		if _, dup := featureIDs[f.ID]; dup {
			return ir.NewError(ir.CodeValidationDuplicate, "duplicate feature id", "referenceKind", "feature", "referenceId", f.ID)
		}
		featureIDs[f.ID] = struct{}{}

		if f.Result != "" {
			if _, dup := outputNames[f.Result]; dup {
				return ir.NewError(ir.CodeValidationDuplicate, "duplicate output name", "referenceKind", "output", "referenceId", f.Result)
			}
			outputNames[f.Result] = struct{}{}
		}

		if f.Kind == ir.KindSketch && f.Sketch != nil {
			for _, np := range f.Sketch.Profiles {
				if owner, dup := profileNames[np.Name]; dup {
					return ir.NewError(ir.CodeProfileDuplicate, "duplicate profile name",
						"referenceKind", "profile", "referenceId", np.Name, "featureId", owner)
				}
				profileNames[np.Name] = f.ID
			}
		}
	}

	paramIDs := make(map[string]struct{}, len(p.Params))
	for _, param := range p.Params {
		if param.ID == "" {
			return ir.NewError(ir.CodeValidationShape, "param id must be non-empty")
		}
		if !ir.ValidParamType(param.Type) {
			return ir.NewError(ir.CodeValidationEnum, "param type is not one of length/angle/count", "referenceKind", "param", "referenceId", param.ID)
		}
		if _, dup := paramIDs[param.ID]; dup {
			return ir.NewError(ir.CodeValidationDuplicate, "duplicate param id", "referenceKind", "param", "referenceId", param.ID)
		}
		paramIDs[param.ID] = struct{}{}
	}

	datumLabels := make(map[string]struct{}, len(p.Datums))
	for _, d := range p.Datums {
		if _, dup := datumLabels[d.Label]; dup {
			return ir.NewError(ir.CodeValidationDuplicate, "duplicate datum label", "referenceKind", "datum", "referenceId", d.Label)
		}
		datumLabels[d.Label] = struct{}{}
		if _, ok := featureIDs[d.FeatureID]; !ok {
			return ir.NewError(ir.CodeMissingFeature, "datum label references unknown feature", "referenceId", d.FeatureID)
		}
	}

	connectorIDs := make(map[string]struct{}, len(p.Connectors))
	for _, c := range p.Connectors {
		if c.ID == "" {
			return ir.NewError(ir.CodeValidationShape, "connector id must be non-empty")
		}
		if _, dup := connectorIDs[c.ID]; dup {
			return ir.NewError(ir.CodeValidationDuplicate, "duplicate connector id", "referenceKind", "connector", "referenceId", c.ID)
		}
		if _, clash := featureIDs[c.ID]; clash {
			return ir.NewError(ir.CodeValidationDuplicate, "connector id collides with a feature id", "referenceId", c.ID)
		}
		connectorIDs[c.ID] = struct{}{}
	}

	for i := range p.Features {
		f := &p.Features[i]
		if err := Feature(f, featureIDs, profileNames, policy); err != nil {
			return err
		}
	}
	for _, a := range p.Assertions {
		if a.ID == "" || a.Kind == "" {
			return ir.NewError(ir.CodeValidationShape, "part assertion missing id/kind")
		}
	}
	return nil
}
