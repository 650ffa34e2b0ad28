package validate

import "github.com/trueform/compiler/ir"

// validateSelectorShape checks that s and every selector nested under it
// via rank.closestTo are structurally well-formed: predicates/rank
// entries use closed-set kinds, createdBy predicates reference real
// feature ids, and normal predicates carry one of the six principal
// axes. Anchoring itself is checked by the caller (validate.Feature),
// since it depends on the enclosing feature's explicit Deps.
func validateSelectorShape(s *ir.Selector, featureID string, featureIDs map[string]struct{}) error {
	var walkErr error
	s.Walk(func(sel *ir.Selector) {
		if walkErr != nil {
			return
		}
		walkErr = validateOneSelector(sel, featureID, featureIDs)
	})
	return walkErr
}

func validateOneSelector(s *ir.Selector, featureID string, featureIDs map[string]struct{}) error {
	switch s.Kind {
	case ir.SelectorNamed:
		if s.Name == "" {
			return ir.NewError(ir.CodeValidationSelector, "named selector requires a non-empty name", "featureId", featureID)
		}
		return nil
	case ir.SelectorFace, ir.SelectorEdge, ir.SelectorSolid:
		// fallthrough to predicate/rank checks below
	default:
		return ir.NewError(ir.CodeValidationSelector, "unknown selector kind", "featureId", featureID, "referenceId", string(s.Kind))
	}

	for _, p := range s.Predicates {
		switch p.Kind {
		case ir.PredNormal:
			if !ir.ValidAxis(p.Axis) {
				return ir.NewError(ir.CodeValidationSelector, "normal predicate requires one of the six principal axes", "featureId", featureID)
			}
		case ir.PredPlanar:
			// no payload
		case ir.PredCreatedBy:
			if p.FeatureID == "" {
				return ir.NewError(ir.CodePredCreatedByMissing, "createdBy predicate requires a feature id", "featureId", featureID)
			}
			if _, ok := featureIDs[p.FeatureID]; !ok {
				return ir.NewError(ir.CodePredCreatedByMissing, "createdBy predicate references unknown feature", "featureId", featureID, "referenceId", p.FeatureID)
			}
		case ir.PredRole:
			if p.Role == "" {
				return ir.NewError(ir.CodeValidationSelector, "role predicate requires a non-empty role", "featureId", featureID)
			}
		default:
			return ir.NewError(ir.CodeValidationSelector, "unknown predicate kind", "featureId", featureID, "referenceId", string(p.Kind))
		}
	}
	for _, r := range s.Rank {
		switch r.Kind {
		case ir.RankMaxArea, ir.RankMinZ, ir.RankMaxZ:
			// no payload
		case ir.RankClosestTo:
			if r.ClosestTo == nil {
				return ir.NewError(ir.CodeValidationSelector, "closestTo rank requires a nested selector", "featureId", featureID)
			}
		default:
			return ir.NewError(ir.CodeValidationSelector, "unknown rank kind", "featureId", featureID, "referenceId", string(r.Kind))
		}
	}
	return nil
}
