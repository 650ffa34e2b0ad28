package validate

import "github.com/trueform/compiler/ir"

// renderableEntityKinds excludes point, which anchors geometry but never
// forms part of a closed loop.
var renderableEntityKinds = map[ir.SketchEntityKind]bool{
	ir.EntityLine: true, ir.EntityArc: true, ir.EntityCircle: true,
	ir.EntityEllipse: true, ir.EntityRectangle: true, ir.EntitySlot: true,
	ir.EntityPolygon: true, ir.EntitySpline: true,
}

// validateSketch checks entity id uniqueness and kind validity, and
// that every owned sketch(...) profile only references non-construction
// entities of renderable kinds within the same sketch, with open
// profiles forbidden from declaring holes.
func validateSketch(f *ir.Feature) error {
	s := f.Sketch
	entityIDs := make(map[string]ir.SketchEntity, len(s.Entities))
	for _, e := range s.Entities {
		if e.ID == "" {
			return ir.NewError(ir.CodeValidationShape, "sketch entity id must be non-empty", "featureId", f.ID)
		}
		if !ir.ValidSketchEntityKind(e.Kind) {
			return ir.NewError(ir.CodeValidationEnum, "unknown sketch entity kind", "featureId", f.ID, "referenceId", string(e.Kind))
		}
		if _, dup := entityIDs[e.ID]; dup {
			return ir.NewError(ir.CodeValidationDuplicate, "duplicate sketch entity id", "featureId", f.ID, "referenceId", e.ID)
		}
		entityIDs[e.ID] = e
	}

	for _, np := range s.Profiles {
		if np.Profile.Kind != ir.ProfileSketch {
			continue
		}
		if np.Profile.Open && len(np.Profile.HoleLoops) > 0 {
			return ir.NewError(ir.CodeValidationProfile, "open sketch profile must not define holes",
				"featureId", f.ID, "referenceId", np.Name)
		}
		if err := validateLoopRefs(entityIDs, np.Profile.LoopIDs, f.ID, np.Name); err != nil {
			return err
		}
		for _, hole := range np.Profile.HoleLoops {
			if err := validateLoopRefs(entityIDs, hole, f.ID, np.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateLoopRefs(entityIDs map[string]ir.SketchEntity, loopIDs []string, featureID, profileName string) error {
	for _, id := range loopIDs {
		e, ok := entityIDs[id]
		if !ok {
			return ir.NewError(ir.CodeValidationProfile, "profile loop references unknown sketch entity",
				"featureId", featureID, "referenceKind", profileName, "referenceId", id)
		}
		if e.Construction {
			return ir.NewError(ir.CodeValidationProfile, "profile loop may not reference a construction entity",
				"featureId", featureID, "referenceKind", profileName, "referenceId", id)
		}
		if !renderableEntityKinds[e.Kind] {
			return ir.NewError(ir.CodeValidationProfile, "profile loop references a non-renderable entity kind",
				"featureId", featureID, "referenceKind", profileName, "referenceId", id)
		}
	}
	return nil
}
