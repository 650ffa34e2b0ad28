package validate

import "github.com/trueform/compiler/ir"

// Feature runs the exhaustive per-kind shape/enum switch, validates
// every Selector the feature carries (well-formed + anchored), and
// applies the staged-feature admission policy. featureIDs is the set of
// every feature id in the owning part (for deps/createdBy/datum
// reference checks); profileNames maps profile name to owning sketch
// feature id (for profileRef checks).
func Feature(f *ir.Feature, featureIDs map[string]struct{}, profileNames map[string]string, policy ir.StagedPolicy) error {
	if err := stagedPolicyCheck(f, policy); err != nil {
		return err
	}
	for _, dep := range f.Deps {
		if _, ok := featureIDs[dep]; !ok {
			return ir.NewError(ir.CodeDepMissing, "explicit dep references unknown feature", "featureId", f.ID, "referenceId", dep)
		}
	}
	for _, ref := range f.DatumRefs() {
		if ref.FromDatum {
			if _, ok := featureIDs[ref.DatumID]; !ok {
				return ir.NewError(ir.CodeDatumPlaneMissing, "datum reference to unknown feature", "featureId", f.ID, "referenceId", ref.DatumID)
			}
		} else if ref.Axis != "" && !ir.ValidAxis(ref.Axis) {
			return ir.NewError(ir.CodeValidationEnum, "axis is not one of the six principal directions", "featureId", f.ID, "referenceId", string(ref.Axis))
		}
	}
	for _, name := range f.ProfileRefs() {
		if _, ok := profileNames[name]; !ok {
			return ir.NewError(ir.CodeProfileMissing, "profileRef references unknown profile", "featureId", f.ID, "referenceId", name)
		}
	}
	if patternID, ok := f.PatternRef(); ok {
		if _, known := featureIDs[patternID]; !known {
			return ir.NewError(ir.CodePatternMissing, "hole pattern.ref references unknown feature", "featureId", f.ID, "referenceId", patternID)
		}
	}

	selectors := f.Selectors()
	for _, s := range selectors {
		if err := validateSelectorShape(s, f.ID, featureIDs); err != nil {
			return err
		}
	}
	explicitAnchor := len(f.Deps) > 0
	for _, s := range selectors {
		if !explicitAnchor && s.IsTyped() && !s.Anchored() {
			return ir.NewError(ir.CodeSelectorAnchorMiss, "typed selector is not anchored to any feature",
				"featureId", f.ID, "featureKind", string(f.Kind))
		}
	}

	switch f.Kind {
	case ir.KindDatumPlane:
		return requirePresent(f.DatumPlane != nil, f, "datumPlane")
	case ir.KindDatumAxis:
		return requirePresent(f.DatumAxis != nil, f, "datumAxis")
	case ir.KindDatumFrame:
		return requirePresent(f.DatumFrame != nil, f, "datumFrame")
	case ir.KindSketch:
		return validateSketch(f)
	case ir.KindExtrude:
		if err := requirePresent(f.Extrude != nil, f, "extrude"); err != nil {
			return err
		}
		if err := validateOperationProfile(f.Extrude.Profile, f.ID); err != nil {
			return err
		}
		return validateEnum(f.ID, "extrude.mode", string(f.Extrude.Mode),
			string(ir.ExtrudeBlind), string(ir.ExtrudeSymmetric), string(ir.ExtrudeThroughAll), string(ir.ExtrudeToFace))
	case ir.KindRevolve:
		if err := requirePresent(f.Revolve != nil, f, "revolve"); err != nil {
			return err
		}
		return validateOperationProfile(f.Revolve.Profile, f.ID)
	case ir.KindLoft:
		if err := requirePresent(f.Loft != nil, f, "loft"); err != nil {
			return err
		}
		if len(f.Loft.Profiles) < 2 {
			return ir.NewError(ir.CodeValidationShape, "loft requires at least two profiles", "featureId", f.ID)
		}
		for _, p := range f.Loft.Profiles {
			if err := validateOperationProfile(p, f.ID); err != nil {
				return err
			}
		}
		return nil
	case ir.KindSweep:
		if err := requirePresent(f.Sweep != nil, f, "sweep"); err != nil {
			return err
		}
		if err := validateOperationProfile(f.Sweep.Profile, f.ID); err != nil {
			return err
		}
		return validateEnum(f.ID, "sweep.orientation", string(f.Sweep.Orientation), string(ir.SweepFixed), string(ir.SweepFollow))
	case ir.KindPipe:
		return requirePresent(f.Pipe != nil, f, "pipe")
	case ir.KindPipeSweep:
		if err := requirePresent(f.PipeSweep != nil, f, "pipeSweep"); err != nil {
			return err
		}
		return validateOperationProfile(f.PipeSweep.Profile, f.ID)
	case ir.KindHexTubeSweep:
		return requirePresent(f.HexTubeSweep != nil, f, "hexTubeSweep")
	case ir.KindPlane:
		return requirePresent(f.Plane != nil, f, "plane")
	case ir.KindSurface:
		if err := requirePresent(f.Surface != nil, f, "surface"); err != nil {
			return err
		}
		return validateOperationProfile(f.Surface.Profile, f.ID)
	case ir.KindShell:
		if err := requirePresent(f.Shell != nil, f, "shell"); err != nil {
			return err
		}
		return validateEnum(f.ID, "shell.direction", string(f.Shell.Direction), string(ir.ShellInward), string(ir.ShellOutward))
	case ir.KindThicken:
		if err := requirePresent(f.Thicken != nil, f, "thicken"); err != nil {
			return err
		}
		return validateEnum(f.ID, "thicken.direction", string(f.Thicken.Direction), string(ir.ShellInward), string(ir.ShellOutward))
	case ir.KindMirror:
		return requirePresent(f.Mirror != nil, f, "mirror")
	case ir.KindDraft:
		return requirePresent(f.Draft != nil, f, "draft")
	case ir.KindThread:
		if err := requirePresent(f.Thread != nil, f, "thread"); err != nil {
			return err
		}
		if f.Thread.Handedness == "" {
			return nil // handedness optional; kernel defaults to right-handed
		}
		return validateEnum(f.ID, "thread.handedness", string(f.Thread.Handedness), string(ir.ThreadRight), string(ir.ThreadLeft))
	case ir.KindHole:
		if err := requirePresent(f.Hole != nil, f, "hole"); err != nil {
			return err
		}
		return validateDimension(f.Hole.Diameter, f.ID, "hole.diameter")
	case ir.KindFillet:
		return requirePresent(f.Fillet != nil, f, "fillet")
	case ir.KindChamfer:
		return requirePresent(f.Chamfer != nil, f, "chamfer")
	case ir.KindBoolean:
		if err := requirePresent(f.Boolean != nil, f, "boolean"); err != nil {
			return err
		}
		return validateEnum(f.ID, "boolean.op", string(f.Boolean.Op), string(ir.BooleanUnion), string(ir.BooleanSubtract), string(ir.BooleanIntersect))
	case ir.KindPatternLinear:
		return requirePresent(f.PatternLinear != nil, f, "patternLinear")
	case ir.KindPatternCircular:
		return requirePresent(f.PatternCircular != nil, f, "patternCircular")
	default:
		return ir.NewError(ir.CodeValidationEnum, "unknown feature kind", "featureId", f.ID, "referenceId", string(f.Kind))
	}
}

func requirePresent(ok bool, f *ir.Feature, field string) error {
	if !ok {
		return ir.NewError(ir.CodeValidationShape, "required payload missing for feature kind",
			"featureId", f.ID, "featureKind", string(f.Kind), "referenceId", field)
	}
	return nil
}

func validateEnum(featureID, field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return ir.NewError(ir.CodeValidationEnum, "value is not in the allowed enum set",
		"featureId", featureID, "referenceKind", field, "referenceId", value)
}

func stagedPolicyCheck(f *ir.Feature, policy ir.StagedPolicy) error {
	stage, ok := ir.DefaultFeatureStage[f.Kind]
	if !ok || stage == ir.StageStable {
		return nil
	}
	switch policy {
	case ir.PolicyError:
		return ir.NewError(ir.CodeValidationStagedFeature, "staged feature rejected by policy",
			"featureId", f.ID, "featureKind", string(f.Kind), "referenceId", string(stage))
	default:
		return nil // allow/warn: validate does not emit diagnostics itself; callers that
		// want the "warn" text collect it by re-checking DefaultFeatureStage themselves.
	}
}

func validateOperationProfile(p ir.Profile, featureID string) error {
	if p.Kind == ir.ProfileSketch {
		return ir.NewError(ir.CodeValidationProfile, "profile.sketch may only appear inside a sketch feature, referenced via profileRef",
			"featureId", featureID)
	}
	return nil
}

func validateDimension(d ir.Dimension, featureID, field string) error {
	hasSymmetric := d.Tolerance != nil
	hasBilateral := d.Plus != nil || d.Minus != nil
	hasRange := d.Min != nil || d.Max != nil
	if hasSymmetric && hasBilateral {
		return ir.NewError(ir.CodeValidationTolerance, "symmetric and bilateral tolerance may not be mixed", "featureId", featureID, "referenceId", field)
	}
	if (hasSymmetric || hasBilateral) && d.Nominal.AsExpression() == nil {
		return ir.NewError(ir.CodeValidationTolerance, "nominal required when a tolerance is given", "featureId", featureID, "referenceId", field)
	}
	if hasRange && d.Min != nil && d.Max != nil {
		// Numeric min<=max, along with tolerance>0 and plus/minus>=0, can
		// only be checked once expressions resolve to concrete numbers;
		// expr.ResolveDimension enforces those at resolution time.
	}
	if !hasSymmetric && !hasBilateral && !hasRange && d.Nominal.AsExpression() == nil {
		return ir.NewError(ir.CodeValidationTolerance, "dimension requires nominal+tolerance or min+max", "featureId", featureID, "referenceId", field)
	}
	return nil
}
