package evaluator

import (
	"github.com/trueform/compiler/expr"
	"github.com/trueform/compiler/ir"
)

// resolveNumericParams extracts and resolves the kind-specific scalar
// fields of f into a flat map keyed by field name. Only fields that
// matter to geometry evaluation are included; string enums (mode,
// orientation, direction, op, handedness) are read directly off the
// feature by the backend and never appear here.
func resolveNumericParams(f *ir.Feature, ctx *expr.ResolveCtx) (map[string]float64, error) {
	out := make(map[string]float64, 4)
	set := func(key string, s ir.Scalar, pt ir.ParamType) error {
		v, err := expr.Resolve(s, pt, ctx)
		if err != nil {
			return err
		}
		out[key] = v
		return nil
	}

	switch f.Kind {
	case ir.KindDatumPlane:
		if f.DatumPlane != nil {
			return out, set("offset", f.DatumPlane.Offset, ir.ParamLength)
		}
	case ir.KindExtrude:
		if f.Extrude != nil {
			if err := set("depth", f.Extrude.Depth, ir.ParamLength); err != nil {
				return nil, err
			}
			return out, setProfileArea(out, f.Extrude.Profile, ctx)
		}
	case ir.KindRevolve:
		if f.Revolve != nil {
			if err := set("angle", f.Revolve.Angle, ir.ParamAngle); err != nil {
				return nil, err
			}
			return out, setProfileArea(out, f.Revolve.Profile, ctx)
		}
	case ir.KindLoft:
		if f.Loft != nil && len(f.Loft.Profiles) > 0 {
			return out, setProfileArea(out, f.Loft.Profiles[0], ctx)
		}
	case ir.KindSweep:
		if f.Sweep != nil {
			return out, setProfileArea(out, f.Sweep.Profile, ctx)
		}
	case ir.KindPipe:
		if f.Pipe != nil {
			if err := set("diameter", f.Pipe.Diameter, ir.ParamLength); err != nil {
				return nil, err
			}
			out["area"] = circleArea(out["diameter"] / 2)
			return out, nil
		}
	case ir.KindPipeSweep:
		if f.PipeSweep != nil {
			if err := set("diameter", f.PipeSweep.Diameter, ir.ParamLength); err != nil {
				return nil, err
			}
			out["area"] = circleArea(out["diameter"] / 2)
			return out, nil
		}
	case ir.KindHexTubeSweep:
		if f.HexTubeSweep != nil {
			if err := set("acrossFlats", f.HexTubeSweep.AcrossFlats, ir.ParamLength); err != nil {
				return nil, err
			}
			return out, set("wallThickness", f.HexTubeSweep.WallThickness, ir.ParamLength)
		}
	case ir.KindPlane:
		if f.Plane != nil {
			return out, set("offset", f.Plane.Offset, ir.ParamLength)
		}
	case ir.KindSurface:
		if f.Surface != nil {
			return out, setProfileArea(out, f.Surface.Profile, ctx)
		}
	case ir.KindShell:
		if f.Shell != nil {
			return out, set("thickness", f.Shell.Thickness, ir.ParamLength)
		}
	case ir.KindThicken:
		if f.Thicken != nil {
			return out, set("thickness", f.Thicken.Thickness, ir.ParamLength)
		}
	case ir.KindDraft:
		if f.Draft != nil {
			return out, set("angle", f.Draft.Angle, ir.ParamAngle)
		}
	case ir.KindThread:
		if f.Thread != nil {
			return out, set("pitch", f.Thread.Pitch, ir.ParamLength)
		}
	case ir.KindHole:
		if f.Hole != nil {
			diameter, err := expr.ResolveDimension(f.Hole.Diameter, ir.ParamLength, ctx)
			if err != nil {
				return nil, err
			}
			out["diameter"] = diameter
			return out, set("depth", f.Hole.Depth, ir.ParamLength)
		}
	case ir.KindFillet:
		if f.Fillet != nil {
			return out, set("radius", f.Fillet.Radius, ir.ParamLength)
		}
	case ir.KindChamfer:
		if f.Chamfer != nil {
			return out, set("distance", f.Chamfer.Distance, ir.ParamLength)
		}
	case ir.KindPatternLinear:
		if f.PatternLinear != nil {
			if err := set("count", f.PatternLinear.Count, ir.ParamCount); err != nil {
				return nil, err
			}
			return out, set("spacing", f.PatternLinear.Spacing, ir.ParamLength)
		}
	case ir.KindPatternCircular:
		if f.PatternCircular != nil {
			if err := set("count", f.PatternCircular.Count, ir.ParamCount); err != nil {
				return nil, err
			}
			return out, set("angle", f.PatternCircular.Angle, ir.ParamAngle)
		}
	}
	return out, nil
}

func circleArea(radius float64) float64 {
	return 3.14159265358979323846 * radius * radius
}

// setProfileArea resolves a best-effort planar area for p into out["area"].
// rectangle and circle resolve exactly from their Scalars; poly uses the
// shoelace formula over its raw mm point list; sketch and profileRef
// contribute no area here since their geometry lives in entities/loops
// the fake backend does not interpret; a real backend would compute this
// itself rather than trust evaluator's estimate.
func setProfileArea(out map[string]float64, p ir.Profile, ctx *expr.ResolveCtx) error {
	switch p.Kind {
	case ir.ProfileRectangle:
		w, err := expr.Resolve(p.Width, ir.ParamLength, ctx)
		if err != nil {
			return err
		}
		h, err := expr.Resolve(p.Height, ir.ParamLength, ctx)
		if err != nil {
			return err
		}
		out["area"] = w * h
	case ir.ProfileCircle:
		r, err := expr.Resolve(p.Radius, ir.ParamLength, ctx)
		if err != nil {
			return err
		}
		out["area"] = circleArea(r)
	case ir.ProfilePoly:
		out["area"] = shoelaceArea(p.Points)
	}
	return nil
}

func shoelaceArea(points []float64) float64 {
	n := len(points) / 2
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[2*i]*points[2*j+1] - points[2*j]*points[2*i+1]
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
