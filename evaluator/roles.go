package evaluator

import "github.com/trueform/compiler/ir"

// selectorRoles returns every Selector embedded in f's payload, keyed
// by its field name, so resolved selections can be reported to the
// backend under a name it can make sense of rather than positionally.
func selectorRoles(f *ir.Feature) map[string]*ir.Selector {
	out := make(map[string]*ir.Selector, 2)
	add := func(role string, s *ir.Selector) {
		if s != nil && s.Kind != "" {
			out[role] = s
		}
	}
	switch f.Kind {
	case ir.KindDatumFrame:
		if f.DatumFrame != nil {
			add("face", &f.DatumFrame.Face)
		}
	case ir.KindSweep:
		if f.Sweep != nil {
			add("path", &f.Sweep.Path)
		}
	case ir.KindPipe:
		if f.Pipe != nil {
			add("path", &f.Pipe.Path)
		}
	case ir.KindPipeSweep:
		if f.PipeSweep != nil {
			add("path", &f.PipeSweep.Path)
		}
	case ir.KindHexTubeSweep:
		if f.HexTubeSweep != nil {
			add("path", &f.HexTubeSweep.Path)
		}
	case ir.KindShell:
		if f.Shell != nil {
			add("faces", &f.Shell.Faces)
		}
	case ir.KindThicken:
		if f.Thicken != nil {
			add("faces", &f.Thicken.Faces)
		}
	case ir.KindMirror:
		if f.Mirror != nil {
			add("targets", &f.Mirror.Targets)
		}
	case ir.KindDraft:
		if f.Draft != nil {
			add("faces", &f.Draft.Faces)
		}
	case ir.KindThread:
		if f.Thread != nil {
			add("face", &f.Thread.Face)
		}
	case ir.KindHole:
		if f.Hole != nil {
			add("position", &f.Hole.Position)
		}
	case ir.KindFillet:
		if f.Fillet != nil {
			add("edges", &f.Fillet.Edges)
		}
	case ir.KindChamfer:
		if f.Chamfer != nil {
			add("edges", &f.Chamfer.Edges)
		}
	case ir.KindBoolean:
		if f.Boolean != nil {
			add("targets", &f.Boolean.Targets)
			add("tools", &f.Boolean.Tools)
		}
	case ir.KindPatternLinear:
		if f.PatternLinear != nil {
			add("target", &f.PatternLinear.Target)
		}
	case ir.KindPatternCircular:
		if f.PatternCircular != nil {
			add("target", &f.PatternCircular.Target)
		}
	}
	return out
}
