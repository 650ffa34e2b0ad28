package ir

// FeatureKind is the closed set of ~25 feature variants in three groups:
// datums, sketches, and operations. A switch over FeatureKind is
// expected to be exhaustive in validate, depgraph, and evaluator.
type FeatureKind string

const (
	// Datums.
	KindDatumPlane FeatureKind = "datum.plane"
	KindDatumAxis  FeatureKind = "datum.axis"
	KindDatumFrame FeatureKind = "datum.frame"

	// Sketches.
	KindSketch FeatureKind = "sketch"

	// Operations.
	KindExtrude         FeatureKind = "extrude"
	KindRevolve         FeatureKind = "revolve"
	KindLoft            FeatureKind = "loft"
	KindSweep           FeatureKind = "sweep"
	KindPipe            FeatureKind = "pipe"
	KindPipeSweep       FeatureKind = "pipe-sweep"
	KindHexTubeSweep    FeatureKind = "hex-tube-sweep"
	KindPlane           FeatureKind = "plane"
	KindSurface         FeatureKind = "surface"
	KindShell           FeatureKind = "shell"
	KindThicken         FeatureKind = "thicken"
	KindMirror          FeatureKind = "mirror"
	KindDraft           FeatureKind = "draft"
	KindThread          FeatureKind = "thread"
	KindHole            FeatureKind = "hole"
	KindFillet          FeatureKind = "fillet"
	KindChamfer         FeatureKind = "chamfer"
	KindBoolean         FeatureKind = "boolean"
	KindPatternLinear   FeatureKind = "pattern.linear"
	KindPatternCircular FeatureKind = "pattern.circular"
)

// AllFeatureKinds enumerates the closed set in group order; used by
// kernel.Capabilities implementations (internal/kernelfake) that need to
// report "everything we could theoretically support."
var AllFeatureKinds = []FeatureKind{
	KindDatumPlane, KindDatumAxis, KindDatumFrame,
	KindSketch,
	KindExtrude, KindRevolve, KindLoft, KindSweep, KindPipe, KindPipeSweep,
	KindHexTubeSweep, KindPlane, KindSurface, KindShell, KindThicken,
	KindMirror, KindDraft, KindThread, KindHole, KindFillet, KindChamfer,
	KindBoolean, KindPatternLinear, KindPatternCircular,
}

// Stage is the closed set of feature stability tags the staged-feature
// policy gates on.
type Stage string

const (
	StageStable  Stage = "stable"
	StageBeta    Stage = "beta"
	StageStaging Stage = "staging"
)

// StagedPolicy is the closed set of runtime admission policies for
// beta/staging feature kinds.
type StagedPolicy string

const (
	PolicyAllow StagedPolicy = "allow"
	PolicyWarn  StagedPolicy = "warn"
	PolicyError StagedPolicy = "error"
)

// DefaultFeatureStage classifies every FeatureKind by stability. Newer,
// less-proven operations are staged: hex-tube-sweep is staging, and
// pipe-sweep, surface, thicken, draft and thread are beta; everything
// else ships stable. This table is the single source of
// truth consulted by validate's staged-feature gate and by
// kernel.Capabilities' FeatureStages advertisement.
var DefaultFeatureStage = map[FeatureKind]Stage{
	KindDatumPlane: StageStable, KindDatumAxis: StageStable, KindDatumFrame: StageStable,
	KindSketch: StageStable,
	KindExtrude: StageStable, KindRevolve: StageStable, KindLoft: StageStable,
	KindSweep: StageStable, KindPipe: StageStable,
	KindPipeSweep: StageBeta, KindHexTubeSweep: StageStaging,
	KindPlane: StageStable, KindSurface: StageBeta, KindShell: StageStable,
	KindThicken: StageBeta, KindMirror: StageStable, KindDraft: StageBeta,
	KindThread: StageBeta, KindHole: StageStable, KindFillet: StageStable,
	KindChamfer: StageStable, KindBoolean: StageStable,
	KindPatternLinear: StageStable, KindPatternCircular: StageStable,
}

// DatumRef points at either a literal principal axis or a previously
// defined datum feature (axis.datum / plane.datum in the spec's
// dependency-inference language). Exactly one of Axis/DatumID is
// meaningful, selected by FromDatum.
type DatumRef struct {
	FromDatum bool   `json:"fromDatum,omitempty"`
	Axis      Axis   `json:"axis,omitempty"`
	DatumID   string `json:"datumId,omitempty"`
}

// Dimension is a nominal Scalar with an optional tolerance band: either
// symmetric (Tolerance) or bilateral (Plus/Minus), or an explicit
// Min/Max envelope. validate.Feature rejects a symmetric tolerance
// mixed with Plus/Minus; it does not reject a Min/Max envelope given
// alongside either. Nominal is a value Scalar, so an omitted nominal
// reads as the number 0 and is not rejected.
type Dimension struct {
	Nominal   Scalar  `json:"nominal"`
	Tolerance *Scalar `json:"tolerance,omitempty"`
	Plus      *Scalar `json:"plus,omitempty"`
	Minus     *Scalar `json:"minus,omitempty"`
	Min       *Scalar `json:"min,omitempty"`
	Max       *Scalar `json:"max,omitempty"`
}

// Enumerated string fields across the operation group. Each is a closed
// set validated exhaustively by validate.Feature.
type (
	ExtrudeMode       string
	SweepOrientation  string
	ShellDirection    string
	ThreadHandedness  string
	BooleanOp         string
)

const (
	ExtrudeBlind      ExtrudeMode = "blind"
	ExtrudeSymmetric  ExtrudeMode = "symmetric"
	ExtrudeThroughAll ExtrudeMode = "throughAll"
	ExtrudeToFace     ExtrudeMode = "toFace"

	SweepFixed  SweepOrientation = "fixed"
	SweepFollow SweepOrientation = "follow"

	ShellInward  ShellDirection = "inward"
	ShellOutward ShellDirection = "outward"

	ThreadRight ThreadHandedness = "right"
	ThreadLeft  ThreadHandedness = "left"

	BooleanUnion     BooleanOp = "union"
	BooleanSubtract  BooleanOp = "subtract"
	BooleanIntersect BooleanOp = "intersect"
)

// Feature is one node in a part's construction history. Common fields
// (ID, Kind, Deps, Tags, Result) apply to every kind; exactly one of the
// kind-specific payload pointers below is populated, selected by Kind.
// This is the idiomatic-Go rendering of the spec's closed algebraic
// Feature type: a discriminant plus a family of payload structs, rather
// than one interface per kind, so validate/depgraph/evaluator can switch
// on Kind without a type assertion per case.
type Feature struct {
	ID     string       `json:"id"`
	Kind   FeatureKind  `json:"kind"`
	Deps   []string     `json:"deps,omitempty"`
	Tags   []string     `json:"tags,omitempty"`
	Result string       `json:"result,omitempty"`

	DatumPlane *DatumPlaneParams `json:"datumPlane,omitempty"`
	DatumAxis  *DatumAxisParams  `json:"datumAxis,omitempty"`
	DatumFrame *DatumFrameParams `json:"datumFrame,omitempty"`

	Sketch *SketchParams `json:"sketch,omitempty"`

	Extrude         *ExtrudeParams         `json:"extrude,omitempty"`
	Revolve         *RevolveParams         `json:"revolve,omitempty"`
	Loft            *LoftParams            `json:"loft,omitempty"`
	Sweep           *SweepParams           `json:"sweep,omitempty"`
	Pipe            *PipeParams            `json:"pipe,omitempty"`
	PipeSweep       *PipeSweepParams       `json:"pipeSweep,omitempty"`
	HexTubeSweep    *HexTubeSweepParams    `json:"hexTubeSweep,omitempty"`
	Plane           *PlaneOpParams         `json:"plane,omitempty"`
	Surface         *SurfaceParams         `json:"surface,omitempty"`
	Shell           *ShellParams           `json:"shell,omitempty"`
	Thicken         *ThickenParams         `json:"thicken,omitempty"`
	Mirror          *MirrorParams          `json:"mirror,omitempty"`
	Draft           *DraftParams           `json:"draft,omitempty"`
	Thread          *ThreadParams          `json:"thread,omitempty"`
	Hole            *HoleParams            `json:"hole,omitempty"`
	Fillet          *FilletParams          `json:"fillet,omitempty"`
	Chamfer         *ChamferParams         `json:"chamfer,omitempty"`
	Boolean         *BooleanParams         `json:"boolean,omitempty"`
	PatternLinear   *PatternLinearParams   `json:"patternLinear,omitempty"`
	PatternCircular *PatternCircularParams `json:"patternCircular,omitempty"`
}

type DatumPlaneParams struct {
	Normal DatumRef `json:"normal"`
	Offset Scalar   `json:"offset"`
}

type DatumAxisParams struct {
	Direction DatumRef `json:"direction"`
}

type DatumFrameParams struct {
	Face Selector `json:"face"`
}

type SketchParams struct {
	PlaneRef DatumRef       `json:"planeRef"`
	Entities []SketchEntity `json:"entities"`
	Profiles []NamedProfile `json:"profiles,omitempty"`
}

type ExtrudeParams struct {
	Profile   Profile     `json:"profile"`
	Depth     Scalar      `json:"depth"`
	Mode      ExtrudeMode `json:"mode"`
	Direction DatumRef    `json:"direction,omitempty"`
}

type RevolveParams struct {
	Profile Profile  `json:"profile"`
	Axis    DatumRef `json:"axis"`
	Angle   Scalar   `json:"angle"`
}

type LoftParams struct {
	Profiles []Profile `json:"profiles"`
	Ruled    bool      `json:"ruled,omitempty"`
}

type SweepParams struct {
	Profile     Profile          `json:"profile"`
	Path        Selector         `json:"path"`
	Orientation SweepOrientation `json:"orientation"`
}

type PipeParams struct {
	Path     Selector `json:"path"`
	Diameter Scalar   `json:"diameter"`
}

type PipeSweepParams struct {
	Profile  Profile  `json:"profile"`
	Path     Selector `json:"path"`
	Diameter Scalar   `json:"diameter"`
}

type HexTubeSweepParams struct {
	Path          Selector `json:"path"`
	AcrossFlats   Scalar   `json:"acrossFlats"`
	WallThickness Scalar   `json:"wallThickness"`
}

type PlaneOpParams struct {
	Ref    DatumRef `json:"ref"`
	Offset Scalar   `json:"offset"`
}

type SurfaceParams struct {
	Profile Profile `json:"profile"`
}

type ShellParams struct {
	Faces     Selector       `json:"faces"`
	Thickness Scalar         `json:"thickness"`
	Direction ShellDirection `json:"direction"`
}

type ThickenParams struct {
	Faces     Selector       `json:"faces"`
	Thickness Scalar         `json:"thickness"`
	Direction ShellDirection `json:"direction"`
}

type MirrorParams struct {
	Targets Selector `json:"targets"`
	Plane   DatumRef `json:"plane"`
}

type DraftParams struct {
	Faces        Selector `json:"faces"`
	NeutralPlane DatumRef `json:"neutralPlane"`
	Angle        Scalar   `json:"angle"`
}

type ThreadParams struct {
	Face       Selector         `json:"face"`
	Pitch      Scalar           `json:"pitch"`
	Handedness ThreadHandedness `json:"handedness"`
	Cosmetic   bool             `json:"cosmetic,omitempty"`
}

type HoleParams struct {
	Position   Selector   `json:"position"`
	Axis       DatumRef   `json:"axis"`
	Diameter   Dimension  `json:"diameter"`
	Depth      Scalar     `json:"depth"`
	PatternRef string     `json:"patternRef,omitempty"`
}

type FilletParams struct {
	Edges  Selector `json:"edges"`
	Radius Scalar   `json:"radius"`
}

type ChamferParams struct {
	Edges    Selector `json:"edges"`
	Distance Scalar   `json:"distance"`
}

type BooleanParams struct {
	Op      BooleanOp `json:"op"`
	Targets Selector  `json:"targets"`
	Tools   Selector  `json:"tools"`
}

type PatternLinearParams struct {
	Target    Selector `json:"target"`
	Direction DatumRef `json:"direction"`
	Count     Scalar   `json:"count"`
	Spacing   Scalar   `json:"spacing"`
}

type PatternCircularParams struct {
	Target Selector `json:"target"`
	Axis   DatumRef `json:"axis"`
	Count  Scalar   `json:"count"`
	Angle  Scalar   `json:"angle"`
}

// Selectors returns every Selector embedded directly in f's payload, in
// a stable, kind-dependent order. depgraph uses this to infer implicit
// selector dependencies; validate uses it to check anchoring.
func (f *Feature) Selectors() []*Selector {
	var out []*Selector
	add := func(s *Selector) {
		if s != nil && s.Kind != "" {
			out = append(out, s)
		}
	}
	switch f.Kind {
	case KindDatumFrame:
		if f.DatumFrame != nil {
			add(&f.DatumFrame.Face)
		}
	case KindSweep:
		if f.Sweep != nil {
			add(&f.Sweep.Path)
		}
	case KindPipe:
		if f.Pipe != nil {
			add(&f.Pipe.Path)
		}
	case KindPipeSweep:
		if f.PipeSweep != nil {
			add(&f.PipeSweep.Path)
		}
	case KindHexTubeSweep:
		if f.HexTubeSweep != nil {
			add(&f.HexTubeSweep.Path)
		}
	case KindShell:
		if f.Shell != nil {
			add(&f.Shell.Faces)
		}
	case KindThicken:
		if f.Thicken != nil {
			add(&f.Thicken.Faces)
		}
	case KindMirror:
		if f.Mirror != nil {
			add(&f.Mirror.Targets)
		}
	case KindDraft:
		if f.Draft != nil {
			add(&f.Draft.Faces)
		}
	case KindThread:
		if f.Thread != nil {
			add(&f.Thread.Face)
		}
	case KindHole:
		if f.Hole != nil {
			add(&f.Hole.Position)
		}
	case KindFillet:
		if f.Fillet != nil {
			add(&f.Fillet.Edges)
		}
	case KindChamfer:
		if f.Chamfer != nil {
			add(&f.Chamfer.Edges)
		}
	case KindBoolean:
		if f.Boolean != nil {
			add(&f.Boolean.Targets)
			add(&f.Boolean.Tools)
		}
	case KindPatternLinear:
		if f.PatternLinear != nil {
			add(&f.PatternLinear.Target)
		}
	case KindPatternCircular:
		if f.PatternCircular != nil {
			add(&f.PatternCircular.Target)
		}
	}
	return out
}

// DatumRefs returns every DatumRef embedded directly in f's payload.
// depgraph uses this to infer implicit datum dependencies (rule 4).
func (f *Feature) DatumRefs() []DatumRef {
	var out []DatumRef
	switch f.Kind {
	case KindDatumPlane:
		if f.DatumPlane != nil {
			out = append(out, f.DatumPlane.Normal)
		}
	case KindDatumAxis:
		if f.DatumAxis != nil {
			out = append(out, f.DatumAxis.Direction)
		}
	case KindSketch:
		if f.Sketch != nil {
			out = append(out, f.Sketch.PlaneRef)
		}
	case KindExtrude:
		if f.Extrude != nil {
			out = append(out, f.Extrude.Direction)
		}
	case KindRevolve:
		if f.Revolve != nil {
			out = append(out, f.Revolve.Axis)
		}
	case KindPlane:
		if f.Plane != nil {
			out = append(out, f.Plane.Ref)
		}
	case KindMirror:
		if f.Mirror != nil {
			out = append(out, f.Mirror.Plane)
		}
	case KindDraft:
		if f.Draft != nil {
			out = append(out, f.Draft.NeutralPlane)
		}
	case KindHole:
		if f.Hole != nil {
			out = append(out, f.Hole.Axis)
		}
	case KindPatternLinear:
		if f.PatternLinear != nil {
			out = append(out, f.PatternLinear.Direction)
		}
	case KindPatternCircular:
		if f.PatternCircular != nil {
			out = append(out, f.PatternCircular.Axis)
		}
	}
	return out
}

// ProfileRefs returns every profileRef name this feature depends on,
// i.e. every Profile embedded in f's payload whose Kind is ProfileRef.
func (f *Feature) ProfileRefs() []string {
	var out []string
	collect := func(p Profile) {
		if p.Kind == ProfileRef && p.RefName != "" {
			out = append(out, p.RefName)
		}
	}
	switch f.Kind {
	case KindExtrude:
		if f.Extrude != nil {
			collect(f.Extrude.Profile)
		}
	case KindRevolve:
		if f.Revolve != nil {
			collect(f.Revolve.Profile)
		}
	case KindLoft:
		if f.Loft != nil {
			for _, p := range f.Loft.Profiles {
				collect(p)
			}
		}
	case KindSweep:
		if f.Sweep != nil {
			collect(f.Sweep.Profile)
		}
	case KindPipeSweep:
		if f.PipeSweep != nil {
			collect(f.PipeSweep.Profile)
		}
	case KindSurface:
		if f.Surface != nil {
			collect(f.Surface.Profile)
		}
	}
	return out
}

// PatternRef returns the pattern feature id a hole's PatternRef names,
// if any.
func (f *Feature) PatternRef() (string, bool) {
	if f.Kind == KindHole && f.Hole != nil && f.Hole.PatternRef != "" {
		return f.Hole.PatternRef, true
	}
	return "", false
}
