package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/depgraph"
	"github.com/trueform/compiler/ir"
)

type BuildSuite struct {
	suite.Suite
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func plainFeature(id string, kind ir.FeatureKind, deps ...string) ir.Feature {
	return ir.Feature{ID: id, Kind: kind, Deps: deps}
}

func (s *BuildSuite) TestExplicitDeps() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("f1", ir.KindDatumPlane),
		plainFeature("f2", ir.KindDatumPlane, "f1"),
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []depgraph.Edge{{From: "f1", To: "f2"}}, g.Edges())
}

func (s *BuildSuite) TestProfileRefEdge() {
	p := &ir.Part{Features: []ir.Feature{
		{
			ID: "sk1", Kind: ir.KindSketch,
			Sketch: &ir.SketchParams{
				Profiles: []ir.NamedProfile{{Name: "outer", Profile: ir.Profile{Kind: ir.ProfileSketch}}},
			},
		},
		{
			ID: "ex1", Kind: ir.KindExtrude,
			Extrude: &ir.ExtrudeParams{Profile: ir.Profile{Kind: ir.ProfileRef, RefName: "outer"}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "sk1", To: "ex1"})
}

func (s *BuildSuite) TestProfileRefUnknownFails() {
	p := &ir.Part{Features: []ir.Feature{
		{ID: "ex1", Kind: ir.KindExtrude, Extrude: &ir.ExtrudeParams{Profile: ir.Profile{Kind: ir.ProfileRef, RefName: "ghost"}}},
	}}
	_, err := depgraph.Build(p)
	require.True(s.T(), ir.AsCode(err, ir.CodeProfileMissing))
}

func (s *BuildSuite) TestHolePatternRefEdge() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("pat1", ir.KindPatternLinear),
		{ID: "h1", Kind: ir.KindHole, Hole: &ir.HoleParams{PatternRef: "pat1"}},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "pat1", To: "h1"})
}

func (s *BuildSuite) TestDatumRefEdge() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("pl1", ir.KindDatumPlane),
		{
			ID: "sk1", Kind: ir.KindSketch,
			Sketch: &ir.SketchParams{PlaneRef: ir.DatumRef{FromDatum: true, DatumID: "pl1"}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "pl1", To: "sk1"})
}

func (s *BuildSuite) TestSelectorCreatedByEdge() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("ex1", ir.KindExtrude),
		{
			ID: "fl1", Kind: ir.KindFillet,
			Fillet: &ir.FilletParams{Edges: ir.Selector{
				Kind:       ir.SelectorEdge,
				Predicates: []ir.Predicate{{Kind: ir.PredCreatedBy, FeatureID: "ex1"}},
			}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "ex1", To: "fl1"})
}

func (s *BuildSuite) TestSelectorClosestToNestedEdge() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("ex1", ir.KindExtrude),
		{
			ID: "fl1", Kind: ir.KindFillet,
			Fillet: &ir.FilletParams{Edges: ir.Selector{
				Kind: ir.SelectorEdge,
				Rank: []ir.Rank{{Kind: ir.RankClosestTo, ClosestTo: &ir.Selector{
					Kind:       ir.SelectorFace,
					Predicates: []ir.Predicate{{Kind: ir.PredCreatedBy, FeatureID: "ex1"}},
				}}},
			}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "ex1", To: "fl1"})
}

func (s *BuildSuite) TestSelectorNamedEdge() {
	p := &ir.Part{Features: []ir.Feature{
		{ID: "ex1", Kind: ir.KindExtrude, Result: "body"},
		{
			ID: "fl1", Kind: ir.KindFillet,
			Fillet: &ir.FilletParams{Edges: ir.Selector{Kind: ir.SelectorNamed, Name: "body"}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "ex1", To: "fl1"})
}

func (s *BuildSuite) TestSelectorNamedMultiRefEdgesBothCandidates() {
	p := &ir.Part{Features: []ir.Feature{
		{ID: "ex1", Kind: ir.KindExtrude, Result: "a"},
		{ID: "ex2", Kind: ir.KindExtrude, Result: "b"},
		{
			ID: "fl1", Kind: ir.KindFillet,
			Fillet: &ir.FilletParams{Edges: ir.Selector{Kind: ir.SelectorNamed, Name: "a, b"}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "ex1", To: "fl1"})
	require.Contains(s.T(), g.Edges(), depgraph.Edge{From: "ex2", To: "fl1"})
}

func (s *BuildSuite) TestSelectorNamedSentinelSkipsEdge() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("ex1", ir.KindExtrude),
		{
			ID: "fl1", Kind: ir.KindFillet,
			Fillet: &ir.FilletParams{Edges: ir.Selector{Kind: ir.SelectorNamed, Name: "face:top"}},
		},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Empty(s.T(), g.Edges())
}

func (s *BuildSuite) TestDuplicateProfileNameFails() {
	p := &ir.Part{Features: []ir.Feature{
		{ID: "sk1", Kind: ir.KindSketch, Sketch: &ir.SketchParams{
			Profiles: []ir.NamedProfile{{Name: "outer", Profile: ir.Profile{Kind: ir.ProfileSketch}}},
		}},
		{ID: "sk2", Kind: ir.KindSketch, Sketch: &ir.SketchParams{
			Profiles: []ir.NamedProfile{{Name: "outer", Profile: ir.Profile{Kind: ir.ProfileSketch}}},
		}},
	}}
	_, err := depgraph.Build(p)
	require.True(s.T(), ir.AsCode(err, ir.CodeProfileDuplicate))
}

func (s *BuildSuite) TestEveryFeatureBecomesANode() {
	p := &ir.Part{Features: []ir.Feature{
		plainFeature("isolated", ir.KindDatumPlane),
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"isolated"}, g.Nodes())
}
