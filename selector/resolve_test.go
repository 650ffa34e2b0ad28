package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
	"github.com/trueform/compiler/selector"
)

type ResolveSuite struct {
	suite.Suite
}

func TestResolveSuite(t *testing.T) {
	suite.Run(t, new(ResolveSuite))
}

func (s *ResolveSuite) ctx() selector.ResolutionContext {
	return selector.ResolutionContext{
		All: []kernel.KernelSelection{
			{ID: "f1", Kind: ir.SelectorFace, OwnerKey: "ex1", CreatedBy: "ex1", Normal: ir.AxisPlusZ, Planar: true, Area: 10, Z: 5},
			{ID: "f2", Kind: ir.SelectorFace, OwnerKey: "ex1", CreatedBy: "ex1", Normal: ir.AxisPlusZ, Planar: true, Area: 25, Z: 0},
			{ID: "f3", Kind: ir.SelectorFace, OwnerKey: "ex2", CreatedBy: "ex2", Normal: ir.AxisMinusZ, Planar: true, Area: 40, Z: 9},
		},
	}
}

func (s *ResolveSuite) TestCreatedByFiltersToOwner() {
	sel := &ir.Selector{Kind: ir.SelectorFace, Predicates: []ir.Predicate{{Kind: ir.PredCreatedBy, FeatureID: "ex1"}}}
	out, err := selector.Resolve(sel, s.ctx())
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 2)
}

func (s *ResolveSuite) TestMaxAreaRankSortsDescending() {
	sel := &ir.Selector{Kind: ir.SelectorFace, Rank: []ir.Rank{{Kind: ir.RankMaxArea}}}
	out, err := selector.Resolve(sel, s.ctx())
	require.NoError(s.T(), err)
	require.Equal(s.T(), "f3", out[0].ID)
}

func (s *ResolveSuite) TestEmptyPoolFails() {
	sel := &ir.Selector{Kind: ir.SelectorEdge}
	_, err := selector.Resolve(sel, s.ctx())
	require.True(s.T(), ir.AsCode(err, ir.CodeSelectorEmpty))
}

func (s *ResolveSuite) TestNamedUnknownFails() {
	sel := &ir.Selector{Kind: ir.SelectorNamed, Name: "ghost"}
	_, err := selector.Resolve(sel, selector.ResolutionContext{})
	require.True(s.T(), ir.AsCode(err, ir.CodeSelectorNamedMissing))
}

// TestNamedMultiRefResolvesFirstMatch exercises spec.md's documented
// comma-separated multi-ref syntax: "a,b" resolves to whichever of a/b
// is found first, not their union.
func (s *ResolveSuite) TestNamedMultiRefResolvesFirstMatch() {
	ctx := selector.ResolutionContext{ByName: map[string][]kernel.KernelSelection{
		"b": {{ID: "f3", Kind: ir.SelectorFace}},
	}}
	sel := &ir.Selector{Kind: ir.SelectorNamed, Name: "a, b"}
	out, err := selector.Resolve(sel, ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 1)
	require.Equal(s.T(), "f3", out[0].ID)
}

func (s *ResolveSuite) TestNamedMultiRefAllUnknownFails() {
	sel := &ir.Selector{Kind: ir.SelectorNamed, Name: "a,b"}
	_, err := selector.Resolve(sel, selector.ResolutionContext{})
	require.True(s.T(), ir.AsCode(err, ir.CodeSelectorNamedMissing))
}

func (s *ResolveSuite) TestDeterministicOrderForTies() {
	ctx := s.ctx()
	out1, err := selector.Resolve(&ir.Selector{Kind: ir.SelectorFace}, ctx)
	require.NoError(s.T(), err)
	out2, err := selector.Resolve(&ir.Selector{Kind: ir.SelectorFace}, ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), out1, out2)
}
