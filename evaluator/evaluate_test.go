package evaluator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/evaluator"
	"github.com/trueform/compiler/internal/kernelfake"
	"github.com/trueform/compiler/ir"
)

type EvaluateSuite struct {
	suite.Suite
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

func numLit(v float64) ir.Scalar { return ir.Num(v) }

// plateWithHole builds a plate extrusion with a hole drilled through a
// face selected by createdBy+normal+planar+rank(maxArea), exercising
// the selector-stability seed scenario.
func (s *EvaluateSuite) plateWithHole() *ir.Part {
	return &ir.Part{
		ID: "plate",
		Features: []ir.Feature{
			{
				ID: "ex1", Kind: ir.KindExtrude, Result: "plate",
				Extrude: &ir.ExtrudeParams{
					Profile: ir.Profile{Kind: ir.ProfileRectangle, Width: numLit(40), Height: numLit(20)},
					Depth:   numLit(5),
					Mode:    ir.ExtrudeBlind,
				},
			},
			{
				ID: "h1", Kind: ir.KindHole,
				Hole: &ir.HoleParams{
					Position: ir.Selector{
						Kind: ir.SelectorFace,
						Predicates: []ir.Predicate{
							{Kind: ir.PredCreatedBy, FeatureID: "ex1"},
							{Kind: ir.PredNormal, Axis: ir.AxisPlusZ},
							{Kind: ir.PredPlanar},
						},
						Rank: []ir.Rank{{Kind: ir.RankMaxArea}},
					},
					Diameter: ir.Dimension{Nominal: numLit(6)},
					Depth:    numLit(5),
				},
			},
		},
	}
}

func (s *EvaluateSuite) TestPlateWithHoleBuildsAndSelectsTopFace() {
	res, err := evaluator.Evaluate(context.Background(), s.plateWithHole(), ir.LengthMM, nil, kernelfake.New())
	require.NoError(s.T(), err)
	require.Contains(s.T(), res.Objects, "ex1")
	require.Contains(s.T(), res.Objects, "h1")
	require.Contains(s.T(), res.Outputs, "plate")
	require.Equal(s.T(), []string{"ex1", "h1"}, res.Order)

	// Scenario 1 (spec.md §8): the hole re-emits the plate's entire
	// surviving face set under the same OwnerKey, so every accumulated
	// selection is now attributed to h1, and ex1's original faces are
	// gone rather than sitting alongside the new ones.
	require.NotEmpty(s.T(), res.AllSelections)
	for _, sel := range res.AllSelections {
		require.Equal(s.T(), "h1", sel.CreatedBy)
		require.Equal(s.T(), "ex1", sel.OwnerKey)
	}
	require.Equal(s.T(), res.AllSelections, res.Outputs["plate"])
}

func (s *EvaluateSuite) TestEvaluationIsDeterministicAcrossRuns() {
	part := s.plateWithHole()
	r1, err := evaluator.Evaluate(context.Background(), part, ir.LengthMM, nil, kernelfake.New())
	require.NoError(s.T(), err)
	r2, err := evaluator.Evaluate(context.Background(), part, ir.LengthMM, nil, kernelfake.New())
	require.NoError(s.T(), err)
	require.Equal(s.T(), r1.AllSelections, r2.AllSelections)
}

func (s *EvaluateSuite) TestUnanchoredSelectorFailsEmptyAtEvalTime() {
	part := &ir.Part{Features: []ir.Feature{
		{ID: "fl1", Kind: ir.KindFillet, Fillet: &ir.FilletParams{
			Edges:  ir.Selector{Kind: ir.SelectorEdge},
			Radius: numLit(1),
		}},
	}}
	_, err := evaluator.Evaluate(context.Background(), part, ir.LengthMM, nil, kernelfake.New())
	require.True(s.T(), ir.AsCode(err, ir.CodeSelectorEmpty))
}

func (s *EvaluateSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := evaluator.Evaluate(ctx, s.plateWithHole(), ir.LengthMM, nil, kernelfake.New())
	require.True(s.T(), ir.AsCode(err, ir.CodeJobCanceled))
}
