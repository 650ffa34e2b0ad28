package kernelfake_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/internal/kernelfake"
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
)

type AdapterSuite struct {
	suite.Suite
	a *kernelfake.Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func (s *AdapterSuite) SetupTest() {
	s.a = kernelfake.New()
}

func (s *AdapterSuite) TestExtrudeProducesThreeFaces() {
	req := kernel.ExecuteRequest{
		Feature:        &ir.Feature{ID: "ex1", Kind: ir.KindExtrude},
		ResolvedParams: map[string]float64{"depth": 20, "area": 50},
	}
	res, err := s.a.Execute(context.Background(), req)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), res.Object)
	require.Len(s.T(), res.Selections, 3)
}

func (s *AdapterSuite) TestDatumProducesNoGeometry() {
	req := kernel.ExecuteRequest{Feature: &ir.Feature{ID: "pl1", Kind: ir.KindDatumPlane}}
	res, err := s.a.Execute(context.Background(), req)
	require.NoError(s.T(), err)
	require.Nil(s.T(), res.Object)
	require.Empty(s.T(), res.Selections)
}

func (s *AdapterSuite) TestUnsupportedKindRejected() {
	req := kernel.ExecuteRequest{Feature: &ir.Feature{ID: "x", Kind: ir.FeatureKind("bogus")}}
	_, err := s.a.Execute(context.Background(), req)
	require.True(s.T(), ir.AsCode(err, ir.CodeBackendUnsupportedFeature))
}

func (s *AdapterSuite) TestPatternReplicatesPerCount() {
	parent := kernel.ExecuteRequest{
		Feature:        &ir.Feature{ID: "ex1", Kind: ir.KindExtrude},
		ResolvedParams: map[string]float64{"depth": 10, "area": 20},
	}
	parentRes, err := s.a.Execute(context.Background(), parent)
	require.NoError(s.T(), err)

	patReq := kernel.ExecuteRequest{
		Feature:        &ir.Feature{ID: "pat1", Kind: ir.KindPatternLinear, Deps: []string{"ex1"}},
		ResolvedParams: map[string]float64{"count": 3},
		Selections:     map[string][]kernel.KernelSelection{"ex1": parentRes.Selections},
	}
	res, err := s.a.Execute(context.Background(), patReq)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Selections, 9)
}

func (s *AdapterSuite) TestValidityAndAssertionCapabilities() {
	var _ kernel.ValidityChecker = s.a
	var _ kernel.AssertionEvaluator = s.a
	ok, err := s.a.EvaluateAssertion(context.Background(), ir.Assertion{ID: "a1", Kind: "volume"}, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}
