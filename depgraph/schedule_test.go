package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/depgraph"
	"github.com/trueform/compiler/ir"
)

type ScheduleSuite struct {
	suite.Suite
}

func TestScheduleSuite(t *testing.T) {
	suite.Run(t, new(ScheduleSuite))
}

// buildGraph is a tiny helper to hand-construct a Graph directly,
// bypassing Build, for schedule-only invariants.
func buildGraph(nodes []string, edges [][2]string) *depgraph.Graph {
	g := depgraph.New()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func (s *ScheduleSuite) TestTopoSoundness() {
	g := buildGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	order, err := depgraph.Schedule(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"a", "b", "c"}, order)
}

// TestTopoStability confirms the schedule depends only on the
// node/edge set, not on insertion order: two graphs built with the
// same edges added in a different sequence must schedule identically.
func (s *ScheduleSuite) TestTopoStability() {
	g1 := buildGraph([]string{"root", "b", "c", "d"}, [][2]string{
		{"root", "b"}, {"root", "c"}, {"root", "d"},
	})
	g2 := buildGraph([]string{"d", "c", "b", "root"}, [][2]string{
		{"root", "d"}, {"root", "c"}, {"root", "b"},
	})
	o1, err := depgraph.Schedule(g1)
	require.NoError(s.T(), err)
	o2, err := depgraph.Schedule(g2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), o1, o2)
	require.Equal(s.T(), []string{"root", "b", "c", "d"}, o1)
}

func (s *ScheduleSuite) TestCycleDetection() {
	// Two datum planes each naming the other as their normal direction.
	p := &ir.Part{Features: []ir.Feature{
		{ID: "pl1", Kind: ir.KindDatumPlane, DatumPlane: &ir.DatumPlaneParams{
			Normal: ir.DatumRef{FromDatum: true, DatumID: "pl2"},
		}},
		{ID: "pl2", Kind: ir.KindDatumPlane, DatumPlane: &ir.DatumPlaneParams{
			Normal: ir.DatumRef{FromDatum: true, DatumID: "pl1"},
		}},
	}}
	g, err := depgraph.Build(p)
	require.NoError(s.T(), err)
	_, err = depgraph.Schedule(g)
	require.Error(s.T(), err)
	require.True(s.T(), ir.AsCode(err, ir.CodeCycle))
}

func (s *ScheduleSuite) TestEmptyGraph() {
	g := depgraph.New()
	order, err := depgraph.Schedule(g)
	require.NoError(s.T(), err)
	require.Empty(s.T(), order)
}
