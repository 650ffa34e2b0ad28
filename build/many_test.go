package build_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/build"
	"github.com/trueform/compiler/internal/kernelfake"
	"github.com/trueform/compiler/ir"
)

type BuildManySuite struct {
	suite.Suite
}

func TestBuildManySuite(t *testing.T) {
	suite.Run(t, new(BuildManySuite))
}

func (s *BuildManySuite) doc() *ir.Document {
	mk := func(id string, depth float64) ir.Part {
		return ir.Part{ID: id, Features: []ir.Feature{{
			ID: "ex1", Kind: ir.KindExtrude, Result: id,
			Extrude: &ir.ExtrudeParams{
				Profile: ir.Profile{Kind: ir.ProfileRectangle, Width: ir.Num(10), Height: ir.Num(10)},
				Depth:   ir.Num(depth),
				Mode:    ir.ExtrudeBlind,
			},
		}}}
	}
	return &ir.Document{
		ID:        "doc1",
		Schema:    ir.SchemaTag,
		IRVersion: ir.IRVersionLatest,
		Context: ir.Context{
			Units:  ir.LengthMM,
			Kernel: ir.KernelInfo{Name: "kernelfake", Version: "1.0.0"},
		},
		Parts: []ir.Part{mk("a", 1), mk("b", 2), mk("c", 3)},
	}
}

func (s *BuildManySuite) TestBuildManyBuildsEveryPart() {
	results, err := build.BuildMany(context.Background(), s.doc(), []string{"a", "b", "c"}, nil, build.Options{Adapter: kernelfake.New()})
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 3)
	for _, r := range results {
		require.NoError(s.T(), r.Err)
		require.Contains(s.T(), r.Result.Objects, "ex1")
	}
}

func (s *BuildManySuite) TestBuildManyReportsPerPartFailure() {
	results, err := build.BuildMany(context.Background(), s.doc(), []string{"a", "ghost"}, nil, build.Options{Adapter: kernelfake.New()})
	require.NoError(s.T(), err)
	require.NoError(s.T(), results[0].Err)
	require.True(s.T(), ir.AsCode(results[1].Err, ir.CodeMissingFeature))
}
