package build_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/build"
	"github.com/trueform/compiler/cache"
	"github.com/trueform/compiler/internal/kernelfake"
	"github.com/trueform/compiler/kernel"
)

type MeshExportSuite struct {
	suite.Suite
}

func TestMeshExportSuite(t *testing.T) {
	suite.Run(t, new(MeshExportSuite))
}

func (s *MeshExportSuite) TestMeshReusesCache() {
	opts := build.Options{Adapter: kernelfake.New(), Cache: cache.NewStore(8)}
	obj := kernel.KernelObject{ID: "ex1", Kind: "solid"}
	m1, err := build.Mesh(context.Background(), obj, kernel.MeshOptions{}, opts)
	require.NoError(s.T(), err)
	m2, err := build.Mesh(context.Background(), obj, kernel.MeshOptions{}, opts)
	require.NoError(s.T(), err)
	require.Same(s.T(), m1, m2)
}

func (s *MeshExportSuite) TestExportStepReusesCache() {
	opts := build.Options{Adapter: kernelfake.New(), Cache: cache.NewStore(8)}
	objs := []kernel.KernelObject{{ID: "ex1", Kind: "solid"}}
	b1, err := build.ExportStep(context.Background(), objs, kernel.StepExportOptions{SchemaVersion: "AP214"}, opts)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), b1)
	b2, err := build.ExportStep(context.Background(), objs, kernel.StepExportOptions{SchemaVersion: "AP214"}, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), b1, b2)
}

func (s *MeshExportSuite) TestExportStlWithoutCache() {
	opts := build.Options{Adapter: kernelfake.New()}
	objs := []kernel.KernelObject{{ID: "ex1", Kind: "solid"}}
	b, err := build.ExportStl(context.Background(), objs, kernel.StlExportOptions{}, opts)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), b)
}
