package build

import (
	"context"

	"github.com/trueform/compiler/cache"
	"github.com/trueform/compiler/kernel"
)

// Mesh tessellates obj under opts, reusing a cached mesh for an
// identical (object, options) pair when opts.Cache is set.
func Mesh(ctx context.Context, obj kernel.KernelObject, meshOpts kernel.MeshOptions, opts Options) (*kernel.MeshData, error) {
	if opts.Cache == nil {
		return opts.Adapter.Mesh(ctx, obj, meshOpts)
	}
	key, err := cache.MeshKey(obj, meshOpts)
	if err != nil {
		return nil, err
	}
	_, hit := opts.Cache.Get(key)
	opts.Metrics.ObserveCache("mesh", hit)
	v, err := opts.Cache.GetOrCompute(key, func() (any, error) {
		return opts.Adapter.Mesh(ctx, obj, meshOpts)
	})
	if err != nil {
		return nil, err
	}
	return v.(*kernel.MeshData), nil
}

// ExportStep exports objs under stepOpts, reusing a cached export for
// an identical (objects, options) pair when opts.Cache is set.
func ExportStep(ctx context.Context, objs []kernel.KernelObject, stepOpts kernel.StepExportOptions, opts Options) ([]byte, error) {
	if opts.Cache == nil {
		return opts.Adapter.ExportStep(ctx, objs, stepOpts)
	}
	key, err := cache.ExportStepKey(objs, stepOpts)
	if err != nil {
		return nil, err
	}
	_, hit := opts.Cache.Get(key)
	opts.Metrics.ObserveCache("export_step", hit)
	v, err := opts.Cache.GetOrCompute(key, func() (any, error) {
		return opts.Adapter.ExportStep(ctx, objs, stepOpts)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// ExportStl exports objs under stlOpts, reusing a cached export for an
// identical (objects, options) pair when opts.Cache is set.
func ExportStl(ctx context.Context, objs []kernel.KernelObject, stlOpts kernel.StlExportOptions, opts Options) ([]byte, error) {
	if opts.Cache == nil {
		return opts.Adapter.ExportStl(ctx, objs, stlOpts)
	}
	key, err := cache.ExportStlKey(objs, stlOpts)
	if err != nil {
		return nil, err
	}
	_, hit := opts.Cache.Get(key)
	opts.Metrics.ObserveCache("export_stl", hit)
	v, err := opts.Cache.GetOrCompute(key, func() (any, error) {
		return opts.Adapter.ExportStl(ctx, objs, stlOpts)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
