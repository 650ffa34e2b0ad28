package build

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trueform/compiler/cache"
	"github.com/trueform/compiler/evaluator"
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/validate"
)

// BuildPart is the core's single synchronous entry point: given a
// document, a part id, and parameter overrides, it validates the
// document and the named part, evaluates the part's feature schedule
// against opts.Adapter, and returns the result. When opts.Cache is set,
// an identical (part, docUnits, overrides, backend) tuple reuses a
// prior result bit-for-bit rather than re-evaluating.
func BuildPart(ctx context.Context, doc *ir.Document, partID string, overrides ir.Overrides, opts Options) (*evaluator.Result, error) {
	log := opts.logger()
	start := time.Now()

	if err := validate.Document(doc); err != nil {
		return nil, err
	}
	part, ok := doc.PartByID(partID)
	if !ok {
		return nil, ir.NewError(ir.CodeMissingFeature, "part not found", "referenceKind", "part", "referenceId", partID)
	}
	policy := opts.Policy
	if policy == "" {
		policy = ir.PolicyWarn
	}
	if err := validate.Part(part, policy); err != nil {
		return nil, err
	}

	if opts.Cache == nil {
		res, err := evaluator.Evaluate(ctx, part, doc.Context.Units, overrides, opts.Adapter)
		opts.Metrics.ObserveBuildDuration("full", time.Since(start).Seconds())
		return res, err
	}

	key, err := cache.PartBuildKey(part, doc.Context.Units, overrides, opts.Adapter.Capabilities())
	if err != nil {
		return nil, err
	}
	v, hit := opts.Cache.Get(key)
	opts.Metrics.ObserveCache("part_build", hit)
	if hit {
		return v.(*evaluator.Result), nil
	}

	v, err = opts.Cache.GetOrCompute(key, func() (any, error) {
		return evaluator.Evaluate(ctx, part, doc.Context.Units, overrides, opts.Adapter)
	})
	opts.Metrics.ObserveBuildDuration("full", time.Since(start).Seconds())
	if err != nil {
		log.Error("part build failed", err, zap.String("partId", partID))
		return nil, err
	}
	return v.(*evaluator.Result), nil
}
