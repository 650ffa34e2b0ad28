package build

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/trueform/compiler/evaluator"
	"github.com/trueform/compiler/ir"
)

// ManyResult is one part's outcome within a BuildMany call.
type ManyResult struct {
	PartID string
	Result *evaluator.Result
	Err    error
}

// BuildMany runs BuildPart for every id in partIDs concurrently — a
// process builds many parts in parallel, each owning its own
// evaluator.Result accumulator, since a part's feature schedule itself
// is evaluated strictly sequentially. overrides, if non-nil, is shared
// read-only across all parts; it is never mutated by BuildPart. A
// per-part failure is captured in its ManyResult rather than aborting
// the other in-flight builds; BuildMany itself only returns an error
// for something outside any one part (a canceled ctx).
func BuildMany(ctx context.Context, doc *ir.Document, partIDs []string, overrides ir.Overrides, opts Options) ([]ManyResult, error) {
	results := make([]ManyResult, len(partIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range partIDs {
		i, id := i, id
		g.Go(func() error {
			res, err := BuildPart(gctx, doc, id, overrides, opts)
			results[i] = ManyResult{PartID: id, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ir.NewError(ir.CodeJobCanceled, "build canceled")
	}
	return results, nil
}
