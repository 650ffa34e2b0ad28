package build

import (
	"github.com/trueform/compiler/cache"
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
	"github.com/trueform/compiler/obslog"
)

// Options bundles everything a build call needs beyond the document
// itself: the backend to evaluate against, the staged-feature
// admission policy to validate under, the shared artifact cache and
// session registry, and where to send logs/metrics. Cache, Sessions,
// Logger, and Metrics may be nil; a nil Cache skips content-addressed
// reuse, a nil Logger/Metrics silently drops observability.
type Options struct {
	Adapter  kernel.Adapter
	Policy   ir.StagedPolicy
	Cache    *cache.Store
	Sessions *cache.SessionStore
	Logger   *obslog.Logger
	Metrics  *obslog.Metrics
}

func (o Options) logger() *obslog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return obslog.Noop()
}
