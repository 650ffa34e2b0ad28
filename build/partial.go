package build

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/trueform/compiler/depgraph"
	"github.com/trueform/compiler/evaluator"
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/validate"
)

// Diagnostics reports which feature ids a partial build reused
// verbatim, which it re-evaluated because they or an ancestor changed,
// and which the caller explicitly named as changed.
type Diagnostics struct {
	Requested   []string
	Invalidated []string
	Reused      []string
}

// PartialResult is a partial build's evaluation output plus the
// reuse/invalidation diagnostics a caller needs to report back to a
// user (e.g. "3 features reused, 2 re-evaluated").
type PartialResult struct {
	*evaluator.Result
	Diagnostics Diagnostics
}

// PartialBuild evaluates part within an existing session, reusing every
// feature's prior output except: features in changed, features whose
// resolved inputs no longer match the hash recorded at the session's
// last update, and every feature downstream of either. now is passed
// explicitly (rather than PartialBuild calling time.Now()) so session
// expiry is deterministic under test.
func PartialBuild(ctx context.Context, doc *ir.Document, partID string, overrides ir.Overrides, sessionID string, changed []string, now time.Time, opts Options) (*PartialResult, error) {
	start := time.Now()
	log := opts.logger()

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

	if opts.Sessions == nil {
		return nil, ir.NewError(ir.CodeBuildSessionNotFound, "no session store configured", "referenceId", sessionID)
	}
	sess, err := opts.Sessions.Get(sessionID, now)
	if err != nil {
		return nil, err
	}

	graph, err := depgraph.Build(part)
	if err != nil {
		return nil, err
	}

	currentHashes, err := featureInputHashes(part, doc.Context.Units, overrides)
	if err != nil {
		return nil, err
	}

	requested := make(map[string]bool, len(changed))
	for _, id := range changed {
		requested[id] = true
	}
	seeds := make(map[string]bool, len(requested))
	for id := range requested {
		seeds[id] = true
	}
	for id, h := range currentHashes {
		prev, seen := sess.InputHashes[id]
		if !seen || prev != h {
			seeds[id] = true
		}
	}

	dirty := evaluator.DirtyClosure(graph, seeds)

	var prior *evaluator.Result
	if sess.Result != nil {
		live := make(map[string]bool, len(currentHashes))
		for id := range currentHashes {
			live[id] = true
		}
		prior = sess.Result.Prune(live)
	}

	result, err := evaluator.EvaluateIncremental(ctx, part, doc.Context.Units, overrides, opts.Adapter, prior, dirty)
	opts.Metrics.ObserveBuildDuration("partial", time.Since(start).Seconds())
	if err != nil {
		log.Error("partial build failed", err, zap.String("partId", partID), zap.String("sessionId", sessionID))
		return nil, err
	}

	if err := opts.Sessions.Update(sessionID, result, currentHashes, now); err != nil {
		return nil, err
	}
	opts.Metrics.SetSessionsActive(opts.Sessions.Len())

	var reused, invalidated []string
	for id := range dirty {
		invalidated = append(invalidated, id)
	}
	for id := range currentHashes {
		if !dirty[id] {
			reused = append(reused, id)
		}
	}
	sort.Strings(invalidated)
	sort.Strings(reused)

	return &PartialResult{
		Result: result,
		Diagnostics: Diagnostics{
			Requested:   append([]string(nil), changed...),
			Invalidated: invalidated,
			Reused:      reused,
		},
	}, nil
}
