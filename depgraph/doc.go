// Package depgraph infers the dependency edges between a part's
// features (explicit deps, profile/pattern/datum/selector references)
// and produces a deterministic topological schedule.
//
// The graph itself is a minimal directed adjacency structure over
// feature ids — unlike a general-purpose graph library, it carries no
// weights, no multi-edges, and no undirected mode, because a feature
// dependency DAG needs none of those: every edge is "producer must run
// before consumer," full stop. Determinism is the load-bearing
// requirement (spec §4.3, §8 "topo stability"), so Schedule implements
// Kahn's algorithm with a sorted-insertion tie-break rather than a
// DFS-postorder reversal: two graphs with identical node/edge sets must
// schedule identically regardless of the input feature list's order,
// and a frontier kept in sorted order is the simplest structure that
// guarantees that.
package depgraph
