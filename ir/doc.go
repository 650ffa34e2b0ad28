// Package ir defines TrueForm's intent document model: the closed,
// recursive type tree of documents, parts, features, profiles,
// selectors, expressions, and units that the rest of the compiler
// consumes.
//
// Every exported type in this package is a plain, immutable-by-convention
// data carrier: nothing here runs validation or evaluation. Those live in
// sibling packages (validate, expr, depgraph, evaluator) so the IR stays
// a single source of truth for "what a document looks like" independent
// of "what we do with one."
//
//	ir/          — document tree (this package)
//	validate/    — structural & semantic validation over the tree
//	expr/        — Scalar/Expression resolution to canonical units
//	depgraph/    — dependency inference & topological scheduling
//	kernel/      — the kernel adapter trait and its result types
//	selector/    — predicate/rank resolution over kernel selections
//	evaluator/   — drives ordered features against a kernel adapter
//	cache/       — content-addressed artifact caching & sessions
//	build/       — top-level orchestration (BuildPart)
package ir
