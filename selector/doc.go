// Package selector resolves an ir.Selector against the candidate
// kernel.KernelSelections a build has accumulated so far, applying
// predicate filters and rank ordering generically over the geometric
// metadata the backend attaches to each selection. It never talks to a
// kernel.Adapter directly; evaluator supplies the candidate set.
package selector
