// Package kernelfake implements kernel.Adapter entirely in memory, with
// no actual boundary-representation geometry: every KernelObject is a
// bookkeeping handle and every KernelSelection's metadata is derived
// deterministically from the producing feature's resolved parameters.
// It exists so the evaluator, cache, and build packages can be
// exercised end to end in tests without a real CAD kernel.
package kernelfake
