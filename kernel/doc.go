// Package kernel defines the pluggable boundary between the compiler
// core and a concrete geometry backend. Adapter is the only type a
// backend must implement; everything upstream (evaluator, selector,
// build) talks to geometry exclusively through it, so swapping
// backends never touches core packages. internal/kernelfake provides a
// deterministic in-memory implementation used by tests.
package kernel
