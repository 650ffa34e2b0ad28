// Package evaluator drives a part's topologically scheduled features
// against a kernel.Adapter: for each feature in turn it resolves
// numeric parameters and selector references against everything
// produced so far, calls Execute, and folds the result back into the
// running selection pool. It owns the OwnerKey-based stale-selection
// pruning rule (SPEC_FULL §11): whenever a feature's new selections
// share an OwnerKey with selections already in the accumulated pool,
// every prior selection under that OwnerKey is dropped before the new
// ones are appended, so a mutating feature (hole, fillet, chamfer, ...)
// replaces everything it touched rather than shadowing it.
package evaluator
