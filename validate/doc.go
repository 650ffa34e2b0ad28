// Package validate rejects any ir.Document or ir.Part that would cause
// undefined behaviour downstream, returning a coded *ir.CoreError from
// the taxonomy in ir/errors.go. Validation is pure: it never mutates its
// input and never talks to a kernel adapter.
//
// Document runs once, before evaluation. Part runs again on each part
// immediately before evaluation, under the caller's staged-feature
// policy, so a document
// built once and evaluated many times (once per override set) always
// re-checks the part it is about to drive a kernel with.
package validate
