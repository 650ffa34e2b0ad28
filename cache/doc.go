// Package cache gives builds a content-addressed artifact store and a
// TTL-bounded incremental build session registry. Keys are derived by
// hashing the canonical JSON encoding of whatever inputs determine an
// artifact (a part's features/params/overrides for a build key, a
// KernelObject id plus MeshOptions for a mesh key, ...) with FNV-1a
// over 64 bits — an exact, byte-reproducible algorithm, which is why
// it is hand-rolled against the standard library rather than pulled
// from a third-party hashing package: no dependency in the retrieval
// pack documents FNV-1a's exact byte sequence as a portable wire
// format, and the spec requires one.
package cache
