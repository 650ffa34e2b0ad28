package cache

import (
	"encoding/json"
	"hash/fnv"
)

// CanonicalJSON encodes v with object keys sorted lexicographically,
// regardless of v's Go struct field order, so the same logical document
// hashes identically across processes and across language
// implementations of this encoding. encoding/json.Marshal alone only
// sorts map[string]V keys, never struct fields, so v is first decoded
// into the generic any/map[string]any representation (turning every
// struct into a map) and re-encoded, at which point json.Marshal's
// map-key sort does the rest.
func CanonicalJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}

// Hash64 returns the FNV-1a 64-bit hash of v's canonical JSON encoding.
func Hash64(v any) (uint64, error) {
	b, err := CanonicalJSON(v)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(b) // hash.Hash.Write never errors
	return h.Sum64(), nil
}
