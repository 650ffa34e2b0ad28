package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trueform/compiler/cache"
)

// fieldsAB and fieldsBA encode the same JSON object but declare their
// struct fields in opposite order, mimicking two independent language
// implementations choosing different field orders for the same schema.
type fieldsAB struct {
	A int `json:"a"`
	B int `json:"b"`
}

type fieldsBA struct {
	B int `json:"b"`
	A int `json:"a"`
}

func TestCanonicalJSONSortsKeysRegardlessOfStructOrder(t *testing.T) {
	ab, err := cache.CanonicalJSON(fieldsAB{A: 1, B: 2})
	require.NoError(t, err)
	ba, err := cache.CanonicalJSON(fieldsBA{A: 1, B: 2})
	require.NoError(t, err)
	require.Equal(t, string(ab), string(ba))
	require.Equal(t, `{"a":1,"b":2}`, string(ab))
}

func TestHash64IsIndependentOfStructFieldOrder(t *testing.T) {
	h1, err := cache.Hash64(fieldsAB{A: 1, B: 2})
	require.NoError(t, err)
	h2, err := cache.Hash64(fieldsBA{A: 1, B: 2})
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestCanonicalJSONSortsNestedObjectKeys(t *testing.T) {
	type outer struct {
		Z fieldsAB `json:"z"`
		Y int      `json:"y"`
	}
	b, err := cache.CanonicalJSON(outer{Z: fieldsAB{A: 1, B: 2}, Y: 3})
	require.NoError(t, err)
	require.Equal(t, `{"y":3,"z":{"a":1,"b":2}}`, string(b))
}
