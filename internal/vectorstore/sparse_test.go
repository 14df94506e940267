package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseVectorizer_SameTextYieldsSameVector(t *testing.T) {
	v := NewSparseVectorizer()
	a := v.Vectorize("demand forecasting stockout")
	b := v.Vectorize("demand forecasting stockout")
	require.Equal(t, a.Indices, b.Indices)
	assert.Equal(t, a.Values, b.Values)
}

func TestSparseVectorizer_RepeatedTermsIncreaseWeight(t *testing.T) {
	v := NewSparseVectorizer()
	once := v.Vectorize("stockout demand")
	repeated := v.Vectorize("stockout stockout stockout demand")

	weightOf := func(sv SparseVector, term string) float32 {
		idx := hashTerm(term)
		for i, id := range sv.Indices {
			if id == idx {
				return sv.Values[i]
			}
		}
		t.Fatalf("term %q not found in sparse vector", term)
		return 0
	}

	assert.Greater(t, weightOf(repeated, "stockout"), weightOf(once, "stockout"))
}

func TestSparseVectorizer_IgnoresSingleCharTokens(t *testing.T) {
	v := NewSparseVectorizer()
	sv := v.Vectorize("a b stockout")
	assert.Len(t, sv.Indices, 1)
}
