package vectorstore

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"unicode"
)

// SparseVectorizer turns query/document text into the sparse term vector
// fed to the collection's BM25-style named vector. Terms are hashed to a
// fixed-width id space so the vocabulary never needs a shared dictionary
// between indexing and querying.
type SparseVectorizer struct{}

// NewSparseVectorizer returns the default lexical vectorizer.
func NewSparseVectorizer() SparseVectorizer { return SparseVectorizer{} }

// Vectorize computes a hashed, log-dampened term-frequency sparse vector
// (1 + ln(tf) for each distinct lower-cased term of two or more
// characters), as the (index, value) pairs Qdrant's sparse vector type
// expects.
func (SparseVectorizer) Vectorize(text string) SparseVector {
	counts := make(map[uint32]float32)
	for _, term := range tokenize(text) {
		counts[hashTerm(term)] += 1
	}

	indices := make([]uint32, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	values := make([]float32, len(indices))
	for i, idx := range indices {
		values[i] = float32(1 + math.Log(float64(counts[idx])))
	}

	return SparseVector{Indices: indices, Values: values}
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			terms = append(terms, f)
		}
	}
	return terms
}

func hashTerm(term string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(term))
	return h.Sum32()
}
