// Package rank scores stored embeddings against a query vector with
// brute-force cosine similarity and keeps the top K.
package rank

import (
	"errors"
	"math"
	"sort"

	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

// DefaultTopK is the number of highest-scoring chunks used for model context.
const DefaultTopK = 6

// epsilon keeps the similarity defined when either vector is all-zero.
const epsilon = 1e-10

// ErrNoCandidates reports that a scope holds zero usable vectors after
// filtering. Callers surface it as "no material indexed yet" instead of
// assembling an empty context.
var ErrNoCandidates = errors.New("no usable candidates in scope")

// Scored is an embedding record with its similarity to the query. Transient,
// consumed by prompt assembly and discarded with the response.
type Scored struct {
	types.Embedding
	Score float64 `json:"score"`
}

// Result carries the ranked records plus the count of candidates excluded for
// undecodable or dimension-mismatched vectors, so corruption tolerance stays
// observable.
type Result struct {
	Ranked  []Scored
	Skipped int
}

// Rank scores every decodable candidate whose dimensionality matches the
// query, sorts descending and truncates to k. Sort is stable, so ranking is
// deterministic for identical inputs. Candidates that fail to decode or whose
// length differs from the query contribute neither a score nor an error.
func Rank(query []float32, candidates []types.Embedding, k int) (Result, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	var res Result
	for _, c := range candidates {
		vec := c.Vector
		if vec == nil {
			var ok bool
			if vec, ok = DecodeVector(c.Raw); !ok {
				res.Skipped++
				continue
			}
		}
		if len(vec) != len(query) {
			res.Skipped++
			continue
		}
		res.Ranked = append(res.Ranked, Scored{Embedding: c, Score: Cosine(query, vec)})
	}

	if len(res.Ranked) == 0 {
		return res, ErrNoCandidates
	}

	sort.SliceStable(res.Ranked, func(i, j int) bool {
		return res.Ranked[i].Score > res.Ranked[j].Score
	})
	if len(res.Ranked) > k {
		res.Ranked = res.Ranked[:k]
	}
	return res, nil
}

// Cosine computes dot(a,b) / (||a||*||b|| + eps) in float64 accumulation.
func Cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + epsilon)
}
