package rank

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

func jsonVec(vec []float32) string {
	raw, _ := json.Marshal(vec)
	return string(raw)
}

func TestCosineIdentities(t *testing.T) {
	v := []float32{0.3, -1.2, 4.5, 0.01}
	neg := make([]float32, len(v))
	for i := range v {
		neg[i] = -v[i]
	}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-6)
	assert.InDelta(t, -1.0, Cosine(v, neg), 1e-6)

	// orthogonal
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)

	// all-zero vectors stay defined
	zero := []float32{0, 0, 0, 0}
	assert.InDelta(t, 0.0, Cosine(v, zero), 1e-6)
	assert.InDelta(t, 0.0, Cosine(zero, zero), 1e-6)
}

func TestRankTopK(t *testing.T) {
	query := []float32{1, 0}

	// ten candidates with strictly decreasing similarity to the query
	var candidates []types.Embedding
	for i := 0; i < 10; i++ {
		angle := float32(i) * 0.15
		candidates = append(candidates, types.Embedding{
			ID:         fmt.Sprintf("c%d", i),
			PageNumber: i + 1,
			Raw:        jsonVec([]float32{cosf(angle), sinf(angle)}),
		})
	}

	res, err := Rank(query, candidates, 6)
	require.NoError(t, err)
	require.Len(t, res.Ranked, 6)
	assert.Zero(t, res.Skipped)

	for i, s := range res.Ranked {
		assert.Equal(t, fmt.Sprintf("c%d", i), s.ID)
		if i > 0 {
			assert.LessOrEqual(t, s.Score, res.Ranked[i-1].Score)
		}
	}
}

func TestRankShuffleInvariant(t *testing.T) {
	query := []float32{0.7, 0.2, -0.4}
	var candidates []types.Embedding
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 30; i++ {
		candidates = append(candidates, types.Embedding{
			ID:  fmt.Sprintf("c%d", i),
			Raw: jsonVec([]float32{r.Float32()*2 - 1, r.Float32()*2 - 1, r.Float32()*2 - 1}),
		})
	}

	base, err := Rank(query, candidates, 6)
	require.NoError(t, err)

	shuffled := make([]types.Embedding, len(candidates))
	copy(shuffled, candidates)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	got, err := Rank(query, shuffled, 6)
	require.NoError(t, err)

	baseIDs := map[string]float64{}
	for _, s := range base.Ranked {
		baseIDs[s.ID] = s.Score
	}
	for _, s := range got.Ranked {
		score, ok := baseIDs[s.ID]
		assert.True(t, ok, "top-K set changed under shuffle: %s", s.ID)
		assert.InDelta(t, score, s.Score, 1e-9)
	}
}

func TestRankSkipsMalformedCandidates(t *testing.T) {
	query := []float32{1, 0}
	candidates := []types.Embedding{
		{ID: "good", Raw: jsonVec([]float32{0.9, 0.1})},
		{ID: "wrong-dim", Raw: jsonVec([]float32{0.9, 0.1, 0.3})},
		{ID: "garbage", Raw: "not a vector"},
		{ID: "empty", Raw: ""},
	}

	res, err := Rank(query, candidates, 6)
	require.NoError(t, err)
	require.Len(t, res.Ranked, 1)
	assert.Equal(t, "good", res.Ranked[0].ID)
	assert.Equal(t, 3, res.Skipped)
}

func TestRankNoCandidates(t *testing.T) {
	_, err := Rank([]float32{1, 0}, nil, 6)
	assert.ErrorIs(t, err, ErrNoCandidates)

	// all candidates filtered out counts as empty too
	_, err = Rank([]float32{1, 0}, []types.Embedding{{ID: "bad", Raw: "?"}}, 6)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

// Retrieval property end to end at the ranking layer: the chunk whose vector
// is closest to the question embedding must surface in the cited pages.
func TestRankClosestChunkCited(t *testing.T) {
	query := []float32{0.1, 0.98}
	candidates := []types.Embedding{
		{ID: "chunk1", PageNumber: 1, Raw: jsonVec([]float32{0.99, 0.05})},
		{ID: "chunk2", PageNumber: 2, Raw: jsonVec([]float32{0.12, 0.97})},
		{ID: "chunk3", PageNumber: 3, Raw: jsonVec([]float32{-0.8, 0.3})},
	}

	res, err := Rank(query, candidates, 6)
	require.NoError(t, err)
	assert.Equal(t, "chunk2", res.Ranked[0].ID)
	assert.Equal(t, 2, res.Ranked[0].PageNumber)
}

func TestDecodeVector(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float32
		ok   bool
	}{
		{"json array", "[0.25, -1, 3]", []float32{0.25, -1, 3}, true},
		{"pgvector text", "[0.1,0.2,0.3]", []float32{0.1, 0.2, 0.3}, true},
		{"braced list", "{0.5, 1.5,-2}", []float32{0.5, 1.5, -2}, true},
		{"keyed wrapper", `{"float": [1, 2]}`, []float32{1, 2}, true},
		{"empty string", "", nil, false},
		{"empty braces", "{}", nil, false},
		{"prose", "hello world", nil, false},
		{"object without known key", `{"vec": [1,2]}`, nil, false},
		{"braced with junk", "{1,two,3}", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeVector(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Len(t, got, len(tt.want))
				for i := range tt.want {
					assert.InDelta(t, tt.want[i], got[i], 1e-6)
				}
			}
		})
	}
}

func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
