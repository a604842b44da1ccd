package rank

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Persisted embeddings have drifted through several storage representations: a
// JSON numeric array, the brace-delimited list Postgres renders for arrays,
// and a keyed wrapper mirroring the provider response. Decoding tries a fixed
// priority order and the first strategy that recognizes the value wins.
type decodeStrategy func(string) ([]float32, bool)

var decodeStrategies = []decodeStrategy{
	decodeJSONArray,
	decodeBracedList,
	decodeKeyedObject,
}

// DecodeVector normalizes a stored embedding value to a flat numeric vector.
// A value matching no known shape reports ok=false, it is the caller's job to
// skip it rather than fail the pass.
func DecodeVector(raw string) ([]float32, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	for _, strategy := range decodeStrategies {
		if vec, ok := strategy(raw); ok {
			return vec, true
		}
	}
	return nil, false
}

// "[0.1,0.2]", which is also how pgvector renders its column as text.
func decodeJSONArray(raw string) ([]float32, bool) {
	if !strings.HasPrefix(raw, "[") {
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal([]byte(raw), &vec); err != nil {
		return nil, false
	}
	return vec, len(vec) > 0
}

// "{0.1,0.2}", the Postgres float array text form.
func decodeBracedList(raw string) ([]float32, bool) {
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return nil, false
	}
	body := strings.TrimSpace(raw[1 : len(raw)-1])
	if body == "" {
		return nil, false
	}
	parts := strings.Split(body, ",")
	vec := make([]float32, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, false
		}
		vec = append(vec, float32(f))
	}
	return vec, true
}

// {"float": [0.1,0.2]}, the provider response wrapper stored verbatim.
func decodeKeyedObject(raw string) ([]float32, bool) {
	if !strings.HasPrefix(raw, "{") {
		return nil, false
	}
	var wrapper struct {
		Float []float32 `json:"float"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, false
	}
	return wrapper.Float, len(wrapper.Float) > 0
}
