package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMoodResponse(t *testing.T) {
	tests := []struct {
		name   string
		mood   string
		raw    string
		expect string
	}{
		{
			name:   "joke",
			mood:   MOOD_FUNNY,
			raw:    `{"setup":"Why do programmers prefer dark mode?","punchline":"Because light attracts bugs."}`,
			expect: "Why do programmers prefer dark mode? Because light attracts bugs.",
		},
		{
			name:   "quote",
			mood:   MOOD_MOTIVATIONAL,
			raw:    `[{"q":"Stay hungry.","a":"Steve Jobs"}]`,
			expect: "Stay hungry. - Steve Jobs",
		},
		{
			name:   "fact",
			mood:   MOOD_SILLY,
			raw:    `{"text":"Bananas are berries."}`,
			expect: "Bananas are berries.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeMoodResponse(tt.mood, []byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestDecodeMoodResponseBadPayload(t *testing.T) {
	_, err := decodeMoodResponse(MOOD_MOTIVATIONAL, []byte(`[]`))
	assert.Error(t, err)

	_, err = decodeMoodResponse(MOOD_FUNNY, []byte(`not json`))
	assert.Error(t, err)

	_, err = decodeMoodResponse("angry", []byte(`{}`))
	assert.Error(t, err)
}
