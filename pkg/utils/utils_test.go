package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomStr(t *testing.T) {
	s := RandomStr(32)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, RandomStr(32))
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "abc", 200, "abc"},
		{"exact limit", "abcd", 4, "abcd"},
		{"truncated", "abcdef", 3, "abc"},
		{"multibyte safe", "日本語テキスト", 3, "日本語"},
		{"zero keeps all", "abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.in, tt.n))
		})
	}
}
