package respcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	code, err := New()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "RESP_"))
	assert.Len(t, code, len("RESP_")+12)
	assert.True(t, Valid(code))
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := New()
		assert.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{
			name:     "Missing prefix",
			code:     "123456789012",
			expected: false,
		},
		{
			name:     "Wrong prefix",
			code:     "USER_123456789012",
			expected: false,
		},
		{
			name:     "Bad check digit",
			code:     "RESP_123456789013",
			expected: false,
		},
		{
			name:     "Empty",
			code:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Valid(tt.code))
		})
	}
}
