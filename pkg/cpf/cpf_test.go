package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"52998224725", true},
		{"15350946056", true},
		{"52998224726", false}, // second check digit off by one
		{"52998224735", false}, // first check digit wrong
		{"11111111111", false}, // repeated digits
		{"00000000000", false},
		{"123", false},
		{"529982247250", false}, // 12 digits
		{"", false},
		{"5299822472a", false},
		{"529.982.247-25", false}, // punctuation must be stripped first
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Valid(c.in), "cpf %q", c.in)
	}
}

func TestValidIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, Valid("52998224725"))
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "52998224725", Strip("529.982.247-25"))
	assert.True(t, Valid(Strip("529.982.247-25")))
	assert.Equal(t, "52998224725", Strip("52998224725"))
}
