package scrawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorNext(t *testing.T) {
	c := Black
	for i := 0; i < NumColors; i += 1 {
		assert.True(t, c.Valid())
		c = c.Next()
	}
	assert.Equal(t, Black, c, "cycling the whole palette returns to the start")
	assert.Equal(t, Black, Color(42).Next())
}

func TestColorClamp(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected Color
	}{
		{name: "valid", color: Cyan, expected: Cyan},
		{name: "negative", color: -3, expected: Black},
		{name: "too large", color: 99, expected: White},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.color.Clamp())
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Magenta ")
	assert.NoError(t, err)
	assert.Equal(t, Magenta, c)
	assert.Equal(t, "magenta", c.String())

	_, err = ParseColor("mauve")
	assert.Error(t, err)
	assert.Equal(t, "color(12)", Color(12).String())
}
