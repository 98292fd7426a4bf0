package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEquivalentNotations(t *testing.T) {
	assert := assert.New(t)

	want := Shape{"0", "2", "2", "1", "0", "0"}
	for _, raw := range []string{"022100", "0-2-2-1-0-0", "0 2 2 1 0 0"} {
		s, err := Normalize(raw)
		assert.Nil(err)
		assert.Equal(s, want, raw)
	}
}

func TestNormalizeMutedStrings(t *testing.T) {
	assert := assert.New(t)

	want := Shape{"x", "3", "2", "0", "1", "0"}
	for _, raw := range []string{"x32010", "X32010", "x,3,2,0,1,0", "x 3 2 0 1 0"} {
		s, err := Normalize(raw)
		assert.Nil(err)
		assert.Equal(s, want, raw)
	}
}

func TestNormalizeMultiDigitFrets(t *testing.T) {
	assert := assert.New(t)

	s, err := Normalize("10 12 12 11 10 10")
	assert.Nil(err)
	assert.Equal(s, Shape{"10", "12", "12", "11", "10", "10"})

	s, err = Normalize("x-10-12-12-11-x")
	assert.Nil(err)
	assert.Equal(s, Shape{"x", "10", "12", "12", "11", "x"})
}

func TestNormalizeSurroundingWhitespace(t *testing.T) {
	assert := assert.New(t)

	s, err := Normalize("  022100\n")
	assert.Nil(err)
	assert.Equal(s, Shape{"0", "2", "2", "1", "0", "0"})
}

func TestNormalizeRejectsBadShapes(t *testing.T) {
	assert := assert.New(t)

	for _, raw := range []string{
		"",
		"02210",
		"0221000",
		"0 2 2 1 0",
		"0 2 2 1 0 0 0",
		"a b c d e f",
		"25 0 0 0 0 0",
		"0,2,2,1,0,-1",
	} {
		_, err := Normalize(raw)
		assert.ErrorIs(err, ErrInvalidShape, raw)
	}
}
