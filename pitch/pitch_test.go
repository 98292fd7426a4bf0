package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteToMidi(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]int{
		"C":   60,
		"B":   71,
		"c":   72,
		"b":   83,
		"^F":  66,
		"_B":  70,
		"=c":  72,
		"C,":  48,
		"G,,": 43,
		"c'":  84,
		"b''": 107,
		"^c'": 85,
		"_C":  59,
		"A2":  69,
	}
	for token, want := range cases {
		midi, err := NoteToMidi(token)
		assert.Nil(err)
		assert.Equal(midi, want, token)
	}
}

func TestNoteToMidiRejectsNonNotes(t *testing.T) {
	assert := assert.New(t)

	for _, token := range []string{"", "|", "2", "^", "H", ",C"} {
		_, err := NoteToMidi(token)
		assert.ErrorIs(err, ErrInvalidPitch, token)
	}
}

func TestChooseFretPrefersLowestFret(t *testing.T) {
	assert := assert.New(t)

	cases := map[int]FretPos{
		60: {String: "B", Fret: 1},
		62: {String: "B", Fret: 3},
		64: {String: "e", Fret: 0},
		59: {String: "B", Fret: 0},
		40: {String: "E", Fret: 0},
		41: {String: "E", Fret: 1},
		88: {String: "e", Fret: 24},
	}
	for midi, want := range cases {
		pos, ok := Standard.ChooseFret(midi)
		assert.True(ok)
		assert.Equal(pos, want, midi)
	}
}

func TestChooseFretOutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, ok := Standard.ChooseFret(39)
	assert.False(ok)
	_, ok = Standard.ChooseFret(89)
	assert.False(ok)
}

func TestChooseFretTieBreaksToHigherString(t *testing.T) {
	assert := assert.New(t)

	// two top strings tuned alike force equal fret candidates
	doubled := Tuning{
		Names: [6]string{"E", "A", "D", "G", "B", "e"},
		Opens: [6]int{40, 45, 50, 55, 59, 59},
	}

	pos, ok := doubled.ChooseFret(61)
	assert.True(ok)
	assert.Equal(pos, FretPos{String: "e", Fret: 2})

	pos, ok = doubled.ChooseFret(59)
	assert.True(ok)
	assert.Equal(pos, FretPos{String: "e", Fret: 0})
}
