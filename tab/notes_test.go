package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotesFromTokens(t *testing.T) {
	assert := assert.New(t)

	// C'2 arrives as three raw tokens; the octave mark sticks, the
	// duration is dropped
	events := NotesFromTokens([]string{"C", "'", "2", "D", "|", "E"})
	assert.Equal(events, []string{"C'", "D", "|", "E"})
}

func TestNotesFromTokensKeepsAccidentalsAlone(t *testing.T) {
	assert := assert.New(t)

	// a bare accidental stays its own event and later fails to resolve
	events := NotesFromTokens([]string{"^", "F", "G"})
	assert.Equal(events, []string{"^", "F", "G"})
}

func TestNotesFromTokensDropsStrays(t *testing.T) {
	assert := assert.New(t)

	events := NotesFromTokens([]string{"3", "C", "D", "2", ",", "E"})
	assert.Equal(events, []string{"C", "D", "E"})
}

func TestNoteInventory(t *testing.T) {
	assert := assert.New(t)

	// inventory keys join accidentals to letters and exclude durations
	keys := NoteInventory([]string{"^", "F", "G", "2", "|", "F", "G"})
	assert.Equal(keys, []string{"F", "G", "^F"})
}

func TestNoteInventoryOctaveMarks(t *testing.T) {
	assert := assert.New(t)

	keys := NoteInventory([]string{"c", "'", "c", "|", "C", ","})
	assert.Equal(keys, []string{"C,", "c", "c'"})
}
