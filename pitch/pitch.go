package pitch

import (
	"errors"
	"fmt"
	"regexp"
)

// MaxFret is the highest playable fret on any string.
const MaxFret = 24

var ErrInvalidPitch = errors.New("invalid pitch token")

var noteRe = regexp.MustCompile(`^(\^|_|=)?([A-Ga-g])([,']*)`)

// baseMidi fixes uppercase letters in the octave starting at middle C and
// lowercase letters one octave up.
var baseMidi = map[byte]int{
	'C': 60, 'D': 62, 'E': 64, 'F': 65, 'G': 67, 'A': 69, 'B': 71,
	'c': 72, 'd': 74, 'e': 76, 'f': 77, 'g': 79, 'a': 81, 'b': 83,
}

var accidentalOffset = map[byte]int{'^': 1, '_': -1, '=': 0}

// NoteToMidi resolves a note token (optional accidental, letter, octave
// marks) to its MIDI number. Trailing duration digits are tolerated and
// ignored.
func NoteToMidi(token string) (int, error) {
	m := noteRe.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, token)
	}
	midi := baseMidi[m[2][0]]
	for i := 0; i < len(m[3]); i++ {
		if m[3][i] == '\'' {
			midi += 12
		} else {
			midi -= 12
		}
	}
	if m[1] != "" {
		midi += accidentalOffset[m[1][0]]
	}
	return midi, nil
}

// FretPos is a playable position: a string name and a fret number.
type FretPos struct {
	String string
	Fret   int
}

// Tuning holds the six open-string MIDI values, low string first, plus
// the names used for tab rows.
type Tuning struct {
	Names [6]string
	Opens [6]int
}

// Standard is EADGBe guitar tuning: E2 A2 D3 G3 B3 E4.
var Standard = Tuning{
	Names: [6]string{"E", "A", "D", "G", "B", "e"},
	Opens: [6]int{40, 45, 50, 55, 59, 64},
}

// NamesHighToLow returns the string names in tab row order, highest
// pitched string first.
func (t Tuning) NamesHighToLow() []string {
	names := make([]string, 0, len(t.Names))
	for i := len(t.Names) - 1; i >= 0; i-- {
		names = append(names, t.Names[i])
	}
	return names
}

// ChooseFret picks where to play a MIDI note: the lowest fret number on
// any string wins, and when two strings tie the higher pitched one wins.
// Scanning high to low with a strict less keeps that deterministic.
func (t Tuning) ChooseFret(midi int) (FretPos, bool) {
	var best FretPos
	found := false
	for i := len(t.Opens) - 1; i >= 0; i-- {
		fret := midi - t.Opens[i]
		if fret < 0 || fret > MaxFret {
			continue
		}
		if !found || fret < best.Fret {
			best = FretPos{String: t.Names[i], Fret: fret}
			found = true
		}
	}
	return best, found
}
