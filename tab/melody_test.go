package tab

import (
	"strings"
	"testing"

	"github.com/ecopsychologer/abc-tab-converter/abc"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
	"github.com/stretchr/testify/assert"
)

func TestGroupBars(t *testing.T) {
	assert := assert.New(t)

	bars := GroupBars([]string{"C", "D", "|", "E", "|"})
	assert.Equal(bars, [][]string{{"C", "D"}, {"E"}})
}

func TestGroupBarsKeepsInteriorEmptyBars(t *testing.T) {
	assert := assert.New(t)

	bars := GroupBars([]string{"|", "C", "|", "|", "D"})
	assert.Equal(bars, [][]string{nil, {"C"}, nil, {"D"}})
}

func TestGroupBarsEmptyInput(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(len(GroupBars(nil)), 0)
}

func TestRenderMelodyScale(t *testing.T) {
	assert := assert.New(t)

	score := abc.Parse("X:1\nT:Test\nK:C\nC D E F|G A B c|", "")
	tab := GenerateMelody(score, pitch.Standard, DefaultBarsPerLine)

	want := strings.Join([]string{
		"e| - - 0 1 | 3 5 7 8",
		"B| 1 3 - - | - - - -",
		"G| - - - - | - - - -",
		"D| - - - - | - - - -",
		"A| - - - - | - - - -",
		"E| - - - - | - - - -",
	}, "\n")
	assert.Equal(tab, want)
}

func TestRenderMelodyChunksEveryThreeBars(t *testing.T) {
	assert := assert.New(t)

	var events []string
	for i := 0; i < 7; i++ {
		events = append(events, "C", "|")
	}
	tab := RenderMelody(GroupBars(events), pitch.Standard, 3)
	lines := strings.Split(tab, "\n")

	// two full chunks of six rows plus a blank line each, then the rest
	assert.Equal(len(lines), 20)
	assert.Equal(lines[0], "e| - | - | -")
	assert.Equal(lines[1], "B| 1 | 1 | 1")
	assert.Equal(lines[6], "")
	assert.Equal(lines[7], "e| - | - | -")
	assert.Equal(lines[13], "")
	assert.Equal(lines[14], "e| -")
	assert.Equal(lines[15], "B| 1")
	assert.Equal(lines[19], "E| -")
}

func TestRenderMelodyUnplayableNote(t *testing.T) {
	assert := assert.New(t)

	// C,,, sits below the lowest open string, so its column is all rests
	tab := RenderMelody(GroupBars([]string{"C,,,", "C", "|"}), pitch.Standard, 3)

	want := strings.Join([]string{
		"e| - -",
		"B| - 1",
		"G| - -",
		"D| - -",
		"A| - -",
		"E| - -",
	}, "\n")
	assert.Equal(tab, want)
}

func TestRenderMelodyLoneAccidentalBecomesRest(t *testing.T) {
	assert := assert.New(t)

	score := abc.Parse("K:C\n^ C|", "")
	tab := GenerateMelody(score, pitch.Standard, 3)

	assert.Equal(strings.Split(tab, "\n")[1], "B| - 1")
}

func TestRenderMelodyEmptyScore(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(RenderMelody(nil, pitch.Standard, 3), "")
}

func TestGenerateMelodyDeterministic(t *testing.T) {
	assert := assert.New(t)

	score := abc.Parse("K:D\nA B c d|e f g a|b c' d' e'|f' g'|", "")
	assert.Equal(
		GenerateMelody(score, pitch.Standard, 3),
		GenerateMelody(score, pitch.Standard, 3),
	)
}
