package tab

import (
	"strconv"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
)

// DefaultBarsPerLine is how many bars share one printed tab line.
const DefaultBarsPerLine = 3

const restMark = "-"

// GroupBars splits note events into bars. The marker after the last bar
// always leaves an empty trailing bar behind, so an empty last bar is
// dropped; empty bars anywhere else survive.
func GroupBars(events []model.Token) [][]model.Token {
	bars := [][]model.Token{nil}
	for _, e := range events {
		if e == model.BarMarker {
			bars = append(bars, nil)
		} else {
			bars[len(bars)-1] = append(bars[len(bars)-1], e)
		}
	}
	if len(bars[len(bars)-1]) == 0 {
		bars = bars[:len(bars)-1]
	}
	return bars
}

// RenderMelody lays bars out as six-row tab chunks, barsPerLine bars per
// chunk, one column per note event. A note that resolves to no playable
// position renders as an all-rest column. Chunks are separated by a blank
// line and each row drops the bar mark that would trail it.
func RenderMelody(bars [][]model.Token, tuning pitch.Tuning, barsPerLine int) string {
	if barsPerLine <= 0 {
		barsPerLine = DefaultBarsPerLine
	}
	names := tuning.NamesHighToLow()
	var lines []string
	for start := 0; start < len(bars); start += barsPerLine {
		end := start + barsPerLine
		if end > len(bars) {
			end = len(bars)
		}
		rows := make([][]string, len(names))
		for _, bar := range bars[start:end] {
			for _, note := range bar {
				pos, ok := resolve(note, tuning)
				for ri, name := range names {
					if ok && pos.String == name {
						rows[ri] = append(rows[ri], strconv.Itoa(pos.Fret))
					} else {
						rows[ri] = append(rows[ri], restMark)
					}
				}
			}
			for ri := range rows {
				rows[ri] = append(rows[ri], model.BarMarker)
			}
		}
		for ri, name := range names {
			cells := strings.Join(rows[ri], " ")
			cells = strings.TrimRight(strings.TrimRight(cells, "|"), " ")
			lines = append(lines, name+"| "+cells)
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \n")
}

// GenerateMelody renders a parsed score as melody tab.
func GenerateMelody(score model.Score, tuning pitch.Tuning, barsPerLine int) string {
	return RenderMelody(GroupBars(NotesFromTokens(score.Tokens)), tuning, barsPerLine)
}

func resolve(note model.Token, tuning pitch.Tuning) (pitch.FretPos, bool) {
	midi, err := pitch.NoteToMidi(note)
	if err != nil {
		return pitch.FretPos{}, false
	}
	return tuning.ChooseFret(midi)
}
