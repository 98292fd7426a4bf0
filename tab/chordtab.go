package tab

import (
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/chord"
	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
)

// RenderChordTab annotates each note event with its mapped chord and
// inlines a stacked fret block for every chord whose shape is known.
// Lookups use the note without its duration digits; the annotation shows
// the literal token including them. A bar marker flushes the running
// segment and draws a divider, and an empty bar renders as a bare marker.
func RenderChordTab(tokens []model.Token, mapping model.Mapping, chords map[string]string) string {
	var out []string
	var segment []string
	flush := func(divider bool) {
		if len(segment) == 0 {
			return
		}
		out = append(out, strings.Join(segment, " | "))
		if divider {
			out = append(out, "-")
		}
		segment = nil
	}
	for i := 0; i < len(tokens); {
		if tokens[i] == model.BarMarker {
			if len(segment) == 0 {
				out = append(out, model.BarMarker)
			} else {
				flush(true)
			}
			i++
			continue
		}
		key, literal, next := reassemble(tokens, i)
		i = next

		name, ok := mapping[key]
		if !ok {
			segment = append(segment, literal+" → [unmapped]")
			continue
		}
		shape, ok := chords[name]
		if !ok {
			segment = append(segment, literal+" → "+name+" [missing in lib]")
			continue
		}
		block, err := Block(name, shape)
		if err != nil {
			// a stored shape that no longer validates is as good as absent
			segment = append(segment, literal+" → "+name+" [missing in lib]")
			continue
		}
		segment = append(segment, literal+" → "+name, block)
	}
	flush(false)
	return strings.Join(out, "\n")
}

// Block renders the stacked fret diagram for one chord: a [name] title
// line, then a line per string from high e down to low E.
func Block(name, shape string) (string, error) {
	s, err := chord.Normalize(shape)
	if err != nil {
		return "", err
	}
	names := pitch.Standard.NamesHighToLow()
	lines := make([]string, 0, len(s)+1)
	lines = append(lines, "["+name+"]")
	for i, n := range names {
		lines = append(lines, n+"|- "+s[len(s)-1-i])
	}
	return strings.Join(lines, "\n"), nil
}
