package model

// Token is one raw element of a tokenized ABC body: an accidental mark, a
// note letter, an octave mark, a duration digit-run, or BarMarker.
type Token = string

// BarMarker separates bars. Runs of bar characters in the source collapse
// to a single marker, so two BarMarkers are never adjacent in a Score.
const BarMarker Token = "|"

// Score is the parse of one ABC source text. It is never mutated after
// parsing; re-parsing the same text yields the same Score.
type Score struct {
	Title  string
	Key    string
	Tokens []Token
}

// Mapping relates note tokens (accidental + letter + octave marks, no
// duration digits) to chord names.
type Mapping = map[string]string
