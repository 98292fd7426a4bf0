package tab

import (
	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/util"
)

func isAccidental(t model.Token) bool {
	return t == "^" || t == "_" || t == "="
}

func isLetter(t model.Token) bool {
	if len(t) != 1 {
		return false
	}
	c := t[0]
	return (c >= 'A' && c <= 'G') || (c >= 'a' && c <= 'g')
}

func isOctaveMark(t model.Token) bool {
	return t == "," || t == "'"
}

func isDigits(t model.Token) bool {
	if t == "" {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	return true
}

// NotesFromTokens merges raw tokens into note events for melody layout. A
// letter or accidental token absorbs the octave marks that follow it,
// duration digits are dropped, bar markers pass through, anything else is
// discarded.
func NotesFromTokens(tokens []model.Token) []model.Token {
	var events []model.Token
	for i := 0; i < len(tokens); {
		t := tokens[i]
		if t == model.BarMarker {
			events = append(events, t)
			i++
			continue
		}
		if !isLetter(t) && !isAccidental(t) {
			i++
			continue
		}
		note := t
		i++
		for i < len(tokens) && isOctaveMark(tokens[i]) {
			note += tokens[i]
			i++
		}
		for i < len(tokens) && isDigits(tokens[i]) {
			i++
		}
		events = append(events, note)
	}
	return events
}

// reassemble rebuilds the note starting at i for chord lookup: an
// accidental joins its letter, then octave marks, then duration digits.
// The key leaves the digits off; the literal keeps them for display.
func reassemble(tokens []model.Token, i int) (key, literal string, next int) {
	key = tokens[i]
	i++
	if isAccidental(key) && i < len(tokens) && isLetter(tokens[i]) {
		key += tokens[i]
		i++
	}
	for i < len(tokens) && isOctaveMark(tokens[i]) {
		key += tokens[i]
		i++
	}
	literal = key
	for i < len(tokens) && isDigits(tokens[i]) {
		literal += tokens[i]
		i++
	}
	return key, literal, i
}

// NoteInventory lists the distinct chord-lookup keys in a token sequence,
// sorted. These are the keys a song mapping should cover.
func NoteInventory(tokens []model.Token) []string {
	seen := make(map[string]bool)
	for i := 0; i < len(tokens); {
		if tokens[i] == model.BarMarker {
			i++
			continue
		}
		key, _, next := reassemble(tokens, i)
		seen[key] = true
		i = next
	}
	return util.GetKeys(seen)
}
