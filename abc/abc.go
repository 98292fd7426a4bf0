package abc

import (
	"regexp"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/model"
)

var tokenRe = regexp.MustCompile(`\^|_|=|[A-Ga-g]|[,']|\d+|\|+|\s+|\(|\)|:`)

// SplitHeaderBody separates an ABC text into header and body lines. The
// header runs through the first K: line inclusive; everything after it is
// body. Without a K: line the whole text counts as body, though the
// header slice still holds every line so title extraction keeps working.
func SplitHeaderBody(text string) (header, body []string) {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		header = append(header, ln)
		if strings.HasPrefix(strings.TrimSpace(ln), "K:") {
			return header, append(body, lines[i+1:]...)
		}
	}
	return header, lines
}

// ExtractTitle returns the value of the first T: field, or fallback when
// no T: line exists or its value is empty.
func ExtractTitle(header []string, fallback string) string {
	for _, ln := range header {
		if strings.HasPrefix(strings.TrimSpace(ln), "T:") {
			if t := strings.TrimSpace(strings.SplitN(ln, ":", 2)[1]); t != "" {
				return t
			}
			return fallback
		}
	}
	return fallback
}

// ExtractKey returns the value of the first K: field, or "C" when the
// text has no K: line at all.
func ExtractKey(header []string) string {
	for _, ln := range header {
		if strings.HasPrefix(strings.TrimSpace(ln), "K:") {
			return strings.TrimSpace(strings.SplitN(ln, ":", 2)[1])
		}
	}
	return "C"
}

// Tokenize scans body text into raw tokens: accidentals, note letters,
// octave marks, duration digit-runs and bar markers. Whitespace, parens
// and colons are dropped, and any run of bar characters, even one broken
// up by whitespace, collapses to a single BarMarker.
func Tokenize(body string) []model.Token {
	var tokens []model.Token
	for _, t := range tokenRe.FindAllString(body, -1) {
		switch {
		case strings.TrimSpace(t) == "" || t == "(" || t == ")" || t == ":":
			continue
		case t[0] == '|':
			if n := len(tokens); n == 0 || tokens[n-1] != model.BarMarker {
				tokens = append(tokens, model.BarMarker)
			}
		default:
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Parse turns a full ABC text into a Score. titleHint names the score
// when the text carries no usable T: field; an empty hint falls back to
// "Untitled".
func Parse(text, titleHint string) model.Score {
	if titleHint == "" {
		titleHint = "Untitled"
	}
	header, body := SplitHeaderBody(text)
	return model.Score{
		Title:  ExtractTitle(header, titleHint),
		Key:    ExtractKey(header),
		Tokens: Tokenize(strings.Join(body, "\n")),
	}
}
