package abc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHeaderBody(t *testing.T) {
	assert := assert.New(t)

	text := "X:1\nT:Cherokee Shuffle\nM:4/4\nK:D\nA B c d|\nT:not a title anymore"
	header, body := SplitHeaderBody(text)

	assert.Equal(header, []string{"X:1", "T:Cherokee Shuffle", "M:4/4", "K:D"})
	assert.Equal(body, []string{"A B c d|", "T:not a title anymore"})
}

func TestSplitHeaderBodyWithoutKeyLine(t *testing.T) {
	assert := assert.New(t)

	header, body := SplitHeaderBody("T:No Key Here\nC D E F|")

	// no K: line, so the body is the whole text but the title still scans
	assert.Equal(header, []string{"T:No Key Here", "C D E F|"})
	assert.Equal(body, []string{"T:No Key Here", "C D E F|"})
}

func TestSplitHeaderBodyKeyOnLastLine(t *testing.T) {
	assert := assert.New(t)

	header, body := SplitHeaderBody("T:Only Header\nK:G")

	assert.Equal(header, []string{"T:Only Header", "K:G"})
	assert.Equal(len(body), 0)
}

func TestExtractTitle(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ExtractTitle([]string{"X:1", "T:Angeline", "T:Second"}, "fb"), "Angeline")
	assert.Equal(ExtractTitle([]string{"T:  spaced out  "}, "fb"), "spaced out")
	assert.Equal(ExtractTitle([]string{"T:"}, "fb"), "fb")
	assert.Equal(ExtractTitle([]string{"X:1"}, "fb"), "fb")
}

func TestExtractKey(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ExtractKey([]string{"X:1", "K:Ador"}), "Ador")
	assert.Equal(ExtractKey([]string{"K:"}), "")
	assert.Equal(ExtractKey([]string{"X:1", "T:No Key"}), "C")
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tokens := Tokenize("^F G2 a,|c'")

	assert.Equal(tokens, []string{"^", "F", "G", "2", "a", ",", "|", "c", "'"})
}

func TestTokenizeCollapsesBarRuns(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Tokenize("C||D"), []string{"C", "|", "D"})
	assert.Equal(Tokenize("C| |D"), []string{"C", "|", "D"})
	assert.Equal(Tokenize("C ||| \n| D"), []string{"C", "|", "D"})
}

func TestTokenizeDropsStructuralChars(t *testing.T) {
	assert := assert.New(t)

	// parens and colons carry no pitch or bar information
	assert.Equal(Tokenize("(C D) E"), []string{"C", "D", "E"})
	assert.Equal(Tokenize("|:C D:|"), []string{"|", "C", "D", "|"})
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	score := Parse("X:1\nT:Test\nK:C\nC D E F|G A B c|", "hint")

	assert.Equal(score.Title, "Test")
	assert.Equal(score.Key, "C")
	assert.Equal(score.Tokens, []string{"C", "D", "E", "F", "|", "G", "A", "B", "c", "|"})
}

func TestParseFallsBackToHint(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Parse("K:C\nC D|", "my-file").Title, "my-file")
	assert.Equal(Parse("K:C\nC D|", "").Title, "Untitled")
}
