package chord

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/pitch"
)

const numStrings = 6

// Muted marks a string that is not played.
const Muted = "x"

var ErrInvalidShape = errors.New("invalid chord shape")

// Shape is a normalized chord fingering, low E string first. Each entry
// is a fret number or Muted.
type Shape [numStrings]string

var (
	compactRe = regexp.MustCompile(`^[0-9xX]{6}$`)
	sepRe     = regexp.MustCompile(`[,/|]\s*`)
	greedyRe  = regexp.MustCompile(`x|\d+`)
)

// Normalize accepts the shape notations users actually type, compact
// "022100", separated "0-2-2-1-0-0" or "x,3,2,0,1,0", and spaced
// "0 2 2 1 0 0". Strategies run in a fixed order and the first one that
// yields anything wins; the result must come out as exactly six fret or
// mute entries.
func Normalize(raw string) (Shape, error) {
	var s Shape
	parts := split(strings.TrimSpace(raw))
	if len(parts) != numStrings {
		return s, fmt.Errorf("%w: need 6 entries (E A D G B e), got %d from %q", ErrInvalidShape, len(parts), raw)
	}
	for i, p := range parts {
		if p != Muted && !validFret(p) {
			return s, fmt.Errorf("%w: bad entry %q in %q", ErrInvalidShape, p, raw)
		}
		s[i] = p
	}
	return s, nil
}

func split(raw string) []string {
	if compactRe.MatchString(raw) {
		parts := make([]string, 0, numStrings)
		for _, r := range strings.ToLower(raw) {
			parts = append(parts, string(r))
		}
		return parts
	}
	if strings.ContainsAny(raw, ",/|") {
		var parts []string
		for _, p := range sepRe.Split(raw, -1) {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				parts = append(parts, p)
			}
		}
		return parts
	}
	if strings.Contains(raw, " ") {
		var parts []string
		for _, p := range strings.Fields(raw) {
			parts = append(parts, strings.ToLower(p))
		}
		return parts
	}
	return greedyRe.FindAllString(strings.ToLower(raw), -1)
}

func validFret(p string) bool {
	n, err := strconv.Atoi(p)
	return err == nil && n >= 0 && n <= pitch.MaxFret
}
