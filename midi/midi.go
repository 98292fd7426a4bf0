package midi

import (
	"io"
	"os"

	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	velocity        = 100
	channel         = 0
	tempoBPM        = 120
)

// WriteScore serializes the score's melody as a one-track Standard MIDI
// File. Every note that resolves to a playable position becomes a quarter
// note on a fixed grid; notes that would render as rest columns in the
// text tab are skipped here too.
func WriteScore(score model.Score, tuning pitch.Tuning, w io.Writer) error {
	clock := smf.MetricTicks(ticksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(score.Title))
	tr.Add(0, smf.MetaTempo(tempoBPM))

	for _, note := range tab.NotesFromTokens(score.Tokens) {
		if note == model.BarMarker {
			continue
		}
		key, err := pitch.NoteToMidi(note)
		if err != nil {
			continue
		}
		if _, ok := tuning.ChooseFret(key); !ok {
			continue
		}
		tr.Add(0, gomidi.NoteOn(channel, uint8(key), velocity))
		tr.Add(clock.Ticks4th(), gomidi.NoteOff(channel, uint8(key)))
	}

	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

// WriteScoreFile writes the melody SMF to path.
func WriteScoreFile(score model.Score, tuning pitch.Tuning, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteScore(score, tuning, f)
}
