package cmd

import (
	"github.com/ecopsychologer/abc-tab-converter/abc"
	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/song"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abctab",
	Short: "ABC notation to guitar tab arranger",
	Long:  `Arranges ABC notation into chord-block tab and single-note melody tab.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadSong reads and parses a stored song, or panics when it does not
// exist. Commands address songs by their sanitized directory name.
func loadSong(name string) (song.Song, model.Score) {
	s := song.FromName(constants.GetSongsDir(), name)
	text, err := s.ReadAbc()
	if err != nil {
		panic("Could not load song because: " + err.Error())
	}
	return s, abc.Parse(text, s.Name)
}
