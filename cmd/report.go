package cmd

import (
	"fmt"

	"github.com/ecopsychologer/abc-tab-converter/abc"
	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/library"
	"github.com/ecopsychologer/abc-tab-converter/song"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	"github.com/ecopsychologer/abc-tab-converter/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Creates a report over the chord library, songs and inbox`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type songsReport struct {
	numSongs     int64
	notesPerSong []int64
	numMapped    []int64
	numMissing   []int64
}

func analyzeSongs() songsReport {
	var report songsReport

	for _, s := range song.List(constants.GetSongsDir()) {
		text, err := s.ReadAbc()
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", s.Name, err)
			continue
		}
		score := abc.Parse(text, s.Name)
		mapping := s.LoadMapping()
		notes := tab.NoteInventory(score.Tokens)

		var missing int64
		for _, n := range notes {
			if _, ok := mapping[n]; !ok {
				missing++
			}
		}

		report.numSongs++
		report.notesPerSong = append(report.notesPerSong, int64(len(notes)))
		report.numMapped = append(report.numMapped, int64(len(notes))-missing)
		report.numMissing = append(report.numMissing, missing)
	}

	return report
}

func report() {
	lib := library.Load(constants.GetChordsPath())
	songsReport := analyzeSongs()
	pending := util.GatherAbcPaths(constants.GetInboxDir(), 0)

	fmt.Printf("chords in library: %v\n", len(lib.Chords))
	fmt.Printf("songsReport.numSongs: %v\n", songsReport.numSongs)
	fmt.Printf("songsReport.notesPerSong: %v\n", songsReport.notesPerSong)
	fmt.Printf("distinct notes mapped: %v of %v\n", util.Sum(songsReport.numMapped), util.Sum(songsReport.notesPerSong))
	fmt.Printf("songsReport.numMissing: %v\n", songsReport.numMissing)
	fmt.Printf("pending imports in inbox: %v\n", len(pending))
}
