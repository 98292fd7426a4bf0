package cmd

import (
	"fmt"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/library"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	"github.com/ecopsychologer/abc-tab-converter/util"
	"github.com/spf13/cobra"
)

func init() {
	mapCmd.AddCommand(mapSetCmd)
	mapCmd.AddCommand(mapDelCmd)
	mapCmd.AddCommand(mapStatusCmd)
	rootCmd.AddCommand(mapCmd)
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Maps a song's note tokens to chords",
	Long:  `Maps a song's note tokens to chords`,
}

var mapSetCmd = &cobra.Command{
	Use:   "set [song] [note] [chord]",
	Short: "Maps a note token to a chord name",
	Long: `Maps a note token to a chord name. Note tokens carry their
accidental and octave marks but no duration, so ^F and F map separately
while F2 and F are the same note.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := loadSong(args[0])
		mapping := s.LoadMapping()
		mapping[args[1]] = args[2]
		if err := s.SaveMapping(mapping); err != nil {
			panic("Could not save mapping because: " + err.Error())
		}
		fmt.Printf("Mapped %v = %v\n", args[1], args[2])

		lib := library.Load(constants.GetChordsPath())
		if _, ok := lib.Chords[args[2]]; !ok {
			fmt.Printf("Note: %v has no shape yet, add one with: abctab chords add %q [shape]\n", args[2], args[2])
		}
	},
}

var mapDelCmd = &cobra.Command{
	Use:   "del [song] [note]",
	Short: "Removes a note's mapping",
	Long:  `Removes a note's mapping`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, _ := loadSong(args[0])
		mapping := s.LoadMapping()
		if _, ok := mapping[args[1]]; !ok {
			fmt.Printf("No mapping for %v\n", args[1])
			return
		}
		delete(mapping, args[1])
		if err := s.SaveMapping(mapping); err != nil {
			panic("Could not save mapping because: " + err.Error())
		}
		fmt.Printf("Removed mapping for %v\n", args[1])
	},
}

var mapStatusCmd = &cobra.Command{
	Use:   "status [song]",
	Short: "Shows mapping coverage for a song",
	Long:  `Shows mapping coverage for a song`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, score := loadSong(args[0])
		mapping := s.LoadMapping()
		notes := tab.NoteInventory(score.Tokens)

		fmt.Printf("Notes in score: %v\n", strings.Join(notes, ", "))
		var missing []string
		for _, n := range notes {
			if _, ok := mapping[n]; !ok {
				missing = append(missing, n)
			}
		}
		if len(notes) > len(missing) {
			fmt.Println("Mapped:")
			for _, n := range util.GetKeys(mapping) {
				fmt.Printf("  %v = %v\n", n, mapping[n])
			}
		}
		if len(missing) > 0 {
			fmt.Printf("Missing (%v): %v\n", len(missing), strings.Join(missing, ", "))
		} else {
			fmt.Println("All notes mapped.")
		}
	},
}
