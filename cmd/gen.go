package cmd

import (
	"fmt"

	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/library"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	"github.com/spf13/cobra"
)

var barsPerLine int

func init() {
	melodyCmd.Flags().IntVar(&barsPerLine, "bars-per-line", tab.DefaultBarsPerLine, "bars per printed tab line")
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(melodyCmd)
}

var genCmd = &cobra.Command{
	Use:   "gen [song]",
	Short: "Generates the chord-block tab",
	Long:  `Generates the chord-block tab from the song's note mapping`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, score := loadSong(args[0])
		lib := library.Load(constants.GetChordsPath())
		text := tab.RenderChordTab(score.Tokens, s.LoadMapping(), lib.Snapshot())
		if err := s.WriteTab(text); err != nil {
			panic("Could not write tab because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", s.TabPath)
	},
}

var melodyCmd = &cobra.Command{
	Use:   "melody [song]",
	Short: "Generates the single-note melody tab",
	Long:  `Generates the single-note melody tab`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, score := loadSong(args[0])
		text := tab.GenerateMelody(score, pitch.Standard, barsPerLine)
		if err := s.WriteMelodyTab(text); err != nil {
			panic("Could not write melody tab because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", s.MelodyTabPath)
	},
}
