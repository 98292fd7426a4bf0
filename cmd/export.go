package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/library"
	"github.com/ecopsychologer/abc-tab-converter/midi"
	"github.com/ecopsychologer/abc-tab-converter/pdf"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	"github.com/spf13/cobra"
)

var (
	midiOut string
	pdfOut  string
	pdfKind string
)

func init() {
	exportMidiCmd.Flags().StringVarP(&midiOut, "out", "o", "", "output path (defaults into the song dir)")
	exportPdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "", "output path (defaults into the song dir)")
	exportPdfCmd.Flags().StringVar(&pdfKind, "kind", "melody", "which tab to export: melody or chords")
	exportCmd.AddCommand(exportMidiCmd)
	exportCmd.AddCommand(exportPdfCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports a song to other formats",
	Long:  `Exports a song to other formats`,
}

var exportMidiCmd = &cobra.Command{
	Use:   "midi [song]",
	Short: "Exports the melody as a Standard MIDI File",
	Long:  `Exports the melody as a Standard MIDI File`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, score := loadSong(args[0])
		out := midiOut
		if out == "" {
			out = filepath.Join(s.Path, "melody.mid")
		}
		if err := midi.WriteScoreFile(score, pitch.Standard, out); err != nil {
			panic("Could not write midi because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", out)
	},
}

var exportPdfCmd = &cobra.Command{
	Use:   "pdf [song]",
	Short: "Exports a tab as PDF",
	Long:  `Exports a tab as PDF`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, score := loadSong(args[0])

		var text string
		switch pdfKind {
		case "melody":
			text = tab.GenerateMelody(score, pitch.Standard, tab.DefaultBarsPerLine)
		case "chords":
			lib := library.Load(constants.GetChordsPath())
			text = tab.RenderChordTab(score.Tokens, s.LoadMapping(), lib.Snapshot())
		default:
			fmt.Printf("Error: unknown kind %q (want melody or chords)\n", pdfKind)
			return
		}

		out := pdfOut
		if out == "" {
			out = filepath.Join(s.Path, pdfKind+".pdf")
		}
		if err := pdf.WriteTabFile(score.Title, text, out); err != nil {
			panic("Could not write pdf because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", out)
	},
}
