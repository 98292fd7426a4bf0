package cmd

import (
	"fmt"

	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/library"
	"github.com/spf13/cobra"
)

func init() {
	chordsCmd.AddCommand(chordsAddCmd)
	chordsCmd.AddCommand(chordsListCmd)
	chordsCmd.AddCommand(chordsFindCmd)
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Manages the global chord library",
	Long:  `Manages the global chord library`,
}

var chordsAddCmd = &cobra.Command{
	Use:   "add [name] [shape]",
	Short: "Adds or replaces a chord shape",
	Long: `Adds or replaces a chord shape. Shapes run low E to high e and
take compact (022100), separated (0-2-2-1-0-0) or spaced (0 2 2 1 0 0)
notation, with x for a muted string.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		lib := library.Load(constants.GetChordsPath())
		if err := lib.Add(args[0], args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added %v = %v\n", args[0], args[1])
	},
}

var chordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all chords",
	Long:  `Lists all chords`,
	Run: func(cmd *cobra.Command, args []string) {
		lib := library.Load(constants.GetChordsPath())
		entries := lib.List()
		if len(entries) == 0 {
			fmt.Println("No chords in library.")
			return
		}
		for _, e := range entries {
			fmt.Printf("  %-10v %v\n", e.Name, e.Shape)
		}
	},
}

var chordsFindCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Finds chords by name or shape",
	Long:  `Finds chords by name or shape`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lib := library.Load(constants.GetChordsPath())
		entries := lib.Find(args[0])
		if len(entries) == 0 {
			fmt.Printf("No chords matching %q.\n", args[0])
			return
		}
		for _, e := range entries {
			fmt.Printf("  %-10v %v\n", e.Name, e.Shape)
		}
	},
}
