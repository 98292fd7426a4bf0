package cmd

import (
	"fmt"

	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/inbox"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Imports new ABC files from the inbox",
	Long:  `Imports new ABC files from the inbox`,
	Run: func(cmd *cobra.Command, args []string) {
		runImport()
	},
}

// Import runs one inbox sweep. Exported so end to end tests can drive
// the full pipeline.
func Import() {
	runImport()
}

func runImport() {
	imported := inbox.ImportNew(
		constants.GetInboxDir(),
		constants.GetProcessedDir(),
		constants.GetSongsDir(),
	)
	if len(imported) == 0 {
		fmt.Printf("No new ABC files in %v (expects .txt or .abc).\n", constants.GetInboxDir())
	}
}
