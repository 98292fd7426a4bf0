package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "inbox poll interval")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watches the inbox and imports ABC files as they arrive",
	Long:  `Watches the inbox and imports ABC files as they arrive`,
	Run: func(cmd *cobra.Command, args []string) {
		watch()
	},
}

func snapshotInbox(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return strings.Join(names, "\n")
}

func watch() {
	inboxDir := constants.GetInboxDir()
	if err := os.MkdirAll(inboxDir, 0777); err != nil {
		panic("Could not create inbox dir because: " + err.Error())
	}
	fmt.Printf("Watching %v for new ABC files\n", inboxDir)

	// a multi-file drop should land as one sweep, so imports only fire
	// once the inbox has been quiet for a couple polls
	debounced := debounce.New(2 * watchInterval)
	last := snapshotInbox(inboxDir)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for range ticker.C {
		curr := snapshotInbox(inboxDir)
		if curr == last {
			continue
		}
		last = curr
		if curr == "" {
			continue
		}
		debounced(runImport)
	}
}
