package cmd

import (
	"fmt"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/abc"
	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/db"
	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/song"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	"github.com/spf13/cobra"
)

func init() {
	songsCmd.AddCommand(songsListCmd)
	songsCmd.AddCommand(songsInfoCmd)
	songsCmd.AddCommand(songsRenameCmd)
	rootCmd.AddCommand(songsCmd)
}

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "Manages stored songs",
	Long:  `Manages stored songs`,
}

var songsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored songs",
	Long:  `Lists stored songs`,
	Run: func(cmd *cobra.Command, args []string) {
		songs := song.List(constants.GetSongsDir())
		if len(songs) == 0 {
			fmt.Println("No songs yet. Drop ABC files in the inbox and run import.")
			return
		}
		for _, s := range songs {
			fmt.Printf("  %v\n", s.Name)
		}
	},
}

var songsInfoCmd = &cobra.Command{
	Use:   "info [song]",
	Short: "Shows a song's notes and mapping coverage",
	Long:  `Shows a song's notes and mapping coverage`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		info, err := songInfo(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Name:  %v\n", info.Name)
		fmt.Printf("Title: %v\n", info.Title)
		fmt.Printf("Key:   %v\n", info.Key)
		fmt.Printf("Notes in score: %v\n", strings.Join(info.Notes, ", "))
		fmt.Printf("Mapped: %v of %v\n", info.Mapped, len(info.Notes))
		if len(info.Missing) > 0 {
			fmt.Printf("Missing (%v): %v\n", len(info.Missing), strings.Join(info.Missing, ", "))
		}
		if info.Metadata != nil {
			fmt.Printf("Artist: %v\n", info.Metadata.Artist)
			fmt.Printf("Release: %v (%v)\n", info.Metadata.Release, info.Metadata.Year)
		}
	},
}

var songsRenameCmd = &cobra.Command{
	Use:   "rename [song] [new name]",
	Short: "Renames a stored song",
	Long:  `Renames a stored song`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := song.FromName(constants.GetSongsDir(), args[0])
		if !s.Exists() {
			fmt.Printf("Error: no song named %v\n", s.Name)
			return
		}
		renamed, err := s.Rename(constants.GetSongsDir(), args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Renamed %v to %v\n", s.Name, renamed.Name)
	},
}

// songInfo assembles the song summary shared by the CLI and the API.
// Metadata only shows up when a metadata endpoint is configured.
func songInfo(name string) (model.SongInfo, error) {
	s := song.FromName(constants.GetSongsDir(), name)
	text, err := s.ReadAbc()
	if err != nil {
		return model.SongInfo{}, err
	}
	score := abc.Parse(text, s.Name)
	mapping := s.LoadMapping()
	notes := tab.NoteInventory(score.Tokens)
	var missing []string
	for _, n := range notes {
		if _, ok := mapping[n]; !ok {
			missing = append(missing, n)
		}
	}
	info := model.SongInfo{
		Name:    s.Name,
		Title:   score.Title,
		Key:     score.Key,
		Notes:   notes,
		Mapped:  len(notes) - len(missing),
		Missing: missing,
	}
	if metas := db.GetSongMetadatas([]string{s.Name}); len(metas) > 0 {
		if meta, ok := metas[s.Name]; ok {
			info.Metadata = &meta
		}
	}
	return info, nil
}
