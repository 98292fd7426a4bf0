package inbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/abc"
	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/song"
	"github.com/google/uuid"
)

// ImportNew sweeps the inbox for ABC sources, creates a song for each one
// (raw text preserved, empty mapping seeded), and moves the source into
// the processed directory. Returns the songs it imported.
func ImportNew(inboxDir, processedDir, songsDir string) []song.Song {
	var imported []song.Song
	entries, err := os.ReadDir(inboxDir)
	if err != nil {
		return imported
	}
	for _, e := range entries {
		if e.IsDir() || !hasAbcExt(e.Name()) {
			continue
		}
		path := filepath.Join(inboxDir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", e.Name(), err)
			continue
		}
		score := abc.Parse(string(data), stem(e.Name()))
		s := song.FromName(songsDir, score.Title)
		if err := s.WriteAbc(string(data)); err != nil {
			panic("Could not store song because: " + err.Error())
		}
		if _, err := os.Stat(s.MappingPath); err != nil {
			if err := s.SaveMapping(model.Mapping{}); err != nil {
				panic("Could not seed mapping because: " + err.Error())
			}
		}
		moveToProcessed(path, processedDir, e.Name())
		fmt.Printf("Imported %q from %v\n", s.Name, e.Name())
		imported = append(imported, s)
	}
	return imported
}

func hasAbcExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".txt" || ext == ".abc"
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// moveToProcessed archives a consumed source file. A name collision in
// the processed directory gets a uuid suffix instead of overwriting.
func moveToProcessed(src, processedDir, name string) {
	if err := os.MkdirAll(processedDir, 0777); err != nil {
		panic("Could not create processed dir because: " + err.Error())
	}
	dst := filepath.Join(processedDir, name)
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(name)
		dst = filepath.Join(processedDir, stem(name)+"-"+uuid.New().String()+ext)
	}
	if err := os.Rename(src, dst); err != nil {
		panic("Could not archive " + src + " because: " + err.Error())
	}
}
