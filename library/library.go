package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/chord"
	"github.com/ecopsychologer/abc-tab-converter/util"
)

// Library is the global chord collection, a JSON file mapping chord names
// to the raw shape text the user entered.
type Library struct {
	Path   string
	Chords map[string]string
}

// Load reads the library at path. A missing file means an empty library;
// a file that does not parse is abandoned rather than guessed at.
func Load(path string) *Library {
	lib := &Library{Path: path, Chords: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return lib
	}
	if err := json.Unmarshal(data, &lib.Chords); err != nil {
		fmt.Println("Warning: chord library file is corrupted, starting fresh.")
		lib.Chords = map[string]string{}
	}
	return lib
}

// Save writes the library back to its file.
func (l *Library) Save() error {
	data, err := json.MarshalIndent(l.Chords, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}
	return os.WriteFile(l.Path, data, 0777)
}

// Add validates shape and stores it under name, replacing any previous
// shape. Nothing is written when validation fails.
func (l *Library) Add(name, shape string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("chord name must not be empty")
	}
	if _, err := chord.Normalize(shape); err != nil {
		return err
	}
	l.Chords[name] = shape
	return l.Save()
}

type Entry struct {
	Name  string
	Shape string
}

// List returns all entries sorted by name.
func (l *Library) List() []Entry {
	var entries []Entry
	for _, name := range util.GetKeys(l.Chords) {
		entries = append(entries, Entry{Name: name, Shape: l.Chords[name]})
	}
	return entries
}

// Find matches query case-insensitively against names and shapes.
func (l *Library) Find(query string) []Entry {
	query = strings.ToLower(query)
	var entries []Entry
	for _, e := range l.List() {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Shape), query) {
			entries = append(entries, e)
		}
	}
	return entries
}

// Snapshot hands renderers their own copy of the name to shape map.
func (l *Library) Snapshot() map[string]string {
	chords := make(map[string]string, len(l.Chords))
	for name, shape := range l.Chords {
		chords[name] = shape
	}
	return chords
}
