package song

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ecopsychologer/abc-tab-converter/model"
)

const (
	abcFile       = "abc.txt"
	mappingFile   = "mapping.json"
	tabFile       = "tab.txt"
	melodyTabFile = "melody_tab.txt"
)

var unsafeRe = regexp.MustCompile(`[^A-Za-z0-9._\- ]+`)

// Song locates one song's files under the songs directory.
type Song struct {
	Name          string
	Path          string
	AbcPath       string
	MappingPath   string
	TabPath       string
	MelodyTabPath string
}

// FromName sanitizes name into a directory-safe song identity. Two titles
// that sanitize alike are the same song.
func FromName(songsDir, name string) Song {
	safe := strings.TrimSpace(unsafeRe.ReplaceAllString(name, "_"))
	if safe == "" {
		safe = "Untitled"
	}
	path := filepath.Join(songsDir, safe)
	return Song{
		Name:          safe,
		Path:          path,
		AbcPath:       filepath.Join(path, abcFile),
		MappingPath:   filepath.Join(path, mappingFile),
		TabPath:       filepath.Join(path, tabFile),
		MelodyTabPath: filepath.Join(path, melodyTabFile),
	}
}

func (s Song) EnsureDir() error {
	return os.MkdirAll(s.Path, 0777)
}

// Exists reports whether the song has an abc.txt on disk.
func (s Song) Exists() bool {
	_, err := os.Stat(s.AbcPath)
	return err == nil
}

func (s Song) ReadAbc() (string, error) {
	data, err := os.ReadFile(s.AbcPath)
	if err != nil {
		return "", fmt.Errorf("no abc source for %v: %w", s.Name, err)
	}
	return string(data), nil
}

// WriteAbc stores the raw ABC source exactly as received.
func (s Song) WriteAbc(text string) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.AbcPath, []byte(text), 0777)
}

// LoadMapping reads mapping.json. A missing or corrupted file comes back
// as an empty mapping so rendering always has something to work with.
func (s Song) LoadMapping() model.Mapping {
	data, err := os.ReadFile(s.MappingPath)
	if err != nil {
		return model.Mapping{}
	}
	var m model.Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		fmt.Printf("Warning: mapping for %v is corrupted, starting empty.\n", s.Name)
		return model.Mapping{}
	}
	if m == nil {
		m = model.Mapping{}
	}
	return m
}

func (s Song) SaveMapping(m model.Mapping) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := s.EnsureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.MappingPath, data, 0777)
}

func (s Song) WriteTab(text string) error {
	return os.WriteFile(s.TabPath, []byte(text), 0777)
}

func (s Song) WriteMelodyTab(text string) error {
	return os.WriteFile(s.MelodyTabPath, []byte(text), 0777)
}

// Rename copies the song's files into a new directory and removes the old
// one. It refuses to clobber an existing song.
func (s Song) Rename(songsDir, newName string) (Song, error) {
	dst := FromName(songsDir, newName)
	if dst.Path == s.Path {
		return s, nil
	}
	if _, err := os.Stat(dst.Path); err == nil {
		return s, fmt.Errorf("a song named %v already exists", dst.Name)
	}
	if err := dst.EnsureDir(); err != nil {
		return s, err
	}
	pairs := [][2]string{
		{s.AbcPath, dst.AbcPath},
		{s.MappingPath, dst.MappingPath},
		{s.TabPath, dst.TabPath},
		{s.MelodyTabPath, dst.MelodyTabPath},
	}
	for _, pair := range pairs {
		data, err := os.ReadFile(pair[0])
		if err != nil {
			continue
		}
		if err := os.WriteFile(pair[1], data, 0777); err != nil {
			return s, err
		}
	}
	os.RemoveAll(s.Path)
	return dst, nil
}

// List returns every song that has an abc.txt, sorted by name.
func List(songsDir string) []Song {
	entries, err := os.ReadDir(songsDir)
	if err != nil {
		return nil
	}
	var songs []Song
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		s := FromName(songsDir, e.Name())
		if s.Exists() {
			songs = append(songs, s)
		}
	}
	return songs
}
