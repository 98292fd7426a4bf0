package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteTabFile(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "tab.pdf")

	tab := strings.Join([]string{
		"e| - - 0 1 | 3 5 7 8",
		"B| 1 3 - - | - - - -",
	}, "\n")
	assert.Nil(WriteTabFile("Test", tab, path))

	data, err := os.ReadFile(path)
	assert.Nil(err)
	assert.Equal(string(data[:5]), "%PDF-")
}

func TestWriteTabFileLongTabPaginates(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "tab.pdf")

	// far more rows than fit one page
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = "e| 0 1 2"
	}
	assert.Nil(WriteTabFile("Long", strings.Join(lines, "\n"), path))

	info, err := os.Stat(path)
	assert.Nil(err)
	assert.True(info.Size() > 0)
}
