package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Seat  int    `json:"seat"`
	Cards string `json:"cards"`
}

func TestValidateSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	// the first call writes the file, the second compares against it
	ValidateSnapshot(t, sample{Seat: 1, Cards: "12c,14h"}, 0)
	files, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	assert.NoError(t, err)
	assert.Len(t, files, 1)

	b, err := os.ReadFile(files[0])
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"seat\": 1,\n  \"cards\": \"12c,14h\"\n}\n", string(b))

	funcCount = make(map[string]int)
	ValidateSnapshot(t, sample{Seat: 1, Cards: "12c,14h"}, 0)
}
