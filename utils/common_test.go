package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">a\nACGT\n"), 0o644))

	text, err := LoadText(path)
	require.NoError(t, err)
	assert.Equal(t, ">a\nACGT\n", text)
}

func TestLoadTextFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadText(filepath.Join(dir, "missing.fasta"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadText(dir)
	assert.Error(t, err)

	gz := filepath.Join(dir, "in.fasta.gz")
	require.NoError(t, os.WriteFile(gz, []byte{0x1F, 0x8B, 0x08, 0x00}, 0o644))
	_, err = LoadText(gz)
	assert.ErrorIs(t, err, ErrCompressed)
}
