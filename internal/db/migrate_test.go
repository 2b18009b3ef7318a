package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_more.up.sql", "0001_init.up.sql", "0001_init.down.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0003_dir.up.sql"), 0o755))

	files, err := upFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.up.sql", "0002_more.up.sql"}, files)
}

func TestUpFilesMissingDir(t *testing.T) {
	_, err := upFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
