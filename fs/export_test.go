package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/meetparse/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	t.Parallel()

	t.Run("commit replaces output directory", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "meetings")
		require.NoError(t, os.MkdirAll(out, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(out, "old.md"), []byte("old"), 0644))

		e := fs.NewExport(out)
		require.NoError(t, os.MkdirAll(e.Dir(), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(e.Dir(), "new.md"), []byte("new"), 0644))

		require.NoError(t, e.Commit())

		assert.FileExists(t, filepath.Join(out, "new.md"))
		assert.NoFileExists(t, filepath.Join(out, "old.md"))
		assert.NoDirExists(t, e.Dir())
	})

	t.Run("commit without files creates empty output", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "meetings")
		e := fs.NewExport(out)

		require.NoError(t, e.Commit())

		assert.DirExists(t, out)
	})

	t.Run("abort keeps previous output", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "meetings")
		require.NoError(t, os.MkdirAll(out, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(out, "old.md"), []byte("old"), 0644))

		e := fs.NewExport(out)
		require.NoError(t, os.MkdirAll(e.Dir(), 0755))

		require.NoError(t, e.Abort())

		assert.FileExists(t, filepath.Join(out, "old.md"))
		assert.NoDirExists(t, e.Dir())
	})

	t.Run("begin discards files from an interrupted export", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "meetings")
		e := fs.NewExport(out)
		require.NoError(t, os.MkdirAll(e.Dir(), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(e.Dir(), "stale.md"), []byte("stale"), 0644))

		require.NoError(t, e.Begin())
		require.NoError(t, os.WriteFile(filepath.Join(e.Dir(), "new.md"), []byte("new"), 0644))
		require.NoError(t, e.Commit())

		assert.FileExists(t, filepath.Join(out, "new.md"))
		assert.NoFileExists(t, filepath.Join(out, "stale.md"))
	})

	t.Run("staging directory sits next to output", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, filepath.Join("exports", "meetings.tmp"), fs.NewExport("exports/meetings/").Dir())
	})
}
