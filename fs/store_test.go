package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/drivetext"
	"github.com/fwojciec/drivetext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes content under base dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		err := store.Save(context.Background(), "materi_raw.txt", "Zażółć gęślą jaźń")

		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, "materi_raw.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Zażółć gęślą jaźń", string(got))
	})

	t.Run("replaces existing artifact", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)
		require.NoError(t, store.Save(context.Background(), "materi_clean.txt", "old"))

		err := store.Save(context.Background(), "materi_clean.txt", "new")

		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, "materi_clean.txt"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		err := store.Save(context.Background(), filepath.Join("out", "run1", "raw.txt"), "text")

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "out", "run1", "raw.txt"))
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		require.NoError(t, store.Save(context.Background(), "materi_raw.txt", "text"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "materi_raw.txt", entries[0].Name())
	})

	t.Run("absolute names ignore base dir", func(t *testing.T) {
		t.Parallel()

		target := filepath.Join(t.TempDir(), "abs.txt")
		store := fs.NewStore(t.TempDir())

		require.NoError(t, store.Save(context.Background(), target, "text"))

		assert.Equal(t, target, store.Path(target))
		assert.FileExists(t, target)
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		err := store.Save(context.Background(), "", "text")

		assert.Equal(t, drivetext.EINVALID, drivetext.ErrorCode(err))
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Save(ctx, "materi_raw.txt", "text")

		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, filepath.Join(dir, "materi_raw.txt"))
	})

	t.Run("fails when target is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0755))
		store := fs.NewStore(dir)

		err := store.Save(context.Background(), "taken", "text")

		require.Error(t, err)
	})
}
