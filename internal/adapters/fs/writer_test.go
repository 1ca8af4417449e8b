package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unexpire/internal/adapters/fs"
	"go.trai.ch/unexpire/internal/core/domain"
)

// expectedDigest pins the digest format. A change here alters what users see in logs.
const expectedDigest = "44bc2cf5ad770999"

func TestDigest_Golden(t *testing.T) {
	assert.Equal(t, expectedDigest, fs.Digest([]byte("abc")))
	assert.Len(t, fs.Digest(nil), 16)
}

func TestWriter_WriteIfStale_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unexpire_flags_gen.cc")
	content := []byte("generated\n")

	res, err := fs.NewWriter().WriteIfStale(path, content)
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, fs.Digest(content), res.Digest)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriter_WriteIfStale_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "chrome", "browser", "unexpire_flags_gen.h")

	res, err := fs.NewWriter().WriteIfStale(path, []byte("header\n"))
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.FileExists(t, path)
}

func TestWriter_WriteIfStale_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unexpire_flags_gen.cc")
	content := []byte("generated\n")
	w := fs.NewWriter()

	first, err := w.WriteIfStale(path, content)
	require.NoError(t, err)
	require.True(t, first.Written)

	// Backdate the file so a rewrite would be visible in the modification time.
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	second, err := w.WriteIfStale(path, content)
	require.NoError(t, err)
	assert.False(t, second.Written)
	assert.Equal(t, first.Digest, second.Digest)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "unchanged content must not touch the file")
}

func TestWriter_WriteIfStale_ReplacesDifferentContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.inc")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the new one\n"), domain.PrivateFilePerm))

	res, err := fs.NewWriter().WriteIfStale(path, []byte("new\n"))
	require.NoError(t, err)
	assert.True(t, res.Written)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestWriter_WriteIfStale_EmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.inc")
	w := fs.NewWriter()

	res, err := w.WriteIfStale(path, nil)
	require.NoError(t, err)
	assert.True(t, res.Written, "a missing file is stale even for empty content")

	res, err = w.WriteIfStale(path, []byte{})
	require.NoError(t, err)
	assert.False(t, res.Written)
}

func TestWriter_WriteIfStale_UnwritablePath(t *testing.T) {
	// A directory at the destination is unreadable as a file, so it counts as stale,
	// and the write that follows fails.
	dir := t.TempDir()

	_, err := fs.NewWriter().WriteIfStale(dir, []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactWriteFailed.Error())
}

func TestWriter_WriteIfStale_ParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "gen")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), domain.PrivateFilePerm))

	_, err := fs.NewWriter().WriteIfStale(filepath.Join(blocker, "out.h"), []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactDirCreateFailed.Error())
}

func TestWriter_IsStale(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(path, []byte("same"), domain.PrivateFilePerm))

	w := fs.NewWriter()
	assert.False(t, w.IsStale(path, []byte("same")))
	assert.True(t, w.IsStale(path, []byte("different")))
	assert.True(t, w.IsStale(filepath.Join(tmp, "missing"), []byte("same")))
	assert.True(t, w.IsStale(tmp, []byte("same")))
}
