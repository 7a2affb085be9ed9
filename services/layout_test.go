package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDrillholeIsIdempotent(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	first, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)

	second, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, sub := range []string{"images", "processed_images"} {
		info, err := os.Stat(filepath.Join(first, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureProjectReturnsPath(t *testing.T) {
	root := t.TempDir()
	media := NewMediaStore(root)

	path, err := media.EnsureProject("alpha")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "alpha"), path)
}

func TestRemoveIsSilentOnMissingPath(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	assert.NoError(t, media.RemoveProject("never-created"))
	assert.NoError(t, media.RemoveDrillhole("never-created", "DH-99"))
}

func TestRemoveProjectDeletesTree(t *testing.T) {
	root := t.TempDir()
	media := NewMediaStore(root)

	path, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(path, "images", "DH-01_1.jpg"), []byte("x"), 0o644))

	require.NoError(t, media.RemoveProject("alpha"))
	_, err = os.Stat(filepath.Join(root, "alpha"))
	assert.True(t, os.IsNotExist(err))
}
