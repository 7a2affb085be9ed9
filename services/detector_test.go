package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drillhub/api/errs"
)

// The precondition branches run before the docker client is used, so a
// nil client is fine here.

func modelArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "default.pt")
	require.NoError(t, os.WriteFile(path, []byte("weights"), 0o644))
	return path
}

func TestAnnotatePendingMissingModel(t *testing.T) {
	media := NewMediaStore(t.TempDir())
	_, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)

	detector := &Detector{
		Image:     "drillhub/detector:latest",
		ModelPath: filepath.Join(t.TempDir(), "missing.pt"),
	}
	err = detector.AnnotatePending(context.Background(), media, "alpha", "DH-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrModelNotFound)
	assert.Contains(t, err.Error(), "missing.pt")
}

func TestAnnotatePendingNoImages(t *testing.T) {
	media := NewMediaStore(t.TempDir())
	_, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)

	detector := &Detector{
		Image:     "drillhub/detector:latest",
		ModelPath: modelArtifact(t),
	}
	err = detector.AnnotatePending(context.Background(), media, "alpha", "DH-01")
	assert.ErrorIs(t, err, errs.ErrNoImages)
}

func TestAnnotatePendingNothingToDo(t *testing.T) {
	media := NewMediaStore(t.TempDir())
	dir, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "DH-01_1.jpg"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "processed_images", "processed_DH-01_1.jpg"), []byte("x"), 0o644))

	detector := &Detector{
		Image:     "drillhub/detector:latest",
		ModelPath: modelArtifact(t),
	}
	assert.NoError(t, detector.AnnotatePending(context.Background(), media, "alpha", "DH-01"))
}
