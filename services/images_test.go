package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploads(t *testing.T, count int) []*multipart.FileHeader {
	t.Helper()
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for i := 0; i < count; i++ {
		fw, err := w.CreateFormFile("images", "upload.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("not a real jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&b, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"]
}

func TestStoreImagesStartsAtOne(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	stored, err := media.StoreImages("alpha", "DH-01", uploads(t, 1))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, filepath.Join("alpha", "DH-01", "images", "DH-01_1.jpg"), stored[0])
}

func TestStoreImagesContinuesFromHighestIndex(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	dir, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	for _, name := range []string{"DH-01_1.jpg", "DH-01_2.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", name), []byte("x"), 0o644))
	}

	stored, err := media.StoreImages("alpha", "DH-01", uploads(t, 2))
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, filepath.Join("alpha", "DH-01", "images", "DH-01_3.jpg"), stored[0])
	assert.Equal(t, filepath.Join("alpha", "DH-01", "images", "DH-01_4.jpg"), stored[1])
}

func TestListImagesPadsShorterSide(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	dir, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	for _, name := range []string{"DH-01_1.jpg", "DH-01_2.jpg", "DH-01_3.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", name), []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "processed_images", "processed_DH-01_1.jpg"), []byte("x"), 0o644))

	pairs, err := media.ListImages("alpha", "DH-01")
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, filepath.Join("alpha", "DH-01", "processed_images", "processed_DH-01_1.jpg"), pairs[0].Processed)
	assert.Empty(t, pairs[1].Processed)
	assert.Empty(t, pairs[2].Processed)
}

func TestListImagesOrdersNumerically(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	dir, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	for _, name := range []string{"DH-01_10.jpg", "DH-01_2.jpg", "DH-01_1.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", name), []byte("x"), 0o644))
	}

	pairs, err := media.ListImages("alpha", "DH-01")
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Contains(t, pairs[0].Raw, "DH-01_1.jpg")
	assert.Contains(t, pairs[1].Raw, "DH-01_2.jpg")
	assert.Contains(t, pairs[2].Raw, "DH-01_10.jpg")
}

func TestListImagesMixedNamesOrderDeterministic(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	dir, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	for _, name := range []string{"scan.jpg", "DH-01_10.jpg", "notes.txt", "DH-01_2.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", name), []byte("x"), 0o644))
	}

	pairs, err := media.ListImages("alpha", "DH-01")
	require.NoError(t, err)
	require.Len(t, pairs, 4)
	assert.Contains(t, pairs[0].Raw, "DH-01_2.jpg")
	assert.Contains(t, pairs[1].Raw, "DH-01_10.jpg")
	assert.Contains(t, pairs[2].Raw, "notes.txt")
	assert.Contains(t, pairs[3].Raw, "scan.jpg")
}

func TestPendingImagesExcludesProcessed(t *testing.T) {
	media := NewMediaStore(t.TempDir())

	dir, err := media.EnsureDrillhole("alpha", "DH-01")
	require.NoError(t, err)
	for _, name := range []string{"DH-01_1.jpg", "DH-01_2.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "images", name), []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "processed_images", "processed_DH-01_1.jpg"), []byte("x"), 0o644))

	raw, pending, err := media.PendingImages("alpha", "DH-01")
	require.NoError(t, err)
	assert.Len(t, raw, 2)
	assert.Equal(t, []string{"DH-01_2.jpg"}, pending)
}
