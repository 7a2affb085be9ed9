package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ImagePair is one row of the listing: a raw image and the processed copy
// occupying the same position. Either side may be empty when the lists
// have different lengths.
type ImagePair struct {
	Raw       string `json:"raw"`
	Processed string `json:"processed"`
}

// StoreImages writes each uploaded file as <hole>_<n>.jpg, where n
// continues from the highest index already present, and returns the
// stored paths relative to the media root. The drillhole lock is held
// across the scan and the writes, so two concurrent uploads cannot claim
// the same index.
func (m *MediaStore) StoreImages(project, hole string, files []*multipart.FileHeader) ([]string, error) {
	dir, err := m.EnsureDrillhole(project, hole)
	if err != nil {
		return nil, err
	}
	target := filepath.Join(dir, imagesDir)

	l := m.holeLock(project, hole)
	l.Lock()
	defer l.Unlock()

	next, err := nextIndex(target, hole)
	if err != nil {
		return nil, err
	}

	var stored []string
	for _, fh := range files {
		name := fmt.Sprintf("%s_%d.jpg", hole, next)
		if err := saveUpload(fh, filepath.Join(target, name)); err != nil {
			return stored, err
		}
		stored = append(stored, filepath.Join(project, hole, imagesDir, name))
		next++
	}
	return stored, nil
}

// ListImages pairs the raw and processed listings by position, padding the
// shorter side.
func (m *MediaStore) ListImages(project, hole string) ([]ImagePair, error) {
	dir, err := m.EnsureDrillhole(project, hole)
	if err != nil {
		return nil, err
	}
	raw, err := listDir(filepath.Join(dir, imagesDir))
	if err != nil {
		return nil, err
	}
	processed, err := listDir(filepath.Join(dir, processedDir))
	if err != nil {
		return nil, err
	}

	n := len(raw)
	if len(processed) > n {
		n = len(processed)
	}
	pairs := make([]ImagePair, 0, n)
	for i := 0; i < n; i++ {
		var p ImagePair
		if i < len(raw) {
			p.Raw = filepath.Join(project, hole, imagesDir, raw[i])
		}
		if i < len(processed) {
			p.Processed = filepath.Join(project, hole, processedDir, processed[i])
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// PendingImages returns raw image names that have no processed counterpart
// yet.
func (m *MediaStore) PendingImages(project, hole string) ([]string, []string, error) {
	dir, err := m.EnsureDrillhole(project, hole)
	if err != nil {
		return nil, nil, err
	}
	raw, err := listDir(filepath.Join(dir, imagesDir))
	if err != nil {
		return nil, nil, err
	}
	processed, err := listDir(filepath.Join(dir, processedDir))
	if err != nil {
		return nil, nil, err
	}

	done := make(map[string]bool, len(processed))
	for _, name := range processed {
		done[strings.TrimPrefix(name, "processed_")] = true
	}
	var pending []string
	for _, name := range raw {
		if !done[name] {
			pending = append(pending, name)
		}
	}
	return raw, pending, nil
}

// nextIndex scans for <hole>_<n>.jpg files and returns max(n)+1, or 1 for
// an empty directory. Files not matching the pattern are ignored.
func nextIndex(dir, hole string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	max := 0
	prefix := hole + "_"
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".jpg") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".jpg"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

// listDir returns file names with numerically indexed names first, ordered
// by their trailing index, followed by the remaining names lexically.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ni, oki := trailingIndex(names[i])
		nj, okj := trailingIndex(names[j])
		if oki != okj {
			return oki
		}
		if oki && ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
	return names, nil
}

func trailingIndex(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	i := strings.LastIndex(base, "_")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(base[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
