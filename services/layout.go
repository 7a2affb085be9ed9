package services

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	imagesDir    = "images"
	processedDir = "processed_images"
)

// MediaStore maps project and drillhole identifiers onto the on-disk tree
// <root>/<project>/<hole>/{images,processed_images}. Creation is
// idempotent and removal of an absent path is a no-op. Image ingestion is
// serialized per drillhole through the keyed locks.
type MediaStore struct {
	Root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMediaStore(root string) *MediaStore {
	return &MediaStore{
		Root:  root,
		locks: make(map[string]*sync.Mutex),
	}
}

// EnsureProject creates the project directory if needed and returns its
// path.
func (m *MediaStore) EnsureProject(project string) (string, error) {
	path := filepath.Join(m.Root, project)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// EnsureDrillhole creates the drillhole directory with its images and
// processed_images subdirectories and returns the drillhole path.
func (m *MediaStore) EnsureDrillhole(project, hole string) (string, error) {
	path := filepath.Join(m.Root, project, hole)
	for _, dir := range []string{path, filepath.Join(path, imagesDir), filepath.Join(path, processedDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return path, nil
}

func (m *MediaStore) RemoveProject(project string) error {
	return os.RemoveAll(filepath.Join(m.Root, project))
}

func (m *MediaStore) RemoveDrillhole(project, hole string) error {
	return os.RemoveAll(filepath.Join(m.Root, project, hole))
}

// RenameDrillhole moves a drillhole directory to follow a hole id change.
// A missing source directory is a no-op.
func (m *MediaStore) RenameDrillhole(project, oldHole, newHole string) error {
	src := filepath.Join(m.Root, project, oldHole)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return os.Rename(src, filepath.Join(m.Root, project, newHole))
}

func (m *MediaStore) holeLock(project, hole string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := project + "/" + hole
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	return l
}
