package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "media", cfg.MediaRoot)
	assert.Equal(t, ";", cfg.CSVDelimiter)
	assert.Equal(t, "models/default.pt", cfg.Detector.ModelPath)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillhub.yaml")
	yaml := "listen_addr: \":9000\"\nmedia_root: /srv/media\ncsv_delimiter: \",\"\ndetector:\n  image: yolo:v8\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/srv/media", cfg.MediaRoot)
	assert.Equal(t, ",", cfg.CSVDelimiter)
	assert.Equal(t, "yolo:v8", cfg.Detector.Image)
	assert.Equal(t, "models/default.pt", cfg.Detector.ModelPath)
}

func TestLoadRejectsLongDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("csv_delimiter: \";;\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
