package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sprint_edu_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageProviderSelection(t *testing.T) {
	local := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:      config.StorageLocal,
		LocalPath: t.TempDir(),
	}})
	_, ok := local.Provider.(*LocalStorageProvider)
	require.True(t, ok)
	assert.Equal(t, "/uploads/clip.mp4", local.GetURL("clip.mp4"))

	m := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:          config.StorageMinio,
		MinioEndpoint: "localhost:9000",
		MinioBucket:   "media",
	}})
	_, ok = m.Provider.(*MinioStorageProvider)
	require.True(t, ok)
	assert.Equal(t, "/media/clip.mp4", m.GetURL("clip.mp4"))

	// unknown backends fall back to local storage
	fallback := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:      "s3",
		LocalPath: t.TempDir(),
	}})
	_, ok = fallback.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}

func TestLocalStorageWritesUnderRoot(t *testing.T) {
	root := t.TempDir()
	s := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:      config.StorageLocal,
		LocalPath: root,
	}})

	url, err := s.Upload(context.Background(), "a.bin", strings.NewReader("payload"), -1, "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.bin", url)

	data, err := os.ReadFile(filepath.Join(root, "a.bin"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}
