package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spell-miner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirSourceListsAndFetches(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fire"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fire", "fire_cat.json"),
		[]byte(`{"$__type": 1864220976, "m_name": "Fire Cat"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "aura.json"),
		[]byte(`{"$__type": 1864220976, "m_name": "Aura"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"),
		[]byte("not a record"), 0o644))

	src, err := NewDirSource(root)
	require.NoError(t, err)

	ids, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"aura.json", "fire/fire_cat.json"}, ids)

	rec, err := src.Fetch(context.Background(), "fire/fire_cat.json")
	require.NoError(t, err)
	assert.Equal(t, "Fire Cat", rec["m_name"])

	_, err = src.Fetch(context.Background(), "missing.json")
	assert.Error(t, err)
}

func TestNewDirSourceRejectsMissingRoot(t *testing.T) {
	_, err := NewDirSource(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestStorageSourceListsAndFetches(t *testing.T) {
	client := new(mocks.Client)

	objects := make(chan minio.ObjectInfo, 3)
	objects <- minio.ObjectInfo{Key: "spells/fire/fire_cat.json"}
	objects <- minio.ObjectInfo{Key: "spells/aura.json"}
	objects <- minio.ObjectInfo{Key: "spells/readme.md"}
	close(objects)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).
		Return((<-chan minio.ObjectInfo)(objects))

	body := io.NopCloser(strings.NewReader(`{"$__type": 1864220976, "m_name": "Aura"}`))
	client.On("GetObject", mock.Anything, "assets", "spells/aura.json", mock.Anything).
		Return(body, nil)

	src := NewStorageSource(client, "assets", "spells/")

	ids, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"aura.json", "fire/fire_cat.json"}, ids)

	rec, err := src.Fetch(context.Background(), "aura.json")
	require.NoError(t, err)
	assert.Equal(t, "Aura", rec["m_name"])

	client.AssertExpectations(t)
}
