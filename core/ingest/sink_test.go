package ingest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spell-miner/core/record"
)

func TestDirSinkWritesOneDocumentPerFailure(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewDirSink(filepath.Join(dir, "failed"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.Record(ctx, Failure{
		RecordID:  "fire/fire_cat.json",
		Kind:      FailureUnresolvedTag,
		Path:      "m_effects.1",
		Message:   "unresolved type tag 999",
		Record:    record.Object{record.TagKey: float64(1)},
		Timestamp: time.Now(),
	}))
	require.NoError(t, sink.Record(ctx, Failure{
		RecordID: "ice/ice_wyvern.json",
		Kind:     FailureFetch,
		Message:  "no such object",
	}))

	entries, err := os.ReadDir(filepath.Join(dir, "failed"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "failed_0000_fire_fire_cat.json.json", entries[0].Name())
	assert.Equal(t, "failed_0001_ice_ice_wyvern.json.json", entries[1].Name())

	data, err := os.ReadFile(filepath.Join(dir, "failed", entries[0].Name()))
	require.NoError(t, err)
	var f Failure
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, "fire/fire_cat.json", f.RecordID)
	assert.Equal(t, "m_effects.1", f.Path)
}

func TestDirSinkFailedRecordIDs(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewDirSink(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.Record(ctx, Failure{RecordID: "a.json", Kind: FailureFetch, Message: "x"}))
	require.NoError(t, sink.Record(ctx, Failure{RecordID: "b.json", Kind: FailureFetch, Message: "x"}))

	// Foreign files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("[1,2]"), 0o644))

	ids, err := sink.FailedRecordIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.json", "b.json"}, ids)
}
