package integrity

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"spell-miner/core/database"
	"spell-miner/core/flatten"
	"spell-miner/core/ingest"
	"spell-miner/core/materialize"
	"spell-miner/core/record"
	"spell-miner/feature/spells/models"
	"spell-miner/feature/spells/source"
	"spell-miner/feature/spells/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const goodJSON = `{"$__type": 1864220976, "m_name": "Good"}`
const badJSON = `{"$__type": 12345, "m_name": "Bad"}`

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dumpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dumpDir, "good.json"), []byte(goodJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dumpDir, "bad.json"), []byte(badJSON), 0o644))

	src, err := source.NewDirSource(dumpDir)
	require.NoError(t, err)

	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	reg := models.DefaultRegistry()
	st := store.New(db, reg)
	require.NoError(t, st.EnsureSchema(context.Background()))

	sink, err := ingest.NewDirSink(filepath.Join(t.TempDir(), "failed"))
	require.NoError(t, err)

	// Run one real pass so the store and the sink have content.
	driver := ingest.NewDriver(src, materialize.New(reg), flatten.New(reg), st, sink, zap.NewNop(), ingest.Config{})
	_, err = driver.Run(context.Background())
	require.NoError(t, err)

	return NewService(src, st, sink, db, reg, zap.NewNop()), db
}

func TestCheckCoverageAccountsForEveryRecord(t *testing.T) {
	svc, _ := setupService(t)

	report, err := svc.CheckCoverage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalSource)
	assert.Equal(t, 1, report.Persisted)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Complete())
}

func TestCheckSchemaPasses(t *testing.T) {
	svc, _ := setupService(t)

	report, err := svc.CheckSchema(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Complete())
}

type staticSource struct{ ids []string }

func (s staticSource) List(context.Context) ([]string, error) { return s.ids, nil }

func (s staticSource) Fetch(context.Context, string) (record.Object, error) {
	return nil, nil
}

func TestCheckCoverageReportsOrphans(t *testing.T) {
	svc, db := setupService(t)

	// Replace the source with one that no longer contains good.json.
	svc2 := NewService(staticSource{ids: []string{"bad.json"}}, svc.store, svc.failures, db, svc.reg, zap.NewNop())

	report, err := svc2.CheckCoverage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"good.json"}, report.Orphaned)
	assert.False(t, report.Complete())
}
