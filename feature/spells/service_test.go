package spells

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"spell-miner/core/database"
	"spell-miner/core/flatten"
	"spell-miner/core/ingest"
	"spell-miner/feature/spells/models"
	"spell-miner/feature/spells/source"
	"spell-miner/feature/spells/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fireCatJSON = `{
  "$__type": 1864220976,
  "m_name": "Fire Cat",
  "m_accuracy": 80,
  "m_sMagicSchoolName": "Fire",
  "m_adjectives": ["damage", "fire"],
  "m_unknownFutureField": 42,
  "m_spellRank": {"$__type": 853452777, "m_spellRank": 1, "m_firePips": 1},
  "m_effects": [
    {"$__type": 1225309305, "m_effectType": 2, "m_effectParam": 80, "m_sDamageType": "Fire"},
    {"$__type": 1545841998, "m_elements": [
      {"$__type": 1601626199,
       "m_pReqs": {"$__type": 1558190673, "m_operator": 1, "m_requirements": [
         {"$__type": 1670595781, "m_minPips": 4, "m_maxPips": 14}
       ]},
       "m_pEffect": {"$__type": 1760816619, "m_effectList": [
         {"$__type": 1225309305, "m_effectParam": 100}
       ]}}
    ]}
  ]
}`

const bareTemplateJSON = `{
  "$__type": 1864220976,
  "m_name": "Bare"
}`

const unknownTagJSON = `{
  "$__type": 999999,
  "m_name": "From The Future"
}`

const randomChoiceJSON = `{
  "$__type": 1864220976,
  "m_name": "Spinner",
  "m_effects": [
    {"$__type": 1906855338, "m_effectList": [
      {"$__type": 1225309305, "m_effectParam": 10},
      {"$__type": 1225309305, "m_effectParam": 20},
      {"$__type": 1225309305, "m_effectParam": 30}
    ]}
  ]
}`

const delayedSpellJSON = `{
  "$__type": 1864220976,
  "m_name": "Fuse",
  "m_effects": [
    {"$__type": 1928119170, "m_rounds": 3, "m_spellDelayedTemplateID": 112233}
  ]
}`

const nestedUnknownTagJSON = `{
  "$__type": 1864220976,
  "m_name": "Half Known",
  "m_effects": [
    {"$__type": 999999, "m_effectParam": 1}
  ]
}`

func newTestService(t *testing.T, records map[string]string) (*Service, *ingest.DirSink, string) {
	t.Helper()

	dumpDir := t.TempDir()
	for id, body := range records {
		path := filepath.Join(dumpDir, filepath.FromSlash(id))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	src, err := source.NewDirSource(dumpDir)
	require.NoError(t, err)

	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	reg := models.DefaultRegistry()
	st := store.New(db, reg)
	require.NoError(t, st.EnsureSchema(context.Background()))

	failureDir := filepath.Join(t.TempDir(), "failed")
	sink, err := ingest.NewDirSink(failureDir)
	require.NoError(t, err)

	svc := NewService(src, st, sink, reg, zap.NewNop(), ingest.Config{BatchSize: 2, Workers: 2})
	return svc, sink, failureDir
}

func rowsByTable(rows []flatten.Row) map[string][]flatten.Row {
	out := make(map[string][]flatten.Row)
	for _, row := range rows {
		out[row.Table] = append(out[row.Table], row)
	}
	return out
}

func TestIngestPersistsNestedTree(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"fire/fire_cat.json": fireCatJSON,
	})
	ctx := context.Background()

	summary, err := svc.IngestAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)

	rows, err := svc.RecordRows(ctx, "fire/fire_cat.json")
	require.NoError(t, err)
	require.Len(t, rows, 10)

	byTable := rowsByTable(rows)

	roots := byTable["spell_templates"]
	require.Len(t, roots, 1)
	assert.Equal(t, "", roots[0].ParentTable)
	assert.Equal(t, flatten.RootParentOrdinal, roots[0].ParentOrdinal)
	assert.Equal(t, "Fire Cat", roots[0].Columns["m_name"])
	assert.EqualValues(t, 80, roots[0].Columns["m_accuracy"])
	assert.JSONEq(t, `["damage","fire"]`, roots[0].Columns["m_adjectives"].(string))

	// The rank block hangs off the root.
	ranks := byTable["spell_ranks"]
	require.Len(t, ranks, 1)
	assert.Equal(t, "spell_templates", ranks[0].ParentTable)
	assert.Equal(t, 0, ranks[0].ParentOrdinal)

	// Two effects in the root's list, container-local ordinals 0 and 1.
	conditionals := byTable["conditional_spell_effects"]
	require.Len(t, conditionals, 1)
	assert.Equal(t, 1, conditionals[0].Ordinal)
	assert.Equal(t, "spell_templates", conditionals[0].ParentTable)

	// The conditional branch: element, requirement list, pip requirement
	// and the inner effect list all keep their linkage.
	elements := byTable["conditional_spell_elements"]
	require.Len(t, elements, 1)
	assert.Equal(t, "conditional_spell_effects", elements[0].ParentTable)
	assert.Equal(t, 1, elements[0].ParentOrdinal)

	reqLists := byTable["requirement_lists"]
	require.Len(t, reqLists, 1)
	assert.Equal(t, "conditional_spell_elements", reqLists[0].ParentTable)

	pips := byTable["req_pip_count"]
	require.Len(t, pips, 1)
	assert.Equal(t, "requirement_lists", pips[0].ParentTable)
	assert.EqualValues(t, 4, pips[0].Columns["m_minPips"])
	assert.EqualValues(t, 14, pips[0].Columns["m_maxPips"])

	// The base effect and the one inside the effect list both land in
	// spell_effects under different parents.
	effects := byTable["spell_effects"]
	require.Len(t, effects, 2)

	// The whole row set reassembles into one tree of ten nodes.
	roots2, err := svc.RecordTree(ctx, "fire/fire_cat.json")
	require.NoError(t, err)
	require.Len(t, roots2, 1)
	assert.Equal(t, 10, flatten.CountNodes(roots2))
}

func TestIngestRandomChoiceChildrenKeepCollectionOrder(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"fire/spinner.json": randomChoiceJSON,
	})
	ctx := context.Background()

	summary, err := svc.IngestAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)

	rows, err := svc.RecordRows(ctx, "fire/spinner.json")
	require.NoError(t, err)
	byTable := rowsByTable(rows)

	randoms := byTable["random_spell_effects"]
	require.Len(t, randoms, 1)
	assert.Equal(t, 0, randoms[0].Ordinal)

	// Three candidate effects under the random choice, ordinals 0..2 in
	// source order, all linked to the same parent.
	candidates := byTable["spell_effects"]
	require.Len(t, candidates, 3)
	params := make(map[int]any, 3)
	for _, row := range candidates {
		assert.Equal(t, "random_spell_effects", row.ParentTable)
		assert.Equal(t, 0, row.ParentOrdinal)
		params[row.Ordinal] = row.Columns["m_effectParam"]
	}
	assert.EqualValues(t, 10, params[0])
	assert.EqualValues(t, 20, params[1])
	assert.EqualValues(t, 30, params[2])

	roots, err := svc.RecordTree(ctx, "fire/spinner.json")
	require.NoError(t, err)
	require.Len(t, roots, 1)
	random := roots[0].Children[0]
	require.Len(t, random.Children, 3)
	for i, child := range random.Children {
		assert.Equal(t, i, child.Ordinal)
	}
}

func TestIngestDelayedSpellReference(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"fire/fuse.json": delayedSpellJSON,
	})
	ctx := context.Background()

	summary, err := svc.IngestAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)

	rows, err := svc.RecordRows(ctx, "fire/fuse.json")
	require.NoError(t, err)
	byTable := rowsByTable(rows)

	delays := byTable["delay_spell_effects"]
	require.Len(t, delays, 1)

	// The delayed template stays a plain reference column; it is never
	// resolved into a child row.
	assert.EqualValues(t, 112233, delays[0].Columns["m_spellDelayedTemplateID"])
	assert.EqualValues(t, 3, delays[0].Columns["m_rounds"])
	assert.JSONEq(t, `[]`, asColumnString(delays[0].Columns["m_targetSubcircleList"]),
		"absent sub-circle list persists as an empty list")
	assert.Empty(t, byTable["spell_templates"][0].ParentTable)
	require.Len(t, rows, 2, "reference IDs add no rows")
}

func TestIngestAppliesDeclaredDefaults(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"bare.json": bareTemplateJSON,
	})
	ctx := context.Background()

	_, err := svc.IngestAll(ctx)
	require.NoError(t, err)

	rows, err := svc.RecordRows(ctx, "bare.json")
	require.NoError(t, err)
	require.Len(t, rows, 1, "no children means a single root row")

	root := rows[0]
	assert.Equal(t, "Bare", root.Columns["m_name"])
	assert.EqualValues(t, 0, root.Columns["m_accuracy"])
	assert.Equal(t, "", asColumnString(root.Columns["m_description"]))
	assert.JSONEq(t, `[]`, root.Columns["m_adjectives"].(string))
}

func TestIngestIsolatesUnresolvedTags(t *testing.T) {
	svc, _, failureDir := newTestService(t, map[string]string{
		"good.json":   fireCatJSON,
		"alien.json":  unknownTagJSON,
		"nested.json": nestedUnknownTagJSON,
	})
	ctx := context.Background()

	summary, err := svc.IngestAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 2, summary.FailuresByKind[ingest.FailureUnresolvedTag])

	// Only the good record is persisted; a nested unknown tag poisons
	// its whole record.
	ids, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"good.json"}, ids)

	// Both failures land in the side-channel.
	entries, err := os.ReadDir(failureDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReingestReplacesRows(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"fire/fire_cat.json": fireCatJSON,
	})
	ctx := context.Background()

	_, err := svc.IngestAll(ctx)
	require.NoError(t, err)
	_, err = svc.IngestAll(ctx)
	require.NoError(t, err)

	rows, err := svc.RecordRows(ctx, "fire/fire_cat.json")
	require.NoError(t, err)
	assert.Len(t, rows, 10, "second pass replaces the row set instead of appending")

	passes, err := svc.Passes(ctx)
	require.NoError(t, err)
	assert.Len(t, passes, 2)
}

func TestInspectRecordDoesNotPersist(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"fire/fire_cat.json": fireCatJSON,
	})
	ctx := context.Background()

	rows, err := svc.InspectRecord(ctx, "fire/fire_cat.json")
	require.NoError(t, err)
	assert.Len(t, rows, 10)

	ids, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// asColumnString tolerates NULL-able text columns coming back as nil.
func asColumnString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return ""
}
