package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spell-miner/core/registry"
)

type testEffect interface {
	registry.Node
	isTestEffect()
}

type hitEffect struct {
	Damage int `record:"m_damage"`
}

func (hitEffect) Table() string { return "hit_effects" }
func (hitEffect) isTestEffect() {}

type groupEffect struct {
	Effects []testEffect `record:"m_effects"`
}

func (groupEffect) Table() string { return "group_effects" }
func (groupEffect) isTestEffect() {}

type testRank struct {
	Pips int `record:"m_pips"`
}

func (testRank) Table() string { return "test_ranks" }

type testSpell struct {
	Name    string       `record:"m_name"`
	Rank    *testRank    `record:"m_rank"`
	Effects []testEffect `record:"m_effects"`
}

func (testSpell) Table() string { return "test_spells" }

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register(1, testSpell{}))
	require.NoError(t, reg.Register(2, testRank{}))
	require.NoError(t, reg.Register(3, hitEffect{}))
	require.NoError(t, reg.Register(4, groupEffect{}))
	return reg
}

func testTree() *testSpell {
	return &testSpell{
		Name: "Fire Cat",
		Rank: &testRank{Pips: 3},
		Effects: []testEffect{
			&hitEffect{Damage: 80},
			&groupEffect{Effects: []testEffect{
				&hitEffect{Damage: 20},
				&hitEffect{Damage: 25},
			}},
		},
	}
}

func rowFor(t *testing.T, rows []Row, table string, ordinal int) Row {
	t.Helper()
	for _, row := range rows {
		if row.Table == table && row.Ordinal == ordinal {
			return row
		}
	}
	t.Fatalf("no row %s[%d]", table, ordinal)
	return Row{}
}

func TestFlattenEmitsParentLinkedRows(t *testing.T) {
	f := New(testRegistry(t))

	rows, err := f.Flatten("fire/fire_cat.json", testTree())
	require.NoError(t, err)
	require.Len(t, rows, 6)

	root := rows[0]
	assert.Equal(t, "test_spells", root.Table)
	assert.Equal(t, "fire/fire_cat.json", root.RecordID)
	assert.Equal(t, 0, root.Ordinal)
	assert.Equal(t, "", root.ParentTable)
	assert.Equal(t, RootParentOrdinal, root.ParentOrdinal)
	assert.Equal(t, "Fire Cat", root.Columns["m_name"])

	rank := rowFor(t, rows, "test_ranks", 0)
	assert.Equal(t, "test_spells", rank.ParentTable)
	assert.Equal(t, 0, rank.ParentOrdinal)
	assert.EqualValues(t, 3, rank.Columns["m_pips"])

	// Ordinals are container-local within each child field.
	hit := rowFor(t, rows, "hit_effects", 0)
	assert.Equal(t, "test_spells", hit.ParentTable)
	assert.EqualValues(t, 80, hit.Columns["m_damage"])

	group := rowFor(t, rows, "group_effects", 1)
	assert.Equal(t, "test_spells", group.ParentTable)

	nested := rowFor(t, rows, "hit_effects", 1)
	assert.Equal(t, "group_effects", nested.ParentTable)
	assert.Equal(t, 1, nested.ParentOrdinal)

	for _, row := range rows {
		assert.Equal(t, "fire/fire_cat.json", row.RecordID)
	}
}

func TestFlattenSkipsNilChildren(t *testing.T) {
	f := New(testRegistry(t))

	rows, err := f.Flatten("bare", &testSpell{
		Name:    "Bare",
		Effects: []testEffect{nil, &hitEffect{Damage: 1}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rowFor(t, rows, "hit_effects", 0).Ordinal)
}

func TestFlattenUnregisteredNode(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(1, testSpell{}))
	f := New(reg)

	_, err := f.Flatten("bad", &testSpell{Rank: &testRank{}})
	var flatErr *Error
	require.ErrorAs(t, err, &flatErr)
	assert.Equal(t, "bad", flatErr.RecordID)
	assert.ErrorContains(t, err, "no schema registered")
}

func TestReassembleRoundTrip(t *testing.T) {
	f := New(testRegistry(t))

	rows, err := f.Flatten("fire/fire_cat.json", testTree())
	require.NoError(t, err)

	roots, err := Reassemble(rows)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, 6, CountNodes(roots))

	root := roots[0]
	assert.Equal(t, "test_spells", root.Table)
	require.Len(t, root.Children, 3)

	// The effect list mixes variants, so its children span two tables.
	// Source-collection order wins: the ordinal-0 hit comes back before
	// the ordinal-1 group regardless of table names.
	assert.Equal(t, 0, root.Children[0].Ordinal)
	assert.Equal(t, "hit_effects", root.Children[0].Table)
	group := root.Children[2]
	assert.Equal(t, "group_effects", group.Table)
	assert.Equal(t, 1, group.Ordinal)

	require.Len(t, group.Children, 2)
	assert.Equal(t, 0, group.Children[0].Ordinal)
	assert.Equal(t, 1, group.Children[1].Ordinal)
}

func TestReassembleMissingParent(t *testing.T) {
	rows := []Row{
		{Table: "hit_effects", Ordinal: 0, ParentTable: "test_spells", ParentOrdinal: 0},
	}
	_, err := Reassemble(rows)
	assert.ErrorContains(t, err, "missing parent test_spells[0]")
}

func TestReassembleAmbiguousParent(t *testing.T) {
	rows := []Row{
		{Table: "test_spells", Ordinal: 0, ParentTable: "", ParentOrdinal: RootParentOrdinal},
		{Table: "test_spells", Ordinal: 0, ParentTable: "", ParentOrdinal: RootParentOrdinal},
		{Table: "hit_effects", Ordinal: 0, ParentTable: "test_spells", ParentOrdinal: 0},
	}
	_, err := Reassemble(rows)
	assert.ErrorContains(t, err, "ambiguous parent")
}

func TestReassembleEmpty(t *testing.T) {
	roots, err := Reassemble(nil)
	require.NoError(t, err)
	assert.Empty(t, roots)
	assert.Equal(t, 0, CountNodes(roots))
}
