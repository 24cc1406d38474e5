package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryResolvesCatalog(t *testing.T) {
	reg := DefaultRegistry()

	tags := map[uint32]string{
		TagSpell:                   "spells",
		TagSpellTemplate:           "spell_templates",
		TagTieredSpellTemplate:     "tiered_spell_templates",
		TagGardenSpellTemplate:     "garden_spell_templates",
		TagSpellRank:               "spell_ranks",
		TagSpellEffect:             "spell_effects",
		TagRandomSpellEffect:       "random_spell_effects",
		TagConditionalSpellElement: "conditional_spell_elements",
		TagRequirementList:         "requirement_lists",
		TagReqMagicLevel:           "req_magic_level",
		TagReqShadowPipCount:       "req_shadow_pip_count",
	}
	for tag, table := range tags {
		schema, ok := reg.Resolve(tag)
		require.True(t, ok, "tag %d", tag)
		assert.Equal(t, table, schema.Table)
	}

	_, ok := reg.Resolve(0xdeadbeef)
	assert.False(t, ok)
}

func TestDefaultRegistryTablesAreUnique(t *testing.T) {
	reg := DefaultRegistry()

	tables := reg.Tables()
	seen := make(map[string]bool, len(tables))
	for _, table := range tables {
		assert.False(t, seen[table], "duplicate table %s", table)
		seen[table] = true
	}
	assert.Len(t, tables, len(reg.Tags()))
}

func TestSpellTemplateSchemaShape(t *testing.T) {
	reg := DefaultRegistry()

	schema, ok := reg.Resolve(TagSpellTemplate)
	require.True(t, ok)

	fieldKeys := make(map[string]bool, len(schema.Fields))
	for _, f := range schema.Fields {
		fieldKeys[f.Key] = true
	}
	childKeys := make(map[string]bool, len(schema.Children))
	for _, c := range schema.Children {
		childKeys[c.Key] = true
	}

	assert.True(t, fieldKeys["m_name"])
	assert.True(t, fieldKeys["m_accuracy"])
	assert.True(t, fieldKeys["m_adjectives"], "scalar list stays a plain field")
	assert.True(t, childKeys["m_effects"], "effect list is a child link")
	assert.True(t, childKeys["m_spellRank"], "rank block is a child link")
	assert.True(t, childKeys["m_purchaseRequirements"])
	assert.True(t, childKeys["m_displayRequirements"])
	assert.False(t, childKeys["m_adjectives"])
}

func TestSpellSchemaShape(t *testing.T) {
	reg := DefaultRegistry()

	schema, ok := reg.Resolve(TagSpell)
	require.True(t, ok)
	assert.Equal(t, "spells", schema.Table)

	childKeys := make(map[string]bool, len(schema.Children))
	for _, c := range schema.Children {
		childKeys[c.Key] = true
	}
	assert.True(t, childKeys["m_spellTemplate"], "any template variant may back a cast spell")
	assert.True(t, childKeys["m_effects"])
	assert.True(t, childKeys["m_spellRank"])
}

func TestDerivedTemplateInheritsBaseFields(t *testing.T) {
	reg := DefaultRegistry()

	schema, ok := reg.Resolve(TagTieredSpellTemplate)
	require.True(t, ok)

	keys := make(map[string]bool)
	for _, f := range schema.Fields {
		keys[f.Key] = true
	}
	assert.True(t, keys["m_name"], "embedded base fields surface on the derived schema")
	assert.True(t, keys["m_shardCost"])
	assert.True(t, keys["m_nextTierSpells"])

	node := schema.New()
	tiered, ok := node.(*TieredSpellTemplate)
	require.True(t, ok)
	assert.Equal(t, "tiered_spell_templates", tiered.Table())

	childKeys := make(map[string]bool)
	for _, c := range schema.Children {
		childKeys[c.Key] = true
	}
	assert.True(t, childKeys["m_effects"], "inherited child links survive embedding")
	assert.True(t, childKeys["m_requirements"])
}
