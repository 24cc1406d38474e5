package models

import "spell-miner/core/registry"

// Stable type hashes carried in the archive's tagged records. Each hash
// identifies one concrete variant and never changes between game revisions.
const (
	TagSpell uint32 = 1004451249

	TagSpellTemplate            uint32 = 1864220976
	TagTieredSpellTemplate      uint32 = 1015536062
	TagCastleMagicSpellTemplate uint32 = 1087768358
	TagGardenSpellTemplate      uint32 = 108720390
	TagFishingSpellTemplate     uint32 = 2095072282
	TagCantripsSpellTemplate    uint32 = 443110133
	TagWhirlyBurlySpellTemplate uint32 = 1093865471

	TagSpellRank uint32 = 853452777

	TagSpellEffect                  uint32 = 1225309305
	TagRandomSpellEffect            uint32 = 1906855338
	TagRandomPerTargetSpellEffect   uint32 = 1256117554
	TagDelaySpellEffect             uint32 = 1928119170
	TagConditionalSpellElement      uint32 = 1601626199
	TagConditionalSpellEffect       uint32 = 1545841998
	TagVariableSpellEffect          uint32 = 1965311493
	TagEffectListSpellEffect        uint32 = 1760816619
	TagTargetCountSpellEffect       uint32 = 1007398909
	TagHangingConversionSpellEffect uint32 = 1531258114
	TagShadowSpellEffect            uint32 = 1017660130
	TagCountBasedSpellEffect        uint32 = 61741842

	TagRequirementList      uint32 = 1558190673
	TagReqMagicLevel        uint32 = 258825572
	TagReqGardeningLevel    uint32 = 710415701
	TagReqHasBadge          uint32 = 1914767513
	TagReqIsSchool          uint32 = 1382050381
	TagReqSchoolOfFocus     uint32 = 392858099
	TagReqHangingCharm      uint32 = 566693623
	TagReqHangingWard       uint32 = 1827867182
	TagReqHangingOverTime   uint32 = 808508263
	TagReqHangingAura       uint32 = 295368144
	TagReqHangingEffectType uint32 = 1321510422
	TagReqMinion            uint32 = 859401725
	TagReqHasEntry          uint32 = 37594247
	TagReqCombatHealth      uint32 = 1161498678
	TagReqPvPCombat         uint32 = 1501176517
	TagReqPipCount          uint32 = 1670595781
	TagReqShadowPipCount    uint32 = 488394038
	TagReqCombatStatus      uint32 = 1523922554
)

// DefaultRegistry binds the full spell variant catalog. Callers own the
// returned registry and may extend it with further variants before use.
func DefaultRegistry() *registry.Registry {
	reg := registry.New()

	reg.MustRegister(TagSpell, Spell{})

	reg.MustRegister(TagSpellTemplate, SpellTemplate{})
	reg.MustRegister(TagTieredSpellTemplate, TieredSpellTemplate{})
	reg.MustRegister(TagCastleMagicSpellTemplate, CastleMagicSpellTemplate{})
	reg.MustRegister(TagGardenSpellTemplate, GardenSpellTemplate{})
	reg.MustRegister(TagFishingSpellTemplate, FishingSpellTemplate{})
	reg.MustRegister(TagCantripsSpellTemplate, CantripsSpellTemplate{})
	reg.MustRegister(TagWhirlyBurlySpellTemplate, WhirlyBurlySpellTemplate{})

	reg.MustRegister(TagSpellRank, SpellRank{})

	reg.MustRegister(TagSpellEffect, SpellEffect{})
	reg.MustRegister(TagRandomSpellEffect, RandomSpellEffect{})
	reg.MustRegister(TagRandomPerTargetSpellEffect, RandomPerTargetSpellEffect{})
	reg.MustRegister(TagDelaySpellEffect, DelaySpellEffect{})
	reg.MustRegister(TagConditionalSpellElement, ConditionalSpellElement{})
	reg.MustRegister(TagConditionalSpellEffect, ConditionalSpellEffect{})
	reg.MustRegister(TagVariableSpellEffect, VariableSpellEffect{})
	reg.MustRegister(TagEffectListSpellEffect, EffectListSpellEffect{})
	reg.MustRegister(TagTargetCountSpellEffect, TargetCountSpellEffect{})
	reg.MustRegister(TagHangingConversionSpellEffect, HangingConversionSpellEffect{})
	reg.MustRegister(TagShadowSpellEffect, ShadowSpellEffect{})
	reg.MustRegister(TagCountBasedSpellEffect, CountBasedSpellEffect{})

	reg.MustRegister(TagRequirementList, RequirementList{})
	reg.MustRegister(TagReqMagicLevel, ReqMagicLevel{})
	reg.MustRegister(TagReqGardeningLevel, ReqGardeningLevel{})
	reg.MustRegister(TagReqHasBadge, ReqHasBadge{})
	reg.MustRegister(TagReqIsSchool, ReqIsSchool{})
	reg.MustRegister(TagReqSchoolOfFocus, ReqSchoolOfFocus{})
	reg.MustRegister(TagReqHangingCharm, ReqHangingCharm{})
	reg.MustRegister(TagReqHangingWard, ReqHangingWard{})
	reg.MustRegister(TagReqHangingOverTime, ReqHangingOverTime{})
	reg.MustRegister(TagReqHangingAura, ReqHangingAura{})
	reg.MustRegister(TagReqHangingEffectType, ReqHangingEffectType{})
	reg.MustRegister(TagReqMinion, ReqMinion{})
	reg.MustRegister(TagReqHasEntry, ReqHasEntry{})
	reg.MustRegister(TagReqCombatHealth, ReqCombatHealth{})
	reg.MustRegister(TagReqPvPCombat, ReqPvPCombat{})
	reg.MustRegister(TagReqPipCount, ReqPipCount{})
	reg.MustRegister(TagReqShadowPipCount, ReqShadowPipCount{})
	reg.MustRegister(TagReqCombatStatus, ReqCombatStatus{})

	return reg
}
