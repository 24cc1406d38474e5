package models

// Effect is the interface family of all spell effect variants.
type Effect interface {
	Table() string
	isEffect()
}

// SpellEffect is the base effect shared by every effect kind: target
// selector, numeric parameter, damage/heal modifiers, chance and rank.
type SpellEffect struct {
	Act                        bool    `record:"m_act"`
	ActNum                     int     `record:"m_actNum"`
	ArmorPiercingParam         int     `record:"m_armorPiercingParam"`
	BypassProtection           bool    `record:"m_bypassProtection"`
	ChancePerTarget            int     `record:"m_chancePerTarget"`
	Cloaked                    bool    `record:"m_cloaked"`
	Converted                  bool    `record:"m_converted"`
	DamageType                 int     `record:"m_damageType"`
	Disposition                int     `record:"m_disposition"`
	EffectParam                int     `record:"m_effectParam"`
	EffectTarget               int     `record:"m_effectTarget"`
	EffectType                 int     `record:"m_effectType"`
	EnchantmentSpellTemplateID int     `record:"m_enchantmentSpellTemplateID"`
	HealModifier               float64 `record:"m_healModifier"`
	NumRounds                  int     `record:"m_numRounds"`
	ParamPerRound              int     `record:"m_paramPerRound"`
	PipNum                     int     `record:"m_pipNum"`
	Protected                  bool    `record:"m_protected"`
	Rank                       int     `record:"m_rank"`
	DamageTypeName             string  `record:"m_sDamageType"`
	SpellTemplateID            int     `record:"m_spellTemplateID"`
}

func (SpellEffect) Table() string { return "spell_effects" }
func (SpellEffect) isEffect()     {}

// DelaySpellEffect defers another spell template by a number of rounds.
// The delayed template is referenced by ID only; it is not resolved at
// materialization time. The target sub-circle list is a primitive list
// persisted as one column.
type DelaySpellEffect struct {
	SpellEffect
	Damage                       int   `record:"m_damage"`
	Rounds                       int   `record:"m_rounds"`
	SpellDelayedTemplateID       int   `record:"m_spellDelayedTemplateID"`
	SpellDelayedTemplateDamageID int   `record:"m_spellDelayedTemplateDamageID"`
	SpellEnchanterTemplateID     int   `record:"m_spellEnchanterTemplateID"`
	TargetSubcircleList          []int `record:"m_targetSubcircleList"`
	SpellHits                    int   `record:"m_spellHits"`
}

func (DelaySpellEffect) Table() string { return "delay_spell_effects" }

// RandomSpellEffect holds child effects of which exactly one fires at
// apply time; only the structure matters here.
type RandomSpellEffect struct {
	SpellEffect
	EffectList []Effect `record:"m_effectList"`
}

func (RandomSpellEffect) Table() string { return "random_spell_effects" }

// RandomPerTargetSpellEffect rolls the random choice once per target.
type RandomPerTargetSpellEffect struct {
	RandomSpellEffect
}

func (RandomPerTargetSpellEffect) Table() string { return "random_per_target_spell_effects" }

// ConditionalSpellElement pairs a requirement list with the effect that
// applies when it holds.
type ConditionalSpellElement struct {
	Reqs   *RequirementList `record:"m_pReqs"`
	Effect Effect           `record:"m_pEffect"`
}

func (ConditionalSpellElement) Table() string { return "conditional_spell_elements" }

// ConditionalSpellEffect evaluates its elements in order and applies the
// first branch whose requirements hold.
type ConditionalSpellEffect struct {
	SpellEffect
	Elements []*ConditionalSpellElement `record:"m_elements"`
}

func (ConditionalSpellEffect) Table() string { return "conditional_spell_effects" }

// VariableSpellEffect scales a child effect list with cast parameters.
type VariableSpellEffect struct {
	SpellEffect
	EffectList []Effect `record:"m_effectList"`
}

func (VariableSpellEffect) Table() string { return "variable_spell_effects" }

// EffectListSpellEffect applies every child effect.
type EffectListSpellEffect struct {
	SpellEffect
	EffectList []Effect `record:"m_effectList"`
}

func (EffectListSpellEffect) Table() string { return "effect_list_spell_effects" }

// ShadowSpellEffect is an effect list gated by shadow magic state.
type ShadowSpellEffect struct {
	EffectListSpellEffect
	ShadowType int `record:"m_shadowType"`
}

func (ShadowSpellEffect) Table() string { return "shadow_spell_effects" }

// TargetCountSpellEffect selects one of its child effect lists by the
// number of targets.
type TargetCountSpellEffect struct {
	SpellEffect
	EffectLists []Effect `record:"m_effectLists"`
}

func (TargetCountSpellEffect) Table() string { return "target_count_spell_effects" }

// CountBasedSpellEffect applies its children once a counter passes the
// threshold.
type CountBasedSpellEffect struct {
	SpellEffect
	EffectList     []Effect `record:"m_effectList"`
	CountThreshold int      `record:"m_countThreshold"`
}

func (CountBasedSpellEffect) Table() string { return "count_based_spell_effects" }

// HangingConversionSpellEffect converts hanging effects matching a filter
// window into its output effects.
type HangingConversionSpellEffect struct {
	SpellEffect
	HangingEffectType        int      `record:"m_hangingEffectType"`
	OutputSelector           int      `record:"m_outputSelector"`
	SpecificEffectTypes      []int    `record:"m_specificEffectTypes"`
	MinEffectValue           int      `record:"m_minEffectValue"`
	MaxEffectValue           int      `record:"m_maxEffectValue"`
	MinEffectCount           int      `record:"m_minEffectCount"`
	MaxEffectCount           int      `record:"m_maxEffectCount"`
	NotDamageType            bool     `record:"m_notDamageType"`
	ScaleSourceEffectValue   bool     `record:"m_scaleSourceEffectValue"`
	SourceEffectValuePercent float64  `record:"m_sourceEffectValuePercent"`
	ApplyToEffectSource      bool     `record:"m_applyToEffectSource"`
	OutputEffect             []Effect `record:"m_outputEffect"`
}

func (HangingConversionSpellEffect) Table() string { return "hanging_conversion_spell_effects" }
