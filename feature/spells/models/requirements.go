package models

// Requirement is the interface family of all requirement variants.
type Requirement interface {
	Table() string
	isRequirement()
}

// ReqCore carries the predicate fields shared by the combat requirement
// variants: negation flag, comparison operator and target selector.
type ReqCore struct {
	ApplyNOT   bool `record:"m_applyNOT"`
	Operator   int  `record:"m_operator"`
	TargetType int  `record:"m_targetType"`
}

func (ReqCore) isRequirement() {}

// RequirementList combines an ordered requirement collection with a
// boolean combination mode. Lists may nest inside other lists.
type RequirementList struct {
	ApplyNOT     bool          `record:"m_applyNOT"`
	Operator     int           `record:"m_operator"`
	Requirements []Requirement `record:"m_requirements"`
}

func (RequirementList) Table() string  { return "requirement_lists" }
func (RequirementList) isRequirement() {}

// ReqIsSchool holds when the target's magic school matches.
type ReqIsSchool struct {
	ReqCore
	MagicSchoolName string `record:"m_magicSchoolName"`
}

func (ReqIsSchool) Table() string { return "req_is_school" }

// ReqSchoolOfFocus holds when the target's school of focus matches.
type ReqSchoolOfFocus struct {
	ReqCore
	MagicSchoolName string `record:"m_magicSchoolName"`
}

func (ReqSchoolOfFocus) Table() string { return "req_school_of_focus" }

// ReqHangingCharm counts hanging charms of a disposition.
type ReqHangingCharm struct {
	ReqCore
	Disposition int `record:"m_disposition"`
	MinCount    int `record:"m_minCount"`
	MaxCount    int `record:"m_maxCount"`
}

func (ReqHangingCharm) Table() string { return "req_hanging_charm" }

// ReqHangingWard counts hanging wards of a disposition.
type ReqHangingWard struct {
	ReqCore
	Disposition int `record:"m_disposition"`
	MinCount    int `record:"m_minCount"`
	MaxCount    int `record:"m_maxCount"`
}

func (ReqHangingWard) Table() string { return "req_hanging_ward" }

// ReqHangingOverTime counts hanging over-time effects of a disposition.
type ReqHangingOverTime struct {
	ReqCore
	Disposition int `record:"m_disposition"`
	MinCount    int `record:"m_minCount"`
	MaxCount    int `record:"m_maxCount"`
}

func (ReqHangingOverTime) Table() string { return "req_hanging_over_time" }

// ReqHangingAura counts hanging auras of a disposition.
type ReqHangingAura struct {
	ReqCore
	Disposition int `record:"m_disposition"`
	MinCount    int `record:"m_minCount"`
	MaxCount    int `record:"m_maxCount"`
}

func (ReqHangingAura) Table() string { return "req_hanging_aura" }

// ReqHangingEffectType counts hanging effects of a specific effect type.
type ReqHangingEffectType struct {
	ReqCore
	EffectType int `record:"m_effectType"`
	MinCount   int `record:"m_minCount"`
	MaxCount   int `record:"m_maxCount"`
}

func (ReqHangingEffectType) Table() string { return "req_hanging_effect_type" }

// ReqMinion checks the caster's minion count.
type ReqMinion struct {
	ReqCore
	MinCount int `record:"m_minCount"`
	MaxCount int `record:"m_maxCount"`
}

func (ReqMinion) Table() string { return "req_minion" }

// ReqHasEntry checks a named registry entry on the target.
type ReqHasEntry struct {
	ReqCore
	EntryName string `record:"m_entryName"`
}

func (ReqHasEntry) Table() string { return "req_has_entry" }

// ReqCombatHealth checks the target's health percentage window.
type ReqCombatHealth struct {
	ReqCore
	MinPercent float64 `record:"m_fMinPercent"`
	MaxPercent float64 `record:"m_fMaxPercent"`
}

func (ReqCombatHealth) Table() string { return "req_combat_health" }

// ReqPvPCombat holds only in player-versus-player combat.
type ReqPvPCombat struct {
	ReqCore
}

func (ReqPvPCombat) Table() string { return "req_pvp_combat" }

// ReqPipCount checks the caster's pip window.
type ReqPipCount struct {
	ReqCore
	MinPips int `record:"m_minPips"`
	MaxPips int `record:"m_maxPips"`
}

func (ReqPipCount) Table() string { return "req_pip_count" }

// ReqShadowPipCount checks the caster's shadow pip window.
type ReqShadowPipCount struct {
	ReqCore
	MinPips int `record:"m_minPips"`
	MaxPips int `record:"m_maxPips"`
}

func (ReqShadowPipCount) Table() string { return "req_shadow_pip_count" }

// ReqCombatStatus checks a combat status flag on the target.
type ReqCombatStatus struct {
	ReqCore
	CombatStatus int `record:"m_combatStatus"`
}

func (ReqCombatStatus) Table() string { return "req_combat_status" }

// ReqMagicLevel gates on a magic school level outside combat. It predates
// the targeted requirement shape and has no target selector.
type ReqMagicLevel struct {
	ApplyNOT     bool    `record:"m_applyNOT"`
	MagicSchool  string  `record:"m_magicSchool"`
	NumericValue float64 `record:"m_numericValue"`
	Operator     int     `record:"m_operator"`
	OperatorType int     `record:"m_operatorType"`
}

func (ReqMagicLevel) Table() string  { return "req_magic_level" }
func (ReqMagicLevel) isRequirement() {}

// ReqGardeningLevel gates on the gardening skill level.
type ReqGardeningLevel struct {
	ApplyNOT     bool    `record:"m_applyNOT"`
	NumericValue float64 `record:"m_numericValue"`
	Operator     int     `record:"m_operator"`
	OperatorType int     `record:"m_operatorType"`
}

func (ReqGardeningLevel) Table() string  { return "req_gardening_level" }
func (ReqGardeningLevel) isRequirement() {}

// ReqHasBadge gates on an earned badge.
type ReqHasBadge struct {
	ApplyNOT  bool   `record:"m_applyNOT"`
	BadgeName string `record:"m_badgeName"`
	Operator  int    `record:"m_operator"`
}

func (ReqHasBadge) Table() string  { return "req_has_badge" }
func (ReqHasBadge) isRequirement() {}
