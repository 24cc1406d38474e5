package models

// Template is the interface family of all spell template variants.
type Template interface {
	Table() string
	isTemplate()
}

// SpellRank is the pip cost block of a template.
type SpellRank struct {
	BalancePips int  `record:"m_balancePips"`
	DeathPips   int  `record:"m_deathPips"`
	FirePips    int  `record:"m_firePips"`
	IcePips     int  `record:"m_icePips"`
	LifePips    int  `record:"m_lifePips"`
	MythPips    int  `record:"m_mythPips"`
	ShadowPips  int  `record:"m_shadowPips"`
	Rank        int  `record:"m_spellRank"`
	StormPips   int  `record:"m_stormPips"`
	XPipSpell   bool `record:"m_xPipSpell"`
}

func (SpellRank) Table() string { return "spell_ranks" }

// SpellTemplate is the root record family: one spell card with its full
// display/cost field set, the effect tree, and the rank block.
type SpellTemplate struct {
	PvE                     bool             `record:"m_PvE"`
	PvP                     bool             `record:"m_PvP"`
	Treasure                bool             `record:"m_Treasure"`
	Accuracy                int              `record:"m_accuracy"`
	Adjectives              []string         `record:"m_adjectives"`
	AdvancedDescription     string           `record:"m_advancedDescription"`
	AlwaysFizzle            bool             `record:"m_alwaysFizzle"`
	BackRowFriendly         bool             `record:"m_backRowFriendly"`
	BaseCost                int              `record:"m_baseCost"`
	BattlegroundsOnly       bool             `record:"m_battlegroundsOnly"`
	Behaviors               []string         `record:"m_behaviors"`
	BoosterPackIcon         string           `record:"m_boosterPackIcon"`
	CardFront               string           `record:"m_cardFront"`
	CasterInvisible         bool             `record:"m_casterInvisible"`
	Cloaked                 bool             `record:"m_cloaked"`
	CloakedName             string           `record:"m_cloakedName"`
	CreditsCost             int              `record:"m_creditsCost"`
	DelayEnchantment        bool             `record:"m_delayEnchantment"`
	Description             string           `record:"m_description"`
	DescriptionCombatHUD    string           `record:"m_descriptionCombatHUD"`
	DescriptionTrainer      string           `record:"m_descriptionTrainer"`
	DisplayIndex            int              `record:"m_displayIndex"`
	DisplayName             string           `record:"m_displayName"`
	DisplayRequirements     *RequirementList `record:"m_displayRequirements"`
	Effects                 []Effect         `record:"m_effects"`
	HiddenFromEffectsWindow bool             `record:"m_hiddenFromEffectsWindow"`
	IgnoreCharms            bool             `record:"m_ignoreCharms"`
	IgnoreDispel            bool             `record:"m_ignoreDispel"`
	ImageIndex              int              `record:"m_imageIndex"`
	ImageName               string           `record:"m_imageName"`
	LeavesPlayWhenCast      bool             `record:"m_leavesPlayWhenCast"`
	LevelRestriction        int              `record:"m_levelRestriction"`
	MaxCopies               int              `record:"m_maxCopies"`
	Name                    string           `record:"m_name"`
	NoDiscard               bool             `record:"m_noDiscard"`
	NoPvEEnchant            bool             `record:"m_noPvEEnchant"`
	NoPvPEnchant            bool             `record:"m_noPvPEnchant"`
	PreviousSpellName       string           `record:"m_previousSpellName"`
	PurchaseRequirements    *RequirementList `record:"m_purchaseRequirements"`
	PvPCurrencyCost         int              `record:"m_pvpCurrencyCost"`
	PvPTourneyCurrencyCost  int              `record:"m_pvpTourneyCurrencyCost"`
	RequiredSchoolName      string           `record:"m_requiredSchoolName"`
	MagicSchoolName         string           `record:"m_sMagicSchoolName"`
	TypeName                string           `record:"m_sTypeName"`
	SecondarySchoolName     string           `record:"m_secondarySchoolName"`
	ShowPolymorphedName     bool             `record:"m_showPolymorphedName"`
	SkipTruncation          bool             `record:"m_skipTruncation"`
	SpellBase               string           `record:"m_spellBase"`
	SpellCategory           string           `record:"m_spellCategory"`
	SpellFusion             int              `record:"m_spellFusion"`
	SpellRank               *SpellRank       `record:"m_spellRank"`
	SpellSourceType         int              `record:"m_spellSourceType"`
	TrainingCost            int              `record:"m_trainingCost"`
	UseGloss                bool             `record:"m_useGloss"`
	ValidTargetSpells       []string         `record:"m_validTargetSpells"`
}

func (SpellTemplate) Table() string { return "spell_templates" }
func (SpellTemplate) isTemplate()   {}

// TieredSpellTemplate is a template that upgrades into next-tier spells
// behind a requirement list.
type TieredSpellTemplate struct {
	SpellTemplate
	NextTierSpells []string         `record:"m_nextTierSpells"`
	Requirements   *RequirementList `record:"m_requirements"`
	Retired        bool             `record:"m_retired"`
	ShardCost      int              `record:"m_shardCost"`
}

func (TieredSpellTemplate) Table() string { return "tiered_spell_templates" }

// CastleMagicSpellTemplate drives housing magic effects.
type CastleMagicSpellTemplate struct {
	SpellTemplate
	AnimationKFM           string `record:"m_animationKFM"`
	AnimationSequence      string `record:"m_animationSequence"`
	CastleMagicSpellEffect int    `record:"m_castleMagicSpellEffect"`
	CastleMagicSpellType   int    `record:"m_castleMagicSpellType"`
	EffectSchool           string `record:"m_effectSchool"`
}

func (CastleMagicSpellTemplate) Table() string { return "castle_magic_spell_templates" }

// GardenSpellTemplate drives gardening spells.
type GardenSpellTemplate struct {
	SpellTemplate
	AffectedRadius        int     `record:"m_affectedRadius"`
	AnimationKFM          string  `record:"m_animationKFM"`
	AnimationName         string  `record:"m_animationName"`
	AnimationNameLarge    string  `record:"m_animationNameLarge"`
	AnimationNameSmall    string  `record:"m_animationNameSmall"`
	BugZapLevel           int     `record:"m_bugZapLevel"`
	EnergyCost            int     `record:"m_energyCost"`
	GardenSpellImageIndex int     `record:"m_gardenSpellImageIndex"`
	GardenSpellImageName  string  `record:"m_gardenSpellImageName"`
	GardenSpellType       int     `record:"m_gardenSpellType"`
	ProtectionTemplateID  int     `record:"m_protectionTemplateID"`
	ProvidesMagic         bool    `record:"m_providesMagic"`
	ProvidesMusic         bool    `record:"m_providesMusic"`
	ProvidesPollination   bool    `record:"m_providesPollination"`
	ProvidesSun           bool    `record:"m_providesSun"`
	ProvidesWater         bool    `record:"m_providesWater"`
	SoilTemplateID        int     `record:"m_soilTemplateID"`
	SoundEffectGain       float64 `record:"m_soundEffectGain"`
	SoundEffectName       string  `record:"m_soundEffectName"`
	UtilitySpellType      int     `record:"m_utilitySpellType"`
	YOffset               float64 `record:"m_yOffset"`
}

func (GardenSpellTemplate) Table() string { return "garden_spell_templates" }

// FishingSpellTemplate drives fishing spells.
type FishingSpellTemplate struct {
	SpellTemplate
	AnimationKFM           string  `record:"m_animationKFM"`
	AnimationName          string  `record:"m_animationName"`
	EnergyCost             int     `record:"m_energyCost"`
	FishingSchoolFocus     string  `record:"m_fishingSchoolFocus"`
	FishingSpellImageIndex int     `record:"m_fishingSpellImageIndex"`
	FishingSpellImageName  string  `record:"m_fishingSpellImageName"`
	FishingSpellType       int     `record:"m_fishingSpellType"`
	SoundEffectGain        float64 `record:"m_soundEffectGain"`
	SoundEffectName        string  `record:"m_soundEffectName"`
}

func (FishingSpellTemplate) Table() string { return "fishing_spell_templates" }

// CantripsSpellTemplate drives cantrip spells.
type CantripsSpellTemplate struct {
	SpellTemplate
	AnimationKFMs           []string `record:"m_animationKFMs"`
	AnimationNames          []string `record:"m_animationNames"`
	CantripsSpellEffect     int      `record:"m_cantripsSpellEffect"`
	CantripsSpellImageIndex int      `record:"m_cantripsSpellImageIndex"`
	CantripsSpellImageName  string   `record:"m_cantripsSpellImageName"`
	CantripsSpellType       int      `record:"m_cantripsSpellType"`
	CooldownSeconds         int      `record:"m_cooldownSeconds"`
	EffectParameter         string   `record:"m_effectParameter"`
	EnergyCost              int      `record:"m_energyCost"`
	SoundEffectGain         float64  `record:"m_soundEffectGain"`
	SoundEffectName         string   `record:"m_soundEffectName"`
}

func (CantripsSpellTemplate) Table() string { return "cantrips_spell_templates" }

// WhirlyBurlySpellTemplate drives the minigame unit spells.
type WhirlyBurlySpellTemplate struct {
	SpellTemplate
	SpecialUnits string `record:"m_specialUnits"`
	UnitMovement string `record:"m_unitMovement"`
}

func (WhirlyBurlySpellTemplate) Table() string { return "whirly_burly_spell_templates" }

// Spell is the root spell object: one cast instance binding a template,
// a rank block and a resolved effect list. Dumps carry it for spells
// captured mid-session. The original's untyped runtime state (caster and
// target pointers, enchantment handles) has no relational shape and is
// not declared here.
type Spell struct {
	SpellID       int        `record:"m_spellID"`
	SpellName     string     `record:"m_spellName"`
	Template      Template   `record:"m_spellTemplate"`
	Enchanted     bool       `record:"m_bIsEnchanted"`
	Polymorphed   bool       `record:"m_bIsPolymorphed"`
	NaturalAttack bool       `record:"m_bIsNaturalAttack"`
	Gadget        bool       `record:"m_bIsGadget"`
	Item          bool       `record:"m_bIsItem"`
	Minion        bool       `record:"m_bIsMinion"`
	FromSpellbook bool       `record:"m_bIsFromSpellbook"`
	Effects       []Effect   `record:"m_effects"`
	SpellRank     *SpellRank `record:"m_spellRank"`
	Accuracy      int        `record:"m_accuracy"`
	Damage        int        `record:"m_damage"`
	Heal          int        `record:"m_heal"`
	Rounds        int        `record:"m_rounds"`
	CastTime      float64    `record:"m_castTime"`
	AnimationTime float64    `record:"m_animationTime"`
	CooldownTime  float64    `record:"m_cooldownTime"`
}

func (Spell) Table() string { return "spells" }
