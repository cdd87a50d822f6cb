// Package dnd5e holds the rules tables the simulation draws on: classes,
// races, the item and spell catalogs and level progression.
package dnd5e

// Race constants
const (
	RaceHuman      = "RACE_HUMAN"
	RaceElf        = "RACE_ELF"
	RaceDwarf      = "RACE_DWARF"
	RaceHalfling   = "RACE_HALFLING"
	RaceDragonborn = "RACE_DRAGONBORN"
	RaceGnome      = "RACE_GNOME"
	RaceTiefling   = "RACE_TIEFLING"
	RaceHalfOrc    = "RACE_HALF_ORC"
)

// Class constants
const (
	ClassFighter   = "CLASS_FIGHTER"
	ClassWizard    = "CLASS_WIZARD"
	ClassRogue     = "CLASS_ROGUE"
	ClassCleric    = "CLASS_CLERIC"
	ClassBarbarian = "CLASS_BARBARIAN"
	ClassBard      = "CLASS_BARD"
	ClassDruid     = "CLASS_DRUID"
	ClassPaladin   = "CLASS_PALADIN"
	ClassRanger    = "CLASS_RANGER"
	ClassSorcerer  = "CLASS_SORCERER"
	ClassWarlock   = "CLASS_WARLOCK"
)

// Item ids
const (
	ItemPotionHealing        = "potion_healing"
	ItemPotionGreaterHealing = "potion_greater_healing"
	ItemPotionMana           = "potion_mana"
	ItemRation               = "ration"
	ItemElixirStrength       = "elixir_strength"

	ItemDagger       = "dagger"
	ItemShortsword   = "shortsword"
	ItemLongsword    = "longsword"
	ItemGreatsword   = "greatsword"
	ItemGreataxe     = "greataxe"
	ItemHandaxe      = "handaxe"
	ItemMace         = "mace"
	ItemWarhammer    = "warhammer"
	ItemQuarterstaff = "quarterstaff"
	ItemRapier       = "rapier"
	ItemLongbow      = "longbow"

	ItemShield         = "shield"
	ItemLeatherArmor   = "leather_armor"
	ItemStuddedLeather = "studded_leather"
	ItemChainShirt     = "chain_shirt"
	ItemChainMail      = "chain_mail"
	ItemPlateArmor     = "plate_armor"

	ItemShadowDagger  = "shadow_dagger"
	ItemNecroStaff    = "necro_staff"
	ItemObsidianPlate = "obsidian_plate"
	ItemBoneShield    = "bone_shield"
)

// Spell ids
const (
	SpellFireBolt      = "firebolt"
	SpellSacredFlame   = "sacred_flame"
	SpellMagicMissile  = "magic_missile"
	SpellCureWounds    = "cure_wounds"
	SpellHealingWord   = "healing_word"
	SpellThunderwave   = "thunderwave"
	SpellEldritchBlast = "eldritch_blast"
	SpellIceStorm      = "ice_storm"
	SpellEntangle      = "entangle"
)

// Point buy limits
const (
	PointBuyBudget   = 27
	PointBuyMinScore = 8
	PointBuyMaxScore = 15
)

// MaxLevel is the level cap
const MaxLevel = 20
