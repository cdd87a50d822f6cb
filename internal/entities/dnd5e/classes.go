package dnd5e

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// AllClasses in selection order
var AllClasses = []string{
	ClassFighter, ClassWizard, ClassRogue, ClassCleric, ClassBarbarian, ClassBard,
	ClassDruid, ClassPaladin, ClassRanger, ClassSorcerer, ClassWarlock,
}

// AllRaces in selection order
var AllRaces = []string{
	RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceDragonborn, RaceGnome, RaceTiefling, RaceHalfOrc,
}

var baseStats = map[string]entities.Attributes{
	ClassFighter:   {STR: 15, DEX: 12, CON: 14, INT: 10, WIS: 10, CHA: 10},
	ClassWizard:    {STR: 8, DEX: 12, CON: 12, INT: 15, WIS: 13, CHA: 10},
	ClassRogue:     {STR: 10, DEX: 15, CON: 12, INT: 12, WIS: 10, CHA: 12},
	ClassCleric:    {STR: 12, DEX: 10, CON: 13, INT: 10, WIS: 15, CHA: 12},
	ClassBarbarian: {STR: 15, DEX: 12, CON: 15, INT: 8, WIS: 10, CHA: 10},
	ClassBard:      {STR: 10, DEX: 14, CON: 12, INT: 10, WIS: 8, CHA: 15},
	ClassDruid:     {STR: 10, DEX: 12, CON: 13, INT: 10, WIS: 15, CHA: 10},
	ClassPaladin:   {STR: 15, DEX: 8, CON: 14, INT: 8, WIS: 10, CHA: 14},
	ClassRanger:    {STR: 10, DEX: 15, CON: 12, INT: 10, WIS: 14, CHA: 8},
	ClassSorcerer:  {STR: 8, DEX: 13, CON: 14, INT: 10, WIS: 10, CHA: 15},
	ClassWarlock:   {STR: 8, DEX: 13, CON: 12, INT: 10, WIS: 12, CHA: 15},
}

var raceBonus = map[string]entities.Attributes{
	RaceHuman:      {STR: 1, DEX: 1, CON: 1, INT: 1, WIS: 1, CHA: 1},
	RaceElf:        {DEX: 2, INT: 1},
	RaceDwarf:      {STR: 2, CON: 2},
	RaceHalfling:   {DEX: 2, CHA: 1},
	RaceDragonborn: {STR: 2, CHA: 1},
	RaceGnome:      {INT: 2, CON: 1},
	RaceTiefling:   {INT: 1, CHA: 2},
	RaceHalfOrc:    {STR: 2, CON: 1},
}

var classSpells = map[string][]string{
	ClassWizard:   {SpellFireBolt, SpellMagicMissile, SpellThunderwave, SpellIceStorm},
	ClassCleric:   {SpellSacredFlame, SpellCureWounds, SpellHealingWord},
	ClassBard:     {SpellHealingWord, SpellThunderwave},
	ClassDruid:    {SpellEntangle, SpellCureWounds, SpellThunderwave},
	ClassPaladin:  {SpellSacredFlame, SpellCureWounds},
	ClassRanger:   {SpellEntangle, SpellCureWounds},
	ClassSorcerer: {SpellFireBolt, SpellMagicMissile, SpellIceStorm},
	ClassWarlock:  {SpellEldritchBlast, SpellFireBolt},
}

// ValidClass reports a known class id
func ValidClass(class string) bool {
	_, ok := baseStats[class]
	return ok
}

// ValidRace reports a known race id
func ValidRace(race string) bool {
	_, ok := raceBonus[race]
	return ok
}

// BaseStats is the pre-built array for a class
func BaseStats(class string) entities.Attributes {
	return baseStats[class]
}

// RaceBonus is the fixed racial increase
func RaceBonus(race string) entities.Attributes {
	return raceBonus[race]
}

// HitDie is the class hit die size
func HitDie(class string) int {
	switch class {
	case ClassBarbarian:
		return 12
	case ClassFighter, ClassPaladin, ClassRanger:
		return 10
	case ClassWizard, ClassSorcerer:
		return 6
	default:
		return 8
	}
}

// CasterSlots is the spell slot pool for a class. It does not grow with
// level yet.
func CasterSlots(class string, _ int) entities.SpellSlots {
	switch class {
	case ClassWizard, ClassCleric, ClassDruid, ClassSorcerer, ClassBard:
		return entities.SpellSlots{Current: 2, Max: 2}
	case ClassWarlock:
		return entities.SpellSlots{Current: 1, Max: 1}
	default:
		return entities.SpellSlots{}
	}
}

// SpellcastingAbility returns the casting stat, or false for non-casters
func SpellcastingAbility(class string) (entities.Ability, bool) {
	switch class {
	case ClassWizard, ClassSorcerer:
		return entities.AbilityINT, true
	case ClassCleric, ClassDruid, ClassRanger:
		return entities.AbilityWIS, true
	case ClassBard, ClassPaladin, ClassWarlock:
		return entities.AbilityCHA, true
	}
	return "", false
}

// ClassSpells lists spell ids a class can cast
func ClassSpells(class string) []string {
	return classSpells[class]
}

// KnowsSpell reports whether class can cast spellID
func KnowsSpell(class, spellID string) bool {
	for _, id := range classSpells[class] {
		if id == spellID {
			return true
		}
	}
	return false
}

// IsTank classes lead with a healer and a blaster
func IsTank(class string) bool {
	return class == ClassFighter || class == ClassBarbarian || class == ClassPaladin
}

// IsHealer classes lead with two martial companions
func IsHealer(class string) bool {
	return class == ClassCleric || class == ClassDruid
}

// StartingEquipment is the kit a freshly created character wears
func StartingEquipment(class string) map[entities.EquipmentSlot]*entities.Item {
	eq := map[entities.EquipmentSlot]*entities.Item{}
	set := func(slot entities.EquipmentSlot, id string) {
		if item, ok := Item(id); ok {
			eq[slot] = item
		}
	}
	switch class {
	case ClassFighter, ClassPaladin:
		set(entities.SlotMainHand, ItemLongsword)
		set(entities.SlotBody, ItemChainMail)
		set(entities.SlotOffHand, ItemShield)
	case ClassBarbarian:
		set(entities.SlotMainHand, ItemGreataxe)
	case ClassRanger:
		set(entities.SlotMainHand, ItemShortsword)
		set(entities.SlotOffHand, ItemDagger)
		set(entities.SlotBody, ItemLeatherArmor)
	case ClassRogue:
		set(entities.SlotMainHand, ItemDagger)
		set(entities.SlotBody, ItemLeatherArmor)
	case ClassCleric:
		set(entities.SlotMainHand, ItemMace)
		set(entities.SlotBody, ItemChainShirt)
		set(entities.SlotOffHand, ItemShield)
	default:
		set(entities.SlotMainHand, ItemQuarterstaff)
	}
	return eq
}

// CompanionEquipment is the kit a generated companion wears. It differs from
// StartingEquipment for rangers, who travel light as companions.
func CompanionEquipment(class string) map[entities.EquipmentSlot]*entities.Item {
	if class == ClassRanger {
		eq := map[entities.EquipmentSlot]*entities.Item{}
		if item, ok := Item(ItemQuarterstaff); ok {
			eq[entities.SlotMainHand] = item
		}
		return eq
	}
	return StartingEquipment(class)
}

// StartingInventory is the shared pack for a party led by class
func StartingInventory(class string) entities.Inventory {
	var inv entities.Inventory
	add := func(id string, qty int) {
		if item, ok := Item(id); ok {
			inv = inv.Add(item, qty)
		}
	}
	add(ItemPotionHealing, 3)
	add(ItemRation, 5)
	switch class {
	case ClassFighter, ClassPaladin, ClassBarbarian, ClassRanger, ClassRogue:
	case ClassCleric:
		add(ItemPotionMana, 1)
	default:
		add(ItemPotionMana, 2)
	}
	return inv
}

// Companion describes a generated party member
type Companion struct {
	Name  string
	Race  string
	Class string
}

// Companions returns the two followers for a leader of class
func Companions(class string) []Companion {
	switch {
	case IsTank(class):
		return []Companion{{"Elara", RaceHuman, ClassCleric}, {"Zan", RaceElf, ClassWizard}}
	case IsHealer(class):
		return []Companion{{"Thrumgar", RaceDwarf, ClassFighter}, {"Vex", RaceHuman, ClassRogue}}
	default:
		return []Companion{{"Kael", RaceHuman, ClassPaladin}, {"Lira", RaceElf, ClassDruid}}
	}
}
