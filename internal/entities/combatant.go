package entities

// EntityType separates the sides of a battle
type EntityType string

// Entity types
const (
	EntityPlayer EntityType = "PLAYER"
	EntityEnemy  EntityType = "ENEMY"
	EntityNPC    EntityType = "NPC"
)

// Ability is one of the six ability scores
type Ability string

// Abilities
const (
	AbilitySTR Ability = "STR"
	AbilityDEX Ability = "DEX"
	AbilityCON Ability = "CON"
	AbilityINT Ability = "INT"
	AbilityWIS Ability = "WIS"
	AbilityCHA Ability = "CHA"
)

// AllAbilities in sheet order
var AllAbilities = []Ability{AbilitySTR, AbilityDEX, AbilityCON, AbilityINT, AbilityWIS, AbilityCHA}

// Attributes holds the six ability scores
type Attributes struct {
	STR int `json:"str"`
	DEX int `json:"dex"`
	CON int `json:"con"`
	INT int `json:"int"`
	WIS int `json:"wis"`
	CHA int `json:"cha"`
}

// Get returns the score for a
func (a Attributes) Get(ab Ability) int {
	switch ab {
	case AbilitySTR:
		return a.STR
	case AbilityDEX:
		return a.DEX
	case AbilityCON:
		return a.CON
	case AbilityINT:
		return a.INT
	case AbilityWIS:
		return a.WIS
	case AbilityCHA:
		return a.CHA
	}
	return 0
}

// With returns a copy with ab increased by delta
func (a Attributes) With(ab Ability, delta int) Attributes {
	switch ab {
	case AbilitySTR:
		a.STR += delta
	case AbilityDEX:
		a.DEX += delta
	case AbilityCON:
		a.CON += delta
	case AbilityINT:
		a.INT += delta
	case AbilityWIS:
		a.WIS += delta
	case AbilityCHA:
		a.CHA += delta
	}
	return a
}

// Plus adds two attribute blocks
func (a Attributes) Plus(o Attributes) Attributes {
	return Attributes{
		STR: a.STR + o.STR,
		DEX: a.DEX + o.DEX,
		CON: a.CON + o.CON,
		INT: a.INT + o.INT,
		WIS: a.WIS + o.WIS,
		CHA: a.CHA + o.CHA,
	}
}

// SpellSlots tracks leveled spell casts
type SpellSlots struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// CombatStats is the full stat block of a combatant. Attributes, AC and
// InitiativeBonus are derived from BaseAttributes and equipment and are
// only written by the engine's Recompute.
type CombatStats struct {
	Level           int        `json:"level"`
	Class           string     `json:"class,omitempty"`
	Race            string     `json:"race,omitempty"`
	XP              int        `json:"xp"`
	XPToNextLevel   int        `json:"xp_to_next_level"`
	HP              int        `json:"hp"`
	MaxHP           int        `json:"max_hp"`
	AC              int        `json:"ac"`
	InitiativeBonus int        `json:"initiative_bonus"`
	Speed           int        `json:"speed"`
	Attributes      Attributes `json:"attributes"`
	BaseAttributes  Attributes `json:"base_attributes"`
	SpellSlots      SpellSlots `json:"spell_slots"`
}

// EquipmentSlot is where an item is worn
type EquipmentSlot string

// Equipment slots
const (
	SlotMainHand  EquipmentSlot = "MAIN_HAND"
	SlotOffHand   EquipmentSlot = "OFF_HAND"
	SlotBody      EquipmentSlot = "BODY"
	SlotHead      EquipmentSlot = "HEAD"
	SlotAccessory EquipmentSlot = "ACCESSORY"
)

// Combatant is a party member or a spawned enemy
type Combatant struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Type      EntityType              `json:"type"`
	Equipment map[EquipmentSlot]*Item `json:"equipment,omitempty"`
	Stats     CombatStats             `json:"stats"`
	Position  GridPos                 `json:"position"`
}

// GetID implements core.Entity
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Combatant) GetType() string {
	return string(c.Type)
}

// Alive reports hp above zero
func (c *Combatant) Alive() bool {
	return c.Stats.HP > 0
}

// Clone deep-copies the combatant. Items are shared since catalog items are
// immutable.
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	out := *c
	if c.Equipment != nil {
		out.Equipment = make(map[EquipmentSlot]*Item, len(c.Equipment))
		for slot, item := range c.Equipment {
			out.Equipment[slot] = item
		}
	}
	return &out
}
