package entities

// SpellType is the effect family of a spell
type SpellType string

// Spell types
const (
	SpellDamage SpellType = "DAMAGE"
	SpellHeal   SpellType = "HEAL"
)

// Spell is a castable ability. Range is in grid tiles.
type Spell struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Level  int       `json:"level"`
	Range  int       `json:"range"`
	Type   SpellType `json:"type"`
	Dice   Dice      `json:"dice"`
	School string    `json:"school,omitempty"`
}

// Cantrip reports a level 0 spell
func (s *Spell) Cantrip() bool {
	return s.Level == 0
}
