package entities

// Difficulty scales enemies and rewards
type Difficulty string

// Difficulty levels
const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyNormal Difficulty = "NORMAL"
	DifficultyHard   Difficulty = "HARD"
)

// DifficultySettings are the multipliers for one level
type DifficultySettings struct {
	EnemyStatMod     float64
	EncounterRateMod float64
	XPMod            float64
	GoldMod          float64
}

var difficultySettings = map[Difficulty]DifficultySettings{
	DifficultyEasy:   {EnemyStatMod: 0.7, EncounterRateMod: 0.7, XPMod: 1.3, GoldMod: 1.5},
	DifficultyNormal: {EnemyStatMod: 1.0, EncounterRateMod: 1.0, XPMod: 1.0, GoldMod: 1.0},
	DifficultyHard:   {EnemyStatMod: 1.5, EncounterRateMod: 1.3, XPMod: 1.5, GoldMod: 0.7},
}

// Settings returns the multipliers, falling back to NORMAL
func (d Difficulty) Settings() DifficultySettings {
	if s, ok := difficultySettings[d]; ok {
		return s
	}
	return difficultySettings[DifficultyNormal]
}

// Valid reports a known difficulty
func (d Difficulty) Valid() bool {
	_, ok := difficultySettings[d]
	return ok
}
