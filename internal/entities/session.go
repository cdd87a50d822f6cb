package entities

// Phase is the top level state of a play session
type Phase string

// Session phases
const (
	PhaseCharacterCreation Phase = "CHARACTER_CREATION"
	PhaseOverworld         Phase = "OVERWORLD"
	PhaseTown              Phase = "TOWN_EXPLORATION"
	PhaseBattle            Phase = "BATTLE_TACTICAL"
	PhaseVictory           Phase = "BATTLE_VICTORY"
	PhaseDefeat            Phase = "BATTLE_DEFEAT"
)

// Exploring reports whether the party can walk around
func (p Phase) Exploring() bool {
	return p == PhaseOverworld || p == PhaseTown
}

// Session is everything that survives between calls: both worlds, the
// party, the pack and where everyone stands. Battle state lives with the
// battle engine and is referenced by EncounterID.
type Session struct {
	ID         string     `json:"id"`
	Phase      Phase      `json:"phase"`
	Difficulty Difficulty `json:"difficulty"`
	Dimension  Dimension  `json:"dimension"`
	Normal     *HexMap    `json:"normal"`
	Shadow     *HexMap    `json:"shadow"`
	// Town is the settlement layout while the party is inside one
	Town *HexMap `json:"town,omitempty"`
	// Position is on Town while in a settlement, otherwise on the active world
	Position Hex `json:"position"`
	// LastOverworldPos is where the party entered the current settlement
	LastOverworldPos *Hex `json:"last_overworld_pos,omitempty"`

	Party     []*Combatant `json:"party"`
	Inventory Inventory    `json:"inventory"`
	Gold      int          `json:"gold"`

	StandingOnPortal     bool `json:"standing_on_portal"`
	StandingOnSettlement bool `json:"standing_on_settlement"`

	EncounterID   string      `json:"encounter_id,omitempty"`
	BattleTerrain TerrainType `json:"battle_terrain,omitempty"`
	BattleWeather Weather     `json:"battle_weather,omitempty"`
	Rewards       *Rewards    `json:"rewards,omitempty"`

	Log []LogEntry `json:"log,omitempty"`
}

// World returns the overworld map for d
func (s *Session) World(d Dimension) *HexMap {
	if d == DimensionShadow {
		return s.Shadow
	}
	return s.Normal
}

// ActiveMap is the map the party is walking on
func (s *Session) ActiveMap() *HexMap {
	if s.Phase == PhaseTown && s.Town != nil {
		return s.Town
	}
	return s.World(s.Dimension)
}

// Member returns the party member with id
func (s *Session) Member(id string) *Combatant {
	for _, m := range s.Party {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Clone deep-copies the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Normal = s.Normal.Clone()
	out.Shadow = s.Shadow.Clone()
	out.Town = s.Town.Clone()
	if s.LastOverworldPos != nil {
		p := *s.LastOverworldPos
		out.LastOverworldPos = &p
	}
	out.Party = make([]*Combatant, len(s.Party))
	for i, m := range s.Party {
		out.Party[i] = m.Clone()
	}
	out.Inventory = s.Inventory.Clone()
	if s.Rewards != nil {
		r := *s.Rewards
		r.Items = append([]*Item(nil), s.Rewards.Items...)
		out.Rewards = &r
	}
	out.Log = append([]LogEntry(nil), s.Log...)
	return &out
}
