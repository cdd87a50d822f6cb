package engine

import "github.com/KirkDiggler/rpg-tactics/internal/entities"

// Event types published on the bus after a resolution
const (
	EventAttackResolved = "combat.attack"
	EventSpellResolved  = "combat.spell"
)

// EnemyProfile is the fixed damage line of a spawned enemy type
type EnemyProfile struct {
	Name   string
	Damage entities.Dice
}

// Enemy profiles
var (
	ProfileGoblin     = EnemyProfile{Name: "Goblin Raider", Damage: entities.Dice{Count: 1, Sides: 4, Bonus: 2}}
	ProfileShadowling = EnemyProfile{Name: "Shadowling", Damage: entities.Dice{Count: 1, Sides: 6, Bonus: 3}}
)

// RollDiceInput is the request for RollDice
type RollDiceInput struct {
	Dice entities.Dice
}

// RollDiceOutput carries each die and the total including the bonus
type RollDiceOutput struct {
	Rolls []int
	Total int
}

// RollInitiativeInput is the request for RollInitiative
type RollInitiativeInput struct {
	Combatants []*entities.Combatant
}

// InitiativeRoll is one combatant's place in the order
type InitiativeRoll struct {
	ID    string
	Roll  int
	Total int
}

// RollInitiativeOutput lists rolls sorted by Total descending. Equal totals
// keep the input order.
type RollInitiativeOutput struct {
	Order []InitiativeRoll
}

// IDs returns the turn order
func (o *RollInitiativeOutput) IDs() []string {
	ids := make([]string, len(o.Order))
	for i, r := range o.Order {
		ids[i] = r.ID
	}
	return ids
}

// ResolveAttackInput is the request for ResolveAttack
type ResolveAttackInput struct {
	Attacker *entities.Combatant
	Target   *entities.Combatant
}

// ResolveAttackOutput describes a weapon attack. Damage is zero on a miss.
type ResolveAttackOutput struct {
	Roll        int
	AttackBonus int
	Total       int
	TargetAC    int
	Hit         bool
	Critical    bool
	Fumble      bool
	Damage      int
	DamageRolls []int
}

// ResolveSpellInput is the request for ResolveSpell
type ResolveSpellInput struct {
	Caster *entities.Combatant
	Target *entities.Combatant
	Spell  *entities.Spell
}

// ResolveSpellOutput is the rolled damage or healing
type ResolveSpellOutput struct {
	Amount   int
	Modifier int
	Rolls    []int
}

// ResolveEnemyAttackInput is the request for ResolveEnemyAttack
type ResolveEnemyAttackInput struct {
	Attacker *entities.Combatant
	Target   *entities.Combatant
	Profile  EnemyProfile
}

// ResolveEnemyAttackOutput describes the simplified enemy swing
type ResolveEnemyAttackOutput struct {
	Roll     int
	Total    int
	Hit      bool
	Critical bool
	Damage   int
}
