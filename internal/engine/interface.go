// Package engine holds the combat rules: modifiers, derived stats, attack
// and spell resolution and initiative.
package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// Engine provides game mechanics and rules calculations
type Engine interface {
	// Pure calculations
	AbilityModifier(score int) int
	ProficiencyBonus(level int) int
	MaxHitPoints(level, con, hitDie int) int
	Recompute(stats entities.CombatStats, equipment map[entities.EquipmentSlot]*entities.Item) entities.CombatStats

	// Rolls
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// Resolution
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
	ResolveSpell(ctx context.Context, input *ResolveSpellInput) (*ResolveSpellOutput, error)
	ResolveEnemyAttack(ctx context.Context, input *ResolveEnemyAttackInput) (*ResolveEnemyAttackOutput, error)
}
