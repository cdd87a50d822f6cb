// Package chronicle records the outcome of every battle a session fights
package chronicle

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// Entry is one finished battle
type Entry struct {
	ID          int64                  `db:"id"`
	SessionID   string                 `db:"session_id"`
	EncounterID string                 `db:"encounter_id"`
	Outcome     entities.BattleOutcome `db:"outcome"`
	Dimension   entities.Dimension     `db:"dimension"`
	Terrain     entities.TerrainType   `db:"terrain"`
	EnemyLevel  int                    `db:"enemy_level"`
	Rounds      int                    `db:"rounds"`
	XP          int                    `db:"xp"`
	Gold        int                    `db:"gold"`
	RecordedAt  time.Time              `db:"recorded_at"`
}

// Repository defines the interface for the battle chronicle
type Repository interface {
	// Append stores an entry and returns it with its ID and timestamp set
	// Returns errors.InvalidArgument for a missing session or outcome
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// List returns a session's entries, most recent first
	// Returns errors.InvalidArgument for an empty session ID
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// AppendInput defines the input for Append
type AppendInput struct {
	Entry *Entry
}

// AppendOutput defines the output for Append
type AppendOutput struct {
	Entry *Entry
}

// ListInput defines the input for List. Zero Limit returns everything.
type ListInput struct {
	SessionID string
	Limit     int
}

// ListOutput defines the output for List
type ListOutput struct {
	Entries []*Entry
}
