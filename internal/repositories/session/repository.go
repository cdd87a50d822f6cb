// Package session provides the interface for session snapshot persistence
package session

import (
	"context"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// Repository defines the interface for session persistence
type Repository interface {
	// Save writes the full session, replacing any previous snapshot
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get loads a snapshot by session ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no snapshot exists
	// Returns errors.DataLoss for a snapshot that cannot be decoded
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a snapshot
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no snapshot exists
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a session
type SaveInput struct {
	Session *entities.Session
}

// SaveOutput defines the output for saving a session
type SaveOutput struct{}

// GetInput defines the input for loading a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for loading a session
type GetOutput struct {
	Session *entities.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}
