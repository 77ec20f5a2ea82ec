// Package filterstate persists a user's last filter selections so a client
// can restore them on its next visit. The stored shape has no schema
// version; unknown fields are dropped on read.
package filterstate

//go:generate mockgen -destination=mock/mock_repository.go -package=filterstatemock github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
)

// State is one owner's saved filter selections
type State struct {
	OwnerID   string               `json:"owner_id"`
	RaidID    string               `json:"raid_id,omitempty"`
	Criteria  partyfilter.Criteria `json:"criteria"`
	PageSize  int                  `json:"page_size,omitempty"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// GetInput contains parameters for loading a state
type GetInput struct {
	OwnerID string
}

// GetOutput contains the loaded state
type GetOutput struct {
	State *State
}

// SaveInput contains the state to store. UpdatedAt is set by the repository.
type SaveInput struct {
	State *State
}

// SaveOutput contains the state as stored
type SaveOutput struct {
	State *State
}

// DeleteInput contains parameters for removing a state
type DeleteInput struct {
	OwnerID string
}

// DeleteOutput is empty; deletion of a missing state is NotFound
type DeleteOutput struct{}

// Repository defines the interface for filter state storage operations
type Repository interface {
	// Get loads the state for an owner
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save overwrites the state for an owner
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the state for an owner
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errOwnerIDEmpty = "owner ID cannot be empty"
	errStateNil     = "state cannot be nil"
)
