package filterstate

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. States
// are stored serialized so callers never share slices with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves the state for an owner
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.OwnerID]
	r.mu.RUnlock()
	if !exists {
		return nil, errors.NotFoundf("no saved filter state for %s", input.OwnerID)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal filter state")
	}
	return &GetOutput{State: &state}, nil
}

// Save stores the state for an owner
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	state := *input.State
	state.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal filter state")
	}

	r.mu.Lock()
	r.store[state.OwnerID] = data
	r.mu.Unlock()

	return &SaveOutput{State: &state}, nil
}

// Delete removes the state for an owner
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.OwnerID]; !exists {
		return nil, errors.NotFoundf("no saved filter state for %s", input.OwnerID)
	}
	delete(r.store, input.OwnerID)

	return &DeleteOutput{}, nil
}
