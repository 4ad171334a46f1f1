package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The game is held as its JSON document so loads return an
// independent copy, matching the Redis backend's semantics.
type Storage struct {
	mu   sync.RWMutex
	data []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *Storage) GetGame(ctx context.Context) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, model.ErrGameNotFound
	}

	var game model.Game
	if err := json.Unmarshal(s.data, &game); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptGameData, err)
	}
	return &game, nil
}

// SetRaw replaces the stored document bytes directly. Test hook for
// exercising corrupt-data handling.
func (s *Storage) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

func (s *Storage) DeleteGame(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
