package storage

import (
	"context"

	"github.com/pkarhu/pokernight/internal/model"
)

// Storage defines the interface for persisting the single game
// document. The game is saved after every mutation and loaded once at
// startup.
type Storage interface {
	// SaveGame stores the game, replacing any previous document
	SaveGame(ctx context.Context, game *model.Game) error

	// GetGame returns the stored game. model.ErrGameNotFound when no
	// document exists, model.ErrCorruptGameData (wrapped) when the
	// document cannot be decoded.
	GetGame(ctx context.Context) (*model.Game, error)

	// DeleteGame removes the stored document. Not an error if absent.
	DeleteGame(ctx context.Context) error
}
