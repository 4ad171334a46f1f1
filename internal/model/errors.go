package model

import "errors"

// Common errors used across the application
var (
	// Game lifecycle errors
	ErrGameNotFound       = errors.New("no game stored")
	ErrGameNotStarted     = errors.New("game has not been started")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrGameActive         = errors.New("game is still active")
	ErrGameFinished       = errors.New("game is finished")

	// Ledger errors
	ErrInvalidBuyIn    = errors.New("buy-in must be greater than the house fee")
	ErrInvalidAmount   = errors.New("amount is not valid")
	ErrCashoutRecorded = errors.New("players cannot be removed once a cashout is recorded")

	// Storage errors
	ErrCorruptGameData = errors.New("stored game data is corrupt")
)
