package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GamePhase represents the current phase of a game
type GamePhase string

const (
	PhaseSetup    GamePhase = "setup"    // No game started yet
	PhaseActive   GamePhase = "active"   // Buy-ins and rebuys being recorded
	PhaseCashout  GamePhase = "cashout"  // Players declaring final chip counts
	PhaseFinished GamePhase = "finished" // Settlement locked in
)

// GameConfig holds the per-game economics, fixed once the game starts
type GameConfig struct {
	BuyIn decimal.Decimal
}

// Game is the single authoritative record of one cash game.
// All derived values (totals, ranking, audit) are recomputed from it
// on demand and never stored.
type Game struct {
	Phase  GamePhase
	Config GameConfig

	// Players in seat order (seat order = display order)
	Players []*Player

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame returns the empty initial game
func NewGame() *Game {
	return &Game{
		Phase:   PhaseSetup,
		Players: []*Player{},
	}
}

// Started reports whether a buy-in amount has been fixed
func (g *Game) Started() bool {
	return g.Phase != PhaseSetup
}

// Finished reports whether settlement has been locked in
func (g *Game) Finished() bool {
	return g.Phase == PhaseFinished
}

// FindPlayer returns the player with the given id, or nil
func (g *Game) FindPlayer(id PlayerID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// LivePlayers returns the non-ghost players in seat order
func (g *Game) LivePlayers() []*Player {
	live := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if !p.IsGhost() {
			live = append(live, p)
		}
	}
	return live
}

// StripGhosts removes blank-named players. Applied on load to defend
// against previously persisted corrupt entries.
func (g *Game) StripGhosts() {
	g.Players = g.LivePlayers()
}

// HasCashouts reports whether any live player has declared a result
func (g *Game) HasCashouts() bool {
	for _, p := range g.LivePlayers() {
		if p.HasCashout() {
			return true
		}
	}
	return false
}
