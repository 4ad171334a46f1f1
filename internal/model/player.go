package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PlayerID uniquely identifies a player within a game
type PlayerID string

// RebuyID uniquely identifies a rebuy within its owning player
type RebuyID string

// PaymentStatus records whether a cash contribution has been settled
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// Toggle returns the opposite payment status
func (s PaymentStatus) Toggle() PaymentStatus {
	if s == PaymentPaid {
		return PaymentPending
	}
	return PaymentPaid
}

// Rebuy is an additional cash contribution made during play.
// Rebuys convert to chips at face value; the house fee applies to
// buy-ins only.
type Rebuy struct {
	ID        RebuyID
	Amount    decimal.Decimal
	Status    PaymentStatus
	CreatedAt time.Time
}

// Player is a seat at the table with its financial history
type Player struct {
	ID          PlayerID
	Name        string
	BuyInStatus PaymentStatus

	// Rebuys in insertion order (insertion order = display order)
	Rebuys []Rebuy

	// Cashout is nil while the player is still in play. Its presence
	// is the signal that the player has declared a result.
	Cashout *decimal.Decimal
}

// IsGhost reports whether the player has a blank name. Ghosts are
// excluded from every derived computation and stripped on load.
func (p *Player) IsGhost() bool {
	return strings.TrimSpace(p.Name) == ""
}

// RebuyTotal returns the sum of all rebuy amounts
func (p *Player) RebuyTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Rebuys {
		total = total.Add(r.Amount)
	}
	return total
}

// FindRebuy returns the index of the rebuy with the given id, or -1
func (p *Player) FindRebuy(id RebuyID) int {
	for i, r := range p.Rebuys {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// HasCashout reports whether the player has declared a result
func (p *Player) HasCashout() bool {
	return p.Cashout != nil
}
