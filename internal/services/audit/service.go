package audit

import (
	"github.com/shopspring/decimal"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/ledger"
)

// Status classifies the chip-conservation check
type Status string

const (
	// StatusBalanced means declared cashouts match chips issued
	StatusBalanced Status = "balanced"
	// StatusChipsMissing means cashouts fall short of chips issued
	StatusChipsMissing Status = "chips_missing"
	// StatusChipsExcess means cashouts exceed chips issued
	StatusChipsExcess Status = "chips_excess"
)

// Report is the result of one conservation check. It is purely
// informational and never blocks finishing a game.
type Report struct {
	// Chips is the total chip value issued to players
	Chips decimal.Decimal
	// Declared is the total cashout declared at the table
	Declared decimal.Decimal
	// Difference is Chips - Declared
	Difference decimal.Decimal

	Status   Status
	Balanced bool
}

// Service cross-checks chips issued against cashouts declared.
// Money is exact decimal, so the check has no tolerance: any nonzero
// difference is a data-entry error.
type Service struct {
	ledger *ledger.Service
}

// New creates a new audit Service
func New(ledger *ledger.Service) *Service {
	return &Service{ledger: ledger}
}

// Audit runs the conservation check over the current game
func (s *Service) Audit(g *model.Game) Report {
	chips := s.ledger.Totals(g).Chips

	declared := decimal.Zero
	for _, p := range g.LivePlayers() {
		if p.Cashout != nil {
			declared = declared.Add(*p.Cashout)
		}
	}

	diff := chips.Sub(declared)

	status := StatusBalanced
	switch {
	case diff.IsPositive():
		status = StatusChipsMissing
	case diff.IsNegative():
		status = StatusChipsExcess
	}

	return Report{
		Chips:      chips,
		Declared:   declared,
		Difference: diff,
		Status:     status,
		Balanced:   status == StatusBalanced,
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Audit(g *model.Game) Report
}

var _ ServiceInterface = (*Service)(nil)
