package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/pkarhu/pokernight/internal/model"
)

// Service computes running cash and chip totals from the game record.
// All methods are pure projections: they never mutate the game and
// nothing they return is cached or persisted.
type Service struct{}

// New creates a new ledger Service
func New() *Service {
	return &Service{}
}

// Totals are the table-wide running figures over non-ghost players
type Totals struct {
	PlayerCount int

	// BuyIns is buy-in cash across the table, fees included
	BuyIns decimal.Decimal
	// Fees is the fixed house fee collected once per player
	Fees decimal.Decimal
	// Rebuys is the sum of all rebuy amounts
	Rebuys decimal.Decimal
	// Chips is the chip value issued to players: buy-ins net of fees
	// plus rebuys at face value. Independent of payment status.
	Chips decimal.Decimal

	// Cash-basis split of everything owed to the bank
	Paid    decimal.Decimal
	Pending decimal.Decimal
}

// PlayerLedger is the financial summary for one player
type PlayerLedger struct {
	PlayerID model.PlayerID
	Name     string

	// InvestedChips is the chip value credited to the player:
	// (buyIn - houseFee) + rebuys
	InvestedChips decimal.Decimal
	// PaidCash is cash settled so far: buy-in if paid, plus paid rebuys
	PaidCash decimal.Decimal
	// TotalCost is everything the player owes: buy-in plus all rebuys
	TotalCost decimal.Decimal
	// PendingCash is TotalCost - PaidCash
	PendingCash decimal.Decimal
}

// Debtor is a player who still owes cash
type Debtor struct {
	PlayerID model.PlayerID
	Name     string
	Pending  decimal.Decimal
}

// Totals computes the table-wide running figures
func (s *Service) Totals(g *model.Game) Totals {
	t := Totals{
		BuyIns:  decimal.Zero,
		Fees:    decimal.Zero,
		Rebuys:  decimal.Zero,
		Chips:   decimal.Zero,
		Paid:    decimal.Zero,
		Pending: decimal.Zero,
	}

	for _, p := range g.LivePlayers() {
		pl := s.PlayerLedger(g, p)
		t.PlayerCount++
		t.BuyIns = t.BuyIns.Add(g.Config.BuyIn)
		t.Fees = t.Fees.Add(model.HouseFee)
		t.Rebuys = t.Rebuys.Add(p.RebuyTotal())
		t.Chips = t.Chips.Add(pl.InvestedChips)
		t.Paid = t.Paid.Add(pl.PaidCash)
		t.Pending = t.Pending.Add(pl.PendingCash)
	}

	return t
}

// PlayerLedger computes the financial summary for one player
func (s *Service) PlayerLedger(g *model.Game, p *model.Player) PlayerLedger {
	paid := decimal.Zero
	if p.BuyInStatus == model.PaymentPaid {
		paid = g.Config.BuyIn
	}
	for _, r := range p.Rebuys {
		if r.Status == model.PaymentPaid {
			paid = paid.Add(r.Amount)
		}
	}

	totalCost := g.Config.BuyIn.Add(p.RebuyTotal())

	return PlayerLedger{
		PlayerID:      p.ID,
		Name:          p.Name,
		InvestedChips: g.Config.BuyIn.Sub(model.HouseFee).Add(p.RebuyTotal()),
		PaidCash:      paid,
		TotalCost:     totalCost,
		PendingCash:   totalCost.Sub(paid),
	}
}

// PlayerLedgers computes the summary for every non-ghost player in
// seat order
func (s *Service) PlayerLedgers(g *model.Game) []PlayerLedger {
	players := g.LivePlayers()
	ledgers := make([]PlayerLedger, 0, len(players))
	for _, p := range players {
		ledgers = append(ledgers, s.PlayerLedger(g, p))
	}
	return ledgers
}

// Debtors returns the players with outstanding cash, in seat order
// (not sorted by amount)
func (s *Service) Debtors(g *model.Game) []Debtor {
	var debtors []Debtor
	for _, p := range g.LivePlayers() {
		pl := s.PlayerLedger(g, p)
		if pl.PendingCash.IsPositive() {
			debtors = append(debtors, Debtor{
				PlayerID: p.ID,
				Name:     p.Name,
				Pending:  pl.PendingCash,
			})
		}
	}
	return debtors
}

// Interface for dependency injection
type ServiceInterface interface {
	Totals(g *model.Game) Totals
	PlayerLedger(g *model.Game, p *model.Player) PlayerLedger
	PlayerLedgers(g *model.Game) []PlayerLedger
	Debtors(g *model.Game) []Debtor
}

var _ ServiceInterface = (*Service)(nil)
