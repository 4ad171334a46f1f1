package response

import (
	"github.com/shopspring/decimal"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/audit"
	"github.com/pkarhu/pokernight/internal/services/ledger"
	"github.com/pkarhu/pokernight/internal/services/settlement"
)

// Rebuy is the wire form of a rebuy
type Rebuy struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// Player is the wire form of a player with its ledger summary
type Player struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	BuyInStatus string           `json:"buy_in_status"`
	Rebuys      []Rebuy          `json:"rebuys"`
	Cashout     *decimal.Decimal `json:"cashout,omitempty"`

	InvestedChips decimal.Decimal `json:"invested_chips"`
	PaidCash      decimal.Decimal `json:"paid_cash"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	PendingCash   decimal.Decimal `json:"pending_cash"`
}

// Game is the wire form of the full game state
type Game struct {
	Phase   string          `json:"phase"`
	BuyIn   decimal.Decimal `json:"buy_in"`
	Players []Player        `json:"players"`
	Totals  Totals          `json:"totals"`
}

// Totals is the wire form of the running table totals
type Totals struct {
	PlayerCount int             `json:"player_count"`
	BuyIns      decimal.Decimal `json:"buy_ins"`
	Fees        decimal.Decimal `json:"fees"`
	Rebuys      decimal.Decimal `json:"rebuys"`
	Chips       decimal.Decimal `json:"chips"`
	Paid        decimal.Decimal `json:"paid"`
	Pending     decimal.Decimal `json:"pending"`
}

// Debtor is the wire form of one outstanding balance
type Debtor struct {
	PlayerID string          `json:"player_id"`
	Name     string          `json:"name"`
	Pending  decimal.Decimal `json:"pending"`
}

// DebtorsResponse lists outstanding balances in seat order
type DebtorsResponse struct {
	Debtors []Debtor `json:"debtors"`
}

// PlayerResult is the wire form of one settled outcome
type PlayerResult struct {
	PlayerID      string          `json:"player_id"`
	Name          string          `json:"name"`
	InvestedChips decimal.Decimal `json:"invested_chips"`
	Out           decimal.Decimal `json:"out"`
	Ratio         decimal.Decimal `json:"ratio"`
	Fee           decimal.Decimal `json:"fee"`
	Net           decimal.Decimal `json:"net"`
	Rank          int             `json:"rank"`
	Points        int             `json:"points"`
}

// Ranking is the wire form of the settlement summary
type Ranking struct {
	Results       []PlayerResult  `json:"results"`
	TotalDeclared decimal.Decimal `json:"total_declared"`
	HouseCut      decimal.Decimal `json:"house_cut"`
	PayoutPool    decimal.Decimal `json:"payout_pool"`
}

// Audit is the wire form of the chip-conservation report
type Audit struct {
	Chips      decimal.Decimal `json:"chips"`
	Declared   decimal.Decimal `json:"declared"`
	Difference decimal.Decimal `json:"difference"`
	Status     string          `json:"status"`
	Balanced   bool            `json:"balanced"`
}

// GameFromModel builds the game response with per-player ledgers
func GameFromModel(g *model.Game, ledgerService *ledger.Service) Game {
	resp := Game{
		Phase:   string(g.Phase),
		BuyIn:   g.Config.BuyIn,
		Players: []Player{},
		Totals:  TotalsFromLedger(ledgerService.Totals(g)),
	}

	for _, p := range g.LivePlayers() {
		pl := ledgerService.PlayerLedger(g, p)

		rebuys := make([]Rebuy, 0, len(p.Rebuys))
		for _, r := range p.Rebuys {
			rebuys = append(rebuys, Rebuy{
				ID:     string(r.ID),
				Amount: r.Amount,
				Status: string(r.Status),
			})
		}

		resp.Players = append(resp.Players, Player{
			ID:            string(p.ID),
			Name:          p.Name,
			BuyInStatus:   string(p.BuyInStatus),
			Rebuys:        rebuys,
			Cashout:       p.Cashout,
			InvestedChips: pl.InvestedChips,
			PaidCash:      pl.PaidCash,
			TotalCost:     pl.TotalCost,
			PendingCash:   pl.PendingCash,
		})
	}

	return resp
}

// TotalsFromLedger converts ledger totals to the wire form
func TotalsFromLedger(t ledger.Totals) Totals {
	return Totals{
		PlayerCount: t.PlayerCount,
		BuyIns:      t.BuyIns,
		Fees:        t.Fees,
		Rebuys:      t.Rebuys,
		Chips:       t.Chips,
		Paid:        t.Paid,
		Pending:     t.Pending,
	}
}

// DebtorsFromLedger converts the debtor list to the wire form
func DebtorsFromLedger(debtors []ledger.Debtor) DebtorsResponse {
	resp := DebtorsResponse{Debtors: []Debtor{}}
	for _, d := range debtors {
		resp.Debtors = append(resp.Debtors, Debtor{
			PlayerID: string(d.PlayerID),
			Name:     d.Name,
			Pending:  d.Pending,
		})
	}
	return resp
}

// RankingFromSummary converts the settlement summary to the wire form
func RankingFromSummary(s settlement.Summary) Ranking {
	resp := Ranking{
		Results:       []PlayerResult{},
		TotalDeclared: s.TotalDeclared,
		HouseCut:      s.HouseCut,
		PayoutPool:    s.PayoutPool,
	}
	for _, r := range s.Results {
		resp.Results = append(resp.Results, PlayerResult{
			PlayerID:      string(r.PlayerID),
			Name:          r.Name,
			InvestedChips: r.InvestedChips,
			Out:           r.Out,
			Ratio:         r.Ratio,
			Fee:           r.Fee,
			Net:           r.Net,
			Rank:          r.Rank,
			Points:        r.Points,
		})
	}
	return resp
}

// AuditFromReport converts the audit report to the wire form
func AuditFromReport(r audit.Report) Audit {
	return Audit{
		Chips:      r.Chips,
		Declared:   r.Declared,
		Difference: r.Difference,
		Status:     string(r.Status),
		Balanced:   r.Balanced,
	}
}
