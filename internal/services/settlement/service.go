package settlement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/ledger"
)

// FeeRate is the flat settlement fee taken from each declared cashout.
// Distinct from the fixed per-buy-in house fee.
var FeeRate = decimal.NewFromFloat(0.10)

// Points awarded by final rank position
var pointsSchedule = []int{20, 15, 10, 5}

// Service computes cashout-based results and the final ranking.
// Pure projection over the game record, like the ledger.
type Service struct {
	ledger *ledger.Service
}

// New creates a new settlement Service
func New(ledger *ledger.Service) *Service {
	return &Service{ledger: ledger}
}

// PlayerResult is one player's settled outcome
type PlayerResult struct {
	PlayerID model.PlayerID
	Name     string

	InvestedChips decimal.Decimal
	// Out is the declared cashout, zero if none declared
	Out decimal.Decimal
	// Ratio is Out / InvestedChips, zero when nothing was invested
	Ratio decimal.Decimal
	// Fee is the settlement cut taken from Out
	Fee decimal.Decimal
	// Net is Out - Fee
	Net decimal.Decimal

	// Rank position, 0-indexed
	Rank   int
	Points int
}

// Summary is the full settlement for the table
type Summary struct {
	Results []PlayerResult

	// TotalDeclared is the sum of all declared cashouts
	TotalDeclared decimal.Decimal
	// HouseCut is the settlement fee over the whole table
	HouseCut decimal.Decimal
	// PayoutPool is what remains for the players
	PayoutPool decimal.Decimal
}

// Ranking computes per-player results ordered best to worst.
// Order: descending performance ratio, ties broken by descending
// cashout, remaining ties keep seat order so output is deterministic.
func (s *Service) Ranking(g *model.Game) Summary {
	players := g.LivePlayers()
	results := make([]PlayerResult, 0, len(players))

	totalDeclared := decimal.Zero
	for _, p := range players {
		pl := s.ledger.PlayerLedger(g, p)

		out := decimal.Zero
		if p.Cashout != nil {
			out = *p.Cashout
		}

		ratio := decimal.Zero
		if pl.InvestedChips.IsPositive() {
			ratio = out.Div(pl.InvestedChips)
		}

		fee := out.Mul(FeeRate)

		results = append(results, PlayerResult{
			PlayerID:      p.ID,
			Name:          p.Name,
			InvestedChips: pl.InvestedChips,
			Out:           out,
			Ratio:         ratio,
			Fee:           fee,
			Net:           out.Sub(fee),
		})
		totalDeclared = totalDeclared.Add(out)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].Ratio.Equal(results[j].Ratio) {
			return results[i].Ratio.GreaterThan(results[j].Ratio)
		}
		return results[i].Out.GreaterThan(results[j].Out)
	})

	for i := range results {
		results[i].Rank = i
		results[i].Points = PointsForRank(i)
	}

	houseCut := totalDeclared.Mul(FeeRate)

	return Summary{
		Results:       results,
		TotalDeclared: totalDeclared,
		HouseCut:      houseCut,
		PayoutPool:    totalDeclared.Sub(houseCut),
	}
}

// PointsForRank returns the award points for a 0-indexed rank
// position. The schedule is fixed, not configurable.
func PointsForRank(rank int) int {
	if rank < len(pointsSchedule) {
		return pointsSchedule[rank]
	}
	return pointsSchedule[len(pointsSchedule)-1]
}

// Interface for dependency injection
type ServiceInterface interface {
	Ranking(g *model.Game) Summary
}

var _ ServiceInterface = (*Service)(nil)
