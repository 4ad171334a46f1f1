package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/ledger"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(ledger.New())
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Helper to build a cashout-phase game with the given buy-in
func (s *ServiceSuite) createGame(buyIn string) *model.Game {
	g := model.NewGame()
	g.Phase = model.PhaseCashout
	g.Config = model.GameConfig{BuyIn: dec(buyIn)}
	return g
}

func (s *ServiceSuite) addPlayer(g *model.Game, id, name string, out string) *model.Player {
	p := &model.Player{
		ID:          model.PlayerID(id),
		Name:        name,
		BuyInStatus: model.PaymentPending,
		Rebuys:      []model.Rebuy{},
	}
	if out != "" {
		amount := dec(out)
		p.Cashout = &amount
	}
	g.Players = append(g.Players, p)
	return p
}

// Two players on 40 chips each, cashing out 80 and 20

func (s *ServiceSuite) TestTwoPlayerSettlement() {
	g := s.createGame("50")
	s.addPlayer(g, "p1", "Alice", "20")
	s.addPlayer(g, "p2", "Bob", "80")

	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 2)

	winner := summary.Results[0]
	s.Equal(model.PlayerID("p2"), winner.PlayerID)
	s.True(winner.InvestedChips.Equal(dec("40")))
	s.True(winner.Ratio.Equal(dec("2")))
	s.True(winner.Fee.Equal(dec("8")))
	s.True(winner.Net.Equal(dec("72")))
	s.Equal(0, winner.Rank)
	s.Equal(20, winner.Points)

	loser := summary.Results[1]
	s.Equal(model.PlayerID("p1"), loser.PlayerID)
	s.True(loser.Ratio.Equal(dec("0.5")))
	s.True(loser.Fee.Equal(dec("2")))
	s.True(loser.Net.Equal(dec("18")))
	s.Equal(1, loser.Rank)
	s.Equal(15, loser.Points)

	s.True(summary.TotalDeclared.Equal(dec("100")))
	s.True(summary.HouseCut.Equal(dec("10")))
	s.True(summary.PayoutPool.Equal(dec("90")))
}

// Ratio tie broken by absolute cashout

func (s *ServiceSuite) TestRatioTieBrokenByCashout() {
	g := s.createGame("50")
	a := s.addPlayer(g, "p1", "Alice", "40")
	b := s.addPlayer(g, "p2", "Bob", "80")
	b.Rebuys = append(b.Rebuys,
		model.Rebuy{ID: "r1", Amount: dec("40"), Status: model.PaymentPending})

	// Both at ratio 1.0, Bob out 80 vs Alice out 40
	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 2)
	s.Equal(b.ID, summary.Results[0].PlayerID)
	s.Equal(a.ID, summary.Results[1].PlayerID)
	s.True(summary.Results[0].Ratio.Equal(summary.Results[1].Ratio))
}

// Full tie keeps seat order

func (s *ServiceSuite) TestFullTieKeepsSeatOrder() {
	g := s.createGame("50")
	s.addPlayer(g, "p1", "Alice", "40")
	s.addPlayer(g, "p2", "Bob", "40")
	s.addPlayer(g, "p3", "Carol", "40")

	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 3)
	s.Equal(model.PlayerID("p1"), summary.Results[0].PlayerID)
	s.Equal(model.PlayerID("p2"), summary.Results[1].PlayerID)
	s.Equal(model.PlayerID("p3"), summary.Results[2].PlayerID)
}

// Undeclared players count as zero cashout and rank last

func (s *ServiceSuite) TestUndeclaredCountsAsZero() {
	g := s.createGame("50")
	s.addPlayer(g, "p1", "Alice", "")
	s.addPlayer(g, "p2", "Bob", "60")

	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 2)
	s.Equal(model.PlayerID("p2"), summary.Results[0].PlayerID)
	s.Equal(model.PlayerID("p1"), summary.Results[1].PlayerID)
	s.True(summary.Results[1].Out.IsZero())
	s.True(summary.Results[1].Ratio.IsZero())
	s.True(summary.Results[1].Fee.IsZero())
	s.True(summary.TotalDeclared.Equal(dec("60")))
}

// Points schedule past the podium

func (s *ServiceSuite) TestPointsSchedule() {
	s.Equal(20, PointsForRank(0))
	s.Equal(15, PointsForRank(1))
	s.Equal(10, PointsForRank(2))
	s.Equal(5, PointsForRank(3))
	s.Equal(5, PointsForRank(4))
	s.Equal(5, PointsForRank(9))
}

func (s *ServiceSuite) TestFivePlayerPoints() {
	g := s.createGame("50")
	s.addPlayer(g, "p1", "Alice", "100")
	s.addPlayer(g, "p2", "Bob", "80")
	s.addPlayer(g, "p3", "Carol", "60")
	s.addPlayer(g, "p4", "Dave", "40")
	s.addPlayer(g, "p5", "Eve", "20")

	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 5)
	points := make([]int, 0, 5)
	for _, r := range summary.Results {
		points = append(points, r.Points)
	}
	s.Equal([]int{20, 15, 10, 5, 5}, points)
}

// Fractional cashouts settle exactly

func (s *ServiceSuite) TestExactFractionalFees() {
	g := s.createGame("50")
	s.addPlayer(g, "p1", "Alice", "33.33")

	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 1)
	s.True(summary.Results[0].Fee.Equal(dec("3.333")))
	s.True(summary.Results[0].Net.Equal(dec("29.997")))
	s.True(summary.Results[0].Fee.Add(summary.Results[0].Net).
		Equal(*g.Players[0].Cashout))
}

func (s *ServiceSuite) TestEmptyGame() {
	g := s.createGame("50")

	summary := s.service.Ranking(g)

	s.Empty(summary.Results)
	s.True(summary.TotalDeclared.IsZero())
	s.True(summary.HouseCut.IsZero())
	s.True(summary.PayoutPool.IsZero())
}

func (s *ServiceSuite) TestGhostsExcluded() {
	g := s.createGame("50")
	s.addPlayer(g, "p1", "Alice", "40")
	s.addPlayer(g, "p2", "  ", "999")

	summary := s.service.Ranking(g)

	s.Require().Len(summary.Results, 1)
	s.Equal(model.PlayerID("p1"), summary.Results[0].PlayerID)
	s.True(summary.TotalDeclared.Equal(dec("40")))
}
