package factory

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pkarhu/pokernight/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TestNewWiresAllComponents() {
	app, err := New(Config{})
	s.Require().NoError(err)

	s.NotNil(app.Storage)
	s.NotNil(app.LedgerService)
	s.NotNil(app.SettlementService)
	s.NotNil(app.AuditService)
	s.NotNil(app.ExportService)
	s.NotNil(app.GameController)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

// A whole night at the table, front to back

func (s *IntegrationSuite) TestFullNight() {
	ctrl := s.app.GameController
	dec := decimal.RequireFromString

	_, err := ctrl.StartGame(s.ctx, dec("50"))
	s.Require().NoError(err)

	g, err := ctrl.AddPlayer(s.ctx, "Alice")
	s.Require().NoError(err)
	g, err = ctrl.AddPlayer(s.ctx, "Bob")
	s.Require().NoError(err)
	g, err = ctrl.AddPlayer(s.ctx, "Carol")
	s.Require().NoError(err)
	s.Require().Len(g.Players, 3)
	alice, bob, carol := g.Players[0].ID, g.Players[1].ID, g.Players[2].ID

	// Everyone pays up front except Carol
	_, err = ctrl.SetBuyInStatus(s.ctx, alice, model.PaymentPaid)
	s.Require().NoError(err)
	_, err = ctrl.SetBuyInStatus(s.ctx, bob, model.PaymentPaid)
	s.Require().NoError(err)

	// Bob goes bust and rebuys twice
	g, err = ctrl.AddRebuy(s.ctx, bob, dec("40"))
	s.Require().NoError(err)
	g, err = ctrl.AddRebuy(s.ctx, bob, dec("40"))
	s.Require().NoError(err)
	s.Require().Len(g.Players[1].Rebuys, 2)
	_, err = ctrl.ToggleRebuyStatus(s.ctx, bob, g.Players[1].Rebuys[0].ID)
	s.Require().NoError(err)

	totals, err := ctrl.Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, totals.PlayerCount)
	// Chips: 3 x 40 + 2 x 40 rebuys
	s.True(totals.Chips.Equal(dec("200")))
	s.True(totals.Fees.Equal(dec("30")))
	// Paid: Alice 50, Bob 50 + one paid rebuy 40
	s.True(totals.Paid.Equal(dec("140")))
	// Pending: Carol 50 + Bob's second rebuy 40
	s.True(totals.Pending.Equal(dec("90")))

	debtors, err := ctrl.Debtors(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(debtors, 2)
	s.Equal("Bob", debtors[0].Name)
	s.Equal("Carol", debtors[1].Name)

	// Cashout: Alice 150, Bob 30, Carol 20
	_, err = ctrl.BeginCashout(s.ctx)
	s.Require().NoError(err)
	_, err = ctrl.SubmitCashout(s.ctx, alice, dec("150"))
	s.Require().NoError(err)
	_, err = ctrl.SubmitCashout(s.ctx, bob, dec("30"))
	s.Require().NoError(err)
	_, err = ctrl.SubmitCashout(s.ctx, carol, dec("20"))
	s.Require().NoError(err)

	summary, err := ctrl.Ranking(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summary.Results, 3)
	// Ratios: Alice 150/40, Carol 20/40, Bob 30/120
	s.Equal("Alice", summary.Results[0].Name)
	s.Equal("Carol", summary.Results[1].Name)
	s.Equal("Bob", summary.Results[2].Name)
	s.Equal([]int{20, 15, 10}, []int{
		summary.Results[0].Points,
		summary.Results[1].Points,
		summary.Results[2].Points,
	})
	s.True(summary.TotalDeclared.Equal(dec("200")))
	s.True(summary.HouseCut.Equal(dec("20")))
	s.True(summary.PayoutPool.Equal(dec("180")))

	report, err := ctrl.Audit(s.ctx)
	s.Require().NoError(err)
	s.True(report.Balanced)

	g, err = ctrl.FinishGame(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PhaseFinished, g.Phase)

	// Export still works on the locked game
	var buf bytes.Buffer
	s.Require().NoError(s.app.ExportService.Export(s.ctx, g, &buf))
	s.Contains(buf.String(), "Alice")
	s.Contains(buf.String(), "Chip audit: balanced")

	// And reset wipes it all
	g, err = ctrl.ResetGame(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PhaseSetup, g.Phase)
	s.Empty(g.Players)
}
