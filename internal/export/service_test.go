package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/audit"
	"github.com/pkarhu/pokernight/internal/services/ledger"
	"github.com/pkarhu/pokernight/internal/services/settlement"
	"github.com/pkarhu/pokernight/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ledgerService := ledger.New()
	s.service = New(
		ledgerService,
		settlement.New(ledgerService),
		audit.New(ledgerService),
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

func (s *ServiceSuite) finishedGame() *model.Game {
	g := model.NewGame()
	g.Phase = model.PhaseFinished
	g.Config = model.GameConfig{BuyIn: decimal.NewFromInt(50)}
	aliceOut := decimal.NewFromInt(80)
	bobOut := decimal.NewFromInt(20)
	g.Players = []*model.Player{
		{ID: "p1", Name: "Alice", BuyInStatus: model.PaymentPaid, Rebuys: []model.Rebuy{}, Cashout: &aliceOut},
		{ID: "p2", Name: "Bob", BuyInStatus: model.PaymentPending, Rebuys: []model.Rebuy{}, Cashout: &bobOut},
	}
	return g
}

func (s *ServiceSuite) TestRenderEmptyGame() {
	out := string(s.service.Render(model.NewGame()))

	s.Contains(out, "setup")
	s.Contains(out, "Players: 0")
	s.NotContains(out, "Buy-in:")
	s.NotContains(out, "Ranking:")
}

func (s *ServiceSuite) TestRenderFinishedGame() {
	out := string(s.service.Render(s.finishedGame()))

	s.Contains(out, "finished")
	s.Contains(out, "Buy-in: 50.00 (house fee 10.00)")
	s.Contains(out, "Players: 2")
	s.Contains(out, "Chips in play: 80.00")
	s.Contains(out, "Ranking:")
	s.Contains(out, "#1 Alice")
	s.Contains(out, "#2 Bob")
	s.Contains(out, "net 72.00")
	s.Contains(out, "20 pts")
	s.Contains(out, "House cut: 10.00")
	s.Contains(out, "Chip audit: chips_excess (difference -20.00)")
}

func (s *ServiceSuite) TestRenderShowsDebtors() {
	out := string(s.service.Render(s.finishedGame()))

	s.Contains(out, "Outstanding:")
	s.Contains(out, "Bob")
}

func (s *ServiceSuite) TestExportWritesArtifact() {
	var buf bytes.Buffer

	err := s.service.Export(s.ctx, s.finishedGame(), &buf)
	s.Require().NoError(err)

	s.Equal(s.service.Render(s.finishedGame()), buf.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (s *ServiceSuite) TestExportWrapsWriteFailure() {
	err := s.service.Export(s.ctx, s.finishedGame(), failingWriter{})

	s.ErrorIs(err, ErrExportFailed)
	s.Contains(err.Error(), "disk full")
}
