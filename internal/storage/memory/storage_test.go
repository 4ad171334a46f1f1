package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pkarhu/pokernight/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) sampleGame() *model.Game {
	g := model.NewGame()
	g.Phase = model.PhaseActive
	g.Config = model.GameConfig{BuyIn: decimal.NewFromInt(50)}
	cashout := decimal.NewFromInt(75)
	g.Players = []*model.Player{
		{
			ID:          "p1",
			Name:        "Alice",
			BuyInStatus: model.PaymentPaid,
			Rebuys: []model.Rebuy{
				{ID: "r1", Amount: decimal.RequireFromString("30.50"), Status: model.PaymentPending},
			},
			Cashout: &cashout,
		},
	}
	return g
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	g := s.sampleGame()
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	loaded, err := s.storage.GetGame(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.PhaseActive, loaded.Phase)
	s.True(loaded.Config.BuyIn.Equal(decimal.NewFromInt(50)))
	s.Require().Len(loaded.Players, 1)

	p := loaded.Players[0]
	s.Equal(model.PlayerID("p1"), p.ID)
	s.Equal(model.PaymentPaid, p.BuyInStatus)
	s.Require().Len(p.Rebuys, 1)
	s.True(p.Rebuys[0].Amount.Equal(decimal.RequireFromString("30.50")))
	s.Require().NotNil(p.Cashout)
	s.True(p.Cashout.Equal(decimal.NewFromInt(75)))
}

func (s *StorageSuite) TestGetReturnsIndependentCopy() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.sampleGame()))

	first, err := s.storage.GetGame(s.ctx)
	s.Require().NoError(err)
	first.Players[0].Name = "Mallory"
	first.Phase = model.PhaseFinished

	second, err := s.storage.GetGame(s.ctx)
	s.Require().NoError(err)
	s.Equal("Alice", second.Players[0].Name)
	s.Equal(model.PhaseActive, second.Phase)
}

func (s *StorageSuite) TestSaveOverwrites() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.sampleGame()))

	g := model.NewGame()
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	loaded, err := s.storage.GetGame(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PhaseSetup, loaded.Phase)
	s.Empty(loaded.Players)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.sampleGame()))
	s.Require().NoError(s.storage.DeleteGame(s.ctx))

	_, err := s.storage.GetGame(s.ctx)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteWithoutSaveSucceeds() {
	s.NoError(s.storage.DeleteGame(s.ctx))
}

func (s *StorageSuite) TestCorruptDataIsReported() {
	s.storage.SetRaw([]byte("{broken"))

	_, err := s.storage.GetGame(s.ctx)
	s.ErrorIs(err, model.ErrCorruptGameData)
}
