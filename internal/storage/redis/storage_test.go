package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pkarhu/pokernight/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
	s.mini.Close()
}

func (s *StorageSuite) sampleGame() *model.Game {
	g := model.NewGame()
	g.Phase = model.PhaseCashout
	g.Config = model.GameConfig{BuyIn: decimal.NewFromInt(50)}
	cashout := decimal.RequireFromString("62.50")
	g.Players = []*model.Player{
		{
			ID:          "p1",
			Name:        "Alice",
			BuyInStatus: model.PaymentPending,
			Rebuys: []model.Rebuy{
				{ID: "r1", Amount: decimal.NewFromInt(20), Status: model.PaymentPaid},
			},
			Cashout: &cashout,
		},
		{
			ID:          "p2",
			Name:        "Bob",
			BuyInStatus: model.PaymentPaid,
			Rebuys:      []model.Rebuy{},
		},
	}
	return g
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.sampleGame()))

	loaded, err := s.storage.GetGame(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.PhaseCashout, loaded.Phase)
	s.True(loaded.Config.BuyIn.Equal(decimal.NewFromInt(50)))
	s.Require().Len(loaded.Players, 2)
	s.Require().NotNil(loaded.Players[0].Cashout)
	s.True(loaded.Players[0].Cashout.Equal(decimal.RequireFromString("62.50")))
	s.Nil(loaded.Players[1].Cashout)
	s.Require().Len(loaded.Players[0].Rebuys, 1)
	s.Equal(model.PaymentPaid, loaded.Players[0].Rebuys[0].Status)
}

func (s *StorageSuite) TestGameStoredUnderFixedKey() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.sampleGame()))

	s.True(s.mini.Exists("pokernight:game"))
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.sampleGame()))
	s.Require().NoError(s.storage.DeleteGame(s.ctx))

	_, err := s.storage.GetGame(s.ctx)
	s.ErrorIs(err, model.ErrGameNotFound)
	s.False(s.mini.Exists("pokernight:game"))
}

func (s *StorageSuite) TestDeleteMissingGameSucceeds() {
	s.NoError(s.storage.DeleteGame(s.ctx))
}

func (s *StorageSuite) TestCorruptDataIsReported() {
	s.Require().NoError(s.mini.Set("pokernight:game", "definitely not json"))

	_, err := s.storage.GetGame(s.ctx)
	s.ErrorIs(err, model.ErrCorruptGameData)
}
