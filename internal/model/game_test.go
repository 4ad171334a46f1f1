package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewGameIsEmptySetup(t *testing.T) {
	g := NewGame()

	assert.Equal(t, PhaseSetup, g.Phase)
	assert.Empty(t, g.Players)
	assert.False(t, g.Started())
	assert.False(t, g.Finished())
}

func TestPhasePredicates(t *testing.T) {
	g := NewGame()

	g.Phase = PhaseActive
	assert.True(t, g.Started())
	assert.False(t, g.Finished())

	g.Phase = PhaseFinished
	assert.True(t, g.Started())
	assert.True(t, g.Finished())
}

func TestIsGhost(t *testing.T) {
	assert.True(t, (&Player{Name: ""}).IsGhost())
	assert.True(t, (&Player{Name: "   "}).IsGhost())
	assert.True(t, (&Player{Name: "\t\n"}).IsGhost())
	assert.False(t, (&Player{Name: "Alice"}).IsGhost())
	assert.False(t, (&Player{Name: " Alice "}).IsGhost())
}

func TestStripGhosts(t *testing.T) {
	g := NewGame()
	g.Players = []*Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "  "},
		{ID: "p3", Name: "Bob"},
	}

	g.StripGhosts()

	assert.Len(t, g.Players, 2)
	assert.Equal(t, PlayerID("p1"), g.Players[0].ID)
	assert.Equal(t, PlayerID("p3"), g.Players[1].ID)
}

func TestFindPlayer(t *testing.T) {
	g := NewGame()
	g.Players = []*Player{{ID: "p1", Name: "Alice"}}

	assert.NotNil(t, g.FindPlayer("p1"))
	assert.Nil(t, g.FindPlayer("p2"))
}

func TestRebuyTotal(t *testing.T) {
	p := &Player{Rebuys: []Rebuy{
		{ID: "r1", Amount: decimal.NewFromInt(30)},
		{ID: "r2", Amount: decimal.RequireFromString("12.50")},
	}}

	assert.True(t, p.RebuyTotal().Equal(decimal.RequireFromString("42.50")))
	assert.True(t, (&Player{}).RebuyTotal().IsZero())
}

func TestFindRebuy(t *testing.T) {
	p := &Player{Rebuys: []Rebuy{{ID: "r1"}, {ID: "r2"}}}

	assert.Equal(t, 1, p.FindRebuy("r2"))
	assert.Equal(t, -1, p.FindRebuy("r3"))
}

func TestPaymentStatusToggle(t *testing.T) {
	assert.Equal(t, PaymentPending, PaymentPaid.Toggle())
	assert.Equal(t, PaymentPaid, PaymentPending.Toggle())
}

func TestHasCashoutsIgnoresGhosts(t *testing.T) {
	amount := decimal.NewFromInt(40)
	g := NewGame()
	g.Players = []*Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: " ", Cashout: &amount},
	}

	assert.False(t, g.HasCashouts())

	g.Players[0].Cashout = &amount
	assert.True(t, g.HasCashouts())
}
