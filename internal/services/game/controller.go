package game

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pkarhu/pokernight/internal/dependencies/clock"
	"github.com/pkarhu/pokernight/internal/dependencies/random"
	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/audit"
	"github.com/pkarhu/pokernight/internal/services/ledger"
	"github.com/pkarhu/pokernight/internal/services/settlement"
	"github.com/pkarhu/pokernight/internal/storage"
)

// Controller drives the game lifecycle state machine. Commands load
// the stored game, validate, mutate, and save; queries are pure
// projections recomputed on every call. There is exactly one logical
// writer, so no command-level locking is needed.
type Controller struct {
	storage    storage.Storage
	ledger     *ledger.Service
	settlement *settlement.Service
	audit      *audit.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	ledgerService *ledger.Service,
	settlementService *settlement.Service,
	auditService *audit.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		ledger:     ledgerService,
		settlement: settlementService,
		audit:      auditService,
		clock:      clock,
		random:     random,
		logger:     logger,
	}
}

// Get returns the current game, falling back to the empty initial
// game when nothing is stored or the stored document is corrupt.
// Blank-named players are stripped before use.
func (c *Controller) Get(ctx context.Context) (*model.Game, error) {
	g, err := c.storage.GetGame(ctx)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return model.NewGame(), nil
		}
		if errors.Is(err, model.ErrCorruptGameData) {
			c.logger.Error("stored game is corrupt, starting fresh",
				slog.String("error", err.Error()),
			)
			return model.NewGame(), nil
		}
		return nil, err
	}

	g.StripGhosts()
	return g, nil
}

func (c *Controller) save(ctx context.Context, g *model.Game) error {
	g.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, g)
}

// requireEditable checks that player and rebuy commands are allowed
func requireEditable(g *model.Game) error {
	switch g.Phase {
	case model.PhaseSetup:
		return model.ErrGameNotStarted
	case model.PhaseFinished:
		return model.ErrGameFinished
	}
	return nil
}

// StartGame fixes the buy-in amount and opens the table.
// The buy-in must exceed the house fee, otherwise players would be
// credited non-positive chips.
func (c *Controller) StartGame(ctx context.Context, buyIn decimal.Decimal) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}

	if g.Phase != model.PhaseSetup {
		return nil, model.ErrGameAlreadyStarted
	}
	if !buyIn.GreaterThan(model.HouseFee) {
		return nil, model.ErrInvalidBuyIn
	}

	now := c.clock.Now()
	g.Phase = model.PhaseActive
	g.Config = model.GameConfig{BuyIn: buyIn}
	g.CreatedAt = now

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("buy_in", buyIn.String()),
	)
	return g, nil
}

// AddPlayer seats a new player with a pending buy-in. Blank names are
// a silent no-op.
func (c *Controller) AddPlayer(ctx context.Context, name string) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(g); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return g, nil
	}

	player := &model.Player{
		ID:          model.PlayerID(c.random.String(8, random.IDAlphabet)),
		Name:        name,
		BuyInStatus: model.PaymentPending,
		Rebuys:      []model.Rebuy{},
	}
	g.Players = append(g.Players, player)

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("name", name),
	)
	return g, nil
}

// RemovePlayer unseats a player. Unknown ids are a silent no-op.
// Removal is refused once any cashout is declared because it would
// silently change settlement totals.
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(g); err != nil {
		return nil, err
	}
	if g.HasCashouts() {
		return nil, model.ErrCashoutRecorded
	}

	idx := -1
	for i, p := range g.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return g, nil
	}

	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("player removed", slog.String("player_id", string(id)))
	return g, nil
}

// SetBuyInStatus marks a player's buy-in paid or pending. Unknown ids
// are a silent no-op.
func (c *Controller) SetBuyInStatus(ctx context.Context, id model.PlayerID, status model.PaymentStatus) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(g); err != nil {
		return nil, err
	}

	p := g.FindPlayer(id)
	if p == nil {
		return g, nil
	}

	p.BuyInStatus = status

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// AddRebuy records an extra cash contribution for a player. Amounts
// below the minimum are rejected without touching state. Unknown
// player ids are a silent no-op.
func (c *Controller) AddRebuy(ctx context.Context, playerID model.PlayerID, amount decimal.Decimal) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(g); err != nil {
		return nil, err
	}
	if amount.LessThan(model.MinRebuy) {
		return nil, model.ErrInvalidAmount
	}

	p := g.FindPlayer(playerID)
	if p == nil {
		return g, nil
	}

	rebuy := model.Rebuy{
		ID:        model.RebuyID(c.random.String(8, random.IDAlphabet)),
		Amount:    amount,
		Status:    model.PaymentPending,
		CreatedAt: c.clock.Now(),
	}
	p.Rebuys = append(p.Rebuys, rebuy)

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("rebuy added",
		slog.String("player_id", string(playerID)),
		slog.String("rebuy_id", string(rebuy.ID)),
		slog.String("amount", amount.String()),
	)
	return g, nil
}

// RemoveRebuy deletes a rebuy. Unknown player or rebuy ids are a
// silent no-op.
func (c *Controller) RemoveRebuy(ctx context.Context, playerID model.PlayerID, rebuyID model.RebuyID) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(g); err != nil {
		return nil, err
	}

	p := g.FindPlayer(playerID)
	if p == nil {
		return g, nil
	}
	idx := p.FindRebuy(rebuyID)
	if idx == -1 {
		return g, nil
	}

	p.Rebuys = append(p.Rebuys[:idx], p.Rebuys[idx+1:]...)

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("rebuy removed",
		slog.String("player_id", string(playerID)),
		slog.String("rebuy_id", string(rebuyID)),
	)
	return g, nil
}

// ToggleRebuyStatus flips a rebuy between paid and pending. Applying
// it twice restores the original status. Unknown ids are a silent
// no-op.
func (c *Controller) ToggleRebuyStatus(ctx context.Context, playerID model.PlayerID, rebuyID model.RebuyID) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(g); err != nil {
		return nil, err
	}

	p := g.FindPlayer(playerID)
	if p == nil {
		return g, nil
	}
	idx := p.FindRebuy(rebuyID)
	if idx == -1 {
		return g, nil
	}

	p.Rebuys[idx].Status = p.Rebuys[idx].Status.Toggle()

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// BeginCashout closes the table for play and opens cashout entry.
// Already being in cashout is a no-op.
func (c *Controller) BeginCashout(ctx context.Context) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}

	switch g.Phase {
	case model.PhaseSetup:
		return nil, model.ErrGameNotStarted
	case model.PhaseFinished:
		return nil, model.ErrGameFinished
	case model.PhaseCashout:
		return g, nil
	}

	g.Phase = model.PhaseCashout

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("cashout entry opened")
	return g, nil
}

// SubmitCashout records a player's declared final chip value. May be
// re-submitted to correct an entry. Unknown ids are a silent no-op.
func (c *Controller) SubmitCashout(ctx context.Context, playerID model.PlayerID, amount decimal.Decimal) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}

	switch g.Phase {
	case model.PhaseSetup:
		return nil, model.ErrGameNotStarted
	case model.PhaseActive:
		return nil, model.ErrGameActive
	case model.PhaseFinished:
		return nil, model.ErrGameFinished
	}

	if amount.IsNegative() {
		return nil, model.ErrInvalidAmount
	}

	p := g.FindPlayer(playerID)
	if p == nil {
		return g, nil
	}

	p.Cashout = &amount

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("cashout submitted",
		slog.String("player_id", string(playerID)),
		slog.String("amount", amount.String()),
	)
	return g, nil
}

// FinishGame locks in the settlement. Irreversible: there is no
// unfinish. An unbalanced chip audit is logged but never blocks.
func (c *Controller) FinishGame(ctx context.Context) (*model.Game, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}

	switch g.Phase {
	case model.PhaseSetup:
		return nil, model.ErrGameNotStarted
	case model.PhaseActive:
		return nil, model.ErrGameActive
	case model.PhaseFinished:
		return g, nil
	}

	g.Phase = model.PhaseFinished

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	report := c.audit.Audit(g)
	c.logger.Info("game finished",
		slog.String("audit", string(report.Status)),
		slog.String("chips_difference", report.Difference.String()),
	)
	return g, nil
}

// ResetGame discards the stored game entirely. Hard destructive
// operation, not an undo; allowed from any phase.
func (c *Controller) ResetGame(ctx context.Context) (*model.Game, error) {
	if err := c.storage.DeleteGame(ctx); err != nil {
		return nil, err
	}

	c.logger.Info("game reset")
	return model.NewGame(), nil
}

// Totals returns the table-wide running figures
func (c *Controller) Totals(ctx context.Context) (ledger.Totals, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return ledger.Totals{}, err
	}
	return c.ledger.Totals(g), nil
}

// Debtors returns players with outstanding cash in seat order
func (c *Controller) Debtors(ctx context.Context) ([]ledger.Debtor, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	return c.ledger.Debtors(g), nil
}

// Ranking returns the settlement summary
func (c *Controller) Ranking(ctx context.Context) (settlement.Summary, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return settlement.Summary{}, err
	}
	return c.settlement.Ranking(g), nil
}

// Audit returns the chip-conservation report
func (c *Controller) Audit(ctx context.Context) (audit.Report, error) {
	g, err := c.Get(ctx)
	if err != nil {
		return audit.Report{}, err
	}
	return c.audit.Audit(g), nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Get(ctx context.Context) (*model.Game, error)
	StartGame(ctx context.Context, buyIn decimal.Decimal) (*model.Game, error)
	AddPlayer(ctx context.Context, name string) (*model.Game, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) (*model.Game, error)
	SetBuyInStatus(ctx context.Context, id model.PlayerID, status model.PaymentStatus) (*model.Game, error)
	AddRebuy(ctx context.Context, playerID model.PlayerID, amount decimal.Decimal) (*model.Game, error)
	RemoveRebuy(ctx context.Context, playerID model.PlayerID, rebuyID model.RebuyID) (*model.Game, error)
	ToggleRebuyStatus(ctx context.Context, playerID model.PlayerID, rebuyID model.RebuyID) (*model.Game, error)
	BeginCashout(ctx context.Context) (*model.Game, error)
	SubmitCashout(ctx context.Context, playerID model.PlayerID, amount decimal.Decimal) (*model.Game, error)
	FinishGame(ctx context.Context) (*model.Game, error)
	ResetGame(ctx context.Context) (*model.Game, error)
	Totals(ctx context.Context) (ledger.Totals, error)
	Debtors(ctx context.Context) ([]ledger.Debtor, error)
	Ranking(ctx context.Context) (settlement.Summary, error)
	Audit(ctx context.Context) (audit.Report, error)
}

var _ ControllerInterface = (*Controller)(nil)
