// Package export renders a shareable settlement summary. Export is a
// best-effort side channel: a failure here is reported to the user
// and never touches the game record.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/audit"
	"github.com/pkarhu/pokernight/internal/services/ledger"
	"github.com/pkarhu/pokernight/internal/services/settlement"
)

// ErrExportFailed wraps any failure while producing the artifact
var ErrExportFailed = errors.New("export failed")

// Service renders the game into a downloadable text artifact
type Service struct {
	ledger     *ledger.Service
	settlement *settlement.Service
	audit      *audit.Service
	logger     *slog.Logger
}

// New creates a new export Service
func New(
	ledgerService *ledger.Service,
	settlementService *settlement.Service,
	auditService *audit.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		ledger:     ledgerService,
		settlement: settlementService,
		audit:      auditService,
		logger:     logger,
	}
}

// Render produces the summary artifact for the given game
func (s *Service) Render(g *model.Game) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Poker Night — %s\n", g.Phase)
	if g.Started() {
		fmt.Fprintf(&buf, "Buy-in: %s (house fee %s)\n", g.Config.BuyIn.StringFixed(2), model.HouseFee.StringFixed(2))
	}
	buf.WriteString("\n")

	totals := s.ledger.Totals(g)
	fmt.Fprintf(&buf, "Players: %d\n", totals.PlayerCount)
	fmt.Fprintf(&buf, "Chips in play: %s\n", totals.Chips.StringFixed(2))
	fmt.Fprintf(&buf, "House fees: %s\n", totals.Fees.StringFixed(2))
	fmt.Fprintf(&buf, "Cash collected: %s\n", totals.Paid.StringFixed(2))
	fmt.Fprintf(&buf, "Cash pending: %s\n", totals.Pending.StringFixed(2))
	buf.WriteString("\n")

	if debtors := s.ledger.Debtors(g); len(debtors) > 0 {
		buf.WriteString("Outstanding:\n")
		for _, d := range debtors {
			fmt.Fprintf(&buf, "  %-20s %s\n", d.Name, d.Pending.StringFixed(2))
		}
		buf.WriteString("\n")
	}

	if g.HasCashouts() {
		summary := s.settlement.Ranking(g)
		buf.WriteString("Ranking:\n")
		for _, r := range summary.Results {
			fmt.Fprintf(&buf, "  #%d %-20s out %s  ratio %s  net %s  %d pts\n",
				r.Rank+1, r.Name, r.Out.StringFixed(2), r.Ratio.StringFixed(2), r.Net.StringFixed(2), r.Points)
		}
		fmt.Fprintf(&buf, "Declared: %s  House cut: %s  Pool: %s\n",
			summary.TotalDeclared.StringFixed(2), summary.HouseCut.StringFixed(2), summary.PayoutPool.StringFixed(2))
		buf.WriteString("\n")

		report := s.audit.Audit(g)
		fmt.Fprintf(&buf, "Chip audit: %s (difference %s)\n", report.Status, report.Difference.StringFixed(2))
	}

	return buf.Bytes()
}

// Export writes the rendered artifact to w
func (s *Service) Export(ctx context.Context, g *model.Game, w io.Writer) error {
	if _, err := w.Write(s.Render(g)); err != nil {
		s.logger.Error("export failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Render(g *model.Game) []byte
	Export(ctx context.Context, g *model.Game, w io.Writer) error
}

var _ ServiceInterface = (*Service)(nil)
