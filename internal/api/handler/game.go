package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkarhu/pokernight/internal/api/request"
	"github.com/pkarhu/pokernight/internal/api/response"
	"github.com/pkarhu/pokernight/internal/export"
	"github.com/pkarhu/pokernight/internal/services/game"
	"github.com/pkarhu/pokernight/internal/services/ledger"
)

// GameHandler handles game lifecycle and query endpoints
type GameHandler struct {
	controller    *game.Controller
	ledgerService *ledger.Service
	exportService *export.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller, ledgerService *ledger.Service, exportService *export.Service) *GameHandler {
	return &GameHandler{
		controller:    controller,
		ledgerService: ledgerService,
		exportService: exportService,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// Start handles POST /api/v1/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	buyIn, err := parseAmount(req.BuyIn)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.controller.StartGame(r.Context(), buyIn)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, h.ledgerService))
}

// BeginCashout handles POST /api/v1/game/cashout
func (h *GameHandler) BeginCashout(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.BeginCashout(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// Finish handles POST /api/v1/game/finish
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.FinishGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// Reset handles DELETE /api/v1/game
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.ResetGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// Totals handles GET /api/v1/game/totals
func (h *GameHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.controller.Totals(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TotalsFromLedger(totals))
}

// Debtors handles GET /api/v1/game/debtors
func (h *GameHandler) Debtors(w http.ResponseWriter, r *http.Request) {
	debtors, err := h.controller.Debtors(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.DebtorsFromLedger(debtors))
}

// Ranking handles GET /api/v1/game/ranking
func (h *GameHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	summary, err := h.controller.Ranking(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RankingFromSummary(summary))
}

// Audit handles GET /api/v1/game/audit
func (h *GameHandler) Audit(w http.ResponseWriter, r *http.Request) {
	report, err := h.controller.Audit(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AuditFromReport(report))
}

// Export handles GET /api/v1/game/export: the direct-download
// fallback for sharing the settlement summary
func (h *GameHandler) Export(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="pokernight-summary.txt"`)
	if err := h.exportService.Export(r.Context(), g, w); err != nil {
		// Headers may already be out; nothing more to do than log,
		// which the export service has done.
		return
	}
}
