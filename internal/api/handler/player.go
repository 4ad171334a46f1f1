package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pkarhu/pokernight/internal/api/request"
	"github.com/pkarhu/pokernight/internal/api/response"
	"github.com/pkarhu/pokernight/internal/model"
	"github.com/pkarhu/pokernight/internal/services/game"
	"github.com/pkarhu/pokernight/internal/services/ledger"
)

// PlayerHandler handles player and rebuy endpoints
type PlayerHandler struct {
	controller    *game.Controller
	ledgerService *ledger.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *game.Controller, ledgerService *ledger.Service) *PlayerHandler {
	return &PlayerHandler{
		controller:    controller,
		ledgerService: ledgerService,
	}
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.controller.AddPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, h.ledgerService))
}

// Remove handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	g, err := h.controller.RemovePlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// SetBuyInStatus handles PATCH /api/v1/players/{id}/buyin
func (h *PlayerHandler) SetBuyInStatus(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SetBuyInStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	status := model.PaymentStatus(req.Status)
	if status != model.PaymentPaid && status != model.PaymentPending {
		WriteError(w, NewInvalidRequestError("status must be paid or pending"))
		return
	}

	g, err := h.controller.SetBuyInStatus(r.Context(), id, status)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// AddRebuy handles POST /api/v1/players/{id}/rebuys
func (h *PlayerHandler) AddRebuy(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.AddRebuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.controller.AddRebuy(r.Context(), id, amount)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, h.ledgerService))
}

// RemoveRebuy handles DELETE /api/v1/players/{id}/rebuys/{rebuy_id}
func (h *PlayerHandler) RemoveRebuy(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.PlayerID(vars["id"])
	rebuyID := model.RebuyID(vars["rebuy_id"])

	g, err := h.controller.RemoveRebuy(r.Context(), id, rebuyID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// ToggleRebuyStatus handles PATCH /api/v1/players/{id}/rebuys/{rebuy_id}/status
func (h *PlayerHandler) ToggleRebuyStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.PlayerID(vars["id"])
	rebuyID := model.RebuyID(vars["rebuy_id"])

	g, err := h.controller.ToggleRebuyStatus(r.Context(), id, rebuyID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}

// SubmitCashout handles POST /api/v1/players/{id}/cashout
func (h *PlayerHandler) SubmitCashout(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SubmitCashoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.controller.SubmitCashout(r.Context(), id, amount)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, h.ledgerService))
}
