package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pkarhu/pokernight/internal/api/handler"
	"github.com/pkarhu/pokernight/internal/api/middleware"
	"github.com/pkarhu/pokernight/internal/export"
	"github.com/pkarhu/pokernight/internal/services/game"
	"github.com/pkarhu/pokernight/internal/services/ledger"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	LedgerService  *ledger.Service
	ExportService  *export.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.LedgerService, cfg.ExportService)
	playerHandler := handler.NewPlayerHandler(cfg.GameController, cfg.LedgerService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game lifecycle routes
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/game", gameHandler.Reset).Methods(http.MethodDelete)
	api.HandleFunc("/game/cashout", gameHandler.BeginCashout).Methods(http.MethodPost)
	api.HandleFunc("/game/finish", gameHandler.Finish).Methods(http.MethodPost)

	// Query routes
	api.HandleFunc("/game/totals", gameHandler.Totals).Methods(http.MethodGet)
	api.HandleFunc("/game/debtors", gameHandler.Debtors).Methods(http.MethodGet)
	api.HandleFunc("/game/ranking", gameHandler.Ranking).Methods(http.MethodGet)
	api.HandleFunc("/game/audit", gameHandler.Audit).Methods(http.MethodGet)
	api.HandleFunc("/game/export", gameHandler.Export).Methods(http.MethodGet)

	// Player and rebuy routes
	api.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/buyin", playerHandler.SetBuyInStatus).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}/rebuys", playerHandler.AddRebuy).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/rebuys/{rebuy_id}", playerHandler.RemoveRebuy).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/rebuys/{rebuy_id}/status", playerHandler.ToggleRebuyStatus).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}/cashout", playerHandler.SubmitCashout).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
