package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkarhu/pokernight/internal/export"
	"github.com/pkarhu/pokernight/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInvalidBuyIn       = "INVALID_BUY_IN"
	CodeGameNotStarted     = "GAME_NOT_STARTED"
	CodeGameAlreadyStarted = "GAME_ALREADY_STARTED"
	CodeGameActive         = "GAME_ACTIVE"
	CodeGameFinished       = "GAME_FINISHED"
	CodeCashoutRecorded    = "CASHOUT_RECORDED"
	CodeExportFailed       = "EXPORT_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "Game has not been started"}}
	case errors.Is(err, model.ErrGameAlreadyStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameAlreadyStarted, "Game is already started"}}
	case errors.Is(err, model.ErrGameActive):
		return &httpError{http.StatusConflict, APIError{CodeGameActive, "Game is still active"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is finished"}}
	case errors.Is(err, model.ErrInvalidBuyIn):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBuyIn, "Buy-in must be greater than the house fee"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount is not valid"}}
	case errors.Is(err, model.ErrCashoutRecorded):
		return &httpError{http.StatusConflict, APIError{CodeCashoutRecorded, "Players cannot be removed once a cashout is recorded"}}
	case errors.Is(err, export.ErrExportFailed):
		return &httpError{http.StatusInternalServerError, APIError{CodeExportFailed, "Export failed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
