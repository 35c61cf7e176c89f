package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON encodes payload into a pooled buffer before writing the status,
// so encoding failures can still become a 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgCollectionNotFoundErr = "Collection not found"
	ErrMsgInsufficientItemsErr  = "Not enough items"
	ErrMsgNotInInventoryError   = "You don't have that item"
	ErrMsgInvalidQuantityError  = "Invalid quantity"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgInvalidPlatformError  = "Invalid platform"
	ErrMsgUserBlockedError      = "User is blocked"
	ErrMsgForbiddenError        = "Not allowed"
	ErrMsgUpstreamError         = "Market data source unavailable"
)

// mapServiceErrorToUserMessage converts domain errors to an HTTP status and message
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrCollectionNotFound):
		return http.StatusNotFound, ErrMsgCollectionNotFoundErr
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgInsufficientItemsErr
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusConflict, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidPlatform):
		return http.StatusBadRequest, ErrMsgInvalidPlatformError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUserBlocked):
		return http.StatusForbidden, ErrMsgUserBlockedError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrUpstreamFetch):
		return http.StatusBadGateway, ErrMsgUpstreamError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, status, msg)
}
