package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, internal.ErrorInfo{
		Message: message,
		Status:  status,
	})
}

// HandleServiceError normalizes err and writes it as the response.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	info := internal.ParseError(err)
	if info.Status >= http.StatusInternalServerError {
		// internal details stay in the logs
		h.Logger.Error("service error", "error", err, "status", info.Status)
		if _, ok := internal.IsAppError(err); !ok {
			info.Message = internal.DefaultErrorMessage
		}
	}
	h.WriteJSON(w, info.Status, info)
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
