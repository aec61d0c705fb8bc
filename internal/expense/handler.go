package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/transport"
)

const dateLayout = "2006-01-02"

type ServiceAPI interface {
	GetExpense(ctx context.Context, id, userID string) (*Response, error)
	ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]Response, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	// QueryTimeout bounds each store call; zero leaves the request deadline alone.
	QueryTimeout time.Duration
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, queryTimeout time.Duration) *Handler {
	return &Handler{
		BaseHandler:  baseHandler,
		Service:      service,
		QueryTimeout: queryTimeout,
	}
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("GetExpense: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	expenseID := chi.URLParam(r, "id")
	if expenseID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.QueryTimeout)
	defer cancel()

	resp, err := h.Service.GetExpense(ctx, expenseID, userID)
	if err != nil {
		h.Logger.Error("GetExpense: service error", "error", err, "expense_id", expenseID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("ListExpenses: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	from, to, err := parseRange(r, time.Now().UTC())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), h.QueryTimeout)
	defer cancel()

	expenses, err := h.Service.ListExpenses(ctx, userID, from, to)
	if err != nil {
		h.Logger.Error("ListExpenses: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ListResponse{
		Expenses: expenses,
		From:     from,
		To:       to,
	})
}

// parseRange reads the from/to query dates, defaulting to the calendar month
// containing now.
func parseRange(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, internal.NewValidationFieldError("from", "from must be a YYYY-MM-DD date", internal.ErrCodeInvalidDate)
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, internal.NewValidationFieldError("to", "to must be a YYYY-MM-DD date", internal.ErrCodeInvalidDate)
		}
		to = parsed
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, internal.NewValidationFieldError("to", "to must be after from", internal.ErrCodeInvalidDate)
	}
	return from, to, nil
}
