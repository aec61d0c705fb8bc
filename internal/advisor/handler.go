package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/core/common/validation"
	"github.com/frahmantamala/expense-insights/internal/expense"
	"github.com/frahmantamala/expense-insights/internal/transport"
)

const monthLayout = "2006-01"

type ServiceAPI interface {
	Categorize(ctx context.Context, description string) string
	Summarize(ctx context.Context, current, previous []expense.Expense) string
	SuggestSavings(ctx context.Context, expenses []expense.Expense, monthlyBudget decimal.Decimal) string
	Predict(ctx context.Context, expenses []expense.Expense, months int) Prediction
	Overview(ctx context.Context, in OverviewInput) Overview
}

// ExpenseSource loads a user's expenses dated in [from, to).
type ExpenseSource interface {
	LoadPeriod(ctx context.Context, userID string, from, to time.Time) ([]expense.Expense, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Source  ExpenseSource
	now     func() time.Time
}

// NewHandler builds the insight handlers. source may be nil, in which case
// MonthlyOverview is unavailable.
func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, source ExpenseSource) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Source:      source,
		now:         time.Now,
	}
}

func (h *Handler) Categorize(w http.ResponseWriter, r *http.Request) {
	var dto CategorizeRequest
	if !h.decode(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	category := h.Service.Categorize(r.Context(), dto.Description)
	h.WriteJSON(w, http.StatusOK, CategorizeResponse{Category: category})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var dto SummaryRequest
	if !h.decode(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	summary := h.Service.Summarize(r.Context(), dto.Expenses, dto.PreviousExpenses)
	h.WriteJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var dto SuggestionsRequest
	if !h.decode(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	suggestions := h.Service.SuggestSavings(r.Context(), dto.Expenses, dto.MonthlyBudget)
	h.WriteJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	var dto PredictionRequest
	if !h.decode(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	prediction := h.Service.Predict(r.Context(), dto.Expenses, dto.Months)
	h.WriteJSON(w, http.StatusOK, prediction.ToResponse())
}

// MonthlyOverview loads the caller's month, the month before it and the
// preceding history window from the expense store, then runs the advisories.
func (h *Handler) MonthlyOverview(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.Logger.Error("MonthlyOverview: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if h.Source == nil {
		h.WriteError(w, http.StatusServiceUnavailable, "expense store not configured")
		return
	}

	q, err := h.parseOverviewQuery(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var current, previous, history []expense.Expense
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		current, err = h.Source.LoadPeriod(gctx, userID, q.start, q.start.AddDate(0, 1, 0))
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = h.Source.LoadPeriod(gctx, userID, q.start.AddDate(0, -1, 0), q.start)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = h.Source.LoadPeriod(gctx, userID, q.start.AddDate(0, -q.months, 0), q.start)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Logger.Error("MonthlyOverview: failed to load expenses", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	overview := h.Service.Overview(r.Context(), OverviewInput{
		Current:       current,
		Previous:      previous,
		History:       history,
		MonthlyBudget: q.budget,
		Months:        q.months,
	})

	h.WriteJSON(w, http.StatusOK, OverviewResponse{
		Month:       q.start.Format(monthLayout),
		Summary:     overview.Summary,
		Suggestions: overview.Suggestions,
		Prediction:  overview.Prediction.ToResponse(),
	})
}

type overviewQuery struct {
	start  time.Time
	budget decimal.Decimal
	months int
}

func (h *Handler) parseOverviewQuery(r *http.Request) (overviewQuery, error) {
	now := h.now().UTC()
	q := overviewQuery{
		start:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		months: DefaultPredictionMonths,
	}
	values := r.URL.Query()
	v := validation.NewValidator()

	if raw := values.Get("month"); raw != "" {
		start, err := time.Parse(monthLayout, raw)
		if err != nil {
			v.Field("month", raw).Custom(func(interface{}) *internal.AppError {
				return internal.NewValidationFieldError("month", "month must be YYYY-MM", internal.ErrCodeInvalidDate)
			})
		}
		q.start = start
	}

	budget, err := decimal.NewFromString(values.Get("budget"))
	if err != nil {
		budget = decimal.Zero
	}
	q.budget = budget
	v.Field("budget", budget).Positive(internal.ErrCodeInvalidBudget)

	if raw := values.Get("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			months = 0
		}
		q.months = months
		v.Field("months", months).IntRange(1, maxPredictionMonths, internal.ErrCodeValidationFailed)
	}

	if err := v.Validate(); err != nil {
		return q, err
	}
	return q, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.Error("invalid request body", "error", err, "path", r.URL.Path)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
