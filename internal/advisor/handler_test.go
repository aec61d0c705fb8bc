package advisor_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/advisor"
	"github.com/frahmantamala/expense-insights/internal/expense"
	"github.com/frahmantamala/expense-insights/internal/llm/mocks"
	"github.com/frahmantamala/expense-insights/internal/transport"
)

type periodCall struct {
	from, to time.Time
}

type fakeExpenseSource struct {
	mu      sync.Mutex
	calls   []periodCall
	byStart map[time.Time][]expense.Expense
	err     error
}

func (f *fakeExpenseSource) LoadPeriod(_ context.Context, _ string, from, to time.Time) ([]expense.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, periodCall{from: from, to: to})
	if f.err != nil {
		return nil, f.err
	}
	return f.byStart[from], nil
}

var _ = Describe("Handler", func() {
	var (
		ctrl          *gomock.Controller
		mockCompleter *mocks.MockCompleter
		source        *fakeExpenseSource
		handler       *advisor.Handler
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockCompleter = mocks.NewMockCompleter(ctrl)
		source = &fakeExpenseSource{byStart: map[time.Time][]expense.Expense{}}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service := advisor.NewService(mockCompleter, nil, logger)
		handler = advisor.NewHandler(transport.NewBaseHandler(logger), service, source)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	post := func(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec
	}

	Describe("Categorize", func() {
		It("should return the category", func() {
			mockCompleter.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Bills", nil)

			rec := post(handler.Categorize, `{"description":"Electricity"}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp advisor.CategorizeResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Category).To(Equal("Bills"))
		})

		It("should reject malformed bodies", func() {
			rec := post(handler.Categorize, `{`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should require a description", func() {
			rec := post(handler.Categorize, `{"description":"   "}`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("description is required"))
		})

		It("should reject descriptions over 500 characters", func() {
			rec := post(handler.Categorize, `{"description":"`+strings.Repeat("a", 501)+`"}`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("must not exceed 500 characters"))
		})
	})

	Describe("Summary", func() {
		It("should summarize the posted expenses", func() {
			rec := post(handler.Summary, `{"expenses":[{"amount":150,"category":"Food"}],"previousExpenses":[{"amount":100,"category":"Food"}]}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp advisor.SummaryResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Summary).To(HavePrefix("You spent $150.00 this month, which increased by 50.00%"))
		})

		It("should accept calendar dates on the posted expenses", func() {
			rec := post(handler.Summary, `{"expenses":[{"amount":150,"category":"Food","date":"2024-03-10"}],"previousExpenses":[{"amount":100,"category":"Food","date":"2024-02-10T09:00:00Z"}]}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should reject negative amounts", func() {
			rec := post(handler.Summary, `{"expenses":[{"amount":-1,"category":"Food"}]}`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var info internal.ErrorInfo
			Expect(json.Unmarshal(rec.Body.Bytes(), &info)).To(Succeed())
			Expect(info.Status).To(Equal(http.StatusBadRequest))
			Expect(info.Message).To(ContainSubstring("expenses[0].amount"))
		})
	})

	Describe("Suggestions", func() {
		It("should reject a missing budget", func() {
			rec := post(handler.Suggestions, `{"expenses":[]}`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return the suggestions", func() {
			rec := post(handler.Suggestions, `{"expenses":[{"amount":"250","category":"Rent"}],"monthlyBudget":1000}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp advisor.SuggestionsResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Suggestions).To(HavePrefix("You've used 25.00% of your budget. Your highest spending is in Rent."))
		})
	})

	Describe("Predictions", func() {
		It("should return means keyed by category", func() {
			mockCompleter.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("down"))

			rec := post(handler.Predictions, `{"expenses":[{"amount":20,"category":"Food","date":"2024-03-10"},{"amount":30,"category":"Food","date":"2024-02-10"}]}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp advisor.PredictionResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Predictions).To(HaveKeyWithValue("Food", 25.0))
			Expect(resp.Analysis).To(ContainSubstring("$25.00"))
		})
	})

	Describe("MonthlyOverview", func() {
		get := func(url, userID string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if userID != "" {
				req = req.WithContext(internal.ContextWithUserID(req.Context(), userID))
			}
			rec := httptest.NewRecorder()
			handler.MonthlyOverview(rec, req)
			return rec
		}

		It("should require an authenticated user", func() {
			rec := get("/api/v1/insights/overview?month=2024-03&budget=100", "")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a malformed month", func() {
			rec := get("/api/v1/insights/overview?month=03-2024&budget=100", "user-1")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a missing budget", func() {
			rec := get("/api/v1/insights/overview?month=2024-03", "user-1")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should load the month, the previous month and the history window", func() {
			// Given
			march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			february := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
			december := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
			source.byStart[march] = []expense.Expense{newExpense(expense.CategoryFood, "60")}
			source.byStart[february] = []expense.Expense{newExpense(expense.CategoryFood, "30")}
			source.byStart[december] = []expense.Expense{newExpense(expense.CategoryBills, "90")}
			mockCompleter.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Bills stay flat.", nil)

			// When
			rec := get("/api/v1/insights/overview?month=2024-03&budget=120&months=3", "user-1")

			// Then
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(source.calls).To(ConsistOf(
				periodCall{from: march, to: march.AddDate(0, 1, 0)},
				periodCall{from: february, to: march},
				periodCall{from: december, to: march},
			))

			var resp advisor.OverviewResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Month).To(Equal("2024-03"))
			Expect(resp.Summary).To(ContainSubstring("increased by 100.00%"))
			Expect(resp.Suggestions).To(HavePrefix("You've used 50.00% of your budget."))
			Expect(resp.Prediction.Predictions).To(HaveKeyWithValue("Bills", 90.0))
			Expect(resp.Prediction.Analysis).To(Equal("Bills stay flat."))
		})

		It("should report store failures", func() {
			source.err = internal.NewExternalError("expense store unavailable", internal.ErrCodeStoreUnavailable, errors.New("dial tcp"))

			rec := get("/api/v1/insights/overview?month=2024-03&budget=120", "user-1")

			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})
	})
})
