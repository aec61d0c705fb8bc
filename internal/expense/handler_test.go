package expense_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/expense"
	"github.com/frahmantamala/expense-insights/internal/transport"
)

var _ = Describe("Expense Handler", func() {
	var (
		repo    *mockExpenseRepository
		handler *expense.Handler
		router  chi.Router
	)

	BeforeEach(func() {
		repo = newMockExpenseRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := expense.NewService(repo, logger)
		handler = expense.NewHandler(&transport.BaseHandler{Logger: logger}, service, 5*time.Second)

		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userID := r.Header.Get("X-Test-User"); userID != "" {
					r = r.WithContext(internal.ContextWithUserID(r.Context(), userID))
				}
				next.ServeHTTP(w, r)
			})
		})
		router.Get("/expenses", handler.ListExpenses)
		router.Get("/expenses/{id}", handler.GetExpense)
	})

	serve := func(url, userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		if userID != "" {
			req.Header.Set("X-Test-User", userID)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req.WithContext(context.Background()))
		return rec
	}

	Describe("GetExpense", func() {
		It("should return the expense to its owner", func() {
			repo.add(newRecord("exp-1", "user-1", "12.5", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))

			rec := serve("/expenses/exp-1", "user-1")

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp expense.Response
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Amount).To(Equal(12.5))
		})

		It("should answer 403 to other users", func() {
			repo.add(newRecord("exp-1", "user-1", "12.5", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))

			rec := serve("/expenses/exp-1", "user-2")

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			var info internal.ErrorInfo
			Expect(json.Unmarshal(rec.Body.Bytes(), &info)).To(Succeed())
			Expect(info).To(Equal(internal.ErrorInfo{Message: "unauthorized access to expense", Status: http.StatusForbidden}))
		})

		It("should answer 404 for unknown ids", func() {
			rec := serve("/expenses/nope", "user-1")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should require a user", func() {
			rec := serve("/expenses/exp-1", "")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("ListExpenses", func() {
		It("should list expenses in the requested range", func() {
			repo.add(newRecord("exp-1", "user-1", "10", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
			repo.add(newRecord("exp-2", "user-1", "20", time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)))

			rec := serve("/expenses?from=2024-03-01&to=2024-04-01", "user-1")

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp expense.ListResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Expenses).To(HaveLen(1))
			Expect(resp.Expenses[0].ID).To(Equal("exp-1"))
		})

		It("should reject malformed dates", func() {
			rec := serve("/expenses?from=March", "user-1")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject an empty range", func() {
			rec := serve("/expenses?from=2024-03-01&to=2024-03-01", "user-1")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
