package expense_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-insights/internal/expense"
)

var _ = Describe("Date", func() {
	decode := func(body string) (expense.Expense, error) {
		var e expense.Expense
		err := json.Unmarshal([]byte(body), &e)
		return e, err
	}

	It("should accept a calendar date", func() {
		e, err := decode(`{"amount":10,"category":"Food","date":"2024-03-10"}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(e.Date.Time).To(Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
	})

	It("should accept an RFC 3339 timestamp", func() {
		e, err := decode(`{"amount":10,"category":"Food","date":"2024-03-10T08:30:00Z"}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(e.Date.Time).To(Equal(time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)))
	})

	It("should leave a missing or null date zero", func() {
		e, err := decode(`{"amount":10,"category":"Food","date":null}`)

		Expect(err).NotTo(HaveOccurred())
		Expect(e.Date.IsZero()).To(BeTrue())
	})

	It("should reject other layouts", func() {
		_, err := decode(`{"amount":10,"category":"Food","date":"10/03/2024"}`)

		Expect(err).To(MatchError(ContainSubstring("neither YYYY-MM-DD nor RFC 3339")))
	})

	It("should encode as a calendar date", func() {
		out, err := json.Marshal(struct {
			Date expense.Date `json:"date"`
		}{Date: expense.NewDate(2024, time.March, 10)})

		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{"date":"2024-03-10"}`))
	})
})
