package expense_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	expenseDatamodel "github.com/frahmantamala/expense-insights/internal/core/datamodel/expense"
	"github.com/frahmantamala/expense-insights/internal/expense"
)

func strPtr(s string) *string { return &s }

var _ = Describe("FormatExpenseResponse", func() {
	var record *expenseDatamodel.Expense

	BeforeEach(func() {
		record = &expenseDatamodel.Expense{
			ID:            "exp-1",
			UserID:        "user-1",
			Amount:        decimal.RequireFromString("42.50"),
			Category:      "Food",
			Description:   "Dinner",
			Date:          time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Notes:         strPtr("with friends"),
			PaymentMethod: strPtr("card"),
			Tags:          expenseDatamodel.Tags{"social"},
			CreatedAt:     time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC),
			DeletedAt:     gorm.DeletedAt{},
		}
	})

	It("should serialize exactly the public fields", func() {
		// When
		b, err := json.Marshal(expense.FormatExpenseResponse(record))
		Expect(err).NotTo(HaveOccurred())

		// Then
		var body map[string]interface{}
		Expect(json.Unmarshal(b, &body)).To(Succeed())
		keys := make([]string, 0, len(body))
		for k := range body {
			keys = append(keys, k)
		}
		Expect(keys).To(ConsistOf(
			"id", "amount", "category", "description", "date",
			"notes", "aiCategory", "paymentMethod", "tags", "createdAt",
		))
	})

	It("should copy the values through", func() {
		resp := expense.FormatExpenseResponse(record)

		Expect(resp.ID).To(Equal("exp-1"))
		Expect(resp.Amount).To(Equal(42.5))
		Expect(resp.Category).To(Equal("Food"))
		Expect(*resp.Notes).To(Equal("with friends"))
		Expect(resp.AICategory).To(BeNil())
		Expect(resp.Tags).To(Equal([]string{"social"}))
		Expect(resp.CreatedAt).To(Equal(record.CreatedAt))
	})

	It("should render the date as a calendar date", func() {
		b, err := json.Marshal(expense.FormatExpenseResponse(record))
		Expect(err).NotTo(HaveOccurred())

		Expect(string(b)).To(ContainSubstring(`"date":"2024-03-02"`))
	})

	It("should keep absent optional fields as null", func() {
		record.Notes = nil
		record.PaymentMethod = nil

		b, err := json.Marshal(expense.FormatExpenseResponse(record))
		Expect(err).NotTo(HaveOccurred())

		Expect(string(b)).To(ContainSubstring(`"notes":null`))
		Expect(string(b)).To(ContainSubstring(`"aiCategory":null`))
		Expect(string(b)).To(ContainSubstring(`"paymentMethod":null`))
	})

	It("should never expose the owner", func() {
		b, err := json.Marshal(expense.FormatExpenseResponses([]*expenseDatamodel.Expense{record}))
		Expect(err).NotTo(HaveOccurred())

		Expect(string(b)).NotTo(ContainSubstring("user-1"))
		Expect(string(b)).NotTo(ContainSubstring("updatedAt"))
	})
})
