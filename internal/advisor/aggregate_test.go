package advisor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/expense-insights/internal/advisor"
	"github.com/frahmantamala/expense-insights/internal/expense"
)

func amountFor(totals advisor.CategoryTotals, category expense.Category) (decimal.Decimal, bool) {
	for _, c := range totals {
		if c.Category == category {
			return c.Amount, true
		}
	}
	return decimal.Zero, false
}

var _ = Describe("Aggregation", func() {
	Describe("AggregateByCategory", func() {
		It("should sum per category exactly", func() {
			totals := advisor.AggregateByCategory([]expense.Expense{
				newExpense(expense.CategoryFood, "100"),
				newExpense(expense.CategoryFood, "50"),
				newExpense(expense.CategoryRent, "0.1"),
				newExpense(expense.CategoryRent, "0.2"),
			})

			food, _ := amountFor(totals, expense.CategoryFood)
			rent, _ := amountFor(totals, expense.CategoryRent)
			Expect(food.Equal(decimal.NewFromInt(150))).To(BeTrue())
			Expect(rent.String()).To(Equal("0.3"))
			Expect(totals.Total().String()).To(Equal("150.3"))
		})

		It("should keep first-encounter order", func() {
			totals := advisor.AggregateByCategory([]expense.Expense{
				newExpense(expense.CategoryBills, "10"),
				newExpense(expense.CategoryFood, "20"),
				newExpense(expense.CategoryBills, "5"),
			})

			Expect(totals).To(HaveLen(2))
			Expect(totals[0].Category).To(Equal(expense.CategoryBills))
			Expect(totals[1].Category).To(Equal(expense.CategoryFood))
		})
	})

	Describe("Top", func() {
		It("should prefer the category seen first on a tie", func() {
			totals := advisor.AggregateByCategory([]expense.Expense{
				newExpense(expense.CategoryTravel, "40"),
				newExpense(expense.CategoryFood, "40"),
			})

			top, ok := totals.Top()
			Expect(ok).To(BeTrue())
			Expect(top.Category).To(Equal(expense.CategoryTravel))
		})

		It("should report nothing for no expenses", func() {
			_, ok := advisor.CategoryTotals(nil).Top()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("ComputePercentChange", func() {
		It("should be zero without a baseline", func() {
			change := advisor.ComputePercentChange(decimal.NewFromInt(300), decimal.Zero)
			Expect(change.Defined).To(BeFalse())
			Expect(change.String()).To(Equal("0"))
		})

		It("should round to two decimals", func() {
			change := advisor.ComputePercentChange(decimal.NewFromInt(100), decimal.NewFromInt(300))
			Expect(change.Defined).To(BeTrue())
			Expect(change.String()).To(Equal("-66.67"))
		})
	})

	Describe("BudgetUtilization", func() {
		It("should render two decimals", func() {
			Expect(advisor.BudgetUtilization(decimal.NewFromInt(1), decimal.NewFromInt(3))).To(Equal("33.33"))
		})

		It("should not divide by a non-positive budget", func() {
			Expect(advisor.BudgetUtilization(decimal.NewFromInt(10), decimal.Zero)).To(Equal("0.00"))
		})
	})

	Describe("CategoryMeans", func() {
		It("should round means to two decimals", func() {
			means := advisor.CategoryMeans([]expense.Expense{
				newExpense(expense.CategoryFood, "10"),
				newExpense(expense.CategoryFood, "10"),
				newExpense(expense.CategoryFood, "11"),
			})

			food, ok := amountFor(means, expense.CategoryFood)
			Expect(ok).To(BeTrue())
			Expect(food.String()).To(Equal("10.33"))
		})
	})
})
