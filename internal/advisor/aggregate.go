package advisor

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/expense-insights/internal/expense"
)

var hundred = decimal.NewFromInt(100)

type CategoryAmount struct {
	Category expense.Category
	Amount   decimal.Decimal
}

// CategoryTotals keeps categories in the order they were first seen.
type CategoryTotals []CategoryAmount

// AggregateByCategory sums amounts per category.
func AggregateByCategory(expenses []expense.Expense) CategoryTotals {
	index := make(map[expense.Category]int)
	var totals CategoryTotals
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			index[e.Category] = len(totals)
			totals = append(totals, CategoryAmount{Category: e.Category, Amount: e.Amount})
			continue
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}
	return totals
}

func (t CategoryTotals) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range t {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// Top returns the highest category. Ties go to the category seen first.
func (t CategoryTotals) Top() (CategoryAmount, bool) {
	if len(t) == 0 {
		return CategoryAmount{}, false
	}
	sorted := make(CategoryTotals, len(t))
	copy(sorted, t)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	return sorted[0], true
}

// breakdown renders "Food: 100, Rent: 50".
func (t CategoryTotals) breakdown() string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = string(c.Category) + ": " + c.Amount.String()
	}
	return strings.Join(parts, ", ")
}

// compactJSON renders {"Food":100,"Rent":50}.
func (t CategoryTotals) compactJSON() string {
	if len(t) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(jsonKey(c.Category))
		b.WriteByte(':')
		b.WriteString(c.Amount.String())
	}
	b.WriteByte('}')
	return b.String()
}

// indentedJSON renders the totals as a two-space indented object.
func (t CategoryTotals) indentedJSON() string {
	if len(t) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, c := range t {
		b.WriteString("  ")
		b.WriteString(jsonKey(c.Category))
		b.WriteString(": ")
		b.WriteString(c.Amount.String())
		if i < len(t)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func jsonKey(c expense.Category) string {
	b, err := json.Marshal(string(c))
	if err != nil {
		return `""`
	}
	return string(b)
}

// SumAmounts totals the amounts of expenses.
func SumAmounts(expenses []expense.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// PercentChange is the current-versus-previous delta, rounded to 2 places.
// It is undefined, and reported as zero, when there is no baseline.
type PercentChange struct {
	Value   decimal.Decimal
	Defined bool
}

func ComputePercentChange(current, previous decimal.Decimal) PercentChange {
	if previous.IsZero() {
		return PercentChange{Value: decimal.Zero}
	}
	return PercentChange{
		Value:   current.Sub(previous).Div(previous).Mul(hundred).Round(2),
		Defined: true,
	}
}

// String is the figure used in prompts: "0" without a baseline, otherwise
// two decimals.
func (p PercentChange) String() string {
	if !p.Defined {
		return "0"
	}
	return p.Value.StringFixed(2)
}

func (p PercentChange) describe() string {
	switch {
	case p.Value.IsPositive():
		return "increased by " + p.String() + "%"
	case p.Value.IsNegative():
		return "decreased by " + p.Value.Abs().String() + "%"
	default:
		return "remained similar"
	}
}

// BudgetUtilization is spent / budget * 100 rendered with two decimals.
func BudgetUtilization(spent, budget decimal.Decimal) string {
	if !budget.IsPositive() {
		return decimal.Zero.StringFixed(2)
	}
	return spent.Div(budget).Mul(hundred).StringFixed(2)
}

// CategoryMeans averages each category's amounts, rounded to 2 places.
func CategoryMeans(expenses []expense.Expense) CategoryTotals {
	totals := AggregateByCategory(expenses)
	counts := make(map[expense.Category]int64, len(totals))
	for _, e := range expenses {
		counts[e.Category]++
	}

	means := make(CategoryTotals, len(totals))
	for i, c := range totals {
		means[i] = CategoryAmount{
			Category: c.Category,
			Amount:   c.Amount.Div(decimal.NewFromInt(counts[c.Category])).Round(2),
		}
	}
	return means
}
