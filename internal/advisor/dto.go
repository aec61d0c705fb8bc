package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/core/common/validation"
	"github.com/frahmantamala/expense-insights/internal/expense"
)

type CategorizeRequest struct {
	Description string `json:"description"`
}

func (r CategorizeRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("description", r.Description).Required().MaxLength(maxDescriptionLength)
	return result(v)
}

type CategorizeResponse struct {
	Category string `json:"category"`
}

type SummaryRequest struct {
	Expenses         []expense.Expense `json:"expenses"`
	PreviousExpenses []expense.Expense `json:"previousExpenses"`
}

func (r SummaryRequest) Validate() error {
	v := validation.NewValidator()
	amountRules(v, "expenses", r.Expenses)
	amountRules(v, "previousExpenses", r.PreviousExpenses)
	return result(v)
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type SuggestionsRequest struct {
	Expenses      []expense.Expense `json:"expenses"`
	MonthlyBudget decimal.Decimal   `json:"monthlyBudget"`
}

func (r SuggestionsRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("monthlyBudget", r.MonthlyBudget).Positive(internal.ErrCodeInvalidBudget)
	amountRules(v, "expenses", r.Expenses)
	return result(v)
}

type SuggestionsResponse struct {
	Suggestions string `json:"suggestions"`
}

type PredictionRequest struct {
	Expenses []expense.Expense `json:"expenses"`
	Months   int               `json:"months,omitempty"`
}

// Validate accepts a zero Months, which means DefaultPredictionMonths.
func (r PredictionRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("months", r.Months).IntRange(0, maxPredictionMonths, internal.ErrCodeValidationFailed)
	amountRules(v, "expenses", r.Expenses)
	return result(v)
}

type PredictionResponse struct {
	Predictions map[string]float64 `json:"predictions"`
	Analysis    string             `json:"analysis"`
}

func (p Prediction) ToResponse() PredictionResponse {
	predictions := make(map[string]float64, len(p.Predictions))
	for _, c := range p.Predictions {
		predictions[string(c.Category)] = c.Amount.InexactFloat64()
	}
	return PredictionResponse{
		Predictions: predictions,
		Analysis:    p.Analysis,
	}
}

type OverviewResponse struct {
	Month       string             `json:"month"`
	Summary     string             `json:"summary"`
	Suggestions string             `json:"suggestions"`
	Prediction  PredictionResponse `json:"prediction"`
}

const (
	maxPredictionMonths  = 24
	maxDescriptionLength = 500
)

func amountRules(v *validation.ValidationBuilder, field string, expenses []expense.Expense) {
	for i, e := range expenses {
		v.Field(fmt.Sprintf("%s[%d].amount", field, i), e.Amount).NonNegative(internal.ErrCodeInvalidAmount)
	}
}

func result(v *validation.ValidationBuilder) error {
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
