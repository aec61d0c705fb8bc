package advisor

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/frahmantamala/expense-insights/internal/expense"
)

type OverviewInput struct {
	Current       []expense.Expense
	Previous      []expense.Expense
	History       []expense.Expense
	MonthlyBudget decimal.Decimal
	Months        int
}

type Overview struct {
	Summary     string
	Suggestions string
	Prediction  Prediction
}

// Overview runs the summary, savings and prediction advisories side by side.
func (s *Service) Overview(ctx context.Context, in OverviewInput) Overview {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Summary = s.Summarize(gctx, in.Current, in.Previous)
		return nil
	})
	g.Go(func() error {
		out.Suggestions = s.SuggestSavings(gctx, in.Current, in.MonthlyBudget)
		return nil
	})
	g.Go(func() error {
		out.Prediction = s.Predict(gctx, in.History, in.Months)
		return nil
	})

	// the advisories answer with fallbacks instead of failing
	_ = g.Wait()
	return out
}
