package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/expense-insights/internal"
	expenseDatamodel "github.com/frahmantamala/expense-insights/internal/core/datamodel/expense"
)

// Repository reads expense records from the persistence service's store.
// GetByID returns (nil, nil) when no record exists.
type Repository interface {
	GetByID(ctx context.Context, id string) (*expenseDatamodel.Expense, error)
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*expenseDatamodel.Expense, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetExpense returns the public view of one expense owned by userID.
func (s *Service) GetExpense(ctx context.Context, id, userID string) (*Response, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, internal.NewExternalError("expense store unavailable", internal.ErrCodeStoreUnavailable, err)
	}
	if record == nil {
		return nil, internal.ErrExpenseNotFound
	}

	if record.UserID != userID {
		s.logger.Warn("unauthorized access to expense", "expense_id", id, "user_id", userID)
		return nil, internal.ErrUnauthorizedAccess
	}

	resp := FormatExpenseResponse(record)
	return &resp, nil
}

// ListExpenses returns the public views of userID's expenses dated in [from, to).
func (s *Service) ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]Response, error) {
	records, err := s.repo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "user_id", userID)
		return nil, internal.NewExternalError("expense store unavailable", internal.ErrCodeStoreUnavailable, err)
	}
	return FormatExpenseResponses(records), nil
}

// LoadPeriod returns userID's expenses dated in [from, to) as advisory input.
func (s *Service) LoadPeriod(ctx context.Context, userID string, from, to time.Time) ([]Expense, error) {
	records, err := s.repo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("failed to load expense period", "error", err, "user_id", userID, "from", from, "to", to)
		return nil, internal.NewExternalError("expense store unavailable", internal.ErrCodeStoreUnavailable, err)
	}
	return FromDataModelSlice(records), nil
}
