package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/expense-insights/internal/expense"
	expenseDatamodel "github.com/frahmantamala/expense-insights/internal/core/datamodel/expense"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*expenseDatamodel.Expense, error) {
	var record expenseDatamodel.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ExpenseRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*expenseDatamodel.Expense, error) {
	var records []*expenseDatamodel.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&records).Error
	return records, err
}
