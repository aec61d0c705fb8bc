package expense

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a row of the expenses table owned by the persistence service.
// UserID, UpdatedAt and DeletedAt are internal bookkeeping and never leave
// this service.
type Expense struct {
	ID            string          `gorm:"column:id;primaryKey"`
	UserID        string          `gorm:"column:user_id;index;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	Category      string          `gorm:"column:category;not null"`
	Description   string          `gorm:"column:description"`
	Date          time.Time       `gorm:"column:date;index"`
	Notes         *string         `gorm:"column:notes"`
	AICategory    *string         `gorm:"column:ai_category"`
	PaymentMethod *string         `gorm:"column:payment_method"`
	Tags          Tags            `gorm:"column:tags;type:text"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// Tags is stored as a JSON array so the column works on both postgres and sqlite.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("tags: unsupported column type %T", src)
	}
	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: invalid JSON: %w", err)
	}
	*t = out
	return nil
}
