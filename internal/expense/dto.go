package expense

import (
	"time"

	expenseDatamodel "github.com/frahmantamala/expense-insights/internal/core/datamodel/expense"
)

// Response is the public shape of an expense. Nothing outside this field set
// is ever serialized.
type Response struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          Date      `json:"date"`
	Notes         *string   `json:"notes"`
	AICategory    *string   `json:"aiCategory"`
	PaymentMethod *string   `json:"paymentMethod"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ListResponse struct {
	Expenses []Response `json:"expenses"`
	From     time.Time  `json:"from"`
	To       time.Time  `json:"to"`
}

// FormatExpenseResponse projects a stored record onto Response.
func FormatExpenseResponse(e *expenseDatamodel.Expense) Response {
	if e == nil {
		return Response{}
	}
	return Response{
		ID:            e.ID,
		Amount:        e.Amount.InexactFloat64(),
		Category:      e.Category,
		Description:   e.Description,
		Date:          Date{Time: e.Date},
		Notes:         e.Notes,
		AICategory:    e.AICategory,
		PaymentMethod: e.PaymentMethod,
		Tags:          e.Tags,
		CreatedAt:     e.CreatedAt,
	}
}

func FormatExpenseResponses(expenses []*expenseDatamodel.Expense) []Response {
	result := make([]Response, len(expenses))
	for i, e := range expenses {
		result[i] = FormatExpenseResponse(e)
	}
	return result
}
