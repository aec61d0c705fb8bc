package category

import (
	"github.com/frahmantamala/expense-insights/internal/expense"
)

type Category struct {
	Name        expense.Category `json:"name"`
	Description string           `json:"description"`
}

var descriptions = map[expense.Category]string{
	expense.CategoryFood:          "Groceries, restaurants and takeaway",
	expense.CategoryRent:          "Rent and housing payments",
	expense.CategoryTravel:        "Transport, fuel, flights and lodging",
	expense.CategoryShopping:      "Clothing, electronics and household goods",
	expense.CategoryBills:         "Utilities, phone, internet and subscriptions",
	expense.CategoryEntertainment: "Movies, events, games and hobbies",
	expense.CategoryHealthcare:    "Doctors, pharmacy and insurance",
	expense.CategoryEducation:     "Tuition, courses and books",
	expense.CategoryOthers:        "Anything that fits no other category",
}

// All lists the categories an expense can be filed under, in display order.
func All() []Category {
	out := make([]Category, len(expense.Categories))
	for i, name := range expense.Categories {
		out[i] = Category{Name: name, Description: descriptions[name]}
	}
	return out
}

func (c Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		Name:        string(c.Name),
		Description: c.Description,
	}
}

type CategoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
