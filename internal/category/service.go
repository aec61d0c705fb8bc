package category

import (
	"log/slog"

	"github.com/frahmantamala/expense-insights/internal"
	"github.com/frahmantamala/expense-insights/internal/expense"
)

const ErrCodeCategoryNotFound internal.ErrorCode = "CATEGORY_NOT_FOUND"

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) GetAllCategories() []CategoryResponse {
	all := All()
	responses := make([]CategoryResponse, len(all))
	for i, c := range all {
		responses[i] = c.ToResponse()
	}
	s.logger.Debug("retrieved categories", "count", len(responses))
	return responses
}

func (s *Service) GetCategoryByName(name string) (*CategoryResponse, error) {
	for _, c := range All() {
		if string(c.Name) == name {
			response := c.ToResponse()
			return &response, nil
		}
	}
	return nil, internal.NewNotFoundError("category not found", ErrCodeCategoryNotFound)
}

func (s *Service) IsValidCategory(name string) bool {
	return expense.Category(name).IsValid()
}
