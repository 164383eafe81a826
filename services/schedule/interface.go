package schedule

import (
	"context"
	"time"

	timeoffRepo "trimly/database/repository/timeoff"
	"trimly/models"

	"github.com/google/uuid"
)

// TimeOffService manages time-off exceptions and expands them onto the
// calendar grid for display.
type TimeOffService interface {
	AddException(ctx context.Context, exc models.TimeOffException) (models.TimeOffException, error)
	RemoveException(ctx context.Context, id string) error
	MonthOccurrences(ctx context.Context, employeeID string, year int, month time.Month) ([]models.ExpandedOccurrence, error)
}

// DefaultTimeOffService implements TimeOffService on top of the time-off
// repository.
type DefaultTimeOffService struct {
	Repo timeoffRepo.TimeOffRepository
}

func (s *DefaultTimeOffService) AddException(ctx context.Context, exc models.TimeOffException) (models.TimeOffException, error) {
	if exc.ID == "" {
		exc.ID = uuid.New().String()
	}
	if err := exc.Validate(); err != nil {
		return models.TimeOffException{}, err
	}
	if err := s.Repo.Create(ctx, exc); err != nil {
		return models.TimeOffException{}, err
	}
	return exc, nil
}

func (s *DefaultTimeOffService) RemoveException(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// MonthOccurrences expands every exception of the employee that overlaps the
// given month, clipped to it.
func (s *DefaultTimeOffService) MonthOccurrences(ctx context.Context, employeeID string, year int, month time.Month) ([]models.ExpandedOccurrence, error) {
	window := models.MonthWindow(year, month)
	exceptions, err := s.Repo.ListOverlapping(ctx, employeeID, window)
	if err != nil {
		return nil, err
	}

	var out []models.ExpandedOccurrence
	for _, exc := range exceptions {
		out = append(out, Expand(exc, window)...)
	}
	return out, nil
}
