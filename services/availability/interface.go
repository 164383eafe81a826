package availability

import (
	"context"

	catalogRepo "trimly/database/repository/catalog"
	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
	"trimly/utils"

	"go.uber.org/zap"
)

// AvailabilityService computes the bookable slots for one service on one day,
// either for a specific employee or merged across every eligible one.
type AvailabilityService interface {
	DaySlots(ctx context.Context, serviceID string, date models.CalendarDate, employeeChoice string) ([]models.Slot, error)
}

// DefaultAvailabilityService implements AvailabilityService on top of the
// schedule and catalog repositories.
type DefaultAvailabilityService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	CatalogRepo  catalogRepo.CatalogRepository
}

// DaySlots returns the slots for the given scope. When employeeChoice is
// models.AnyEmployee the per-employee lists of every staff member offering the
// service are merged; otherwise the chosen employee's own slots are returned
// directly (same Slot shape, singleton employee set).
//
// A failed schedule fetch degrades that employee to no availability rather
// than failing the whole computation; the error is logged, not returned.
func (s *DefaultAvailabilityService) DaySlots(ctx context.Context, serviceID string, date models.CalendarDate, employeeChoice string) ([]models.Slot, error) {
	svc, err := s.CatalogRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	duration := svc.DurationMinutes()

	if employeeChoice != models.AnyEmployee && employeeChoice != "" {
		return s.employeeSlots(ctx, employeeChoice, date, duration), nil
	}

	employees, err := s.CatalogRepo.ListEmployeesForService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	lists := make([][]models.Slot, 0, len(employees))
	for _, emp := range employees {
		lists = append(lists, s.employeeSlots(ctx, emp.ID, date, duration))
	}
	return MergeSlots(lists...), nil
}

func (s *DefaultAvailabilityService) employeeSlots(ctx context.Context, employeeID string, date models.CalendarDate, duration int) []models.Slot {
	logger := utils.GetLogger()

	day, err := s.ScheduleRepo.GetDaySchedule(ctx, employeeID, date)
	if err != nil {
		// Fail safe to "no availability shown" for this employee.
		logger.Error("schedule fetch failed",
			zap.String("employeeID", employeeID),
			zap.String("date", date.ISO()),
			zap.Error(err))
		return nil
	}
	if day == nil {
		return nil
	}
	return GenerateSlots(day.Intervals, duration, employeeID)
}
