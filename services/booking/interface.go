package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "trimly/database/repository/appointment"
	catalogRepo "trimly/database/repository/catalog"
	"trimly/models"
	"trimly/services/availability"

	"github.com/google/uuid"
)

// LineUpdate carries the customer's changes to one cart line. Only non-nil
// fields are applied.
type LineUpdate struct {
	EmployeeChoice *string              `json:"employeeChoice,omitempty"`
	Date           *models.CalendarDate `json:"date,omitempty"`
	Time           *models.ClockTime    `json:"time,omitempty"`
}

// CheckoutService manages a stateful multi-service checkout session: one cart
// line per service, slots recomputed when a line's scope changes, and a
// sequential confirm that creates one appointment per line.
type CheckoutService interface {
	StartSession(ctx context.Context, serviceIDs []string) (*models.BookingCart, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingCart, error)
	UpdateLine(ctx context.Context, sessionID string, index int, upd LineUpdate) (*models.BookingCart, error)
	Confirm(ctx context.Context, sessionID, customerID, accountID string) (models.ConfirmResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler queues an appointment reminder to fire at a given time.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Availability    availability.AvailabilityService
	CatalogRepo     catalogRepo.CatalogRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Sessions        SessionStore
	Policy          AssignmentPolicy
	// Reminders is optional; when nil no reminders are queued.
	Reminders ReminderScheduler
	// ReminderLead is how long before an appointment the reminder fires.
	ReminderLead time.Duration
}

func (s *DefaultCheckoutService) policy() AssignmentPolicy {
	if s.Policy == nil {
		return FirstAvailable{}
	}
	return s.Policy
}

// StartSession creates a cart with one empty selection per requested service,
// resolving names, durations and prices from the catalog.
func (s *DefaultCheckoutService) StartSession(ctx context.Context, serviceIDs []string) (*models.BookingCart, error) {
	if len(serviceIDs) == 0 {
		return nil, fmt.Errorf("at least one service is required to start checkout")
	}
	cart := &models.BookingCart{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	for _, id := range serviceIDs {
		svc, err := s.CatalogRepo.GetService(ctx, id)
		if err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, models.ServiceSelection{
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			DurationMinutes: svc.DurationMinutes(),
			Price:           svc.Price,
			Deposit:         svc.Deposit,
			EmployeeChoice:  models.AnyEmployee,
		})
	}
	if err := s.Sessions.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DefaultCheckoutService) GetSession(ctx context.Context, sessionID string) (*models.BookingCart, error) {
	return s.Sessions.Get(ctx, sessionID)
}

func (s *DefaultCheckoutService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
