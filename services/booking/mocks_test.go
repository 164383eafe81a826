package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"trimly/models"
)

// memorySessionStore mimics the Redis store's serialization behavior: every
// Get returns an independent copy of the cart, as a JSON round trip would.
type memorySessionStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{carts: make(map[string][]byte)}
}

func (s *memorySessionStore) Save(ctx context.Context, cart *models.BookingCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.SessionID] = data
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.BookingCart, error) {
	s.mu.Lock()
	data, ok := s.carts[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var cart models.BookingCart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// stubCatalog serves a fixed set of services.
type stubCatalog struct {
	services map[string]models.Service
}

func (c *stubCatalog) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, ok := c.services[serviceID]
	if !ok {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}
	return &svc, nil
}

func (c *stubCatalog) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range c.services {
		out = append(out, svc)
	}
	return out, nil
}

func (c *stubCatalog) ListEmployeesForService(ctx context.Context, serviceID string) ([]models.Employee, error) {
	return nil, nil
}

// stubAvailability delegates to a closure so tests can shape slot responses
// and observe or interleave with the fetch.
type stubAvailability struct {
	daySlots func(ctx context.Context, serviceID string, date models.CalendarDate, employeeChoice string) ([]models.Slot, error)
}

func (a *stubAvailability) DaySlots(ctx context.Context, serviceID string, date models.CalendarDate, employeeChoice string) ([]models.Slot, error) {
	return a.daySlots(ctx, serviceID, date, employeeChoice)
}

// stubAppointments records creation requests and can be told to fail the Nth
// call (zero-based). failAt -1 never fails.
type stubAppointments struct {
	requests []models.AppointmentRequest
	failAt   int
	calls    int
}

func newStubAppointments() *stubAppointments {
	return &stubAppointments{failAt: -1}
}

func (r *stubAppointments) Create(ctx context.Context, req models.AppointmentRequest) (string, error) {
	call := r.calls
	r.calls++
	if call == r.failAt {
		return "", fmt.Errorf("insert rejected")
	}
	r.requests = append(r.requests, req)
	return fmt.Sprintf("appt-%d", call+1), nil
}

func (r *stubAppointments) ListForCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	return nil, nil
}

// stubReminders records scheduled reminders.
type stubReminders struct {
	scheduled []scheduledReminder
}

type scheduledReminder struct {
	payload models.ReminderPayload
	fireAt  time.Time
}

func (r *stubReminders) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	r.scheduled = append(r.scheduled, scheduledReminder{payload: payload, fireAt: fireAt})
	return nil
}
