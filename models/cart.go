package models

import "time"

// AnyEmployee is the employee choice meaning "any professional": the system,
// not the customer, picks which eligible staff member fulfills the slot.
const AnyEmployee = "any"

// LineState describes where a cart line is in its selection lifecycle.
type LineState string

const (
	// LineEmpty: no date chosen yet.
	LineEmpty LineState = "empty"
	// LineAwaitingTime: a date (and employee scope) is chosen, slots are
	// computed, but no start time is picked.
	LineAwaitingTime LineState = "awaitingTime"
	// LineReady: date, time and a resolved employee are all set.
	LineReady LineState = "ready"
)

// ServiceSelection is one service's scheduling selection within a checkout
// session. Date, Time and ResolvedEmployeeID are populated as the customer
// interacts; any change to EmployeeChoice or Date clears Time and
// ResolvedEmployeeID so a stale time never survives a scope change.
type ServiceSelection struct {
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Deposit         float64 `json:"deposit"`

	EmployeeChoice     string        `json:"employeeChoice"` // AnyEmployee or a specific employee id
	Date               *CalendarDate `json:"date,omitempty"`
	Time               *ClockTime    `json:"time,omitempty"`
	ResolvedEmployeeID string        `json:"resolvedEmployeeId,omitempty"`

	// Slots holds the bookable start times for the current scope.
	Slots []Slot `json:"slots,omitempty"`
	// Revision increments on every scope change; slot fetches are tagged with
	// the revision they were issued for so superseded responses are dropped.
	Revision int `json:"revision"`
}

// State derives the line's lifecycle state from its fields.
func (sel ServiceSelection) State() LineState {
	if sel.Date != nil && sel.Time != nil && sel.ResolvedEmployeeID != "" {
		return LineReady
	}
	if sel.Date != nil {
		return LineAwaitingTime
	}
	return LineEmpty
}

// BookingCart is the ordered set of service selections for one checkout
// session. It is owned by the checkout service for the session's lifetime and
// cached by session id; only the created appointments are ever persisted.
type BookingCart struct {
	SessionID string             `json:"sessionId"`
	Lines     []ServiceSelection `json:"lines"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Line returns a pointer to the line at index, or nil if out of range.
func (c *BookingCart) Line(index int) *ServiceSelection {
	if index < 0 || index >= len(c.Lines) {
		return nil
	}
	return &c.Lines[index]
}
