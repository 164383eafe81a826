package models

import "fmt"

// TimeOffException is a staff absence, optionally repeating daily until a
// bound date. Invariant: if IsRepeat is true, RepeatUntil is present and not
// before Date.
type TimeOffException struct {
	ID          string        `json:"id"`
	EmployeeID  string        `json:"employee_id"`
	Date        CalendarDate  `json:"date"`
	StartTime   ClockTime     `json:"start_time"`
	EndTime     ClockTime     `json:"end_time"`
	IsRepeat    bool          `json:"is_repeat"`
	RepeatUntil *CalendarDate `json:"repeat_until,omitempty"`
	Note        string        `json:"note,omitempty"`
}

// Validate checks the repeating invariant.
func (e TimeOffException) Validate() error {
	if e.StartTime >= e.EndTime {
		return fmt.Errorf("time off start %s is not before end %s", e.StartTime, e.EndTime)
	}
	if e.IsRepeat {
		if e.RepeatUntil == nil {
			return fmt.Errorf("repeating time off %s has no repeat_until", e.ID)
		}
		if e.RepeatUntil.Before(e.Date) {
			return fmt.Errorf("repeating time off %s ends %s before it starts %s", e.ID, e.RepeatUntil, e.Date)
		}
	}
	return nil
}

// ExpandedOccurrence is a TimeOffException materialized onto one concrete day.
// ID is synthetic, derived from the exception id and the day, so calendar code
// can key on occurrences without colliding with the original exception id.
type ExpandedOccurrence struct {
	ID          string       `json:"id"`
	ExceptionID string       `json:"exception_id"`
	EmployeeID  string       `json:"employee_id"`
	Date        CalendarDate `json:"date"`
	StartTime   ClockTime    `json:"start_time"`
	EndTime     ClockTime    `json:"end_time"`
	Note        string       `json:"note,omitempty"`
}
