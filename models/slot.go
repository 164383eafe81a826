package models

// Slot is a discrete bookable start time for a service, annotated with the
// staff members who can serve it. EmployeeIDs preserves first-appearance order
// for display, but membership behaves as a set: after merging there is exactly
// one Slot per distinct time label per day.
type Slot struct {
	Time        ClockTime `json:"time"`
	EmployeeIDs []string  `json:"employeeIds"`
}

// HasEmployee reports whether the given staff member can serve the slot.
func (s Slot) HasEmployee(employeeID string) bool {
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
