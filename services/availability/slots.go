package availability

import "trimly/models"

// GenerateSlots produces the discrete bookable start times one staff member
// offers for a day, given their working intervals and a service duration.
//
// Only "shift" intervals generate slots. "timeoff" intervals are collected for
// calendar display elsewhere and are deliberately not subtracted here; conflict
// enforcement lives with the appointment store. Starting at each shift's start,
// steps advance by durationMinutes while a full service still fits before the
// shift ends, so a shift shorter than the duration yields no slots. Slots from
// different shifts on the same day are concatenated in interval order with no
// de-duplication; MergeSlots handles uniqueness across employees.
func GenerateSlots(intervals []models.WorkInterval, durationMinutes int, employeeID string) []models.Slot {
	if durationMinutes <= 0 {
		return nil
	}

	var slots []models.Slot
	for _, interval := range intervals {
		if interval.Kind != models.IntervalShift {
			continue
		}
		end := interval.End.Minutes()
		for step := interval.Start.Minutes(); step+durationMinutes <= end; step += durationMinutes {
			slots = append(slots, models.Slot{
				Time:        models.ClockTimeFromMinutes(step),
				EmployeeIDs: []string{employeeID},
			})
		}
	}
	return slots
}
