package schedule

import (
	"fmt"

	"trimly/models"
)

// Expand materializes a time-off exception onto the concrete days of a viewing
// window (typically one month).
//
// A non-repeating exception yields its single occurrence when its date falls
// inside the window. A repeating one yields one occurrence per day from
// max(exception date, window start) through min(repeat-until, window end),
// both bounds inclusive. The repeat-until day itself must be emitted; dropping
// it would silently lose the last day of every recurring absence.
//
// The function is pure and order-stable: the same inputs always produce the
// identical sequence.
func Expand(exc models.TimeOffException, window models.DateWindow) []models.ExpandedOccurrence {
	if !exc.IsRepeat {
		if window.Contains(exc.Date) {
			return []models.ExpandedOccurrence{occurrenceOn(exc, exc.Date)}
		}
		return nil
	}
	if exc.RepeatUntil == nil {
		return nil
	}

	loopStart := exc.Date
	if window.Start.After(loopStart) {
		loopStart = window.Start
	}
	loopEnd := *exc.RepeatUntil
	if window.End.Before(loopEnd) {
		loopEnd = window.End
	}

	var out []models.ExpandedOccurrence
	for d := loopStart; !d.After(loopEnd); d = d.AddDays(1) {
		// Guards against windows that open before the exception starts.
		if d.Before(exc.Date) || d.After(*exc.RepeatUntil) {
			continue
		}
		out = append(out, occurrenceOn(exc, d))
	}
	return out
}

func occurrenceOn(exc models.TimeOffException, d models.CalendarDate) models.ExpandedOccurrence {
	return models.ExpandedOccurrence{
		ID:          fmt.Sprintf("%s-%s", exc.ID, d.ISO()),
		ExceptionID: exc.ID,
		EmployeeID:  exc.EmployeeID,
		Date:        d,
		StartTime:   exc.StartTime,
		EndTime:     exc.EndTime,
		Note:        exc.Note,
	}
}
