package models

import "fmt"

// Work interval kinds.
const (
	IntervalShift   = "shift"
	IntervalTimeOff = "timeoff"
)

// WorkInterval is a contiguous interval on one calendar day for one staff
// member. Invariant: Start < End; overnight wraparound is not supported.
type WorkInterval struct {
	Kind  string    `json:"kind"`
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// DaySchedule holds one staff member's intervals for one day, in order.
// Produced from a weekly-schedule query and consumed read-only.
type DaySchedule struct {
	EmployeeID string         `json:"employeeId"`
	Date       CalendarDate   `json:"date"`
	Intervals  []WorkInterval `json:"intervals"`
}

// ScheduleItem is the wire shape of one interval inside a weekly schedule,
// with "HH:MM" times as stored.
type ScheduleItem struct {
	Type  string `bson:"type" json:"type"` // "shift" or "timeoff"
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
	Label string `bson:"label,omitempty" json:"label,omitempty"`
}

// Interval converts the wire item into a domain WorkInterval.
func (i ScheduleItem) Interval() (WorkInterval, error) {
	start, err := ParseClockTime(i.Start)
	if err != nil {
		return WorkInterval{}, err
	}
	end, err := ParseClockTime(i.End)
	if err != nil {
		return WorkInterval{}, err
	}
	if start >= end {
		return WorkInterval{}, fmt.Errorf("interval start %s is not before end %s", i.Start, i.End)
	}
	return WorkInterval{Kind: i.Type, Start: start, End: end}, nil
}

// ScheduleDay is one day of a stored weekly schedule.
type ScheduleDay struct {
	Date  string         `bson:"date" json:"date"` // ISO "2006-01-02"
	Items []ScheduleItem `bson:"items" json:"items"`
}

// WeeklySchedule is one staff member's schedule for one week, keyed by the
// employee and the week-start date.
type WeeklySchedule struct {
	EmployeeID string        `bson:"employee_id" json:"employee_id"`
	WeekStart  string        `bson:"week_start" json:"week_start"` // ISO "2006-01-02"
	Days       []ScheduleDay `bson:"days" json:"days"`
}
