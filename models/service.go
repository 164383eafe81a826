package models

// Duration units accepted on catalog entries.
const (
	DurationUnitMinutes = "mins"
	DurationUnitHours   = "hours"
)

// Service is a bookable catalog entry.
type Service struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Duration     int     `bson:"duration" json:"duration"`
	DurationUnit string  `bson:"duration_unit" json:"duration_unit"` // "mins" or "hours"
	Price        float64 `bson:"price" json:"price"`
	Deposit      float64 `bson:"deposit,omitempty" json:"deposit,omitempty"`
}

// DurationMinutes returns the service duration normalized to minutes.
func (s Service) DurationMinutes() int {
	if s.DurationUnit == DurationUnitHours {
		return s.Duration * 60
	}
	return s.Duration
}

// Employee is a staff member on the roster.
type Employee struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	ServiceIDs []string `bson:"service_ids" json:"service_ids"`
}
