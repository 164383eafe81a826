package models

// CreatedAppointment identifies one successfully created appointment.
type CreatedAppointment struct {
	ServiceID     string `json:"serviceId"`
	AppointmentID string `json:"appointmentId"`
}

// LineFailure names the cart line whose appointment creation failed.
type LineFailure struct {
	Index     int    `json:"index"`
	ServiceID string `json:"serviceId"`
	Reason    string `json:"reason"`
}

// ConfirmResult is the outcome of confirming a cart. Submission is sequential
// and not transactional: when line k fails, lines 1..k-1 have already been
// created and are reported in Succeeded so the caller can act on the partial
// state. Confirmation is set only when every line succeeded.
type ConfirmResult struct {
	Succeeded    []CreatedAppointment `json:"succeeded"`
	Failed       *LineFailure         `json:"failed,omitempty"`
	Confirmation *BookingConfirmation `json:"confirmation,omitempty"`
}

// FullySucceeded reports whether every cart line was created.
func (r ConfirmResult) FullySucceeded() bool {
	return r.Failed == nil
}

// BookingConfirmation is the combined reference for one multi-service
// checkout. AppointmentIDs is in cart order; the first id is the canonical
// reference for any follow-up step.
type BookingConfirmation struct {
	Reference      string   `json:"reference"`
	AppointmentIDs []string `json:"appointmentIds"`
}
