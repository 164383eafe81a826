package models

// AppointmentStatusPending is the status every freshly created appointment
// carries; downstream systems move it onward.
const AppointmentStatusPending = "Pending"

// AppointmentRequest is the appointment-creation payload submitted to the
// appointment store, one per confirmed cart line, in cart order.
type AppointmentRequest struct {
	ServiceID     string  `bson:"service_id" json:"ServiceId"`
	EmployeeID    string  `bson:"employee_id" json:"EmployeeId"`
	CustomerID    string  `bson:"customer_id" json:"CustomerId"`
	AccountID     string  `bson:"account_id" json:"AccountId"`
	StartDateTime string  `bson:"start_date_time" json:"StartDateTime"` // ISO 8601
	EndDateTime   string  `bson:"end_date_time" json:"EndDateTime"`     // ISO 8601
	Status        string  `bson:"status" json:"Status"`
	Cost          float64 `bson:"cost" json:"Cost"`
	Deposit       float64 `bson:"deposit" json:"Deposit"`
	FinalAmount   float64 `bson:"final_amount" json:"FinalAmount"`
	Tip           float64 `bson:"tip" json:"Tip"`
	RefundAmount  float64 `bson:"refund_amount" json:"RefundAmount"`
	Discount      float64 `bson:"discount" json:"Discount"`
	DateCreated   string  `bson:"date_created" json:"DateCreated"` // ISO 8601
}

// Appointment is a stored appointment record.
type Appointment struct {
	ID                 string `bson:"id" json:"id"`
	AppointmentRequest `bson:",inline"`
}

// ReminderPayload is the body of a queued appointment reminder task.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	CustomerID    string `json:"customerId"`
	ServiceName   string `json:"serviceName"`
	StartDateTime string `json:"startDateTime"`
}
