package handlers

// HandlerBundle collects the handlers the route registrar wires up.
type HandlerBundle struct {
	Checkout     *CheckoutHandler
	Availability *AvailabilityHandler
	TimeOff      *TimeOffHandler
	Catalog      *CatalogHandler
	Appointments *AppointmentsHandler
}
