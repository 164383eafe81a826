package booking

import (
	"context"
	"testing"
	"time"

	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readyCart seeds the store with a two-line cart whose selections are already
// complete: a 30-minute haircut at 10:00 and a 45-minute color at 11:00 on the
// same day.
func readyCart(t *testing.T, store SessionStore) *models.BookingCart {
	t.Helper()
	date := models.CalendarDate{Year: 2030, Month: time.April, Day: 10}
	ten := models.ClockTimeFromMinutes(600)
	eleven := models.ClockTimeFromMinutes(660)

	cart := &models.BookingCart{
		SessionID: "sess-1",
		CreatedAt: time.Now().UTC(),
		Lines: []models.ServiceSelection{
			{
				ServiceID: "haircut", ServiceName: "Haircut", DurationMinutes: 30,
				Price: 40, Deposit: 10,
				EmployeeChoice: models.AnyEmployee, Date: &date, Time: &ten,
				ResolvedEmployeeID: "anna",
			},
			{
				ServiceID: "color", ServiceName: "Color", DurationMinutes: 45,
				Price: 120, Deposit: 30,
				EmployeeChoice: "ben", Date: &date, Time: &eleven,
				ResolvedEmployeeID: "ben",
			},
		},
	}
	require.NoError(t, store.Save(context.Background(), cart))
	return cart
}

func TestConfirmRequiresAuth(t *testing.T) {
	store := newMemorySessionStore()
	readyCart(t, store)
	svc := newTestCheckout(fixedSlots(), store)

	_, err := svc.Confirm(context.Background(), "sess-1", "", "acct-1")
	assert.ErrorIs(t, err, ErrAuthRequired)

	// Nothing was created or cleared; the customer signs in and re-invokes.
	appts := svc.AppointmentRepo.(*stubAppointments)
	assert.Zero(t, appts.calls)
	_, err = store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
}

func TestConfirmIncompleteSelection(t *testing.T) {
	store := newMemorySessionStore()
	cart := readyCart(t, store)
	cart.Lines[1].Time = nil
	require.NoError(t, store.Save(context.Background(), cart))

	svc := newTestCheckout(fixedSlots(), store)
	_, err := svc.Confirm(context.Background(), "sess-1", "cust-1", "acct-1")

	var incomplete *IncompleteSelectionError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 1, incomplete.Index)
	assert.Equal(t, "color", incomplete.ServiceID)

	appts := svc.AppointmentRepo.(*stubAppointments)
	assert.Zero(t, appts.calls, "no appointment is created while any line is incomplete")
}

func TestConfirmEmptyCart(t *testing.T) {
	store := newMemorySessionStore()
	empty := &models.BookingCart{SessionID: "sess-empty", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.Save(context.Background(), empty))

	svc := newTestCheckout(fixedSlots(), store)
	_, err := svc.Confirm(context.Background(), "sess-empty", "cust-1", "acct-1")
	require.Error(t, err, "a zero-line cart is an error, never a confirmation")

	appts := svc.AppointmentRepo.(*stubAppointments)
	assert.Zero(t, appts.calls)
}

func TestConfirmUnknownSession(t *testing.T) {
	svc := newTestCheckout(fixedSlots(), newMemorySessionStore())
	_, err := svc.Confirm(context.Background(), "nope", "cust-1", "acct-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmCreatesAppointmentsInOrder(t *testing.T) {
	store := newMemorySessionStore()
	readyCart(t, store)
	reminders := &stubReminders{}
	svc := newTestCheckout(fixedSlots(), store)
	svc.Reminders = reminders

	result, err := svc.Confirm(context.Background(), "sess-1", "cust-1", "acct-1")
	require.NoError(t, err)
	assert.True(t, result.FullySucceeded())
	require.Len(t, result.Succeeded, 2)
	assert.Equal(t, "haircut", result.Succeeded[0].ServiceID)
	assert.Equal(t, "color", result.Succeeded[1].ServiceID)

	require.NotNil(t, result.Confirmation)
	assert.Equal(t, result.Succeeded[0].AppointmentID, result.Confirmation.Reference)
	assert.Len(t, result.Confirmation.AppointmentIDs, 2)

	appts := svc.AppointmentRepo.(*stubAppointments)
	require.Len(t, appts.requests, 2)

	first := appts.requests[0]
	assert.Equal(t, "cust-1", first.CustomerID)
	assert.Equal(t, "acct-1", first.AccountID)
	assert.Equal(t, "anna", first.EmployeeID)
	assert.Equal(t, "2030-04-10T10:00:00Z", first.StartDateTime)
	assert.Equal(t, "2030-04-10T10:30:00Z", first.EndDateTime)
	assert.Equal(t, models.AppointmentStatusPending, first.Status)
	assert.Equal(t, 40.0, first.Cost)
	assert.Equal(t, 10.0, first.Deposit)
	assert.Equal(t, 30.0, first.FinalAmount)

	second := appts.requests[1]
	assert.Equal(t, "ben", second.EmployeeID)
	assert.Equal(t, "2030-04-10T11:00:00Z", second.StartDateTime)
	assert.Equal(t, "2030-04-10T11:45:00Z", second.EndDateTime)

	// Full success clears the session.
	_, err = store.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// One reminder per appointment, lead time before the start.
	require.Len(t, reminders.scheduled, 2)
	assert.Equal(t, result.Succeeded[0].AppointmentID, reminders.scheduled[0].payload.AppointmentID)
	wantFire := time.Date(2030, time.April, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, wantFire, reminders.scheduled[0].fireAt)
}

func TestConfirmPartialFailureKeepsCart(t *testing.T) {
	store := newMemorySessionStore()
	readyCart(t, store)
	svc := newTestCheckout(fixedSlots(), store)
	appts := svc.AppointmentRepo.(*stubAppointments)
	appts.failAt = 1 // second line fails

	result, err := svc.Confirm(context.Background(), "sess-1", "cust-1", "acct-1")
	require.NoError(t, err, "a line failure is reported in the result, not as an error")

	require.Len(t, result.Succeeded, 1)
	assert.Equal(t, "haircut", result.Succeeded[0].ServiceID)

	require.NotNil(t, result.Failed)
	assert.Equal(t, 1, result.Failed.Index)
	assert.Equal(t, "color", result.Failed.ServiceID)
	assert.NotEmpty(t, result.Failed.Reason)
	assert.False(t, result.FullySucceeded())
	assert.Nil(t, result.Confirmation)

	// The first appointment stands; there is no rollback.
	require.Len(t, appts.requests, 1)
	assert.Equal(t, "haircut", appts.requests[0].ServiceID)

	// The cart survives so the customer can retry the failed line.
	loaded, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, loaded.Lines, 2)
}

func TestConfirmSkipsPastReminders(t *testing.T) {
	store := newMemorySessionStore()
	cart := readyCart(t, store)
	past := models.CalendarDate{Year: 2020, Month: time.January, Day: 6}
	cart.Lines[0].Date = &past
	cart.Lines[1].Date = &past
	require.NoError(t, store.Save(context.Background(), cart))

	reminders := &stubReminders{}
	svc := newTestCheckout(fixedSlots(), store)
	svc.Reminders = reminders

	result, err := svc.Confirm(context.Background(), "sess-1", "cust-1", "acct-1")
	require.NoError(t, err)
	assert.True(t, result.FullySucceeded())
	assert.Empty(t, reminders.scheduled, "reminders whose fire time already passed are not queued")
}
