package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()

	booking, err := NewBooking(
		BookingCustomer{UserID: "cust-1", Name: "Aarav Sharma", Email: "aarav@example.com"},
		BookingProvider{ProviderID: "prov-1", Name: "CleanPro", City: "Kathmandu"},
		BookedService{ServiceID: "svc-1", Title: "Deep Cleaning", Category: "cleaning", Price: 1500},
		time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local),
		"14:00",
		"second floor flat",
	)
	require.NoError(t, err)
	return booking
}

func TestNewBookingStartsPending(t *testing.T) {
	booking := newTestBooking(t)

	assert.NotEmpty(t, booking.ID())
	assert.Equal(t, BookingStatusPending, booking.Status())
	assert.True(t, booking.IsActive())

	events := booking.GetUncommittedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "BookingCreated", events[0].EventType())
}

func TestNewBookingValidation(t *testing.T) {
	date := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local)

	_, err := NewBooking(BookingCustomer{}, BookingProvider{ProviderID: "p"}, BookedService{ServiceID: "s"}, date, "14:00", "")
	assert.Error(t, err)

	_, err = NewBooking(BookingCustomer{UserID: "c"}, BookingProvider{}, BookedService{ServiceID: "s"}, date, "14:00", "")
	assert.Error(t, err)

	_, err = NewBooking(BookingCustomer{UserID: "c"}, BookingProvider{ProviderID: "p"}, BookedService{ServiceID: "s"}, time.Time{}, "14:00", "")
	assert.Error(t, err)
}

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusAwaitingConfirmation, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusAwaitingConfirmation, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusServiceDelivered, true},
		{BookingStatusConfirmed, BookingStatusDisputed, false},
		{BookingStatusServiceDelivered, BookingStatusCompleted, true},
		{BookingStatusServiceDelivered, BookingStatusDisputed, true},
		{BookingStatusServiceDelivered, BookingStatusCancelled, false},
		{BookingStatusDisputed, BookingStatusCompleted, true},
		{BookingStatusDisputed, BookingStatusCancelled, true},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestChangeStatusRejectsInvalidTransition(t *testing.T) {
	booking := newTestBooking(t)

	err := booking.ChangeStatus(BookingStatusCompleted)
	assert.Error(t, err)
	assert.Equal(t, BookingStatusPending, booking.Status())

	err = booking.ChangeStatus(BookingStatusPending)
	assert.Error(t, err, "same-status change is rejected")
}

func TestBookingLifecycleToCompleted(t *testing.T) {
	booking := newTestBooking(t)

	require.NoError(t, booking.Confirm())
	assert.Equal(t, BookingStatusConfirmed, booking.Status())

	require.NoError(t, booking.MarkDelivered())
	assert.Equal(t, BookingStatusServiceDelivered, booking.Status())

	require.NoError(t, booking.Complete())
	assert.Equal(t, BookingStatusCompleted, booking.Status())

	// created + 2 status changes + completion
	assert.Len(t, booking.GetUncommittedEvents(), 4)
}

func TestDisputedBookingCanStillComplete(t *testing.T) {
	booking := newTestBooking(t)

	require.NoError(t, booking.Confirm())
	require.NoError(t, booking.MarkDelivered())
	require.NoError(t, booking.Dispute())
	assert.Equal(t, BookingStatusDisputed, booking.Status())

	require.NoError(t, booking.Complete())
	assert.Equal(t, BookingStatusCompleted, booking.Status())
}

func TestCancelIsTerminal(t *testing.T) {
	booking := newTestBooking(t)

	require.NoError(t, booking.Cancel("customer changed plans"))
	assert.Equal(t, BookingStatusCancelled, booking.Status())

	assert.Error(t, booking.Confirm())
	assert.Error(t, booking.Complete())
	assert.Error(t, booking.Reschedule(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local), "09:00"))
}

func TestRescheduleUpdatesDateAndTime(t *testing.T) {
	booking := newTestBooking(t)
	newDate := time.Date(2026, time.September, 20, 0, 0, 0, 0, time.Local)

	require.NoError(t, booking.Reschedule(newDate, "10:30"))
	assert.Equal(t, newDate, booking.ServiceDate())
	assert.Equal(t, "10:30", booking.BookingTime())
}

func TestNewBookingFromHistoryRestoresState(t *testing.T) {
	booking := newTestBooking(t)
	require.NoError(t, booking.Confirm())
	require.NoError(t, booking.MarkDelivered())

	history := booking.GetUncommittedEvents()

	restored, err := NewBookingFromHistory(history)
	require.NoError(t, err)

	assert.Equal(t, booking.ID(), restored.ID())
	assert.Equal(t, BookingStatusServiceDelivered, restored.Status())
	assert.Equal(t, booking.ServiceDate(), restored.ServiceDate())
	assert.Equal(t, booking.Customer().UserID, restored.Customer().UserID)
	assert.Empty(t, restored.GetUncommittedEvents())
}

func TestMarkEventsAsCommittedClearsBuffer(t *testing.T) {
	booking := newTestBooking(t)
	require.NotEmpty(t, booking.GetUncommittedEvents())

	booking.MarkEventsAsCommitted()
	assert.Empty(t, booking.GetUncommittedEvents())
}
