package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/calendar"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
)

// fakeBookingProjection serves canned bookings filtered by date range
type fakeBookingProjection struct {
	bookings []projection.BookingReadModel

	lastFrom       time.Time
	lastTo         time.Time
	lastCustomerID string
	lastProviderID string
}

func (f *fakeBookingProjection) GetByID(ctx context.Context, id string) (*projection.BookingReadModel, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingProjection) GetByCustomerID(ctx context.Context, customerID string, offset, limit int) ([]projection.BookingReadModel, error) {
	return f.bookings, nil
}

func (f *fakeBookingProjection) GetByProviderID(ctx context.Context, providerID string, offset, limit int) ([]projection.BookingReadModel, error) {
	return f.bookings, nil
}

func (f *fakeBookingProjection) GetByDateRange(ctx context.Context, from, to time.Time, customerID, providerID string) ([]projection.BookingReadModel, error) {
	f.lastFrom, f.lastTo = from, to
	f.lastCustomerID, f.lastProviderID = customerID, providerID

	var out []projection.BookingReadModel
	for _, b := range f.bookings {
		if !b.ServiceDate.Before(from) && b.ServiceDate.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingProjection) ListAll(ctx context.Context, offset, limit int) ([]projection.BookingReadModel, error) {
	return f.bookings, nil
}

func (f *fakeBookingProjection) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, b := range f.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func testBooking(id string, date time.Time, status string) projection.BookingReadModel {
	return projection.BookingReadModel{
		ID:          id,
		CustomerID:  "cust-1",
		ProviderID:  "prov-1",
		ServiceID:   "svc-1",
		ServiceDate: date,
		BookingTime: "10:00",
		Status:      status,
		Service:     projection.BookedServiceRead{Title: "Plumbing Fix", Category: "repair", Price: 800},
	}
}

func cellByKey(cells []calendar.DayCell, key string) (calendar.DayCell, bool) {
	for _, c := range cells {
		if c.Key == key {
			return c, true
		}
	}
	return calendar.DayCell{}, false
}

func TestGetBookingCalendarBuildsMonthView(t *testing.T) {
	fake := &fakeBookingProjection{
		bookings: []projection.BookingReadModel{
			testBooking("b1", time.Date(2026, time.September, 10, 9, 0, 0, 0, time.Local), "pending"),
			testBooking("b2", time.Date(2026, time.September, 10, 15, 0, 0, 0, time.Local), "confirmed"),
			testBooking("b3", time.Date(2026, time.September, 22, 11, 0, 0, 0, time.Local), "completed"),
			testBooking("far", time.Date(2026, time.December, 1, 0, 0, 0, 0, time.Local), "pending"),
		},
	}
	handler := NewGetBookingCalendarHandler(fake)

	result, err := handler.Handle(context.Background(), &GetBookingCalendar{
		Year:         2026,
		Month:        9,
		SelectedDate: "2026-09-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 2026, result.Year)
	assert.Equal(t, 9, result.Month)
	assert.Equal(t, "2026-09-10", result.SelectedDay)
	require.Len(t, result.SelectedEvents, 2)

	// grid is laid out in full weeks
	assert.Zero(t, len(result.Cells)%7)

	cell, ok := cellByKey(result.Cells, "2026-09-10")
	require.True(t, ok)
	assert.True(t, cell.InMonth)
	assert.True(t, cell.Selected)
	assert.Equal(t, 2, cell.Count)

	empty, ok := cellByKey(result.Cells, "2026-09-11")
	require.True(t, ok)
	assert.Zero(t, empty.Count)
}

func TestGetBookingCalendarStatusFilter(t *testing.T) {
	fake := &fakeBookingProjection{
		bookings: []projection.BookingReadModel{
			testBooking("b1", time.Date(2026, time.September, 10, 9, 0, 0, 0, time.Local), "pending"),
			testBooking("b2", time.Date(2026, time.September, 10, 15, 0, 0, 0, time.Local), "confirmed"),
		},
	}
	handler := NewGetBookingCalendarHandler(fake)

	result, err := handler.Handle(context.Background(), &GetBookingCalendar{
		Year:         2026,
		Month:        9,
		Statuses:     []string{"confirmed"},
		SelectedDate: "2026-09-10",
	})
	require.NoError(t, err)

	require.Len(t, result.SelectedEvents, 1)
	assert.Equal(t, "b2", result.SelectedEvents[0].ID)

	cell, ok := cellByKey(result.Cells, "2026-09-10")
	require.True(t, ok)
	assert.Equal(t, 1, cell.Count)
}

func TestGetBookingCalendarScopesQueryWindow(t *testing.T) {
	fake := &fakeBookingProjection{}
	handler := NewGetBookingCalendarHandler(fake)

	_, err := handler.Handle(context.Background(), &GetBookingCalendar{
		Year:       2026,
		Month:      9,
		CustomerID: "cust-1",
		ProviderID: "prov-1",
	})
	require.NoError(t, err)

	monthStart := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, monthStart.AddDate(0, 0, -7), fake.lastFrom)
	assert.Equal(t, monthStart.AddDate(0, 1, 7), fake.lastTo)
	assert.Equal(t, "cust-1", fake.lastCustomerID)
	assert.Equal(t, "prov-1", fake.lastProviderID)
}

func TestGetBookingCalendarValidation(t *testing.T) {
	handler := NewGetBookingCalendarHandler(&fakeBookingProjection{})

	_, err := handler.Handle(context.Background(), nil)
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), &GetBookingCalendar{Year: 2026, Month: 13})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), &GetBookingCalendar{Year: 12, Month: 1})
	assert.Error(t, err)
}

func TestBookingToCalendarEventMapsFields(t *testing.T) {
	b := testBooking("b1", time.Date(2026, time.September, 10, 9, 0, 0, 0, time.Local), "confirmed")
	b.Customer.Name = "Aarav Sharma"
	b.Provider.Name = "FixIt Services"

	e := BookingToCalendarEvent(b)

	assert.Equal(t, "b1", e.ID)
	assert.Equal(t, "10:00", e.Time)
	assert.Equal(t, "Plumbing Fix", e.Title)
	assert.Equal(t, "repair", e.Category)
	assert.Equal(t, "confirmed", e.Status)
	assert.Equal(t, "Aarav Sharma", e.Meta["customer_name"])
	assert.Equal(t, "FixIt Services", e.Meta["provider_name"])
	assert.Equal(t, 800.0, e.Meta["price"])
}
