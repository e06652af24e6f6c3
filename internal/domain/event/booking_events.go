package event

import "time"

// Embedded structs for booking event data
type BookingCustomerData struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BookingProviderData struct {
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
}

type BookedServiceData struct {
	ServiceID string  `json:"service_id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

// BookingCreated event
type BookingCreated struct {
	BookingID   string              `json:"booking_id"`
	Customer    BookingCustomerData `json:"customer"`
	Provider    BookingProviderData `json:"provider"`
	Service     BookedServiceData   `json:"service"`
	ServiceDate time.Time           `json:"service_date"`
	BookingTime string              `json:"booking_time"`
	Note        string              `json:"note"`
	Status      string              `json:"status"`
	Timestamp   time.Time           `json:"timestamp"`
}

func (e *BookingCreated) EventType() string     { return "BookingCreated" }
func (e *BookingCreated) AggregateID() string   { return e.BookingID }
func (e *BookingCreated) OccurredAt() time.Time { return e.Timestamp }
func (e *BookingCreated) Version() int          { return 1 }

// BookingStatusChanged event
type BookingStatusChanged struct {
	BookingID    string    `json:"booking_id"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *BookingStatusChanged) EventType() string     { return "BookingStatusChanged" }
func (e *BookingStatusChanged) AggregateID() string   { return e.BookingID }
func (e *BookingStatusChanged) OccurredAt() time.Time { return e.Timestamp }
func (e *BookingStatusChanged) Version() int          { return e.EventVersion }

// BookingRescheduled event
type BookingRescheduled struct {
	BookingID    string    `json:"booking_id"`
	ServiceDate  time.Time `json:"service_date"`
	BookingTime  string    `json:"booking_time"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *BookingRescheduled) EventType() string     { return "BookingRescheduled" }
func (e *BookingRescheduled) AggregateID() string   { return e.BookingID }
func (e *BookingRescheduled) OccurredAt() time.Time { return e.Timestamp }
func (e *BookingRescheduled) Version() int          { return e.EventVersion }

// BookingCancelled event
type BookingCancelled struct {
	BookingID    string    `json:"booking_id"`
	Reason       string    `json:"reason"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *BookingCancelled) EventType() string     { return "BookingCancelled" }
func (e *BookingCancelled) AggregateID() string   { return e.BookingID }
func (e *BookingCancelled) OccurredAt() time.Time { return e.Timestamp }
func (e *BookingCancelled) Version() int          { return e.EventVersion }

// BookingCompleted event
type BookingCompleted struct {
	BookingID    string    `json:"booking_id"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *BookingCompleted) EventType() string     { return "BookingCompleted" }
func (e *BookingCompleted) AggregateID() string   { return e.BookingID }
func (e *BookingCompleted) OccurredAt() time.Time { return e.Timestamp }
func (e *BookingCompleted) Version() int          { return e.EventVersion }
