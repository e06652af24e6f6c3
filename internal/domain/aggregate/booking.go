package aggregate

import (
	"fmt"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"github.com/google/uuid"
)

type BookingCustomer struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BookingProvider struct {
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
}

type BookedService struct {
	ServiceID string  `json:"service_id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

type BookingStatus string

const (
	BookingStatusPending              BookingStatus = "pending"
	BookingStatusConfirmed            BookingStatus = "confirmed"
	BookingStatusAwaitingConfirmation BookingStatus = "awaiting_confirmation"
	BookingStatusServiceDelivered     BookingStatus = "service_delivered"
	BookingStatusCompleted            BookingStatus = "completed"
	BookingStatusCancelled            BookingStatus = "cancelled"
	BookingStatusDisputed             BookingStatus = "disputed"
)

// IsValid checks if the status is a known lifecycle label
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusAwaitingConfirmation,
		BookingStatusServiceDelivered, BookingStatusCompleted, BookingStatusCancelled,
		BookingStatusDisputed:
		return true
	}
	return false
}

// allowedTransitions captures the booking lifecycle. Terminal states allow
// nothing further.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending:              {BookingStatusConfirmed: true, BookingStatusAwaitingConfirmation: true, BookingStatusCancelled: true},
	BookingStatusAwaitingConfirmation: {BookingStatusConfirmed: true, BookingStatusCancelled: true},
	BookingStatusConfirmed:            {BookingStatusServiceDelivered: true, BookingStatusCompleted: true, BookingStatusCancelled: true},
	BookingStatusServiceDelivered:     {BookingStatusCompleted: true, BookingStatusDisputed: true},
	BookingStatusDisputed:             {BookingStatusCompleted: true, BookingStatusCancelled: true},
	BookingStatusCompleted:            {},
	BookingStatusCancelled:            {},
}

// CanTransition reports whether a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}

type Booking struct {
	id          string
	customer    BookingCustomer
	provider    BookingProvider
	service     BookedService
	serviceDate time.Time
	bookingTime string
	note        string
	status      BookingStatus
	createdAt   time.Time
	updatedAt   time.Time
	version     int
	isActive    bool

	uncommittedEvents []event.DomainEvent
}

func NewBooking(customer BookingCustomer, provider BookingProvider, service BookedService, serviceDate time.Time, bookingTime, note string) (*Booking, error) {
	if customer.UserID == "" {
		return nil, fmt.Errorf("customer userID cannot be empty")
	}
	if provider.ProviderID == "" {
		return nil, fmt.Errorf("providerID cannot be empty")
	}
	if service.ServiceID == "" {
		return nil, fmt.Errorf("serviceID cannot be empty")
	}
	if serviceDate.IsZero() {
		return nil, fmt.Errorf("serviceDate cannot be empty")
	}

	booking := &Booking{
		id:          uuid.New().String(),
		customer:    customer,
		provider:    provider,
		service:     service,
		serviceDate: serviceDate,
		bookingTime: bookingTime,
		note:        note,
		status:      BookingStatusPending,
		createdAt:   time.Now(),
		updatedAt:   time.Now(),
		version:     1,
		isActive:    true,
	}

	booking.raiseEvent(&event.BookingCreated{
		BookingID: booking.id,
		Customer: event.BookingCustomerData{
			UserID:  customer.UserID,
			Name:    customer.Name,
			Email:   customer.Email,
			Phone:   customer.Phone,
			Address: customer.Address,
		},
		Provider: event.BookingProviderData{
			ProviderID: provider.ProviderID,
			Name:       provider.Name,
			City:       provider.City,
			Phone:      provider.Phone,
		},
		Service: event.BookedServiceData{
			ServiceID: service.ServiceID,
			Title:     service.Title,
			Category:  service.Category,
			Price:     service.Price,
		},
		ServiceDate: serviceDate,
		BookingTime: bookingTime,
		Note:        note,
		Status:      string(booking.status),
		Timestamp:   booking.createdAt,
	})

	return booking, nil
}

func NewBookingFromHistory(events []event.DomainEvent) (*Booking, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("no events provided")
	}

	booking := &Booking{}
	for _, e := range events {
		if err := booking.applyEvent(e); err != nil {
			return nil, fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}

	return booking, nil
}

// ChangeStatus moves the booking to a new lifecycle status
func (b *Booking) ChangeStatus(newStatus BookingStatus) error {
	if b.status == newStatus {
		return fmt.Errorf("booking is already in status %s", newStatus)
	}
	if !CanTransition(b.status, newStatus) {
		return fmt.Errorf("cannot transition booking from %s to %s", b.status, newStatus)
	}

	b.raiseEvent(&event.BookingStatusChanged{
		BookingID:    b.id,
		OldStatus:    string(b.status),
		NewStatus:    string(newStatus),
		EventVersion: b.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Confirm accepts the booking on the provider side
func (b *Booking) Confirm() error {
	return b.ChangeStatus(BookingStatusConfirmed)
}

// MarkDelivered records that the provider delivered the service
func (b *Booking) MarkDelivered() error {
	return b.ChangeStatus(BookingStatusServiceDelivered)
}

// Dispute flags a delivered booking for admin resolution
func (b *Booking) Dispute() error {
	return b.ChangeStatus(BookingStatusDisputed)
}

// Reschedule moves the booking to a new service date and time
func (b *Booking) Reschedule(serviceDate time.Time, bookingTime string) error {
	if serviceDate.IsZero() {
		return fmt.Errorf("serviceDate cannot be empty")
	}
	if b.status == BookingStatusCompleted || b.status == BookingStatusCancelled {
		return fmt.Errorf("cannot reschedule booking in status %s", b.status)
	}

	b.raiseEvent(&event.BookingRescheduled{
		BookingID:    b.id,
		ServiceDate:  serviceDate,
		BookingTime:  bookingTime,
		EventVersion: b.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Complete marks the booking as completed
func (b *Booking) Complete() error {
	if b.status == BookingStatusCompleted {
		return fmt.Errorf("booking is already completed")
	}
	if !CanTransition(b.status, BookingStatusCompleted) {
		return fmt.Errorf("cannot complete booking in status %s", b.status)
	}

	b.raiseEvent(&event.BookingCompleted{
		BookingID:    b.id,
		EventVersion: b.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Cancel cancels the booking
func (b *Booking) Cancel(reason string) error {
	if b.status == BookingStatusCancelled {
		return fmt.Errorf("booking is already cancelled")
	}
	if !CanTransition(b.status, BookingStatusCancelled) {
		return fmt.Errorf("cannot cancel booking in status %s", b.status)
	}

	b.raiseEvent(&event.BookingCancelled{
		BookingID:    b.id,
		Reason:       reason,
		EventVersion: b.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

func (b *Booking) GetUncommittedEvents() []event.DomainEvent {
	return b.uncommittedEvents
}

func (b *Booking) ClearUncommittedEvents() {
	b.uncommittedEvents = nil
}

func (b *Booking) raiseEvent(ev event.DomainEvent) {
	b.uncommittedEvents = append(b.uncommittedEvents, ev)
	b.applyEvent(ev)
}

func (b *Booking) applyEvent(ev event.DomainEvent) error {
	switch e := ev.(type) {
	case *event.BookingCreated:
		b.id = e.BookingID
		b.customer = BookingCustomer{
			UserID:  e.Customer.UserID,
			Name:    e.Customer.Name,
			Email:   e.Customer.Email,
			Phone:   e.Customer.Phone,
			Address: e.Customer.Address,
		}
		b.provider = BookingProvider{
			ProviderID: e.Provider.ProviderID,
			Name:       e.Provider.Name,
			City:       e.Provider.City,
			Phone:      e.Provider.Phone,
		}
		b.service = BookedService{
			ServiceID: e.Service.ServiceID,
			Title:     e.Service.Title,
			Category:  e.Service.Category,
			Price:     e.Service.Price,
		}
		b.serviceDate = e.ServiceDate
		b.bookingTime = e.BookingTime
		b.note = e.Note
		b.status = BookingStatus(e.Status)
		b.createdAt = e.Timestamp
		b.updatedAt = e.Timestamp
		b.version = 1
		b.isActive = true

	case *event.BookingStatusChanged:
		b.status = BookingStatus(e.NewStatus)
		b.version = e.EventVersion
		b.updatedAt = e.Timestamp

	case *event.BookingRescheduled:
		b.serviceDate = e.ServiceDate
		b.bookingTime = e.BookingTime
		b.version = e.EventVersion
		b.updatedAt = e.Timestamp

	case *event.BookingCompleted:
		b.status = BookingStatusCompleted
		b.version = e.EventVersion
		b.updatedAt = e.Timestamp

	case *event.BookingCancelled:
		b.status = BookingStatusCancelled
		b.version = e.EventVersion
		b.updatedAt = e.Timestamp
		b.isActive = false

	default:
		return fmt.Errorf("unknown event type: %T", ev)
	}

	return nil
}

// Getters
func (b *Booking) ID() string                { return b.id }
func (b *Booking) Customer() BookingCustomer { return b.customer }
func (b *Booking) Provider() BookingProvider { return b.provider }
func (b *Booking) Service() BookedService    { return b.service }
func (b *Booking) ServiceDate() time.Time    { return b.serviceDate }
func (b *Booking) BookingTime() string       { return b.bookingTime }
func (b *Booking) Note() string              { return b.note }
func (b *Booking) Status() BookingStatus     { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
func (b *Booking) IsActive() bool            { return b.isActive }

// Entity interface implementation
func (b *Booking) GetID() string    { return b.id }
func (b *Booking) GetVersion() int  { return b.version }
func (b *Booking) SetVersion(v int) { b.version = v }

// AggregateRoot interface implementation
func (b *Booking) MarkEventsAsCommitted() {
	b.uncommittedEvents = nil
}

func (b *Booking) LoadFromHistory(events []event.DomainEvent) error {
	for _, e := range events {
		if err := b.applyEvent(e); err != nil {
			return fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}
	return nil
}
