package aggregate

import (
	"fmt"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusExpired   PaymentStatus = "EXPIRED"
)

type Payment struct {
	id          string
	bookingID   string
	customerID  string
	providerID  string
	orderCode   int64
	amount      int
	description string
	checkoutUrl string
	status      PaymentStatus
	createdAt   time.Time
	updatedAt   time.Time
	version     int

	uncommittedEvents []event.DomainEvent
}

func NewPayment(bookingID, customerID, providerID string, orderCode int64, amount int, description, checkoutUrl string) (*Payment, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("bookingID cannot be empty")
	}
	if customerID == "" {
		return nil, fmt.Errorf("customerID cannot be empty")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	payment := &Payment{
		id:          uuid.New().String(),
		bookingID:   bookingID,
		customerID:  customerID,
		providerID:  providerID,
		orderCode:   orderCode,
		amount:      amount,
		description: description,
		checkoutUrl: checkoutUrl,
		status:      PaymentStatusPending,
		createdAt:   time.Now(),
		updatedAt:   time.Now(),
		version:     1,
	}

	payment.raiseEvent(&event.PaymentCreated{
		PaymentID:   payment.id,
		BookingID:   payment.bookingID,
		CustomerID:  payment.customerID,
		ProviderID:  payment.providerID,
		OrderCode:   payment.orderCode,
		Amount:      payment.amount,
		Description: payment.description,
		CheckoutUrl: payment.checkoutUrl,
		Status:      string(payment.status),
		Timestamp:   payment.createdAt,
	})

	return payment, nil
}

func NewPaymentFromHistory(events []event.DomainEvent) (*Payment, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("no events provided")
	}

	payment := &Payment{}
	for _, e := range events {
		if err := payment.applyEvent(e); err != nil {
			return nil, fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}

	return payment, nil
}

// Complete marks the payment as paid
func (p *Payment) Complete() error {
	if p.status != PaymentStatusPending {
		return fmt.Errorf("cannot complete payment in status %s", p.status)
	}

	p.raiseEvent(&event.PaymentCompleted{
		PaymentID:    p.id,
		BookingID:    p.bookingID,
		EventVersion: p.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Cancel voids a pending payment
func (p *Payment) Cancel(reason string) error {
	if p.status != PaymentStatusPending {
		return fmt.Errorf("cannot cancel payment in status %s", p.status)
	}

	p.raiseEvent(&event.PaymentCancelled{
		PaymentID:    p.id,
		BookingID:    p.bookingID,
		Reason:       reason,
		EventVersion: p.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Expire marks a pending payment link as expired
func (p *Payment) Expire() error {
	if p.status != PaymentStatusPending {
		return fmt.Errorf("cannot expire payment in status %s", p.status)
	}

	p.raiseEvent(&event.PaymentExpired{
		PaymentID:    p.id,
		BookingID:    p.bookingID,
		EventVersion: p.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

func (p *Payment) GetUncommittedEvents() []event.DomainEvent {
	return p.uncommittedEvents
}

func (p *Payment) ClearUncommittedEvents() {
	p.uncommittedEvents = nil
}

func (p *Payment) raiseEvent(ev event.DomainEvent) {
	p.uncommittedEvents = append(p.uncommittedEvents, ev)
	p.applyEvent(ev)
}

func (p *Payment) applyEvent(ev event.DomainEvent) error {
	switch e := ev.(type) {
	case *event.PaymentCreated:
		p.id = e.PaymentID
		p.bookingID = e.BookingID
		p.customerID = e.CustomerID
		p.providerID = e.ProviderID
		p.orderCode = e.OrderCode
		p.amount = e.Amount
		p.description = e.Description
		p.checkoutUrl = e.CheckoutUrl
		p.status = PaymentStatus(e.Status)
		p.createdAt = e.Timestamp
		p.updatedAt = e.Timestamp
		p.version = 1

	case *event.PaymentCompleted:
		p.status = PaymentStatusPaid
		p.version = e.EventVersion
		p.updatedAt = e.Timestamp

	case *event.PaymentCancelled:
		p.status = PaymentStatusCancelled
		p.version = e.EventVersion
		p.updatedAt = e.Timestamp

	case *event.PaymentExpired:
		p.status = PaymentStatusExpired
		p.version = e.EventVersion
		p.updatedAt = e.Timestamp

	default:
		return fmt.Errorf("unknown event type: %T", ev)
	}

	return nil
}

// Getters
func (p *Payment) ID() string            { return p.id }
func (p *Payment) BookingID() string     { return p.bookingID }
func (p *Payment) CustomerID() string    { return p.customerID }
func (p *Payment) ProviderID() string    { return p.providerID }
func (p *Payment) OrderCode() int64      { return p.orderCode }
func (p *Payment) Amount() int           { return p.amount }
func (p *Payment) Description() string   { return p.description }
func (p *Payment) CheckoutUrl() string   { return p.checkoutUrl }
func (p *Payment) Status() PaymentStatus { return p.status }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time  { return p.updatedAt }

// Entity interface implementation
func (p *Payment) GetID() string    { return p.id }
func (p *Payment) GetVersion() int  { return p.version }
func (p *Payment) SetVersion(v int) { p.version = v }

// AggregateRoot interface implementation
func (p *Payment) MarkEventsAsCommitted() {
	p.uncommittedEvents = nil
}

func (p *Payment) LoadFromHistory(events []event.DomainEvent) error {
	for _, e := range events {
		if err := p.applyEvent(e); err != nil {
			return fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}
	return nil
}
