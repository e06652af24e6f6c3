package event

import "time"

// PaymentCreated event
type PaymentCreated struct {
	PaymentID   string    `json:"payment_id"`
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	ProviderID  string    `json:"provider_id"`
	OrderCode   int64     `json:"order_code"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	CheckoutUrl string    `json:"checkout_url"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *PaymentCreated) EventType() string     { return "PaymentCreated" }
func (e *PaymentCreated) AggregateID() string   { return e.PaymentID }
func (e *PaymentCreated) OccurredAt() time.Time { return e.Timestamp }
func (e *PaymentCreated) Version() int          { return 1 }

// PaymentCompleted event
type PaymentCompleted struct {
	PaymentID    string    `json:"payment_id"`
	BookingID    string    `json:"booking_id"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *PaymentCompleted) EventType() string     { return "PaymentCompleted" }
func (e *PaymentCompleted) AggregateID() string   { return e.PaymentID }
func (e *PaymentCompleted) OccurredAt() time.Time { return e.Timestamp }
func (e *PaymentCompleted) Version() int          { return e.EventVersion }

// PaymentCancelled event
type PaymentCancelled struct {
	PaymentID    string    `json:"payment_id"`
	BookingID    string    `json:"booking_id"`
	Reason       string    `json:"reason"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *PaymentCancelled) EventType() string     { return "PaymentCancelled" }
func (e *PaymentCancelled) AggregateID() string   { return e.PaymentID }
func (e *PaymentCancelled) OccurredAt() time.Time { return e.Timestamp }
func (e *PaymentCancelled) Version() int          { return e.EventVersion }

// PaymentExpired event
type PaymentExpired struct {
	PaymentID    string    `json:"payment_id"`
	BookingID    string    `json:"booking_id"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *PaymentExpired) EventType() string     { return "PaymentExpired" }
func (e *PaymentExpired) AggregateID() string   { return e.PaymentID }
func (e *PaymentExpired) OccurredAt() time.Time { return e.Timestamp }
func (e *PaymentExpired) Version() int          { return e.EventVersion }
