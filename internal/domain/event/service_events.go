package event

import "time"

// ServiceCreated event
type ServiceCreated struct {
	ServiceID   string    `json:"service_id"`
	ProviderID  string    `json:"provider_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	City        string    `json:"city"`
	ImageUrl    string    `json:"image_url"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *ServiceCreated) EventType() string     { return "ServiceCreated" }
func (e *ServiceCreated) AggregateID() string   { return e.ServiceID }
func (e *ServiceCreated) OccurredAt() time.Time { return e.Timestamp }
func (e *ServiceCreated) Version() int          { return 1 }

// ServiceUpdated event
type ServiceUpdated struct {
	ServiceID    string    `json:"service_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	City         string    `json:"city"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ServiceUpdated) EventType() string     { return "ServiceUpdated" }
func (e *ServiceUpdated) AggregateID() string   { return e.ServiceID }
func (e *ServiceUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e *ServiceUpdated) Version() int          { return e.EventVersion }

// ServiceImageUpdated event
type ServiceImageUpdated struct {
	ServiceID    string    `json:"service_id"`
	ImageUrl     string    `json:"image_url"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ServiceImageUpdated) EventType() string     { return "ServiceImageUpdated" }
func (e *ServiceImageUpdated) AggregateID() string   { return e.ServiceID }
func (e *ServiceImageUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e *ServiceImageUpdated) Version() int          { return e.EventVersion }

// ServiceDeactivated event
type ServiceDeactivated struct {
	ServiceID    string    `json:"service_id"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ServiceDeactivated) EventType() string     { return "ServiceDeactivated" }
func (e *ServiceDeactivated) AggregateID() string   { return e.ServiceID }
func (e *ServiceDeactivated) OccurredAt() time.Time { return e.Timestamp }
func (e *ServiceDeactivated) Version() int          { return e.EventVersion }
