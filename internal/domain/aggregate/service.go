package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"github.com/google/uuid"
)

type Service struct {
	id          string
	providerID  string
	title       string
	category    string
	description string
	price       float64
	city        string
	imageUrl    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
	version     int

	uncommittedEvents []event.DomainEvent
}

func NewService(providerID, title, category, description string, price float64, city, imageUrl string) (*Service, error) {
	if providerID == "" {
		return nil, fmt.Errorf("providerID cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	service := &Service{
		id:          uuid.New().String(),
		providerID:  providerID,
		title:       title,
		category:    category,
		description: description,
		price:       price,
		city:        city,
		imageUrl:    imageUrl,
		isActive:    true,
		createdAt:   time.Now(),
		updatedAt:   time.Now(),
		version:     1,
	}

	service.raiseEvent(&event.ServiceCreated{
		ServiceID:   service.id,
		ProviderID:  service.providerID,
		Title:       service.title,
		Category:    service.category,
		Description: service.description,
		Price:       service.price,
		City:        service.city,
		ImageUrl:    service.imageUrl,
		Timestamp:   service.createdAt,
	})

	return service, nil
}

func NewServiceFromHistory(events []event.DomainEvent) (*Service, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("no events provided")
	}

	service := &Service{}
	for _, e := range events {
		if err := service.applyEvent(e); err != nil {
			return nil, fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}

	return service, nil
}

// Update replaces the listing details
func (s *Service) Update(title, category, description string, price float64, city string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if !s.isActive {
		return fmt.Errorf("cannot update a deactivated service")
	}

	s.raiseEvent(&event.ServiceUpdated{
		ServiceID:    s.id,
		Title:        title,
		Category:     category,
		Description:  description,
		Price:        price,
		City:         city,
		EventVersion: s.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// UpdateImage sets a new listing image URL
func (s *Service) UpdateImage(imageUrl string) error {
	if strings.TrimSpace(imageUrl) == "" {
		return fmt.Errorf("imageUrl cannot be empty")
	}

	s.raiseEvent(&event.ServiceImageUpdated{
		ServiceID:    s.id,
		ImageUrl:     imageUrl,
		EventVersion: s.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Deactivate removes the listing from the catalog
func (s *Service) Deactivate() error {
	if !s.isActive {
		return fmt.Errorf("service is already deactivated")
	}

	s.raiseEvent(&event.ServiceDeactivated{
		ServiceID:    s.id,
		EventVersion: s.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

func (s *Service) GetUncommittedEvents() []event.DomainEvent {
	return s.uncommittedEvents
}

func (s *Service) ClearUncommittedEvents() {
	s.uncommittedEvents = nil
}

func (s *Service) raiseEvent(ev event.DomainEvent) {
	s.uncommittedEvents = append(s.uncommittedEvents, ev)
	s.applyEvent(ev)
}

func (s *Service) applyEvent(ev event.DomainEvent) error {
	switch e := ev.(type) {
	case *event.ServiceCreated:
		s.id = e.ServiceID
		s.providerID = e.ProviderID
		s.title = e.Title
		s.category = e.Category
		s.description = e.Description
		s.price = e.Price
		s.city = e.City
		s.imageUrl = e.ImageUrl
		s.isActive = true
		s.createdAt = e.Timestamp
		s.updatedAt = e.Timestamp
		s.version = 1

	case *event.ServiceUpdated:
		s.title = e.Title
		s.category = e.Category
		s.description = e.Description
		s.price = e.Price
		s.city = e.City
		s.version = e.EventVersion
		s.updatedAt = e.Timestamp

	case *event.ServiceImageUpdated:
		s.imageUrl = e.ImageUrl
		s.version = e.EventVersion
		s.updatedAt = e.Timestamp

	case *event.ServiceDeactivated:
		s.isActive = false
		s.version = e.EventVersion
		s.updatedAt = e.Timestamp

	default:
		return fmt.Errorf("unknown event type: %T", ev)
	}

	return nil
}

// Getters
func (s *Service) ID() string           { return s.id }
func (s *Service) ProviderID() string   { return s.providerID }
func (s *Service) Title() string        { return s.title }
func (s *Service) Category() string     { return s.category }
func (s *Service) Description() string  { return s.description }
func (s *Service) Price() float64       { return s.price }
func (s *Service) City() string         { return s.city }
func (s *Service) ImageUrl() string     { return s.imageUrl }
func (s *Service) IsActive() bool       { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

// Entity interface implementation
func (s *Service) GetID() string    { return s.id }
func (s *Service) GetVersion() int  { return s.version }
func (s *Service) SetVersion(v int) { s.version = v }

// AggregateRoot interface implementation
func (s *Service) MarkEventsAsCommitted() {
	s.uncommittedEvents = nil
}

func (s *Service) LoadFromHistory(events []event.DomainEvent) error {
	for _, e := range events {
		if err := s.applyEvent(e); err != nil {
			return fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}
	return nil
}
