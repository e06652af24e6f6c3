package event

import "time"

// DomainEvent is implemented by every event raised by an aggregate
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
	Version() int
}

// UserRegistered event
type UserRegistered struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	HashedPassword string    `json:"hashed_password"`
	Role           string    `json:"role"`
	ImageUrl       string    `json:"image_url"`
	IsActive       bool      `json:"is_active"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e *UserRegistered) EventType() string     { return "UserRegistered" }
func (e *UserRegistered) AggregateID() string   { return e.UserID }
func (e *UserRegistered) OccurredAt() time.Time { return e.Timestamp }
func (e *UserRegistered) Version() int          { return 1 }

// UserProfileUpdated event
type UserProfileUpdated struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *UserProfileUpdated) EventType() string     { return "UserProfileUpdated" }
func (e *UserProfileUpdated) AggregateID() string   { return e.UserID }
func (e *UserProfileUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e *UserProfileUpdated) Version() int          { return e.EventVersion }

// UserPasswordChanged event
type UserPasswordChanged struct {
	UserID         string    `json:"user_id"`
	HashedPassword string    `json:"hashed_password"`
	EventVersion   int       `json:"version"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e *UserPasswordChanged) EventType() string     { return "UserPasswordChanged" }
func (e *UserPasswordChanged) AggregateID() string   { return e.UserID }
func (e *UserPasswordChanged) OccurredAt() time.Time { return e.Timestamp }
func (e *UserPasswordChanged) Version() int          { return e.EventVersion }

// UserLoggedIn event
type UserLoggedIn struct {
	UserID       string    `json:"user_id"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *UserLoggedIn) EventType() string     { return "UserLoggedIn" }
func (e *UserLoggedIn) AggregateID() string   { return e.UserID }
func (e *UserLoggedIn) OccurredAt() time.Time { return e.Timestamp }
func (e *UserLoggedIn) Version() int          { return e.EventVersion }

// UserDeactivated event
type UserDeactivated struct {
	UserID       string    `json:"user_id"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *UserDeactivated) EventType() string     { return "UserDeactivated" }
func (e *UserDeactivated) AggregateID() string   { return e.UserID }
func (e *UserDeactivated) OccurredAt() time.Time { return e.Timestamp }
func (e *UserDeactivated) Version() int          { return e.EventVersion }
