package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleProvider UserRole = "Provider"
	RoleCustomer UserRole = "Customer"
)

// IsValid checks if the role is one of the defined roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProvider, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	id             string
	name           string
	email          string
	phone          string
	address        string
	hashedPassword string
	role           UserRole
	imageUrl       string
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
	version        int

	uncommittedEvents []event.DomainEvent
}

func NewUserWithPasswordAndRole(name, email, phone, address, plainPassword string, role UserRole) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(plainPassword) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		id:             uuid.New().String(),
		name:           name,
		email:          strings.ToLower(strings.TrimSpace(email)),
		phone:          phone,
		address:        address,
		hashedPassword: string(hashed),
		role:           role,
		isActive:       true,
		createdAt:      time.Now(),
		updatedAt:      time.Now(),
		version:        1,
	}

	user.raiseEvent(&event.UserRegistered{
		UserID:         user.id,
		Name:           user.name,
		Email:          user.email,
		Phone:          user.phone,
		Address:        user.address,
		HashedPassword: user.hashedPassword,
		Role:           string(user.role),
		ImageUrl:       user.imageUrl,
		IsActive:       user.isActive,
		Timestamp:      user.createdAt,
	})

	return user, nil
}

func NewUserFromHistory(events []event.DomainEvent) (*User, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("no events provided")
	}

	user := &User{}
	for _, e := range events {
		if err := user.applyEvent(e); err != nil {
			return nil, fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}

	return user, nil
}

// VerifyPassword compares a plaintext candidate against the stored hash
func (u *User) VerifyPassword(plainPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.hashedPassword), []byte(plainPassword)); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// UpdateProfile updates the mutable profile fields
func (u *User) UpdateProfile(name, phone, address string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !u.isActive {
		return fmt.Errorf("cannot update a deactivated user")
	}

	u.raiseEvent(&event.UserProfileUpdated{
		UserID:       u.id,
		Name:         name,
		Phone:        phone,
		Address:      address,
		EventVersion: u.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// ChangePassword verifies the old password and stores a hash of the new one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if err := u.VerifyPassword(oldPassword); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.raiseEvent(&event.UserPasswordChanged{
		UserID:         u.id,
		HashedPassword: string(hashed),
		EventVersion:   u.version + 1,
		Timestamp:      time.Now(),
	})

	return nil
}

// RecordLogin records a successful login
func (u *User) RecordLogin() error {
	if !u.isActive {
		return fmt.Errorf("user account is deactivated")
	}

	u.raiseEvent(&event.UserLoggedIn{
		UserID:       u.id,
		EventVersion: u.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if !u.isActive {
		return fmt.Errorf("user is already deactivated")
	}

	u.raiseEvent(&event.UserDeactivated{
		UserID:       u.id,
		EventVersion: u.version + 1,
		Timestamp:    time.Now(),
	})

	return nil
}

func (u *User) GetUncommittedEvents() []event.DomainEvent {
	return u.uncommittedEvents
}

func (u *User) ClearUncommittedEvents() {
	u.uncommittedEvents = nil
}

func (u *User) raiseEvent(ev event.DomainEvent) {
	u.uncommittedEvents = append(u.uncommittedEvents, ev)
	u.applyEvent(ev)
}

func (u *User) applyEvent(ev event.DomainEvent) error {
	switch e := ev.(type) {
	case *event.UserRegistered:
		u.id = e.UserID
		u.name = e.Name
		u.email = e.Email
		u.phone = e.Phone
		u.address = e.Address
		u.hashedPassword = e.HashedPassword
		u.role = UserRole(e.Role)
		u.imageUrl = e.ImageUrl
		u.isActive = e.IsActive
		u.createdAt = e.Timestamp
		u.updatedAt = e.Timestamp
		u.version = 1

	case *event.UserProfileUpdated:
		u.name = e.Name
		u.phone = e.Phone
		u.address = e.Address
		u.version = e.EventVersion
		u.updatedAt = e.Timestamp

	case *event.UserPasswordChanged:
		u.hashedPassword = e.HashedPassword
		u.version = e.EventVersion
		u.updatedAt = e.Timestamp

	case *event.UserLoggedIn:
		u.version = e.EventVersion
		u.updatedAt = e.Timestamp

	case *event.UserDeactivated:
		u.isActive = false
		u.version = e.EventVersion
		u.updatedAt = e.Timestamp

	default:
		return fmt.Errorf("unknown event type: %T", ev)
	}

	return nil
}

// Getters
func (u *User) ID() string             { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Email() string          { return u.email }
func (u *User) Phone() string          { return u.phone }
func (u *User) Address() string        { return u.address }
func (u *User) HashedPassword() string { return u.hashedPassword }
func (u *User) Role() UserRole         { return u.role }
func (u *User) ImageUrl() string       { return u.imageUrl }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

// Entity interface implementation
func (u *User) GetID() string    { return u.id }
func (u *User) GetVersion() int  { return u.version }
func (u *User) SetVersion(v int) { u.version = v }

// AggregateRoot interface implementation
func (u *User) MarkEventsAsCommitted() {
	u.uncommittedEvents = nil
}

func (u *User) LoadFromHistory(events []event.DomainEvent) error {
	for _, e := range events {
		if err := u.applyEvent(e); err != nil {
			return fmt.Errorf("failed to apply event %s: %w", e.EventType(), err)
		}
	}
	return nil
}
