package query

import (
	"context"
	"fmt"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// UserProjection interface for the user read model
type UserProjection interface {
	GetByID(ctx context.Context, id string) (*projection.UserReadModel, error)
	GetByEmail(ctx context.Context, email string) (*projection.UserReadModel, error)
	ListByRole(ctx context.Context, role string, offset, limit int) ([]projection.UserReadModel, error)
	ListAll(ctx context.Context, offset, limit int) ([]projection.UserReadModel, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}

// GetUserHandler handles get user by ID queries
type GetUserHandler struct {
	projection UserProjection
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(projection UserProjection) *GetUserHandler {
	return &GetUserHandler{
		projection: projection,
	}
}

// Handle processes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, userID string) (*projection.UserReadModel, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}

	user, err := h.projection.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewNotFoundError("user")
	}

	return user, nil
}

// ListUsersHandler handles admin listing of users
type ListUsersHandler struct {
	projection UserProjection
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(projection UserProjection) *ListUsersHandler {
	return &ListUsersHandler{
		projection: projection,
	}
}

// Handle processes the list users query. Role is optional.
func (h *ListUsersHandler) Handle(ctx context.Context, role string, offset, limit int) ([]projection.UserReadModel, error) {
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var (
		users []projection.UserReadModel
		err   error
	)
	if role != "" {
		users, err = h.projection.ListByRole(ctx, role, offset, limit)
	} else {
		users, err = h.projection.ListAll(ctx, offset, limit)
	}
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list users: %v", err))
	}

	return users, nil
}
