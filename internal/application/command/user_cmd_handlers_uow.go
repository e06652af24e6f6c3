package command

import (
	"context"
	"fmt"
	"log"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/repository"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/bus"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// RegisterUserWithUoWHandler handles user registration with Unit of Work
type RegisterUserWithUoWHandler struct {
	uowFactory     repository.UnitOfWorkFactory
	eventBus       bus.EventBus
	userProjection *projection.MongoUserProjection
}

// NewRegisterUserWithUoWHandler creates a new register user handler with UoW
func NewRegisterUserWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	userProjection *projection.MongoUserProjection,
) *RegisterUserWithUoWHandler {
	return &RegisterUserWithUoWHandler{
		uowFactory:     uowFactory,
		eventBus:       eventBus,
		userProjection: userProjection,
	}
}

// Handle processes the register user command
func (h *RegisterUserWithUoWHandler) Handle(ctx context.Context, cmd *RegisterUser) (string, error) {
	if cmd == nil {
		return "", errors.NewValidationError("command cannot be nil")
	}
	if cmd.Email == "" || cmd.Password == "" || cmd.Name == "" {
		return "", errors.NewValidationError("email, password, and name are required")
	}

	role := aggregate.UserRole(cmd.Role)
	if cmd.Role == "" {
		role = aggregate.RoleCustomer
	}
	if !role.IsValid() {
		return "", errors.NewValidationError(fmt.Sprintf("invalid role: %s", cmd.Role))
	}

	exists, err := h.userProjection.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to check email: %v", err))
	}
	if exists {
		return "", errors.NewConflictError("email already registered")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	user, err := aggregate.NewUserWithPasswordAndRole(cmd.Name, cmd.Email, cmd.Phone, cmd.Address, cmd.Password, role)
	if err != nil {
		uow.Rollback(ctx)
		return "", errors.NewValidationError(fmt.Sprintf("failed to create user: %v", err))
	}

	events := user.GetUncommittedEvents()

	userRepo := uow.UserRepository()
	if err := userRepo.Save(ctx, user); err != nil {
		uow.Rollback(ctx)
		return "", errors.NewInternalError(fmt.Sprintf("failed to save user: %v", err))
	}

	if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish user events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return user.ID(), nil
}

// UpdateUserProfileWithUoWHandler handles profile updates with Unit of Work
type UpdateUserProfileWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewUpdateUserProfileWithUoWHandler creates a new update profile handler with UoW
func NewUpdateUserProfileWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *UpdateUserProfileWithUoWHandler {
	return &UpdateUserProfileWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the update user profile command
func (h *UpdateUserProfileWithUoWHandler) Handle(ctx context.Context, cmd *UpdateUserProfile) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.UserID == "" {
		return errors.NewValidationError("user_id is required")
	}

	return mutateUser(ctx, h.uowFactory, h.eventBus, cmd.UserID, func(user *aggregate.User) error {
		return user.UpdateProfile(cmd.Name, cmd.Phone, cmd.Address)
	})
}

// ChangeUserPasswordWithUoWHandler handles password changes with Unit of Work
type ChangeUserPasswordWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewChangeUserPasswordWithUoWHandler creates a new change password handler with UoW
func NewChangeUserPasswordWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *ChangeUserPasswordWithUoWHandler {
	return &ChangeUserPasswordWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the change user password command
func (h *ChangeUserPasswordWithUoWHandler) Handle(ctx context.Context, cmd *ChangeUserPassword) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.UserID == "" {
		return errors.NewValidationError("user_id is required")
	}
	if cmd.OldPassword == "" || cmd.NewPassword == "" {
		return errors.NewValidationError("old_password and new_password are required")
	}

	return mutateUser(ctx, h.uowFactory, h.eventBus, cmd.UserID, func(user *aggregate.User) error {
		return user.ChangePassword(cmd.OldPassword, cmd.NewPassword)
	})
}

// DeactivateUserWithUoWHandler handles account deactivation with Unit of Work
type DeactivateUserWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewDeactivateUserWithUoWHandler creates a new deactivate user handler with UoW
func NewDeactivateUserWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *DeactivateUserWithUoWHandler {
	return &DeactivateUserWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the deactivate user command
func (h *DeactivateUserWithUoWHandler) Handle(ctx context.Context, cmd *DeactivateUser) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.UserID == "" {
		return errors.NewValidationError("user_id is required")
	}

	return mutateUser(ctx, h.uowFactory, h.eventBus, cmd.UserID, func(user *aggregate.User) error {
		return user.Deactivate()
	})
}

func mutateUser(ctx context.Context, uowFactory repository.UnitOfWorkFactory, eventBus bus.EventBus, userID string, mutate func(*aggregate.User) error) error {
	uow := uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	userRepo := uow.UserRepository()
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		uow.Rollback(ctx)
		return errors.NewNotFoundError(fmt.Sprintf("user not found: %s", userID))
	}

	if err := mutate(user); err != nil {
		uow.Rollback(ctx)
		return errors.NewValidationError(err.Error())
	}

	events := user.GetUncommittedEvents()

	if err := userRepo.Save(ctx, user); err != nil {
		uow.Rollback(ctx)
		return errors.NewInternalError(fmt.Sprintf("failed to save user: %v", err))
	}

	if err := eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish user events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return nil
}
