package services

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
)

// UserService handles user account operations
type UserService struct {
	registerUserHandler   *command.RegisterUserHandler
	loginHandler          *command.LoginHandler
	updateProfileHandler  *command.UpdateUserProfileWithUoWHandler
	changePasswordHandler *command.ChangeUserPasswordWithUoWHandler
	deactivateUserHandler *command.DeactivateUserWithUoWHandler
	getUserHandler        *query.GetUserHandler
	listUsersHandler      *query.ListUsersHandler
}

// NewUserService creates a new user service
func NewUserService(
	registerUserHandler *command.RegisterUserHandler,
	loginHandler *command.LoginHandler,
	updateProfileHandler *command.UpdateUserProfileWithUoWHandler,
	changePasswordHandler *command.ChangeUserPasswordWithUoWHandler,
	deactivateUserHandler *command.DeactivateUserWithUoWHandler,
	getUserHandler *query.GetUserHandler,
	listUsersHandler *query.ListUsersHandler,
) *UserService {
	return &UserService{
		registerUserHandler:   registerUserHandler,
		loginHandler:          loginHandler,
		updateProfileHandler:  updateProfileHandler,
		changePasswordHandler: changePasswordHandler,
		deactivateUserHandler: deactivateUserHandler,
		getUserHandler:        getUserHandler,
		listUsersHandler:      listUsersHandler,
	}
}

// Register creates a new user account and issues an access token
func (s *UserService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserResponse, error) {
	return s.registerUserHandler.Handle(ctx, cmd)
}

// Login authenticates a user and issues an access token
func (s *UserService) Login(ctx context.Context, cmd *command.LoginCommand) (*command.LoginResponse, error) {
	return s.loginHandler.Handle(ctx, cmd)
}

// UpdateProfile updates a user's profile fields
func (s *UserService) UpdateProfile(ctx context.Context, cmd *command.UpdateUserProfile) error {
	return s.updateProfileHandler.Handle(ctx, cmd)
}

// ChangePassword changes a user's password
func (s *UserService) ChangePassword(ctx context.Context, cmd *command.ChangeUserPassword) error {
	return s.changePasswordHandler.Handle(ctx, cmd)
}

// DeactivateUser disables a user account
func (s *UserService) DeactivateUser(ctx context.Context, cmd *command.DeactivateUser) error {
	return s.deactivateUserHandler.Handle(ctx, cmd)
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*projection.UserReadModel, error) {
	return s.getUserHandler.Handle(ctx, userID)
}

// ListUsers retrieves users, optionally filtered by role
func (s *UserService) ListUsers(ctx context.Context, role string, offset, limit int) ([]projection.UserReadModel, error) {
	return s.listUsersHandler.Handle(ctx, role, offset, limit)
}
