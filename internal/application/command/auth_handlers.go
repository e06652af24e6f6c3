package command

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/repository"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/bus"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/jwt"
)

// RegisterUserHandler handles user registration and issues an access token
type RegisterUserHandler struct {
	registerHandler *RegisterUserWithUoWHandler
	userProjection  *projection.MongoUserProjection
	jwtManager      *jwt.JWTManager
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(
	registerHandler *RegisterUserWithUoWHandler,
	userProjection *projection.MongoUserProjection,
	jwtManager *jwt.JWTManager,
) *RegisterUserHandler {
	return &RegisterUserHandler{
		registerHandler: registerHandler,
		userProjection:  userProjection,
		jwtManager:      jwtManager,
	}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd *RegisterUserCommand) (*RegisterUserResponse, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}

	role := cmd.Role
	if role == "" {
		role = string(aggregate.RoleCustomer)
	}

	userID, err := h.registerHandler.Handle(ctx, &RegisterUser{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Phone:    cmd.Phone,
		Address:  cmd.Address,
		Password: cmd.Password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	token, err := h.jwtManager.GenerateToken(userID, email, cmd.Name, role)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to generate token: %v", err))
	}

	return &RegisterUserResponse{
		UserID: userID,
		Email:  email,
		Name:   cmd.Name,
		Role:   role,
		Token:  token,
	}, nil
}

// LoginHandler handles user login
type LoginHandler struct {
	userProjection *projection.MongoUserProjection
	uowFactory     repository.UnitOfWorkFactory
	eventBus       bus.EventBus
	jwtManager     *jwt.JWTManager
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(
	userProjection *projection.MongoUserProjection,
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	jwtManager *jwt.JWTManager,
) *LoginHandler {
	return &LoginHandler{
		userProjection: userProjection,
		uowFactory:     uowFactory,
		eventBus:       eventBus,
		jwtManager:     jwtManager,
	}
}

// Handle executes the login command
func (h *LoginHandler) Handle(ctx context.Context, cmd *LoginCommand) (*LoginResponse, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	userView, err := h.userProjection.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !userView.IsActive {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	user, err := uow.UserRepository().GetByID(ctx, userView.ID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := user.VerifyPassword(cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := user.RecordLogin(); err != nil {
		return nil, errors.NewUnauthorizedError(err.Error())
	}

	events := user.GetUncommittedEvents()
	if err := uow.UserRepository().Save(ctx, user); err != nil {
		log.Printf("Warning: failed to record login for user %s: %v", user.ID(), err)
	} else if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish login events: %v", err)
	}

	token, err := h.jwtManager.GenerateToken(user.ID(), user.Email(), user.Name(), string(user.Role()))
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to generate token: %v", err))
	}

	return &LoginResponse{
		UserID: user.ID(),
		Email:  user.Email(),
		Name:   user.Name(),
		Role:   string(user.Role()),
		Token:  token,
	}, nil
}
