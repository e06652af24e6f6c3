package command

import (
	"context"
	"fmt"
	"log"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/repository"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/bus"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// CreateServiceWithUoWHandler handles create service commands with Unit of Work
type CreateServiceWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewCreateServiceWithUoWHandler creates a new create service handler with UoW
func NewCreateServiceWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *CreateServiceWithUoWHandler {
	return &CreateServiceWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the create service command
func (h *CreateServiceWithUoWHandler) Handle(ctx context.Context, cmd *CreateService) (string, error) {
	if cmd == nil {
		return "", errors.NewValidationError("command cannot be nil")
	}
	if cmd.ProviderID == "" {
		return "", errors.NewValidationError("provider_id is required")
	}
	if cmd.Title == "" {
		return "", errors.NewValidationError("title is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	service, err := aggregate.NewService(cmd.ProviderID, cmd.Title, cmd.Category, cmd.Description, cmd.Price, cmd.City, cmd.ImageUrl)
	if err != nil {
		uow.Rollback(ctx)
		return "", errors.NewValidationError(fmt.Sprintf("failed to create service: %v", err))
	}

	events := service.GetUncommittedEvents()

	serviceRepo := uow.ServiceRepository()
	if err := serviceRepo.Save(ctx, service); err != nil {
		uow.Rollback(ctx)
		return "", errors.NewInternalError(fmt.Sprintf("failed to save service: %v", err))
	}

	if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish service events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return service.ID(), nil
}

// UpdateServiceWithUoWHandler handles service updates with Unit of Work
type UpdateServiceWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewUpdateServiceWithUoWHandler creates a new update service handler with UoW
func NewUpdateServiceWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *UpdateServiceWithUoWHandler {
	return &UpdateServiceWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the update service command
func (h *UpdateServiceWithUoWHandler) Handle(ctx context.Context, cmd *UpdateService) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.ServiceID == "" {
		return errors.NewValidationError("service_id is required")
	}

	return mutateService(ctx, h.uowFactory, h.eventBus, cmd.ServiceID, func(service *aggregate.Service) error {
		return service.Update(cmd.Title, cmd.Category, cmd.Description, cmd.Price, cmd.City)
	})
}

// UpdateServiceImageWithUoWHandler handles service image updates with Unit of Work
type UpdateServiceImageWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewUpdateServiceImageWithUoWHandler creates a new update service image handler with UoW
func NewUpdateServiceImageWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *UpdateServiceImageWithUoWHandler {
	return &UpdateServiceImageWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the update service image command
func (h *UpdateServiceImageWithUoWHandler) Handle(ctx context.Context, cmd *UpdateServiceImage) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.ServiceID == "" {
		return errors.NewValidationError("service_id is required")
	}
	if cmd.ImageUrl == "" {
		return errors.NewValidationError("image_url is required")
	}

	return mutateService(ctx, h.uowFactory, h.eventBus, cmd.ServiceID, func(service *aggregate.Service) error {
		return service.UpdateImage(cmd.ImageUrl)
	})
}

// DeactivateServiceWithUoWHandler handles service deactivation with Unit of Work
type DeactivateServiceWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewDeactivateServiceWithUoWHandler creates a new deactivate service handler with UoW
func NewDeactivateServiceWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *DeactivateServiceWithUoWHandler {
	return &DeactivateServiceWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the deactivate service command
func (h *DeactivateServiceWithUoWHandler) Handle(ctx context.Context, cmd *DeactivateService) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.ServiceID == "" {
		return errors.NewValidationError("service_id is required")
	}

	return mutateService(ctx, h.uowFactory, h.eventBus, cmd.ServiceID, func(service *aggregate.Service) error {
		return service.Deactivate()
	})
}

func mutateService(ctx context.Context, uowFactory repository.UnitOfWorkFactory, eventBus bus.EventBus, serviceID string, mutate func(*aggregate.Service) error) error {
	uow := uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	serviceRepo := uow.ServiceRepository()
	service, err := serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		uow.Rollback(ctx)
		return errors.NewNotFoundError(fmt.Sprintf("service not found: %s", serviceID))
	}

	if err := mutate(service); err != nil {
		uow.Rollback(ctx)
		return errors.NewValidationError(err.Error())
	}

	events := service.GetUncommittedEvents()

	if err := serviceRepo.Save(ctx, service); err != nil {
		uow.Rollback(ctx)
		return errors.NewInternalError(fmt.Sprintf("failed to save service: %v", err))
	}

	if err := eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish service events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return nil
}
