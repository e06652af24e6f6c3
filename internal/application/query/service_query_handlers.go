package query

import (
	"context"
	"fmt"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// ServiceProjection interface for the service catalog read model
type ServiceProjection interface {
	GetByID(ctx context.Context, id string) (*projection.ServiceReadModel, error)
	GetByProviderID(ctx context.Context, providerID string, offset, limit int) ([]projection.ServiceReadModel, error)
	Search(ctx context.Context, category, city string, offset, limit int) ([]projection.ServiceReadModel, error)
	ListAll(ctx context.Context, offset, limit int) ([]projection.ServiceReadModel, error)
	Count(ctx context.Context) (int64, error)
}

// GetServiceHandler handles get service by ID queries
type GetServiceHandler struct {
	projection ServiceProjection
}

// NewGetServiceHandler creates a new get service handler
func NewGetServiceHandler(projection ServiceProjection) *GetServiceHandler {
	return &GetServiceHandler{
		projection: projection,
	}
}

// Handle processes the get service query
func (h *GetServiceHandler) Handle(ctx context.Context, serviceID string) (*projection.ServiceReadModel, error) {
	if serviceID == "" {
		return nil, errors.NewValidationError("service_id is required")
	}

	service, err := h.projection.GetByID(ctx, serviceID)
	if err != nil {
		return nil, errors.NewNotFoundError("service")
	}

	return service, nil
}

// SearchServicesHandler handles catalog search queries
type SearchServicesHandler struct {
	projection ServiceProjection
}

// NewSearchServicesHandler creates a new search services handler
func NewSearchServicesHandler(projection ServiceProjection) *SearchServicesHandler {
	return &SearchServicesHandler{
		projection: projection,
	}
}

// Handle processes the search services query. Category and city are optional.
func (h *SearchServicesHandler) Handle(ctx context.Context, category, city string, offset, limit int) ([]projection.ServiceReadModel, error) {
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	services, err := h.projection.Search(ctx, category, city, offset, limit)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to search services: %v", err))
	}

	return services, nil
}

// ListProviderServicesHandler handles listing a provider's services
type ListProviderServicesHandler struct {
	projection ServiceProjection
}

// NewListProviderServicesHandler creates a new list provider services handler
func NewListProviderServicesHandler(projection ServiceProjection) *ListProviderServicesHandler {
	return &ListProviderServicesHandler{
		projection: projection,
	}
}

// Handle processes the list provider services query
func (h *ListProviderServicesHandler) Handle(ctx context.Context, providerID string, offset, limit int) ([]projection.ServiceReadModel, error) {
	if providerID == "" {
		return nil, errors.NewValidationError("provider_id is required")
	}

	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	services, err := h.projection.GetByProviderID(ctx, providerID, offset, limit)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list provider services: %v", err))
	}

	return services, nil
}
