package services

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
)

// CatalogService handles service catalog operations
type CatalogService struct {
	createServiceHandler      *command.CreateServiceWithUoWHandler
	updateServiceHandler      *command.UpdateServiceWithUoWHandler
	updateServiceImageHandler *command.UpdateServiceImageWithUoWHandler
	deactivateServiceHandler  *command.DeactivateServiceWithUoWHandler
	getServiceHandler         *query.GetServiceHandler
	searchServicesHandler     *query.SearchServicesHandler
	listProviderHandler       *query.ListProviderServicesHandler
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	createServiceHandler *command.CreateServiceWithUoWHandler,
	updateServiceHandler *command.UpdateServiceWithUoWHandler,
	updateServiceImageHandler *command.UpdateServiceImageWithUoWHandler,
	deactivateServiceHandler *command.DeactivateServiceWithUoWHandler,
	getServiceHandler *query.GetServiceHandler,
	searchServicesHandler *query.SearchServicesHandler,
	listProviderHandler *query.ListProviderServicesHandler,
) *CatalogService {
	return &CatalogService{
		createServiceHandler:      createServiceHandler,
		updateServiceHandler:      updateServiceHandler,
		updateServiceImageHandler: updateServiceImageHandler,
		deactivateServiceHandler:  deactivateServiceHandler,
		getServiceHandler:         getServiceHandler,
		searchServicesHandler:     searchServicesHandler,
		listProviderHandler:       listProviderHandler,
	}
}

// CreateService creates a new catalog listing and returns its ID
func (s *CatalogService) CreateService(ctx context.Context, cmd *command.CreateService) (string, error) {
	return s.createServiceHandler.Handle(ctx, cmd)
}

// UpdateService updates a catalog listing
func (s *CatalogService) UpdateService(ctx context.Context, cmd *command.UpdateService) error {
	return s.updateServiceHandler.Handle(ctx, cmd)
}

// UpdateServiceImage sets a new listing image
func (s *CatalogService) UpdateServiceImage(ctx context.Context, cmd *command.UpdateServiceImage) error {
	return s.updateServiceImageHandler.Handle(ctx, cmd)
}

// DeactivateService removes a listing from the catalog
func (s *CatalogService) DeactivateService(ctx context.Context, cmd *command.DeactivateService) error {
	return s.deactivateServiceHandler.Handle(ctx, cmd)
}

// GetService retrieves a listing by ID
func (s *CatalogService) GetService(ctx context.Context, serviceID string) (*projection.ServiceReadModel, error) {
	return s.getServiceHandler.Handle(ctx, serviceID)
}

// SearchServices searches the catalog by category and city
func (s *CatalogService) SearchServices(ctx context.Context, category, city string, offset, limit int) ([]projection.ServiceReadModel, error) {
	return s.searchServicesHandler.Handle(ctx, category, city, offset, limit)
}

// ListProviderServices retrieves a provider's listings
func (s *CatalogService) ListProviderServices(ctx context.Context, providerID string, offset, limit int) ([]projection.ServiceReadModel, error) {
	return s.listProviderHandler.Handle(ctx, providerID, offset, limit)
}
