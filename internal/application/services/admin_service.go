package services

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
)

// AdminService exposes platform wide aggregates for the admin dashboard
type AdminService struct {
	dashboardHandler *query.GetAdminDashboardHandler
}

// NewAdminService creates a new admin service
func NewAdminService(dashboardHandler *query.GetAdminDashboardHandler) *AdminService {
	return &AdminService{
		dashboardHandler: dashboardHandler,
	}
}

// GetDashboard collects platform counters and revenue totals
func (s *AdminService) GetDashboard(ctx context.Context) (*query.AdminDashboardResult, error) {
	return s.dashboardHandler.Handle(ctx)
}
