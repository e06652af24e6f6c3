package query

import (
	"context"
	"fmt"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// AdminDashboardResult contains marketplace-wide statistics for the admin view
type AdminDashboardResult struct {
	UsersByRole      map[string]int64 `json:"users_by_role"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	ActiveServices   int64            `json:"active_services"`
	TotalRevenue     int64            `json:"total_revenue"`
}

// GetAdminDashboardHandler aggregates read models into the admin dashboard
type GetAdminDashboardHandler struct {
	users    UserProjection
	bookings BookingProjection
	services ServiceProjection
	payments PaymentProjection
}

// NewGetAdminDashboardHandler creates a new admin dashboard handler
func NewGetAdminDashboardHandler(
	users UserProjection,
	bookings BookingProjection,
	services ServiceProjection,
	payments PaymentProjection,
) *GetAdminDashboardHandler {
	return &GetAdminDashboardHandler{
		users:    users,
		bookings: bookings,
		services: services,
		payments: payments,
	}
}

// Handle processes the admin dashboard query
func (h *GetAdminDashboardHandler) Handle(ctx context.Context) (*AdminDashboardResult, error) {
	usersByRole, err := h.users.CountByRole(ctx)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to count users: %v", err))
	}

	bookingsByStatus, err := h.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to count bookings: %v", err))
	}

	activeServices, err := h.services.Count(ctx)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to count services: %v", err))
	}

	totalRevenue, err := h.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to total revenue: %v", err))
	}

	return &AdminDashboardResult{
		UsersByRole:      usersByRole,
		BookingsByStatus: bookingsByStatus,
		ActiveServices:   activeServices,
		TotalRevenue:     totalRevenue,
	}, nil
}
