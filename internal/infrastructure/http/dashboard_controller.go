package http

import (
	"net/http"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/response"
)

// DashboardController handles the admin dashboard endpoint
type DashboardController struct {
	adminService *services.AdminService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(adminService *services.AdminService) *DashboardController {
	return &DashboardController{
		adminService: adminService,
	}
}

// GetDashboard handles GET /admin/dashboard
func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := c.adminService.GetDashboard(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, result)
}
