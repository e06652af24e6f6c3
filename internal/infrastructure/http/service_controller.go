package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/cloudinary"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/response"

	"github.com/go-chi/chi/v5"
)

// maxImageUploadSize caps listing image uploads at 10 MB
const maxImageUploadSize = 10 << 20

// ServiceController handles HTTP requests for the service catalog
type ServiceController struct {
	catalogService    *services.CatalogService
	cloudinaryService *cloudinary.Service
}

// NewServiceController creates a new service catalog controller
func NewServiceController(catalogService *services.CatalogService, cloudinaryService *cloudinary.Service) *ServiceController {
	return &ServiceController{
		catalogService:    catalogService,
		cloudinaryService: cloudinaryService,
	}
}

// CreateService handles POST /services
func (c *ServiceController) CreateService(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateService
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	// Providers always create listings under their own account
	if userID := middleware.GetUserID(r.Context()); userID != "" {
		cmd.ProviderID = userID
	}

	serviceID, err := c.catalogService.CreateService(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, map[string]string{"service_id": serviceID})
}

// GetService handles GET /services/{id}
func (c *ServiceController) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		response.SendBadRequest(w, r, "Service ID is required")
		return
	}

	service, err := c.catalogService.GetService(r.Context(), serviceID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, service)
}

// SearchServices handles GET /services
func (c *ServiceController) SearchServices(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	city := r.URL.Query().Get("city")
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := c.catalogService.SearchServices(r.Context(), category, city, offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"services": results,
		"offset":   offset,
		"count":    len(results),
	})
}

// ListProviderServices handles GET /providers/{providerID}/services
func (c *ServiceController) ListProviderServices(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		response.SendBadRequest(w, r, "Provider ID is required")
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := c.catalogService.ListProviderServices(r.Context(), providerID, offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"services": results,
		"offset":   offset,
		"count":    len(results),
	})
}

// UpdateService handles PUT /services/{id}
func (c *ServiceController) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		response.SendBadRequest(w, r, "Service ID is required")
		return
	}

	var cmd command.UpdateService
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.ServiceID = serviceID

	if err := c.catalogService.UpdateService(r.Context(), &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// UploadServiceImage handles POST /services/{id}/image
//
// Accepts a multipart form with an "image" file field, stores the file in
// Cloudinary and records the delivered URL on the listing.
func (c *ServiceController) UploadServiceImage(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		response.SendBadRequest(w, r, "Service ID is required")
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		response.SendBadRequest(w, r, "Invalid multipart form")
		return
	}

	_, fileHeader, err := r.FormFile("image")
	if err != nil {
		response.SendBadRequest(w, r, "Image file is required")
		return
	}

	uploadResult, err := c.cloudinaryService.UploadMultipartFile(r.Context(), fileHeader, &cloudinary.UploadOptions{
		Folder:   "services",
		PublicID: serviceID,
	})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	cmd := &command.UpdateServiceImage{
		ServiceID: serviceID,
		ImageUrl:  uploadResult.SecureURL,
	}
	if err := c.catalogService.UpdateServiceImage(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]string{"image_url": uploadResult.SecureURL})
}

// DeactivateService handles DELETE /services/{id}
func (c *ServiceController) DeactivateService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		response.SendBadRequest(w, r, "Service ID is required")
		return
	}

	cmd := &command.DeactivateService{ServiceID: serviceID}
	if err := c.catalogService.DeactivateService(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}
