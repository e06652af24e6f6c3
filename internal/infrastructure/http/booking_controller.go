package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/response"

	"github.com/go-chi/chi/v5"
)

// BookingController handles HTTP requests for booking operations
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new booking controller
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking handles POST /bookings
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateBooking
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	// Customers always book for themselves
	if userID := middleware.GetUserID(r.Context()); userID != "" {
		cmd.CustomerID = userID
	}

	bookingID, err := c.bookingService.CreateBooking(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, map[string]string{"booking_id": bookingID})
}

// GetBooking handles GET /bookings/{id}
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	booking, err := c.bookingService.GetBooking(r.Context(), bookingID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, booking)
}

// ListMyBookings handles GET /bookings
func (c *BookingController) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	bookings, err := c.bookingService.ListCustomerBookings(r.Context(), userID, offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"bookings": bookings,
		"offset":   offset,
		"count":    len(bookings),
	})
}

// ListProviderBookings handles GET /providers/{providerID}/bookings
func (c *BookingController) ListProviderBookings(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		response.SendBadRequest(w, r, "Provider ID is required")
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	bookings, err := c.bookingService.ListProviderBookings(r.Context(), providerID, offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"bookings": bookings,
		"offset":   offset,
		"count":    len(bookings),
	})
}

// ListAllBookings handles GET /admin/bookings
func (c *BookingController) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	bookings, err := c.bookingService.ListBookings(r.Context(), offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"bookings": bookings,
		"offset":   offset,
		"count":    len(bookings),
	})
}

// ChangeBookingStatus handles PUT /bookings/{id}/status
func (c *BookingController) ChangeBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	var cmd command.ChangeBookingStatus
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.BookingID = bookingID

	if err := c.bookingService.ChangeBookingStatus(r.Context(), &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// RescheduleBooking handles PUT /bookings/{id}/reschedule
func (c *BookingController) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	var cmd command.RescheduleBooking
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.BookingID = bookingID

	if err := c.bookingService.RescheduleBooking(r.Context(), &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// CancelBooking handles POST /bookings/{id}/cancel
func (c *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	var cmd command.CancelBooking
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		// Reason is optional, an empty body is fine
		cmd = command.CancelBooking{}
	}
	cmd.BookingID = bookingID

	if err := c.bookingService.CancelBooking(r.Context(), &cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// CompleteBooking handles POST /bookings/{id}/complete
func (c *BookingController) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	cmd := &command.CompleteBooking{BookingID: bookingID}
	if err := c.bookingService.CompleteBooking(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}
