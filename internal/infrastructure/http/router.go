package http

import (
	"net/http"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/jwt"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// RouterConfig bundles the controllers and shared middleware dependencies
type RouterConfig struct {
	JWTManager *jwt.JWTManager

	Auth      *AuthController
	Users     *UserController
	Bookings  *BookingController
	Calendar  *CalendarController
	Services  *ServiceController
	Payments  *PaymentController
	Dashboard *DashboardController
}

// NewRouter builds the HTTP route tree with the shared middleware chain
func NewRouter(cfg *RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandler)
	r.Use(middleware.NewRateLimiter(100, time.Minute).Middleware)
	r.Use(middleware.TimeoutMiddleware(30 * time.Second))

	r.Get("/health", healthCheck)

	// Public routes
	r.Post("/auth/register", cfg.Auth.Register)
	r.Post("/auth/login", cfg.Auth.Login)
	r.Get("/services", cfg.Services.SearchServices)
	r.Get("/services/{id}", cfg.Services.GetService)
	r.Get("/providers/{providerID}/services", cfg.Services.ListProviderServices)
	r.Post("/payments/webhook", cfg.Payments.Webhook)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(cfg.JWTManager))

		r.Get("/users/me", cfg.Users.GetMe)
		r.Put("/users/me", cfg.Users.UpdateProfile)
		r.Put("/users/me/password", cfg.Users.ChangePassword)

		r.Get("/bookings/calendar", cfg.Calendar.GetBookingCalendar)
		r.Get("/bookings", cfg.Bookings.ListMyBookings)
		r.Get("/bookings/{id}", cfg.Bookings.GetBooking)
		r.Post("/bookings/{id}/cancel", cfg.Bookings.CancelBooking)

		r.Get("/payments", cfg.Payments.ListMyPayments)
		r.Get("/payments/{id}", cfg.Payments.GetPayment)
		r.Put("/payments/{orderCode}/cancel", cfg.Payments.CancelPayment)
		r.Post("/payments/{orderCode}/check", cfg.Payments.CheckPaymentStatus)

		// Customer routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCustomer)

			r.Post("/bookings", cfg.Bookings.CreateBooking)
			r.Put("/bookings/{id}/reschedule", cfg.Bookings.RescheduleBooking)
			r.Post("/payments", cfg.Payments.CreatePayment)
		})

		// Provider routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireProvider)

			r.Post("/services", cfg.Services.CreateService)
			r.Put("/services/{id}", cfg.Services.UpdateService)
			r.Post("/services/{id}/image", cfg.Services.UploadServiceImage)
			r.Delete("/services/{id}", cfg.Services.DeactivateService)

			r.Get("/providers/{providerID}/bookings", cfg.Bookings.ListProviderBookings)
			r.Get("/providers/{providerID}/earnings", cfg.Payments.GetProviderEarnings)
			r.Put("/bookings/{id}/status", cfg.Bookings.ChangeBookingStatus)
			r.Post("/bookings/{id}/complete", cfg.Bookings.CompleteBooking)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/admin/dashboard", cfg.Dashboard.GetDashboard)
			r.Get("/admin/users", cfg.Users.ListUsers)
			r.Get("/admin/users/{id}", cfg.Users.GetUser)
			r.Delete("/admin/users/{id}", cfg.Users.DeactivateUser)
			r.Get("/admin/bookings", cfg.Bookings.ListAllBookings)
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"sewabazaar"}`))
}
