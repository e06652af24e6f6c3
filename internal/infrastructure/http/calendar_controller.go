package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/response"
)

// CalendarController serves the booking month view for dashboard clients
type CalendarController struct {
	calendarService *services.CalendarService
}

// NewCalendarController creates a new calendar controller
func NewCalendarController(calendarService *services.CalendarService) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
	}
}

// GetBookingCalendar handles GET /bookings/calendar
//
// Query parameters: year, month (default to the current month), statuses
// (comma separated), selected_date (YYYY-MM-DD) and, for admins, customer_id
// or provider_id. Customers and providers are scoped to their own bookings.
func (c *CalendarController) GetBookingCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	year := now.Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.SendBadRequest(w, r, "Invalid year")
			return
		}
		year = parsed
	}

	month := int(now.Month())
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.SendBadRequest(w, r, "Invalid month")
			return
		}
		month = parsed
	}

	var statuses []string
	if v := r.URL.Query().Get("statuses"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	q := &query.GetBookingCalendar{
		Year:         year,
		Month:        month,
		Statuses:     statuses,
		SelectedDate: r.URL.Query().Get("selected_date"),
	}

	// Scope the view by role
	role, _ := middleware.GetUserRole(r.Context())
	switch role {
	case aggregate.RoleAdmin:
		q.CustomerID = r.URL.Query().Get("customer_id")
		q.ProviderID = r.URL.Query().Get("provider_id")
	case aggregate.RoleProvider:
		q.ProviderID = middleware.GetUserID(r.Context())
	default:
		q.CustomerID = middleware.GetUserID(r.Context())
	}

	result, err := c.calendarService.GetBookingCalendar(r.Context(), q)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, result)
}
