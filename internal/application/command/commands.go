package command

// Booking commands

type BookingCustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BookingProviderInfo struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	Phone string `json:"phone"`
}

type BookedServiceInfo struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type CreateBooking struct {
	CustomerID  string              `json:"customer_id"`
	ProviderID  string              `json:"provider_id"`
	ServiceID   string              `json:"service_id"`
	Customer    BookingCustomerInfo `json:"customer"`
	Provider    BookingProviderInfo `json:"provider"`
	Service     BookedServiceInfo   `json:"service"`
	ServiceDate string              `json:"service_date"`
	BookingTime string              `json:"booking_time"`
	Note        string              `json:"note"`
}

type ChangeBookingStatus struct {
	BookingID string `json:"booking_id"`
	NewStatus string `json:"new_status"`
}

type RescheduleBooking struct {
	BookingID   string `json:"booking_id"`
	ServiceDate string `json:"service_date"`
	BookingTime string `json:"booking_time"`
}

type CancelBooking struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason"`
}

type CompleteBooking struct {
	BookingID string `json:"booking_id"`
}

// User commands

type RegisterUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserProfile struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ChangeUserPassword struct {
	UserID      string `json:"user_id"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type DeactivateUser struct {
	UserID string `json:"user_id"`
}

// Service catalog commands

type CreateService struct {
	ProviderID  string  `json:"provider_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	City        string  `json:"city"`
	ImageUrl    string  `json:"image_url"`
}

type UpdateService struct {
	ServiceID   string  `json:"service_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	City        string  `json:"city"`
}

type UpdateServiceImage struct {
	ServiceID string `json:"service_id"`
	ImageUrl  string `json:"image_url"`
}

type DeactivateService struct {
	ServiceID string `json:"service_id"`
}

// Payment commands

type CreatePayment struct {
	BookingID   string `json:"booking_id"`
	CustomerID  string `json:"customer_id"`
	ProviderID  string `json:"provider_id"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

type CompletePayment struct {
	OrderCode int64 `json:"order_code"`
}

type CancelPayment struct {
	OrderCode int64  `json:"order_code"`
	Reason    string `json:"reason"`
}

type ExpirePayment struct {
	OrderCode int64 `json:"order_code"`
}
