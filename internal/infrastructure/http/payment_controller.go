package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/payos"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/middleware"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/response"

	"github.com/go-chi/chi/v5"
)

// PaymentController handles HTTP requests for payment operations
type PaymentController struct {
	paymentService *services.PaymentService
	payOSService   *payos.Service
}

// NewPaymentController creates a new payment controller
func NewPaymentController(paymentService *services.PaymentService, payOSService *payos.Service) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		payOSService:   payOSService,
	}
}

// CreatePayment handles POST /payments
func (c *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreatePayment
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	// Customers always pay for their own bookings
	if userID := middleware.GetUserID(r.Context()); userID != "" {
		cmd.CustomerID = userID
	}

	payment, err := c.paymentService.CreatePayment(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, map[string]interface{}{
		"payment_id":   payment.ID(),
		"order_code":   payment.OrderCode(),
		"checkout_url": payment.CheckoutUrl(),
		"amount":       payment.Amount(),
		"status":       string(payment.Status()),
	})
}

// GetPayment handles GET /payments/{id}
func (c *PaymentController) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		response.SendBadRequest(w, r, "Payment ID is required")
		return
	}

	payment, err := c.paymentService.GetPayment(r.Context(), paymentID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, payment)
}

// ListMyPayments handles GET /payments
func (c *PaymentController) ListMyPayments(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	payments, err := c.paymentService.ListCustomerPayments(r.Context(), userID, offset, limit)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"payments": payments,
		"offset":   offset,
		"count":    len(payments),
	})
}

// GetProviderEarnings handles GET /providers/{providerID}/earnings
func (c *PaymentController) GetProviderEarnings(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		response.SendBadRequest(w, r, "Provider ID is required")
		return
	}

	earnings, err := c.paymentService.GetProviderEarnings(r.Context(), providerID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, earnings)
}

// CancelPayment handles PUT /payments/{orderCode}/cancel
func (c *PaymentController) CancelPayment(w http.ResponseWriter, r *http.Request) {
	orderCode, err := strconv.ParseInt(chi.URLParam(r, "orderCode"), 10, 64)
	if err != nil {
		response.SendBadRequest(w, r, "Invalid order code")
		return
	}

	var cancelReq struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&cancelReq); err != nil || cancelReq.Reason == "" {
		cancelReq.Reason = "Cancelled by user"
	}

	cmd := &command.CancelPayment{
		OrderCode: orderCode,
		Reason:    cancelReq.Reason,
	}
	if err := c.paymentService.CancelPayment(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}

// CheckPaymentStatus handles POST /payments/{orderCode}/check
//
// Pulls the payment state from PayOS and reconciles it locally. Useful when
// the webhook endpoint is not reachable, for example during local development.
func (c *PaymentController) CheckPaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderCode, err := strconv.ParseInt(chi.URLParam(r, "orderCode"), 10, 64)
	if err != nil {
		response.SendBadRequest(w, r, "Invalid order code")
		return
	}

	info, err := c.payOSService.GetPaymentLinkInformation(r.Context(), orderCode)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	switch payos.GetPaymentStatus(info.Data.Status) {
	case aggregate.PaymentStatusPaid:
		err = c.paymentService.CompletePayment(r.Context(), &command.CompletePayment{OrderCode: orderCode})
	case aggregate.PaymentStatusCancelled:
		err = c.paymentService.CancelPayment(r.Context(), &command.CancelPayment{OrderCode: orderCode, Reason: "Cancelled at PayOS"})
	case aggregate.PaymentStatusExpired:
		err = c.paymentService.ExpirePayment(r.Context(), &command.ExpirePayment{OrderCode: orderCode})
	}
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]string{"status": info.Data.Status})
}

// Webhook handles POST /payments/webhook from PayOS
func (c *PaymentController) Webhook(w http.ResponseWriter, r *http.Request) {
	// PayOS sends an unsigned probe while the webhook URL is being registered
	if r.Header.Get("x-signature") == "" {
		response.SendSuccess(w, r, map[string]string{"status": "ok"})
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.SendBadRequest(w, r, "Invalid webhook payload")
		return
	}

	webhookData, err := payos.CreateWebhookDataFromMap(payload)
	if err != nil {
		response.SendBadRequest(w, r, "Invalid webhook data format")
		return
	}

	verifiedData, err := c.payOSService.VerifyPaymentWebhookData(*webhookData)
	if err != nil {
		log.Printf("Webhook verification failed: %v", err)
		response.SendBadRequest(w, r, "Webhook verification failed")
		return
	}

	cmd := &command.CompletePayment{OrderCode: verifiedData.OrderCode}
	if err := c.paymentService.CompletePayment(r.Context(), cmd); err != nil {
		log.Printf("Webhook processing failed for order %d: %v", verifiedData.OrderCode, err)
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, nil)
}
