package query

import (
	"context"
	"fmt"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// PaymentProjection interface for the payment read model
type PaymentProjection interface {
	GetByID(ctx context.Context, id string) (*projection.PaymentReadModel, error)
	GetByOrderCode(ctx context.Context, orderCode int64) (*projection.PaymentReadModel, error)
	GetByBookingID(ctx context.Context, bookingID string) ([]projection.PaymentReadModel, error)
	GetByCustomerID(ctx context.Context, customerID string, offset, limit int) ([]projection.PaymentReadModel, error)
	GetProviderEarnings(ctx context.Context, providerID string) (*projection.ProviderEarnings, error)
	TotalRevenue(ctx context.Context) (int64, error)
}

// GetPaymentHandler handles get payment by ID queries
type GetPaymentHandler struct {
	projection PaymentProjection
}

// NewGetPaymentHandler creates a new get payment handler
func NewGetPaymentHandler(projection PaymentProjection) *GetPaymentHandler {
	return &GetPaymentHandler{
		projection: projection,
	}
}

// Handle processes the get payment query
func (h *GetPaymentHandler) Handle(ctx context.Context, paymentID string) (*projection.PaymentReadModel, error) {
	if paymentID == "" {
		return nil, errors.NewValidationError("payment_id is required")
	}

	payment, err := h.projection.GetByID(ctx, paymentID)
	if err != nil {
		return nil, errors.NewNotFoundError("payment")
	}

	return payment, nil
}

// ListCustomerPaymentsHandler handles listing a customer's payments
type ListCustomerPaymentsHandler struct {
	projection PaymentProjection
}

// NewListCustomerPaymentsHandler creates a new list customer payments handler
func NewListCustomerPaymentsHandler(projection PaymentProjection) *ListCustomerPaymentsHandler {
	return &ListCustomerPaymentsHandler{
		projection: projection,
	}
}

// Handle processes the list customer payments query
func (h *ListCustomerPaymentsHandler) Handle(ctx context.Context, customerID string, offset, limit int) ([]projection.PaymentReadModel, error) {
	if customerID == "" {
		return nil, errors.NewValidationError("customer_id is required")
	}

	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	payments, err := h.projection.GetByCustomerID(ctx, customerID, offset, limit)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list customer payments: %v", err))
	}

	return payments, nil
}

// GetProviderEarningsHandler handles provider earnings queries
type GetProviderEarningsHandler struct {
	projection PaymentProjection
}

// NewGetProviderEarningsHandler creates a new provider earnings handler
func NewGetProviderEarningsHandler(projection PaymentProjection) *GetProviderEarningsHandler {
	return &GetProviderEarningsHandler{
		projection: projection,
	}
}

// Handle processes the provider earnings query
func (h *GetProviderEarningsHandler) Handle(ctx context.Context, providerID string) (*projection.ProviderEarnings, error) {
	if providerID == "" {
		return nil, errors.NewValidationError("provider_id is required")
	}

	earnings, err := h.projection.GetProviderEarnings(ctx, providerID)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to load provider earnings: %v", err))
	}

	return earnings, nil
}
