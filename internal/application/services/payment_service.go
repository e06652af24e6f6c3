package services

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
)

// PaymentService handles payment operations
type PaymentService struct {
	createPaymentHandler    *command.CreatePaymentWithUoWHandler
	completePaymentHandler  *command.CompletePaymentWithUoWHandler
	cancelPaymentHandler    *command.CancelPaymentWithUoWHandler
	expirePaymentHandler    *command.ExpirePaymentWithUoWHandler
	getPaymentHandler       *query.GetPaymentHandler
	listCustomerHandler     *query.ListCustomerPaymentsHandler
	providerEarningsHandler *query.GetProviderEarningsHandler
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	createPaymentHandler *command.CreatePaymentWithUoWHandler,
	completePaymentHandler *command.CompletePaymentWithUoWHandler,
	cancelPaymentHandler *command.CancelPaymentWithUoWHandler,
	expirePaymentHandler *command.ExpirePaymentWithUoWHandler,
	getPaymentHandler *query.GetPaymentHandler,
	listCustomerHandler *query.ListCustomerPaymentsHandler,
	providerEarningsHandler *query.GetProviderEarningsHandler,
) *PaymentService {
	return &PaymentService{
		createPaymentHandler:    createPaymentHandler,
		completePaymentHandler:  completePaymentHandler,
		cancelPaymentHandler:    cancelPaymentHandler,
		expirePaymentHandler:    expirePaymentHandler,
		getPaymentHandler:       getPaymentHandler,
		listCustomerHandler:     listCustomerHandler,
		providerEarningsHandler: providerEarningsHandler,
	}
}

// CreatePayment creates a payment link for a booking
func (s *PaymentService) CreatePayment(ctx context.Context, cmd *command.CreatePayment) (*aggregate.Payment, error) {
	return s.createPaymentHandler.Handle(ctx, cmd)
}

// CompletePayment marks a payment as paid
func (s *PaymentService) CompletePayment(ctx context.Context, cmd *command.CompletePayment) error {
	return s.completePaymentHandler.Handle(ctx, cmd)
}

// CancelPayment cancels a pending payment
func (s *PaymentService) CancelPayment(ctx context.Context, cmd *command.CancelPayment) error {
	return s.cancelPaymentHandler.Handle(ctx, cmd)
}

// ExpirePayment expires a stale pending payment
func (s *PaymentService) ExpirePayment(ctx context.Context, cmd *command.ExpirePayment) error {
	return s.expirePaymentHandler.Handle(ctx, cmd)
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*projection.PaymentReadModel, error) {
	return s.getPaymentHandler.Handle(ctx, paymentID)
}

// ListCustomerPayments retrieves payments made by a customer
func (s *PaymentService) ListCustomerPayments(ctx context.Context, customerID string, offset, limit int) ([]projection.PaymentReadModel, error) {
	return s.listCustomerHandler.Handle(ctx, customerID, offset, limit)
}

// GetProviderEarnings aggregates a provider's paid amounts
func (s *PaymentService) GetProviderEarnings(ctx context.Context, providerID string) (*projection.ProviderEarnings, error) {
	return s.providerEarningsHandler.Handle(ctx, providerID)
}
