package command

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/repository"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/bus"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/payos"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/errors"
)

// CreatePaymentWithUoWHandler creates a payment link and records the payment
type CreatePaymentWithUoWHandler struct {
	uowFactory   repository.UnitOfWorkFactory
	eventBus     bus.EventBus
	payosService *payos.Service
}

// NewCreatePaymentWithUoWHandler creates a new create payment handler with UoW
func NewCreatePaymentWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	payosService *payos.Service,
) *CreatePaymentWithUoWHandler {
	return &CreatePaymentWithUoWHandler{
		uowFactory:   uowFactory,
		eventBus:     eventBus,
		payosService: payosService,
	}
}

// Handle processes the create payment command
func (h *CreatePaymentWithUoWHandler) Handle(ctx context.Context, cmd *CreatePayment) (*aggregate.Payment, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return nil, errors.NewValidationError("booking_id is required")
	}
	if cmd.CustomerID == "" {
		return nil, errors.NewValidationError("customer_id is required")
	}
	if cmd.Amount <= 0 {
		return nil, errors.NewValidationError("amount must be positive")
	}

	// Order codes must be unique per gateway account
	orderCode := time.Now().UnixNano() / int64(time.Millisecond)

	linkResp, err := h.payosService.CreatePaymentLink(ctx, &payos.CreatePaymentRequest{
		OrderCode:   orderCode,
		Amount:      cmd.Amount,
		Description: cmd.Description,
		Items: []payos.PaymentItem{
			{Name: cmd.Description, Quantity: 1, Price: cmd.Amount},
		},
	})
	if err != nil {
		return nil, errors.NewServiceUnavailableError(fmt.Sprintf("failed to create payment link: %v", err))
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	payment, err := aggregate.NewPayment(cmd.BookingID, cmd.CustomerID, cmd.ProviderID, orderCode, cmd.Amount, cmd.Description, linkResp.Data.CheckoutUrl)
	if err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create payment: %v", err))
	}

	events := payment.GetUncommittedEvents()

	paymentRepo := uow.PaymentRepository()
	if err := paymentRepo.Save(ctx, payment); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewInternalError(fmt.Sprintf("failed to save payment: %v", err))
	}

	if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish payment events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return payment, nil
}

// CompletePaymentWithUoWHandler marks a payment as paid and confirms its booking
type CompletePaymentWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewCompletePaymentWithUoWHandler creates a new complete payment handler with UoW
func NewCompletePaymentWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *CompletePaymentWithUoWHandler {
	return &CompletePaymentWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the complete payment command
func (h *CompletePaymentWithUoWHandler) Handle(ctx context.Context, cmd *CompletePayment) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.OrderCode == 0 {
		return errors.NewValidationError("order_code is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	paymentRepo := uow.PaymentRepository()
	payment, err := paymentRepo.GetByOrderCode(ctx, cmd.OrderCode)
	if err != nil {
		uow.Rollback(ctx)
		return errors.NewNotFoundError(fmt.Sprintf("payment not found for order code %d", cmd.OrderCode))
	}

	if err := payment.Complete(); err != nil {
		uow.Rollback(ctx)
		return errors.NewConflictError(err.Error())
	}

	events := payment.GetUncommittedEvents()

	if err := paymentRepo.Save(ctx, payment); err != nil {
		uow.Rollback(ctx)
		return errors.NewInternalError(fmt.Sprintf("failed to save payment: %v", err))
	}

	// A paid booking moves to confirmed when the lifecycle allows it
	bookingRepo := uow.BookingRepository()
	if booking, err := bookingRepo.GetByID(ctx, payment.BookingID()); err == nil {
		if err := booking.Confirm(); err == nil {
			events = append(events, booking.GetUncommittedEvents()...)
			if err := bookingRepo.Save(ctx, booking); err != nil {
				uow.Rollback(ctx)
				return errors.NewInternalError(fmt.Sprintf("failed to confirm booking: %v", err))
			}
		}
	}

	if err := h.eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish payment events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return nil
}

// CancelPaymentWithUoWHandler cancels a pending payment
type CancelPaymentWithUoWHandler struct {
	uowFactory   repository.UnitOfWorkFactory
	eventBus     bus.EventBus
	payosService *payos.Service
}

// NewCancelPaymentWithUoWHandler creates a new cancel payment handler with UoW
func NewCancelPaymentWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	payosService *payos.Service,
) *CancelPaymentWithUoWHandler {
	return &CancelPaymentWithUoWHandler{
		uowFactory:   uowFactory,
		eventBus:     eventBus,
		payosService: payosService,
	}
}

// Handle processes the cancel payment command
func (h *CancelPaymentWithUoWHandler) Handle(ctx context.Context, cmd *CancelPayment) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.OrderCode == 0 {
		return errors.NewValidationError("order_code is required")
	}

	if err := h.payosService.CancelPaymentLink(ctx, cmd.OrderCode, cmd.Reason); err != nil {
		log.Printf("Warning: failed to cancel payment link %d: %v", cmd.OrderCode, err)
	}

	return mutatePayment(ctx, h.uowFactory, h.eventBus, cmd.OrderCode, func(payment *aggregate.Payment) error {
		return payment.Cancel(cmd.Reason)
	})
}

// ExpirePaymentWithUoWHandler expires a stale pending payment
type ExpirePaymentWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewExpirePaymentWithUoWHandler creates a new expire payment handler with UoW
func NewExpirePaymentWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *ExpirePaymentWithUoWHandler {
	return &ExpirePaymentWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the expire payment command
func (h *ExpirePaymentWithUoWHandler) Handle(ctx context.Context, cmd *ExpirePayment) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.OrderCode == 0 {
		return errors.NewValidationError("order_code is required")
	}

	return mutatePayment(ctx, h.uowFactory, h.eventBus, cmd.OrderCode, func(payment *aggregate.Payment) error {
		return payment.Expire()
	})
}

func mutatePayment(ctx context.Context, uowFactory repository.UnitOfWorkFactory, eventBus bus.EventBus, orderCode int64, mutate func(*aggregate.Payment) error) error {
	uow := uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	paymentRepo := uow.PaymentRepository()
	payment, err := paymentRepo.GetByOrderCode(ctx, orderCode)
	if err != nil {
		uow.Rollback(ctx)
		return errors.NewNotFoundError(fmt.Sprintf("payment not found for order code %d", orderCode))
	}

	if err := mutate(payment); err != nil {
		uow.Rollback(ctx)
		return errors.NewConflictError(err.Error())
	}

	events := payment.GetUncommittedEvents()

	if err := paymentRepo.Save(ctx, payment); err != nil {
		uow.Rollback(ctx)
		return errors.NewInternalError(fmt.Sprintf("failed to save payment: %v", err))
	}

	if err := eventBus.PublishBatch(ctx, events); err != nil {
		log.Printf("Warning: failed to publish payment events: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return nil
}
