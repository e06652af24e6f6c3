package payos

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/aggregate"

	payossdk "github.com/payOSHQ/payos-lib-golang"
)

// Service wraps the official PayOS SDK
type Service struct {
	initialized bool
	config      *Config
}

// Config holds the configuration for PayOS integration
type Config struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	PartnerCode string
	ReturnURL   string
	CancelURL   string
}

// NewService creates a new PayOS service with the official SDK
func NewService(config *Config) (*Service, error) {
	if config.ClientID == "" {
		return nil, fmt.Errorf("PAYOS_CLIENT_ID is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("PAYOS_API_KEY is required")
	}
	if config.ChecksumKey == "" {
		return nil, fmt.Errorf("PAYOS_CHECKSUM_KEY is required")
	}

	var err error
	if config.PartnerCode != "" {
		err = payossdk.Key(config.ClientID, config.APIKey, config.ChecksumKey, config.PartnerCode)
	} else {
		err = payossdk.Key(config.ClientID, config.APIKey, config.ChecksumKey)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to initialize PayOS: %w", err)
	}

	return &Service{
		initialized: true,
		config:      config,
	}, nil
}

// CreatePaymentLink creates a new payment link using the official SDK
func (s *Service) CreatePaymentLink(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResponse, error) {
	if !s.initialized {
		return nil, fmt.Errorf("PayOS service not initialized")
	}

	if req.ReturnURL == "" {
		req.ReturnURL = s.config.ReturnURL
	}
	if req.CancelURL == "" {
		req.CancelURL = s.config.CancelURL
	}

	var items []payossdk.Item
	for _, item := range req.Items {
		items = append(items, payossdk.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	paymentRequest := payossdk.CheckoutRequestType{
		OrderCode:   req.OrderCode,
		Amount:      req.Amount,
		Description: req.Description,
		Items:       items,
		ReturnUrl:   req.ReturnURL,
		CancelUrl:   req.CancelURL,
	}

	response, err := payossdk.CreatePaymentLink(paymentRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	return &CreatePaymentResponse{
		Code:    "00",
		Desc:    "success",
		Success: true,
		Data: PaymentData{
			Bin:           response.Bin,
			AccountNumber: response.AccountNumber,
			AccountName:   response.AccountName,
			Amount:        response.Amount,
			Description:   response.Description,
			OrderCode:     response.OrderCode,
			Currency:      response.Currency,
			PaymentLinkId: response.PaymentLinkId,
			Status:        response.Status,
			CheckoutUrl:   response.CheckoutUrl,
			QrCode:        response.QRCode,
		},
	}, nil
}

// GetPaymentLinkInformation retrieves payment information
func (s *Service) GetPaymentLinkInformation(ctx context.Context, orderCode int64) (*PaymentInfoResponse, error) {
	if !s.initialized {
		return nil, fmt.Errorf("PayOS service not initialized")
	}

	orderCodeStr := strconv.FormatInt(orderCode, 10)
	response, err := payossdk.GetPaymentLinkInformation(orderCodeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment information: %w", err)
	}

	return &PaymentInfoResponse{
		Code:    "00",
		Desc:    "success",
		Success: true,
		Data: PaymentInfoData{
			OrderCode:       response.OrderCode,
			Amount:          response.Amount,
			AmountPaid:      response.AmountPaid,
			AmountRemaining: response.AmountRemaining,
			Status:          response.Status,
			CreatedAt:       response.CreateAt,
			Transactions:    []PaymentTransaction{},
		},
	}, nil
}

// CancelPaymentLink cancels a payment link
func (s *Service) CancelPaymentLink(ctx context.Context, orderCode int64, cancelReason string) error {
	if !s.initialized {
		return fmt.Errorf("PayOS service not initialized")
	}

	orderCodeStr := strconv.FormatInt(orderCode, 10)
	if _, err := payossdk.CancelPaymentLink(orderCodeStr, &cancelReason); err != nil {
		return fmt.Errorf("failed to cancel payment link: %w", err)
	}

	return nil
}

// VerifyPaymentWebhookData verifies webhook data signature
func (s *Service) VerifyPaymentWebhookData(webhookData payossdk.WebhookType) (*payossdk.WebhookDataType, error) {
	if !s.initialized {
		return nil, fmt.Errorf("PayOS service not initialized")
	}

	verifiedData, err := payossdk.VerifyPaymentWebhookData(webhookData)
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook data: %w", err)
	}

	return verifiedData, nil
}

// GetPaymentStatus maps PayOS status to our internal status
func GetPaymentStatus(payosStatus string) aggregate.PaymentStatus {
	switch payosStatus {
	case "PAID":
		return aggregate.PaymentStatusPaid
	case "CANCELLED":
		return aggregate.PaymentStatusCancelled
	case "EXPIRED":
		return aggregate.PaymentStatusExpired
	default:
		return aggregate.PaymentStatusPending
	}
}

// CreateWebhookDataFromMap rebuilds the SDK webhook type from a decoded JSON body
func CreateWebhookDataFromMap(data map[string]interface{}) (*payossdk.WebhookType, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	webhookType := &payossdk.WebhookType{}
	if err := json.Unmarshal(raw, webhookType); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	return webhookType, nil
}
