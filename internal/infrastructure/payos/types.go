package payos

// PaymentItem represents an item in the payment request
type PaymentItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// CreatePaymentRequest represents the payment creation request
type CreatePaymentRequest struct {
	OrderCode   int64         `json:"orderCode"`
	Amount      int           `json:"amount"`
	Description string        `json:"description"`
	Items       []PaymentItem `json:"items"`
	ReturnURL   string        `json:"returnUrl"`
	CancelURL   string        `json:"cancelUrl"`
}

// CreatePaymentResponse represents the payment creation response
type CreatePaymentResponse struct {
	Code    string      `json:"code"`
	Desc    string      `json:"desc"`
	Data    PaymentData `json:"data"`
	Success bool        `json:"success"`
}

// PaymentData represents the payment data in the response
type PaymentData struct {
	Bin           string `json:"bin"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Amount        int    `json:"amount"`
	Description   string `json:"description"`
	OrderCode     int64  `json:"orderCode"`
	Currency      string `json:"currency"`
	PaymentLinkId string `json:"paymentLinkId"`
	Status        string `json:"status"`
	CheckoutUrl   string `json:"checkoutUrl"`
	QrCode        string `json:"qrCode"`
}

// PaymentInfoResponse represents the payment info response
type PaymentInfoResponse struct {
	Code    string          `json:"code"`
	Desc    string          `json:"desc"`
	Data    PaymentInfoData `json:"data"`
	Success bool            `json:"success"`
}

// PaymentInfoData represents the payment info data
type PaymentInfoData struct {
	OrderCode       int64                `json:"orderCode"`
	Amount          int                  `json:"amount"`
	AmountPaid      int                  `json:"amountPaid"`
	AmountRemaining int                  `json:"amountRemaining"`
	Status          string               `json:"status"`
	CreatedAt       string               `json:"createdAt"`
	Transactions    []PaymentTransaction `json:"transactions"`
}

// PaymentTransaction represents a payment transaction
type PaymentTransaction struct {
	Reference           string `json:"reference"`
	Amount              int    `json:"amount"`
	AccountNumber       string `json:"accountNumber"`
	Description         string `json:"description"`
	TransactionDateTime string `json:"transactionDateTime"`
}
