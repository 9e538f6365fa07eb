package dto

import "time"

type CheckoutRequest struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"` // decimal currency units
	Quantity    int64   `json:"quantity" validate:"required,min=1"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type VerifyPaymentResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Message     string `json:"message"`
}

// ResendConfirmationRequest.OrderID carries the customer-facing order
// number, matching what the confirmation email shows the buyer.
type ResendConfirmationRequest struct {
	Email   string `json:"email" validate:"required,email"`
	OrderID string `json:"orderId" validate:"required"`
}

type ResendConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OrderSummary struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SearchOrdersResponse struct {
	Orders []*OrderSummary `json:"orders"`
}
