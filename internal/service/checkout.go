package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Malshan20/studyforge/internal/client"
	"github.com/Malshan20/studyforge/internal/dto"
	"github.com/Malshan20/studyforge/internal/model"
	"github.com/Malshan20/studyforge/internal/repository"
)

var (
	ErrSessionNotFound           = errors.New("session not found")
	ErrPaymentNotCompleted       = errors.New("payment not completed")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrOrderNotFound             = errors.New("order not found")
)

// Fallbacks when a checkout session carries no product metadata.
const (
	defaultProductID   = "digital-planner"
	defaultProductName = "Digital Study Planner & Journal"
	defaultCurrency    = "usd"
)

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	SearchOrders(ctx context.Context, email string) ([]*dto.OrderSummary, error)
	ResendConfirmation(ctx context.Context, req *dto.ResendConfirmationRequest) (*dto.ResendConfirmationResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient   client.StripeClient
	emailClient    client.EmailClient
	orderRepo      repository.OrderRepository
	serviceBaseUrl string
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	emailClient client.EmailClient,
	orderRepo repository.OrderRepository,
	serviceBaseUrl string,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient:   stripeClient,
		emailClient:    emailClient,
		orderRepo:      orderRepo,
		serviceBaseUrl: serviceBaseUrl,
	}
}

func (s *checkoutServiceImpl) CreateCheckoutSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	// price arrives in decimal currency units; Stripe wants integer cents
	unitAmount := decimal.NewFromFloat(req.Price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionParams{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		UnitAmount:  unitAmount,
		Quantity:    req.Quantity,
		Currency:    defaultCurrency,
		SuccessURL:  s.serviceBaseUrl + "/success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.serviceBaseUrl + "/",
	})
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return &dto.CheckoutResponse{URL: session.URL}, nil
}

func (s *checkoutServiceImpl) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	session, err := s.stripeClient.GetCheckoutSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, client.ErrStripeNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("stripe retrieve session: %w", err)
	}

	if session.PaymentStatus != "paid" {
		return nil, ErrPaymentNotCompleted
	}

	intent, err := s.stripeClient.GetPaymentIntent(ctx, session.PaymentIntent)
	if err != nil {
		if errors.Is(err, client.ErrStripeNotFound) {
			return nil, ErrPaymentVerificationFailed
		}
		return nil, fmt.Errorf("stripe retrieve payment intent: %w", err)
	}
	if intent.Status != "succeeded" {
		return nil, ErrPaymentVerificationFailed
	}

	// Both identifiers are human-readable labels; the store assigns its own
	// uuid primary key for identity.
	orderID := newOrderID()
	orderNumber := newOrderNumber()

	productID := session.Metadata["productId"]
	if productID == "" {
		productID = defaultProductID
	}
	productName := session.Metadata["productName"]
	if productName == "" {
		productName = defaultProductName
	}
	currency := strings.ToLower(session.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	customerName := ""
	if session.CustomerDetails != nil {
		customerName = session.CustomerDetails.Name
	}

	order := &model.Order{
		OrderNumber:           orderNumber,
		StripeSessionID:       req.SessionID,
		StripePaymentIntentID: session.PaymentIntent,
		CustomerEmail:         req.Email,
		CustomerName:          customerName,
		ProductID:             productID,
		ProductName:           productName,
		Amount:                session.AmountTotal,
		Currency:              currency,
		Status:                model.OrderStatusCompleted,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// a retried verification for the same session hits the unique index
		// on stripe_session_id; replay the recorded order instead of failing
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.orderRepo.FindBySessionID(ctx, req.SessionID)
			if findErr == nil {
				return &dto.VerifyPaymentResponse{
					Success:     true,
					OrderID:     existing.ID,
					OrderNumber: existing.OrderNumber,
					Message:     "Order already recorded",
				}, nil
			}
		}
		return nil, fmt.Errorf("store order: %w", err)
	}

	// best-effort: the order is authoritative, the email is not
	confirmation := &client.OrderConfirmation{
		ToEmail:     req.Email,
		ToName:      customerName,
		Subject:     confirmationSubject(orderNumber),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		ProductName: productName,
		Amount:      session.AmountTotal,
		Currency:    currency,
	}
	if err := s.emailClient.SendOrderConfirmation(ctx, confirmation); err != nil {
		log.Errorf("send confirmation email for order %s: %v", orderNumber, err)
	}

	return &dto.VerifyPaymentResponse{
		Success:     true,
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Message:     "Order verified and stored successfully",
	}, nil
}

func (s *checkoutServiceImpl) SearchOrders(ctx context.Context, email string) ([]*dto.OrderSummary, error) {
	orders, err := s.orderRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find orders by email: %w", err)
	}

	summaries := make([]*dto.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, &dto.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			ProductID:   order.ProductID,
			ProductName: order.ProductName,
			Amount:      order.Amount,
			Currency:    order.Currency,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		})
	}

	return summaries, nil
}

func (s *checkoutServiceImpl) ResendConfirmation(ctx context.Context, req *dto.ResendConfirmationRequest) (*dto.ResendConfirmationResponse, error) {
	order, err := s.orderRepo.FindByEmailAndOrderNumber(ctx, req.Email, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	// unlike verification, resending IS the point here, so a send failure
	// surfaces to the caller
	confirmation := &client.OrderConfirmation{
		ToEmail:     order.CustomerEmail,
		ToName:      order.CustomerName,
		Subject:     confirmationSubject(order.OrderNumber),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ProductName: order.ProductName,
		Amount:      order.Amount,
		Currency:    order.Currency,
	}
	if err := s.emailClient.SendOrderConfirmation(ctx, confirmation); err != nil {
		return nil, fmt.Errorf("resend confirmation email: %w", err)
	}

	return &dto.ResendConfirmationResponse{
		Success: true,
		Message: "Confirmation email resent successfully",
	}, nil
}

func confirmationSubject(orderNumber string) string {
	return fmt.Sprintf("Order Confirmation - Your StudyForge Purchase (%s)", orderNumber)
}
