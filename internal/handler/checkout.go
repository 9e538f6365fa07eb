package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Malshan20/studyforge/internal/dto"
	"github.com/Malshan20/studyforge/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.checkoutService.CreateCheckoutSession(ctx, &req)
	if err != nil {
		c.Logger().Errorf("stripe checkout error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create checkout session")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.checkoutService.VerifyPayment(ctx, &req)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Session not found")
	case errors.Is(err, service.ErrPaymentNotCompleted):
		return echo.NewHTTPError(http.StatusBadRequest, "Payment not completed")
	case errors.Is(err, service.ErrPaymentVerificationFailed):
		return echo.NewHTTPError(http.StatusBadRequest, "Payment verification failed")
	case err != nil:
		c.Logger().Errorf("payment verification error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify payment")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) SearchOrders(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	orders, err := h.checkoutService.SearchOrders(ctx, email)
	if err != nil {
		c.Logger().Errorf("order search error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search orders")
	}

	return c.JSON(http.StatusOK, &dto.SearchOrdersResponse{Orders: orders})
}

func (h *CheckoutHandler) ResendConfirmation(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ResendConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.checkoutService.ResendConfirmation(ctx, &req)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	case err != nil:
		c.Logger().Errorf("resend confirmation error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resend email")
	}

	return c.JSON(http.StatusOK, result)
}
