package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Malshan20/studyforge/internal/handler"
	"github.com/Malshan20/studyforge/internal/service"
	"github.com/Malshan20/studyforge/internal/validation"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
}

func NewServer(checkoutService service.CheckoutService) *Server {
	e := echo.New()
	e.Validator = validation.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// storefront, success and order-lookup pages
	e.Static("/", "web")

	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	s := &Server{
		echo:            e,
		checkoutHandler: checkoutHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- stripe checkout --------
	stripe := api.Group("/stripe")
	stripe.POST("/checkout", s.checkoutHandler.CreateCheckoutSession)
	stripe.POST("/verify-payment", s.checkoutHandler.VerifyPayment)

	// -------- orders --------
	api.GET("/orders/search", s.checkoutHandler.SearchOrders)
	api.POST("/email/resend-order-confirmation", s.checkoutHandler.ResendConfirmation)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
