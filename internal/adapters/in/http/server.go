// Package http exposes the shipment tracking API over HTTP using echo.
// Handlers translate between JSON payloads and the application's command
// and query handlers; they carry no business logic of their own.
package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler

	// Query handlers
	trackOrderHandler          queries.TrackOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getDashboardMetricsHandler queries.GetDashboardMetricsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		changePaymentStatusHandler: changePaymentStatusHandler,
		trackOrderHandler:          trackOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		getDashboardMetricsHandler: getDashboardMetricsHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:trackingId", s.TrackOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/payment", s.UpdateOrderPayment)
	api.GET("/dashboard", s.GetDashboard)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerEmail,
		req.SenderAddress,
		req.ReceiverAddress,
		req.PackageDescription,
		req.WeightKg,
		req.Amount,
		req.PaymentMethod,
		req.TransactionID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err, "Failed to create order")
	}

	ordersCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// ListOrders handles GET /api/v1/orders - retrieves all shipments, newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return mapError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackOrder handles GET /api/v1/orders/:trackingId - looks up a shipment by
// its public tracking identifier.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	shipment, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err, "Failed to track order")
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(shipment))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - records a
// lifecycle transition.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, req.Location, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err, "Failed to update order status")
	}

	statusUpdatesTotal.Inc()
	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// UpdateOrderPayment handles POST /api/v1/orders/:id/payment - records a
// payment state change.
func (s *Server) UpdateOrderPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdatePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentStatus, err := order.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, "Invalid payment status: "+err.Error())
	}

	cmd, err := commands.NewChangePaymentStatusCommand(orderID, paymentStatus, req.TransactionID)
	if err != nil {
		return badRequest(ctx, "Invalid payment update: "+err.Error())
	}

	updated, err := s.changePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err, "Failed to update payment status")
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// GetDashboard handles GET /api/v1/dashboard - computes the operational
// dashboard aggregates.
func (s *Server) GetDashboard(ctx echo.Context) error {
	metrics, err := s.getDashboardMetricsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDashboardMetricsQuery(),
	)
	if err != nil {
		return mapError(ctx, err, "Failed to compute dashboard metrics")
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		TotalOrders:         metrics.TotalOrders,
		TotalRevenue:        metrics.TotalRevenue,
		PendingOrders:       metrics.PendingOrders,
		DeliveredOrders:     metrics.DeliveredOrders,
		InTransitOrders:     metrics.InTransitOrders,
		AverageDeliveryTime: metrics.AverageDeliveryTime,
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates core errors into HTTP status codes: missing objects
// become 404, validation failures 400, everything else 500 with the generic
// message so store internals never leak to clients.
func mapError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
