// Package http exposes the fulfillment use cases over REST.
// Handlers translate between JSON payloads and application commands/queries;
// all business decisions stay in the handlers they delegate to.
package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	registerAgentHandler     commands.RegisterAgentCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler

	// Query handlers
	validateTransitionHandler queries.ValidateStatusTransitionQueryHandler
	getAgentOrdersHandler     queries.GetAgentOrdersQueryHandler
	checkAuthorizationHandler queries.CheckAgentAuthorizationQueryHandler
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	validateTransitionHandler queries.ValidateStatusTransitionQueryHandler,
	getAgentOrdersHandler queries.GetAgentOrdersQueryHandler,
	checkAuthorizationHandler queries.CheckAgentAuthorizationQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		updateOrderStatusHandler:  updateOrderStatusHandler,
		registerAgentHandler:      registerAgentHandler,
		createOrderHandler:        createOrderHandler,
		validateTransitionHandler: validateTransitionHandler,
		getAgentOrdersHandler:     getAgentOrdersHandler,
		checkAuthorizationHandler: checkAuthorizationHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.PUT("/orders/update-status", s.UpdateOrderStatus)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/agent/:agentId", s.GetAgentOrders)
	api.GET("/orders/:orderId/validate-status-transition", s.ValidateStatusTransition)
	api.GET("/orders/:orderId/check-authorization/:agentId", s.CheckAgentAuthorization)
	api.POST("/orders", s.CreateOrder)
	api.POST("/agents", s.RegisterAgent)
}

// UpdateOrderStatusRequest is the payload for PUT /api/v1/orders/update-status.
// Latitude and Longitude are optional; when both are present they are recorded
// as a location report alongside a successful update.
type UpdateOrderStatusRequest struct {
	OrderID       string   `json:"orderId"`
	NewStatus     string   `json:"newStatus"`
	DeliveryManID string   `json:"deliveryManId"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// UpdateOrderStatusResult is the JSON body returned for every update attempt.
type UpdateOrderStatusResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	OrderID       string `json:"orderId"`
	CurrentStatus string `json:"currentStatus,omitempty"`
	UpdatedAt     string `json:"updatedAt"`
}

// ErrorResponse is the generic error payload for malformed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateOrderStatus handles PUT /api/v1/orders/update-status.
// Success responds 200; any rejected or failed attempt responds 400 with the
// failure message in the body.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	agentID, err := kernel.NewAgentID(req.DeliveryManID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery man id: " + err.Error(),
		})
	}

	newStatus, err := order.ParseStatus(req.NewStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	var location *kernel.GeoLocation
	if req.Latitude != nil && req.Longitude != nil {
		loc, locErr := kernel.NewGeoLocation(*req.Latitude, *req.Longitude)
		if locErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid location: " + locErr.Error(),
			})
		}
		location = &loc
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, agentID, location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	result := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)

	body := UpdateOrderStatusResult{
		Success:   result.Success,
		Message:   result.Message,
		OrderID:   result.OrderID.String(),
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	}
	if result.CurrentStatus != order.Unknown {
		body.CurrentStatus = result.CurrentStatus.String()
	}

	if !result.Success {
		return ctx.JSON(http.StatusBadRequest, body)
	}
	return ctx.JSON(http.StatusOK, body)
}

// ValidateTransitionResponse is the body for the dry-run transition check.
type ValidateTransitionResponse struct {
	OrderID         string `json:"orderId"`
	IsValid         bool   `json:"isValid"`
	Reason          string `json:"reason,omitempty"`
	CurrentStatus   string `json:"currentStatus,omitempty"`
	RequestedStatus string `json:"requestedStatus"`
}

// ValidateStatusTransition handles GET /api/v1/orders/:orderId/validate-status-transition.
// The requested status comes from the newStatus query parameter.
func (s *Server) ValidateStatusTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewValidateStatusTransitionQuery(orderID, ctx.QueryParam("newStatus"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	verdict, err := s.validateTransitionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to validate status transition",
		})
	}

	return ctx.JSON(http.StatusOK, ValidateTransitionResponse{
		OrderID:         verdict.OrderID.String(),
		IsValid:         verdict.IsValid,
		Reason:          verdict.Reason,
		CurrentStatus:   verdict.CurrentStatus,
		RequestedStatus: verdict.RequestedStatus,
	})
}

// AgentOrderResponse is one order in an agent's work list.
type AgentOrderResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	DeliveredAt *string `json:"deliveredAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// GetAgentOrders handles GET /api/v1/orders/agent/:agentId.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	agentID, err := kernel.NewAgentID(ctx.Param("agentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid agent id: " + err.Error(),
		})
	}

	query, err := queries.NewGetAgentOrdersQuery(agentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	orders, err := s.getAgentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]AgentOrderResponse, len(orders))
	for i, o := range orders {
		var deliveredAt *string
		if o.DeliveredAt != nil {
			formatted := o.DeliveredAt.Format(time.RFC3339)
			deliveredAt = &formatted
		}

		response[i] = AgentOrderResponse{
			ID:          o.ID.String(),
			Status:      o.Status.String(),
			DeliveredAt: deliveredAt,
			CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AuthorizationResponse reports whether an agent may act on an order.
type AuthorizationResponse struct {
	OrderFound bool `json:"orderFound"`
	Authorized bool `json:"authorized"`
}

// CheckAgentAuthorization handles GET /api/v1/orders/:orderId/check-authorization/:agentId.
func (s *Server) CheckAgentAuthorization(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	agentID, err := kernel.NewAgentID(ctx.Param("agentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid agent id: " + err.Error(),
		})
	}

	query, err := queries.NewCheckAgentAuthorizationQuery(orderID, agentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	result, err := s.checkAuthorizationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to check authorization",
		})
	}

	return ctx.JSON(http.StatusOK, AuthorizationResponse{
		OrderFound: result.OrderFound,
		Authorized: result.Authorized,
	})
}

// ActiveOrderResponse is one in-flight order.
type ActiveOrderResponse struct {
	ID        string  `json:"id"`
	AgentID   *string `json:"agentId,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		var agentID *string
		if o.AgentID != nil {
			raw := o.AgentID.String()
			agentID = &raw
		}

		response[i] = ActiveOrderResponse{
			ID:        o.ID.String(),
			AgentID:   agentID,
			Status:    o.Status.String(),
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
// DeliveryManID optionally assigns an agent at creation.
type CreateOrderRequest struct {
	DeliveryManID *string `json:"deliveryManId,omitempty"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var agentID *kernel.AgentID
	if req.DeliveryManID != nil {
		aID, err := kernel.NewAgentID(*req.DeliveryManID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid delivery man id: " + err.Error(),
			})
		}
		agentID = &aID
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, agentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// RegisterAgentRequest is the payload for POST /api/v1/agents.
// Mirrors the registration form: identifier, contact details, and the
// location picked on the map.
type RegisterAgentRequest struct {
	UserName    string  `json:"userName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// RegisterAgent handles POST /api/v1/agents.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var req RegisterAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	agentID, err := kernel.NewAgentID(req.UserName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid user name: " + err.Error(),
		})
	}

	location, err := kernel.NewGeoLocation(req.Latitude, req.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid location: " + err.Error(),
		})
	}

	cmd, err := commands.NewRegisterAgentCommand(agentID, req.UserName, req.Email, req.PhoneNumber, location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid agent data: " + err.Error(),
		})
	}

	if handleErr := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to register agent",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}
