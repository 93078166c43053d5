// Package http exposes the order operations over a REST API.
//
// Authentication is out of scope for this service: an upstream gateway is
// expected to authenticate the caller and forward its identity in the
// X-User-ID header. Handlers translate requests into commands and queries,
// delegate to the application layer, and map domain errors onto HTTP status
// codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodrescue/internal/core/application/usecases/commands"
	"foodrescue/internal/core/application/usecases/queries"
	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"
	"foodrescue/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the authenticated user's ID, set by the upstream gateway.
const ActorHeader = "X-User-ID"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	PackageID string `json:"package_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderResponse returns the ID assigned to a newly placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Order is the JSON representation of an order on the read side.
type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PackageID  string    `json:"package_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	MoneySaved float64   `json:"money_saved"`
	CO2SavedKg float64   `json:"co2_saved_kg"`
	Status     string    `json:"status"`
	PickedUpBy *string   `json:"picked_up_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrdersPage is the JSON envelope for paginated order listings.
type OrdersPage struct {
	Data []Order        `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// PaginationMeta describes the position of a page within the full listing.
type PaginationMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getBusinessOrdersHandler queries.GetBusinessOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getBusinessOrdersHandler queries.GetBusinessOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getBusinessOrdersHandler: getBusinessOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.PATCH("/api/v1/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.GET("/api/v1/users/:id/orders", s.GetUserOrders)
	e.GET("/api/v1/businesses/:id/orders", s.GetBusinessOrders)
}

// CreateOrder handles POST /api/v1/orders - places an order for a package.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing or invalid " + ActorHeader + " header",
		})
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	packageID, err := kernel.UUIDFromString(request.PackageID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid package ID: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, packageID, request.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - transitions an
// order to the requested status on behalf of the acting user.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing or invalid " + ActorHeader + " header",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	targetStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, targetStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing or invalid " + ActorHeader + " header",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order query: " + err.Error(),
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(resp))
}

// GetUserOrders handles GET /api/v1/users/:id/orders - lists a customer's orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing or invalid " + ActorHeader + " header",
		})
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID: " + err.Error(),
		})
	}

	page, limit, err := paginationParams(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid pagination: " + err.Error(),
		})
	}

	query, err := queries.NewGetUserOrdersQuery(userID, actorID, page, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid orders query: " + err.Error(),
		})
	}

	result, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrdersPageJSON(result))
}

// GetBusinessOrders handles GET /api/v1/businesses/:id/orders - lists the
// orders placed against a business.
func (s *Server) GetBusinessOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing or invalid " + ActorHeader + " header",
		})
	}

	businessID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid business ID: " + err.Error(),
		})
	}

	page, limit, err := paginationParams(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid pagination: " + err.Error(),
		})
	}

	query, err := queries.NewGetBusinessOrdersQuery(businessID, actorID, page, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid orders query: " + err.Error(),
		})
	}

	result, err := s.getBusinessOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrdersPageJSON(result))
}

func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(ActorHeader))
}

// paginationParams reads the page and limit query parameters, applying the
// listing defaults when they are absent. Range checks stay with the query
// constructors.
func paginationParams(ctx echo.Context) (int, int, error) {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = parsed
	}

	limit := queries.DefaultPageLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		limit = parsed
	}

	return page, limit, nil
}

func toOrderJSON(resp queries.OrderResponse) Order {
	o := Order{
		ID:         resp.ID.String(),
		UserID:     resp.UserID.String(),
		PackageID:  resp.PackageID.String(),
		Quantity:   resp.Quantity,
		TotalPrice: resp.TotalPrice,
		MoneySaved: resp.MoneySaved,
		CO2SavedKg: resp.CO2SavedKg,
		Status:     resp.Status.String(),
		CreatedAt:  resp.CreatedAt,
	}
	if resp.PickedUpBy != nil {
		worker := resp.PickedUpBy.String()
		o.PickedUpBy = &worker
	}
	return o
}

func toOrdersPageJSON(page queries.OrdersPage) OrdersPage {
	data := make([]Order, len(page.Orders))
	for i, o := range page.Orders {
		data[i] = toOrderJSON(o)
	}

	return OrdersPage{
		Data: data,
		Meta: PaginationMeta{
			Total: page.Total,
			Page:  page.Page,
			Limit: page.Limit,
		},
	}
}

// domainError maps an application-layer error onto an HTTP response.
// Unrecognized errors are reported as 500 without leaking internals.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInsufficientStock):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
