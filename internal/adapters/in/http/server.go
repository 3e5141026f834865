// Package http exposes the guest-facing REST surface: the menu, order
// placement and the room-status summary, plus a health probe.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/domain/model/order"
	"concierge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler              commands.CreateOrderCommandHandler
	updateOrderStatusHandler        commands.UpdateOrderStatusCommandHandler
	updateHousekeepingStatusHandler commands.UpdateHousekeepingStatusCommandHandler

	getMenuHandler         queries.GetMenuQueryHandler
	getOrdersHandler       queries.GetRoomServiceOrdersQueryHandler
	getHousekeepingHandler queries.GetHousekeepingScheduleQueryHandler
	summaryHandler         queries.RoomStatusSummaryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateHousekeepingStatusHandler commands.UpdateHousekeepingStatusCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getOrdersHandler queries.GetRoomServiceOrdersQueryHandler,
	getHousekeepingHandler queries.GetHousekeepingScheduleQueryHandler,
	summaryHandler queries.RoomStatusSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		updateOrderStatusHandler:        updateOrderStatusHandler,
		updateHousekeepingStatusHandler: updateHousekeepingStatusHandler,
		getMenuHandler:                  getMenuHandler,
		getOrdersHandler:                getOrdersHandler,
		getHousekeepingHandler:          getHousekeepingHandler,
		summaryHandler:                  summaryHandler,
	}
}

// RegisterRoutes mounts the server's routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/menu", s.GetMenu)
	e.GET("/orders", s.GetOrders)
	e.POST("/orders", s.CreateOrder)
	e.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/housekeeping", s.GetHousekeeping)
	e.PATCH("/housekeeping/:id/status", s.UpdateHousekeepingStatus)
	e.GET("/rooms/summary", s.GetRoomsSummary)
}

// errorResponse is the JSON error envelope for every failure outcome.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// healthResponse reports liveness.
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// menuItemResponse is a menu entry on the wire.
type menuItemResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	PrepTimeMinutes int     `json:"prep_time_minutes,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
}

// createOrderRequest is the order placement payload.
type createOrderRequest struct {
	BookingID           int64              `json:"booking_id"`
	RoomID              int                `json:"room_id"`
	SpecialInstructions string             `json:"special_instructions"`
	Items               []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ItemID   int64  `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// createOrderResponse reports the stored order's identity and status.
type createOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// orderResponse is a room-service order on the wire.
type orderResponse struct {
	OrderID             int64               `json:"order_id"`
	BookingID           *int64              `json:"booking_id,omitempty"`
	RoomID              int                 `json:"room_id"`
	ServiceType         string              `json:"service_type,omitempty"`
	OrderTime           time.Time           `json:"order_time"`
	DeliveryTime        *time.Time          `json:"delivery_time,omitempty"`
	CompletionTime      *time.Time          `json:"completion_time,omitempty"`
	Status              string              `json:"status"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	TotalAmount         float64             `json:"total_amount"`
	Items               []orderItemResponse `json:"items,omitempty"`
}

type orderItemResponse struct {
	ItemID   int64   `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// updateStatusRequest is the lifecycle patch payload for both orders and
// housekeeping schedules.
type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// scheduleResponse is a housekeeping schedule on the wire.
type scheduleResponse struct {
	ScheduleID    int64      `json:"schedule_id"`
	RoomID        int        `json:"room_id"`
	ScheduledDate string     `json:"scheduled_date"`
	Status        string     `json:"status"`
	StaffAssigned string     `json:"staff_assigned,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// roomsSummaryResponse is the room-status snapshot on the wire.
type roomsSummaryResponse struct {
	PendingOrders     int       `json:"pending_orders"`
	ScheduledCleaning int       `json:"scheduled_cleaning"`
	RoomsWithOrders   []int     `json:"rooms_with_orders"`
	RoomsToClean      []int     `json:"rooms_to_clean"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// GetMenu handles GET /menu - lists available menu items, optionally narrowed
// by the category query parameter.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery(ctx.QueryParam("category"))

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := make([]menuItemResponse, len(items))
	for i, item := range items {
		response[i] = menuItemResponse{
			ID:              item.ID,
			Name:            item.Name,
			Description:     item.Description,
			Price:           item.Price,
			Category:        item.Category,
			PrepTimeMinutes: item.PrepTimeMinutes,
			ImageURL:        item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders - places a room-service order against an
// active booking.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ItemRequest, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.ItemRequest{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.BookingID, request.RoomID, items, request.SpecialInstructions)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidBooking):
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, errs.ErrItemNotFound):
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, errorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to create order",
			})
		}
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID: result.OrderID,
		Status:  string(result.Status),
	})
}

// GetOrders handles GET /orders - lists room-service orders, optionally
// narrowed by status and room.
func (s *Server) GetOrders(ctx echo.Context) error {
	roomID := 0
	if raw := ctx.QueryParam("room_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid room_id: " + raw,
			})
		}
		roomID = parsed
	}

	query, err := queries.NewGetRoomServiceOrdersQuery(order.Status(ctx.QueryParam("status")), roomID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request updateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(request.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.updateFailure(ctx, err, "Failed to update order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetHousekeeping handles GET /housekeeping - lists schedules, optionally
// narrowed by date (YYYY-MM-DD) and status.
func (s *Server) GetHousekeeping(ctx echo.Context) error {
	var date *time.Time
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid date: " + raw,
			})
		}
		date = &parsed
	}

	query, err := queries.NewGetHousekeepingScheduleQuery(date, housekeeping.Status(ctx.QueryParam("status")))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	schedules, err := s.getHousekeepingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve schedules",
		})
	}

	response := make([]scheduleResponse, len(schedules))
	for i, schedule := range schedules {
		response[i] = toScheduleResponse(schedule)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateHousekeepingStatus handles PATCH /housekeeping/:id/status.
func (s *Server) UpdateHousekeepingStatus(ctx echo.Context) error {
	scheduleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule id",
		})
	}

	var request updateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateHousekeepingStatusCommand(
		scheduleID, housekeeping.Status(request.Status), request.Notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	updated, err := s.updateHousekeepingStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.updateFailure(ctx, err, "Failed to update schedule")
	}

	return ctx.JSON(http.StatusOK, toScheduleResponse(updated))
}

// updateFailure maps lifecycle command failures: unknown ids are 404,
// everything else is a gateway failure.
func (s *Server) updateFailure(ctx echo.Context, err error, fallback string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items()))
	for i, line := range o.Items() {
		items[i] = orderItemResponse{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
			Notes:    line.Notes,
		}
	}

	return orderResponse{
		OrderID:             o.ID(),
		BookingID:           o.BookingID(),
		RoomID:              o.RoomID(),
		ServiceType:         o.ServiceType(),
		OrderTime:           o.OrderTime(),
		DeliveryTime:        o.DeliveryTime(),
		CompletionTime:      o.CompletionTime(),
		Status:              string(o.Status()),
		SpecialInstructions: o.SpecialInstructions(),
		TotalAmount:         o.TotalAmount(),
		Items:               items,
	}
}

func toScheduleResponse(schedule *housekeeping.Schedule) scheduleResponse {
	return scheduleResponse{
		ScheduleID:    schedule.ID(),
		RoomID:        schedule.RoomID(),
		ScheduledDate: schedule.ScheduledDate().Format("2006-01-02"),
		Status:        string(schedule.Status()),
		StaffAssigned: schedule.StaffAssigned(),
		Notes:         schedule.Notes(),
		CompletedAt:   schedule.CompletedAt(),
	}
}

// GetRoomsSummary handles GET /rooms/summary - reports pending orders and
// today's scheduled cleanings.
func (s *Server) GetRoomsSummary(ctx echo.Context) error {
	query := queries.NewRoomStatusSummaryQuery()

	summary, err := s.summaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build room summary",
		})
	}

	return ctx.JSON(http.StatusOK, roomsSummaryResponse{
		PendingOrders:     summary.PendingOrders,
		ScheduledCleaning: summary.ScheduledCleaning,
		RoomsWithOrders:   summary.RoomsWithOrders,
		RoomsToClean:      summary.RoomsToClean,
		GeneratedAt:       summary.GeneratedAt,
	})
}
