package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only availability endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/available", h.ListAvailableRooms)
	rg.GET("/rooms/:id/availability", h.RoomAvailability)
}

// RegisterRoutes mounts the authenticated booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/check-in", h.transition(ActionCheckIn))
	rg.POST("/bookings/:id/check-out", h.transition(ActionCheckOut))
	rg.POST("/bookings/:id/cancel", h.transition(ActionCancel))
}

func (h *Handler) ListAvailableRooms(c *gin.Context) {
	start, end, ok := parseWindow(c)
	if !ok {
		return
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), start, end, c.Query("booking_type"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) RoomAvailability(c *gin.Context) {
	roomID, ok := paramID(c)
	if !ok {
		return
	}
	start, end, ok := parseWindow(c)
	if !ok {
		return
	}

	available, err := h.service.IsRoomAvailable(c.Request.Context(), roomID, start, end)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "available": available})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) GetBooking(c *gin.Context) {
	bookingID, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) transition(action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := paramID(c)
		if !ok {
			return
		}

		b, err := h.service.Transition(c.Request.Context(), c.GetInt64("user_id"), bookingID, action)
		if err != nil {
			h.renderError(c, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
	}
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var transitionErr *TransitionError

	switch {
	case errors.Is(err, ErrInvalidWindow), errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrRoomUnavailable):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected time")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this booking")
	case errors.As(err, &transitionErr):
		response.ErrorWithDetails(c, http.StatusConflict, "INVALID_TRANSITION", transitionErr.Error(), gin.H{
			"status": transitionErr.Status,
			"action": transitionErr.Action,
		})
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

// parseWindow reads the start/end query params as RFC 3339 instants and
// normalizes them to UTC.
func parseWindow(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start must be an RFC 3339 datetime")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end must be an RFC 3339 datetime")
		return time.Time{}, time.Time{}, false
	}
	return start.UTC(), end.UTC(), true
}
