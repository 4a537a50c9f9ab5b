package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
	"deskbooker/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/me/upcoming", h.MyUpcoming)
	rg.GET("/bookings/user/:id/upcoming", h.UserUpcoming)
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/move", h.Move)
	rg.DELETE("/bookings/:id", h.Cancel)
	rg.POST("/bookings/:id/check-in", h.CheckIn)
	rg.POST("/bookings/:id/check-out", h.CheckOut)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func (h *Handler) MyUpcoming(c *gin.Context) {
	actor := actorFrom(c)
	bookings, err := h.service.UpcomingBookings(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) UserUpcoming(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	bookings, err := h.service.UpcomingBookings(c.Request.Context(), actorFrom(c), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), actorFrom(c), req.DeskID, req.BookingDate)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Move(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Move(c.Request.Context(), actorFrom(c), req.BookingID, req.DeskID, req.BookingDate)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	if err := h.service.Cancel(c.Request.Context(), actorFrom(c), id, req.CancellationReason); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.CheckIn(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CheckOut(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.CheckOut(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed for this booking")
	case errors.Is(err, ErrDuplicateRequest):
		response.Error(c, http.StatusTooManyRequests, "IN_FLIGHT", "Previous request is still being processed")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking is not in a state that allows this")
	case errors.Is(err, ErrPartialMove):
		response.Error(c, http.StatusConflict, "PARTIAL_MOVE",
			"Your previous booking was cancelled but the new one could not be created")
	case errors.Is(err, client.ErrConflict):
		msg := "Desk is no longer available"
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", msg)
	case errors.Is(err, client.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, client.ErrTimeout):
		response.Error(c, http.StatusGatewayTimeout, "TIMEOUT",
			"The booking system did not respond; the map will show the actual state")
	default:
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Booking system request failed")
	}
}
