package schedule

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
	rg.GET("/schedule/window", h.GetWindow)
	rg.GET("/holidays", h.ListHolidays)
	rg.POST("/holidays", h.CreateHoliday)
	rg.PUT("/holidays/:id", h.UpdateHoliday)
	rg.DELETE("/holidays/:id", h.DeleteHoliday)
}

func (h *Handler) GetWindow(c *gin.Context) {
	w, err := h.service.SelectionWindow(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute booking window")
		return
	}
	response.Success(c, http.StatusOK, w)
}

func (h *Handler) ListHolidays(c *gin.Context) {
	holidays, err := h.service.ListHolidays(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load holidays")
		return
	}
	response.Success(c, http.StatusOK, holidays)
}

func (h *Handler) CreateHoliday(c *gin.Context) {
	var req client.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	holiday, err := h.service.CreateHoliday(c.Request.Context(), roleFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, holiday)
}

func (h *Handler) UpdateHoliday(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid holiday id")
		return
	}

	var req client.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	holiday, err := h.service.UpdateHoliday(c.Request.Context(), roleFrom(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, holiday)
}

func (h *Handler) DeleteHoliday(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid holiday id")
		return
	}

	if err := h.service.DeleteHoliday(c.Request.Context(), roleFrom(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func roleFrom(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString("role"))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid holiday")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
	case errors.Is(err, client.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Holiday not found")
	default:
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Holiday request failed")
	}
}
