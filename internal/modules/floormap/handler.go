package floormap

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskbooker/internal/layout"
	"deskbooker/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/floors", h.ListFloors)
	rg.GET("/floors/:id/statistics", h.GetFloorStatistics)
	rg.GET("/floormap", h.GetFloorMap)
	rg.GET("/floormap/current", h.GetCurrent)
	rg.POST("/floormap/click", h.Click)
}

func (h *Handler) ListFloors(c *gin.Context) {
	floors, err := h.service.Floors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load floors")
		return
	}
	response.Success(c, http.StatusOK, floors)
}

func (h *Handler) GetFloorStatistics(c *gin.Context) {
	floorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid floor id")
		return
	}

	stats, err := h.service.FloorStatistics(c.Request.Context(), floorID, c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid floor id")
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetFloorMap runs a reconciliation for the requested floor and date and
// returns the published snapshot.
func (h *Handler) GetFloorMap(c *gin.Context) {
	userID := c.GetInt64("user_id")

	floorID, err := strconv.ParseInt(c.Query("floorId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid floorId")
		return
	}
	floorNumber, _ := strconv.Atoi(c.Query("floorNumber"))

	snap, err := h.service.Reconcile(c.Request.Context(), Params{
		UserID:      userID,
		FloorID:     floorID,
		FloorNumber: floorNumber,
		Date:        c.Query("date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid floor or date")
		case errors.Is(err, ErrSuperseded):
			// A newer request for this user won the race; its response
			// carries the fresher snapshot.
			response.Error(c, http.StatusConflict, "SUPERSEDED", "A newer floor map request replaced this one")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load floor map")
		}
		return
	}

	h.respondSnapshot(c, StateReady, snap)
}

// GetCurrent returns the latest published snapshot without triggering a
// reconciliation.
func (h *Handler) GetCurrent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	state, snap := h.service.Current(userID)
	h.respondSnapshot(c, state, snap)
}

func (h *Handler) respondSnapshot(c *gin.Context, state State, snap *Snapshot) {
	body := gin.H{
		"state":   state,
		"loading": state == StateLoading,
		"viewBox": layout.ViewBox(),
	}
	if snap != nil {
		body["snapshot"] = snap

		onlyMine := c.Query("onlyMine") == "true"
		search := c.Query("search")
		if onlyMine || search != "" {
			body["filteredDesks"] = snap.Filter(onlyMine, search)
		}
	}
	response.Success(c, http.StatusOK, body)
}

type clickRequest struct {
	DeskID int64 `json:"deskId" binding:"required"`
}

// Click interprets a desk click against the user's latest snapshot.
func (h *Handler) Click(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	_, snap := h.service.Current(userID)
	action, err := InterpretClick(snap, req.DeskID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotReady):
			response.Error(c, http.StatusConflict, "NOT_READY", "Select a floor and date first")
		case errors.Is(err, ErrUnknownDesk):
			response.Error(c, http.StatusNotFound, "UNKNOWN_DESK", "Desk is not on the displayed floor")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to interpret click")
		}
		return
	}

	response.Success(c, http.StatusOK, action)
}
