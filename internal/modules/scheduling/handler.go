package scheduling

import (
	"errors"
	"net/http"
	"strconv"

	"mecanica/internal/domain"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments", h.ListAppointments)
	r.POST("/appointments", h.CreateAppointment)
	r.PATCH("/appointments/:id/status", h.UpdateStatus)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	rows, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	updated, err := h.service.UpdateStatus(c.Request.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func writeError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, ErrValidation):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ErrOwnershipMismatch):
		status, code = http.StatusBadRequest, "OWNERSHIP_MISMATCH"
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrServiceNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrSlotTaken):
		status, code = http.StatusConflict, "SCHEDULING_CONFLICT"
	case errors.Is(err, ErrInvalidTransition):
		status, code = http.StatusConflict, "INVALID_TRANSITION"
	default:
		status, code = http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": err.Error()},
	})
}
