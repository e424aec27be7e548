package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stock-movements", h.ListMovements)
	r.POST("/stock-movements", h.RecordMovement)
	r.GET("/parts/:id/stock", h.CurrentStock)
	r.GET("/reports/damaged-parts", h.DamagedPartsReport)
}

func (h *Handler) ListMovements(c *gin.Context) {
	var orderID, partID *int64
	if v := c.Query("order_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(c, ErrValidation)
			return
		}
		orderID = &id
	}
	if v := c.Query("part_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(c, ErrValidation)
			return
		}
		partID = &id
	}

	rows, err := h.service.ListMovements(c.Request.Context(), orderID, partID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) RecordMovement(c *gin.Context) {
	var req RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	mv, balance, err := h.service.RecordMovement(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"movement": mv, "balance": balance})
}

func (h *Handler) CurrentStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return
	}
	balance, err := h.service.CurrentStock(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *Handler) DamagedPartsReport(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Query("vehicle_id"), 10, 64)
	if err != nil || vehicleID <= 0 {
		writeError(c, ErrValidation)
		return
	}
	report, err := h.service.DamagedPartsReport(c.Request.Context(), vehicleID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func writeError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, ErrValidation):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ErrPartNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrVehicleNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrInsufficientStock):
		status, code = http.StatusConflict, "INSUFFICIENT_STOCK"
	default:
		status, code = http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": err.Error()},
	})
}
