package orders

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
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/:id/totals", h.OrderTotals)
	r.POST("/orders/:id/service-items", h.AddServiceItem)
	r.POST("/orders/:id/part-items", h.AddPartItem)
	r.POST("/orders/:id/payments", h.AddPayment)
	r.PATCH("/orders/:id/status", h.UpdateStatus)
	r.GET("/reports/vehicle-history", h.VehicleHistory)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	o, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) OrderTotals(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	totals, err := h.service.OrderTotals(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *Handler) AddServiceItem(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req AddServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	it, err := h.service.AddServiceItem(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *Handler) AddPartItem(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req AddPartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	it, err := h.service.AddPartItem(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *Handler) AddPayment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	p, err := h.service.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	o, err := h.service.AdvanceStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) VehicleHistory(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Query("vehicle_id"), 10, 64)
	if err != nil || vehicleID <= 0 {
		writeError(c, ErrValidation)
		return
	}
	history, err := h.service.VehicleHistory(c.Request.Context(), vehicleID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, ErrValidation):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrPartNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrOrderNotEditable),
		errors.Is(err, ErrInvalidTransition):
		status, code = http.StatusConflict, "INVALID_TRANSITION"
	default:
		status, code = http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": err.Error()},
	})
}
