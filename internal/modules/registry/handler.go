package registry

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
	r.GET("/clients", h.ListClients)
	r.POST("/clients", h.CreateClient)
	r.GET("/clients/:id/vehicles", h.VehiclesOfClient)

	r.GET("/vehicles", h.ListVehicles)
	r.POST("/vehicles", h.CreateVehicle)

	r.GET("/employees", h.ListEmployees)
	r.POST("/employees", h.CreateEmployee)

	r.GET("/services", h.ListServices)
	r.POST("/services", h.CreateService)

	r.GET("/parts", h.ListParts)
	r.POST("/parts", h.CreatePart)
	r.GET("/parts/:id/suppliers", h.SuppliersOfPart)

	r.GET("/suppliers", h.ListSuppliers)
	r.POST("/suppliers", h.CreateSupplier)
	r.POST("/suppliers/:id/parts/:part_id", h.AttachSupplierPart)
}

func (h *Handler) ListClients(c *gin.Context) {
	rows, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateClient(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) VehiclesOfClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return
	}
	rows, err := h.service.VehiclesOfClient(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListVehicles(c *gin.Context) {
	rows, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	rows, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListServices(c *gin.Context) {
	rows, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListParts(c *gin.Context) {
	rows, err := h.service.ListParts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreatePart(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) SuppliersOfPart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return
	}
	rows, err := h.service.SuppliersOfPart(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListSuppliers(c *gin.Context) {
	rows, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrValidation)
		return
	}
	created, err := h.service.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) AttachSupplierPart(c *gin.Context) {
	supplierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return
	}
	partID, err := strconv.ParseInt(c.Param("part_id"), 10, 64)
	if err != nil {
		writeError(c, ErrValidation)
		return
	}
	if err := h.service.AttachSupplierPart(c.Request.Context(), supplierID, partID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, ErrValidation):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ErrClientNotFound),
		errors.Is(err, ErrPartNotFound),
		errors.Is(err, ErrSupplierNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrDuplicatePlate),
		errors.Is(err, ErrDuplicateTaxID),
		errors.Is(err, ErrDuplicateSKU),
		errors.Is(err, ErrDuplicateDescription):
		status, code = http.StatusConflict, "CONFLICT"
	default:
		status, code = http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": err.Error()},
	})
}
