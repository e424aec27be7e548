package registry

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"tax_id" binding:"required"`
}

type CreateVehicleRequest struct {
	Plate    string `json:"plate" binding:"required"`
	Chassis  string `json:"chassis"`
	Odometer int64  `json:"odometer"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	ClientID int64  `json:"client_id" binding:"required"`
}

type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}

type CreateServiceRequest struct {
	Description   string  `json:"description" binding:"required"`
	StandardPrice float64 `json:"standard_price"`
}

type CreatePartRequest struct {
	SKU          string `json:"sku" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Origin       string `json:"origin" binding:"required"`
	InitialStock int    `json:"initial_stock"`
}

type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"tax_id"`
}
