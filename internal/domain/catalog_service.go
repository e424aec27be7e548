package domain

// CatalogService is a standard service offered by the shop.
// Description is logically unique within the catalog.
type CatalogService struct {
	ID            int64   `json:"id"`
	Description   string  `json:"description" validate:"required"`
	StandardPrice float64 `json:"standard_price"`
}
