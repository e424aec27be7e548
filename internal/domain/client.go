package domain

// Client is a person or company that owns vehicles serviced by the shop.
type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	TaxID string `json:"tax_id" validate:"required"`
}
