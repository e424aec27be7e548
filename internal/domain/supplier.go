package domain

type Supplier struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	TaxID string `json:"tax_id"`
}
