package domain

type PartOrigin string

const (
	OriginDomestic PartOrigin = "domestic"
	OriginImported PartOrigin = "imported"
)

func (o PartOrigin) Valid() bool {
	return o == OriginDomestic || o == OriginImported
}

// Part is a stocked item. CurrentStock is a cached projection of the
// stock-movement ledger, never the source of truth.
type Part struct {
	ID           int64      `json:"id"`
	SKU          string     `json:"sku" validate:"required"`
	Description  string     `json:"description"`
	Origin       PartOrigin `json:"origin"`
	CurrentStock int        `json:"current_stock"`
}
