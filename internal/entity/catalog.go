package entity

import "github.com/shopspring/decimal"

// CatalogItem is a purchasable product definition. Catalog items are static
// reference data: defined once at startup and immutable for the process lifetime.
type CatalogItem struct {
	ID          int             `json:"id"          validate:"required,gte=1"`
	Name        string          `json:"name"        validate:"required,max=100"`
	Category    string          `json:"category"    validate:"max=100"`
	Description string          `json:"description" validate:"max=500"`
	Unit        string          `json:"unit"        validate:"required,max=30"`
	UnitPrice   decimal.Decimal `json:"unit_price"  validate:"required"`
	ImageRef    string          `json:"image_ref"   validate:"max=255"`
	Sizes       []string        `json:"sizes"       validate:"required,min=1,dive,required"`
	MinOrder    int             `json:"min_order"   validate:"required,gte=1"`
	InStock     bool            `json:"in_stock"`
}

// PermitsSize reports whether size is one of the item's permissible container sizes.
func (i *CatalogItem) PermitsSize(size string) bool {
	for _, s := range i.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// DefaultSize is the container size assigned to a new order line.
func (i *CatalogItem) DefaultSize() string {
	if len(i.Sizes) == 0 {
		return ""
	}
	return i.Sizes[0]
}
