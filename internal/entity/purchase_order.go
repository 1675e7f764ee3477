package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder is the immutable snapshot taken from a draft at submission.
// Catalog data is resolved into the lines so the snapshot stays self-contained:
// later catalog edits never change a submitted order or its document.
type PurchaseOrder struct {
	OrderUID    uuid.UUID            `json:"order_uid"    validate:"required,uuid_strict"`
	PONumber    string               `json:"po_number"    validate:"required,max=50"`
	SiteNumber  string               `json:"site_number"  validate:"required,max=50"`
	Address     *Address             `json:"address"      validate:"required"`
	Lines       []*PurchaseOrderLine `json:"lines"        validate:"required,min=1,dive"`
	Delivery    *DeliveryOption      `json:"delivery"     validate:"required"`
	Notes       string               `json:"notes"        validate:"max=1000"`
	Subtotal    decimal.Decimal      `json:"subtotal"`
	DeliveryFee decimal.Decimal      `json:"delivery_fee"`
	Total       decimal.Decimal      `json:"total"`
	SubmittedAt time.Time            `json:"submitted_at" validate:"required"`
}

// PurchaseOrderLine is a resolved cart line inside a submitted order.
type PurchaseOrderLine struct {
	ItemID    int             `json:"item_id"    validate:"required,gte=1"`
	Name      string          `json:"name"       validate:"required,max=100"`
	Size      string          `json:"size"       validate:"required"`
	Quantity  int             `json:"quantity"   validate:"required,gte=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	LineTotal decimal.Decimal `json:"line_total" validate:"required"`
}
