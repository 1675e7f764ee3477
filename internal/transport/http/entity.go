// nolint: revive,staticcheck
// swagger:meta
package httpt

import "github.com/saharshred/renu-biome/internal/entity"

// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// swagger:model CatalogItem
type CatalogItem entity.CatalogItem

// swagger:model DeliveryOption
type DeliveryOption entity.DeliveryOption

// swagger:model OrderDraft
type OrderDraft entity.OrderDraft

// swagger:model PurchaseOrder
type PurchaseOrder entity.PurchaseOrder
