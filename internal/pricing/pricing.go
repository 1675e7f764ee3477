// Package pricing derives monetary totals from a cart snapshot. All arithmetic
// is exact decimal; rounding to two places happens only at display time.
package pricing

import (
	"fmt"

	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/shopspring/decimal"
)

// ItemResolver resolves order lines back to their catalog definitions.
type ItemResolver interface {
	FindItem(id int) (*entity.CatalogItem, error)
}

// Totals is the derived money for one cart/delivery combination.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// LineTotal is the exact price of a single line.
func LineTotal(item *entity.CatalogItem, line *entity.OrderLine) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Compute derives subtotal, delivery fee and grand total. It is a pure
// function of its inputs and is recomputed on every call; an empty cart
// yields a zero subtotal and a total equal to the delivery fee.
func Compute(
	resolver ItemResolver,
	lines []*entity.OrderLine,
	option *entity.DeliveryOption,
) (Totals, error) {
	const op = "pricing.Compute"

	subtotal := decimal.Zero
	for _, line := range lines {
		item, err := resolver.FindItem(line.ItemID)
		if err != nil {
			return Totals{}, fmt.Errorf("%s: line item %d: %w", op, line.ItemID, err)
		}
		subtotal = subtotal.Add(LineTotal(item, line))
	}

	fee := decimal.Zero
	if option != nil {
		fee = option.Price
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}, nil
}
