// Package cart enforces the order-composition rules over a draft's lines:
// minimum-order quantities, per-item line merging and permissible container
// sizes. It never touches storage; callers own the line slice.
package cart

import (
	"fmt"

	"github.com/saharshred/renu-biome/internal/entity"
)

// Catalog resolves item ids to their static definitions.
type Catalog interface {
	FindItem(id int) (*entity.CatalogItem, error)
}

// Cart wraps an insertion-ordered line slice with the catalog needed to
// validate mutations. Lines() hands the (possibly reallocated) slice back.
type Cart struct {
	catalog Catalog
	lines   []*entity.OrderLine
}

func New(catalog Catalog, lines []*entity.OrderLine) *Cart {
	return &Cart{catalog: catalog, lines: lines}
}

// AddItem appends a line for itemID, or merges the quantity into the existing
// line. Quantities below the item's minimum order are rejected outright and
// leave the cart unchanged.
func (c *Cart) AddItem(itemID, quantity int) error {
	const op = "cart.AddItem"

	item, err := c.catalog.FindItem(itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !item.InStock {
		return fmt.Errorf("%s: item %d: %w", op, itemID, entity.ErrItemUnavailable)
	}

	if quantity < item.MinOrder {
		return fmt.Errorf("%s: item %d needs at least %d: %w",
			op, itemID, item.MinOrder, entity.ErrBelowMinimumOrder)
	}

	if line := c.find(itemID); line != nil {
		line.Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, &entity.OrderLine{
		ItemID:   itemID,
		Quantity: quantity,
		Size:     item.DefaultSize(),
	})
	return nil
}

// RemoveItem deletes the line for itemID. Removing an absent item is a no-op.
func (c *Cart) RemoveItem(itemID int) {
	for i, line := range c.lines {
		if line.ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. Unlike AddItem, values below the
// item's minimum are clamped up to the minimum rather than rejected: the edit
// flow keeps the line alive while the user types.
func (c *Cart) SetQuantity(itemID, quantity int) error {
	const op = "cart.SetQuantity"

	item, err := c.catalog.FindItem(itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	line := c.find(itemID)
	if line == nil {
		return fmt.Errorf("%s: item %d: %w", op, itemID, entity.ErrLineNotFound)
	}

	if quantity < item.MinOrder {
		quantity = item.MinOrder
	}
	line.Quantity = quantity
	return nil
}

// SetContainerSize replaces a line's container size, validated against the
// item's permissible sizes.
func (c *Cart) SetContainerSize(itemID int, size string) error {
	const op = "cart.SetContainerSize"

	item, err := c.catalog.FindItem(itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	line := c.find(itemID)
	if line == nil {
		return fmt.Errorf("%s: item %d: %w", op, itemID, entity.ErrLineNotFound)
	}

	if !item.PermitsSize(size) {
		return fmt.Errorf("%s: item %d size %q: %w",
			op, itemID, size, entity.ErrInvalidContainerSize)
	}
	line.Size = size
	return nil
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []*entity.OrderLine {
	return c.lines
}

func (c *Cart) find(itemID int) *entity.OrderLine {
	for _, line := range c.lines {
		if line.ItemID == itemID {
			return line
		}
	}
	return nil
}
