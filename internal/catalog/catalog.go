// Package catalog holds the static reference data a purchase order is built
// from: the purchasable product list and the delivery tiers. The catalog is
// loaded once at startup and never mutated afterwards.
package catalog

import (
	"fmt"

	"github.com/saharshred/renu-biome/internal/entity"
)

type Catalog struct {
	items        []*entity.CatalogItem
	itemsByID    map[int]*entity.CatalogItem
	delivery     []*entity.DeliveryOption
	deliveryByID map[string]*entity.DeliveryOption
}

func New(
	items []*entity.CatalogItem,
	delivery []*entity.DeliveryOption,
) (*Catalog, error) {
	const op = "catalog.New"

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: catalog must contain at least one item", op)
	}
	if len(delivery) == 0 {
		return nil, fmt.Errorf("%s: catalog must contain at least one delivery option", op)
	}

	c := &Catalog{
		items:        items,
		itemsByID:    make(map[int]*entity.CatalogItem, len(items)),
		delivery:     delivery,
		deliveryByID: make(map[string]*entity.DeliveryOption, len(delivery)),
	}

	for _, item := range items {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", op, item.ID, err)
		}
		if _, exists := c.itemsByID[item.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate item id %d", op, item.ID)
		}
		c.itemsByID[item.ID] = item
	}

	for _, option := range delivery {
		if err := validateDeliveryOption(option); err != nil {
			return nil, fmt.Errorf("%s: delivery option %q: %w", op, option.ID, err)
		}
		if _, exists := c.deliveryByID[option.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate delivery option id %q", op, option.ID)
		}
		c.deliveryByID[option.ID] = option
	}

	return c, nil
}

// FindItem returns the catalog item with the given id.
func (c *Catalog) FindItem(id int) (*entity.CatalogItem, error) {
	item, ok := c.itemsByID[id]
	if !ok {
		return nil, fmt.Errorf("catalog.FindItem: id %d: %w", id, entity.ErrItemNotFound)
	}
	return item, nil
}

// Items returns all catalog items in definition order.
func (c *Catalog) Items() []*entity.CatalogItem {
	return c.items
}

func (c *Catalog) FindDeliveryOption(id string) (*entity.DeliveryOption, error) {
	option, ok := c.deliveryByID[id]
	if !ok {
		return nil, fmt.Errorf(
			"catalog.FindDeliveryOption: id %q: %w", id, entity.ErrDataNotFound)
	}
	return option, nil
}

func (c *Catalog) DeliveryOptions() []*entity.DeliveryOption {
	return c.delivery
}

// DefaultDeliveryOption is the cheapest tier; it is preselected on new drafts.
func (c *Catalog) DefaultDeliveryOption() *entity.DeliveryOption {
	cheapest := c.delivery[0]
	for _, option := range c.delivery[1:] {
		if option.Price.LessThan(cheapest.Price) {
			cheapest = option
		}
	}
	return cheapest
}

func validateItem(item *entity.CatalogItem) error {
	if item.ID <= 0 {
		return fmt.Errorf("non-positive id: %w", entity.ErrInvalidData)
	}
	if item.Name == "" {
		return fmt.Errorf("empty name: %w", entity.ErrInvalidData)
	}
	if item.UnitPrice.Sign() <= 0 {
		return fmt.Errorf("non-positive unit price: %w", entity.ErrInvalidData)
	}
	if item.MinOrder < 1 {
		return fmt.Errorf("minimum order below 1: %w", entity.ErrInvalidData)
	}
	if len(item.Sizes) == 0 {
		return fmt.Errorf("no permissible container sizes: %w", entity.ErrInvalidData)
	}
	for _, size := range item.Sizes {
		if size == "" {
			return fmt.Errorf("empty container size label: %w", entity.ErrInvalidData)
		}
	}
	return nil
}

func validateDeliveryOption(option *entity.DeliveryOption) error {
	if option.ID == "" || option.Name == "" {
		return fmt.Errorf("empty id or name: %w", entity.ErrInvalidData)
	}
	if option.Price.Sign() < 0 {
		return fmt.Errorf("negative price: %w", entity.ErrInvalidData)
	}
	return nil
}
