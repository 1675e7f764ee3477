package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saharshred/renu-biome/internal/catalog"
	"github.com/saharshred/renu-biome/internal/entity"

	"github.com/shopspring/decimal"
)

func validItems() []*entity.CatalogItem {
	return []*entity.CatalogItem{
		{
			ID:        1,
			Name:      "N-CARE",
			Unit:      "per gallon",
			UnitPrice: decimal.RequireFromString("14.75"),
			Sizes:     []string{"55-gallon drum"},
			MinOrder:  55,
			InStock:   true,
		},
	}
}

func validDelivery() []*entity.DeliveryOption {
	return []*entity.DeliveryOption{
		{ID: "standard", Name: "Standard Delivery", Price: decimal.NewFromInt(150), LeadTime: "3-5 business days"},
		{ID: "express", Name: "Express Delivery", Price: decimal.NewFromInt(250), LeadTime: "1-2 business days"},
	}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		desc     string
		items    func() []*entity.CatalogItem
		delivery func() []*entity.DeliveryOption
		wantErr  bool
	}{
		{
			desc:     "Valid",
			items:    validItems,
			delivery: validDelivery,
		},
		{
			desc:     "NoItems",
			items:    func() []*entity.CatalogItem { return nil },
			delivery: validDelivery,
			wantErr:  true,
		},
		{
			desc:  "NoDeliveryOptions",
			items: validItems,
			delivery: func() []*entity.DeliveryOption {
				return nil
			},
			wantErr: true,
		},
		{
			desc: "DuplicateItemID",
			items: func() []*entity.CatalogItem {
				items := validItems()
				return append(items, items[0])
			},
			delivery: validDelivery,
			wantErr:  true,
		},
		{
			desc: "DuplicateDeliveryID",
			items: validItems,
			delivery: func() []*entity.DeliveryOption {
				delivery := validDelivery()
				return append(delivery, delivery[0])
			},
			wantErr: true,
		},
		{
			desc: "NonPositiveUnitPrice",
			items: func() []*entity.CatalogItem {
				items := validItems()
				items[0].UnitPrice = decimal.Zero
				return items
			},
			delivery: validDelivery,
			wantErr:  true,
		},
		{
			desc: "NoContainerSizes",
			items: func() []*entity.CatalogItem {
				items := validItems()
				items[0].Sizes = nil
				return items
			},
			delivery: validDelivery,
			wantErr:  true,
		},
		{
			desc: "MinOrderBelowOne",
			items: func() []*entity.CatalogItem {
				items := validItems()
				items[0].MinOrder = 0
				return items
			},
			delivery: validDelivery,
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := catalog.New(tc.items(), tc.delivery())

			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestCatalog_FindItem(t *testing.T) {
	c, err := catalog.New(validItems(), validDelivery())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	item, err := c.FindItem(1)
	if err != nil {
		t.Fatalf("expected item 1, got error %v", err)
	}
	if item.Name != "N-CARE" {
		t.Fatalf("expected N-CARE, got %q", item.Name)
	}

	if _, err := c.FindItem(42); !errors.Is(err, entity.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCatalog_FindDeliveryOption(t *testing.T) {
	c, err := catalog.New(validItems(), validDelivery())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	option, err := c.FindDeliveryOption("express")
	if err != nil {
		t.Fatalf("expected express option, got error %v", err)
	}
	if !option.Price.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected price 250, got %s", option.Price)
	}

	if _, err := c.FindDeliveryOption("drone"); !errors.Is(err, entity.ErrDataNotFound) {
		t.Fatalf("expected ErrDataNotFound, got %v", err)
	}
}

func TestCatalog_DefaultDeliveryOption(t *testing.T) {
	// The default must be the cheapest tier regardless of definition order.
	delivery := []*entity.DeliveryOption{
		{ID: "express", Name: "Express Delivery", Price: decimal.NewFromInt(250), LeadTime: "1-2 business days"},
		{ID: "standard", Name: "Standard Delivery", Price: decimal.NewFromInt(150), LeadTime: "3-5 business days"},
		{ID: "rush", Name: "Rush Delivery", Price: decimal.NewFromInt(400), LeadTime: "Next business day"},
	}

	c, err := catalog.New(validItems(), delivery)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	if got := c.DefaultDeliveryOption().ID; got != "standard" {
		t.Fatalf("expected cheapest option standard, got %q", got)
	}
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPathUsesDefaults", func(t *testing.T) {
		c, err := catalog.Load("")
		if err != nil {
			t.Fatalf("expected defaults, got error %v", err)
		}
		if len(c.Items()) == 0 || len(c.DeliveryOptions()) == 0 {
			t.Fatal("default catalog is empty")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := catalog.Load("/nonexistent/catalog.yaml"); err == nil {
			t.Fatal("expected error for missing file, got nil")
		}
	})

	t.Run("ValidFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `products:
  - id: 7
    name: "TEST-MIX"
    category: "Test"
    unit: "per gallon"
    unit_price: "9.99"
    sizes:
      - "55-gallon drum"
    min_order: 10
    in_stock: true
delivery:
  - id: "standard"
    name: "Standard Delivery"
    price: "100"
    lead_time: "3-5 business days"
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write catalog file: %v", err)
		}

		c, err := catalog.Load(path)
		if err != nil {
			t.Fatalf("expected catalog, got error %v", err)
		}

		item, err := c.FindItem(7)
		if err != nil {
			t.Fatalf("expected item 7, got error %v", err)
		}
		if !item.UnitPrice.Equal(decimal.RequireFromString("9.99")) {
			t.Fatalf("expected unit price 9.99, got %s", item.UnitPrice)
		}
	})

	t.Run("InvalidContent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if err := os.WriteFile(path, []byte("products: []\ndelivery: []\n"), 0o600); err != nil {
			t.Fatalf("failed to write catalog file: %v", err)
		}

		if _, err := catalog.Load(path); err == nil {
			t.Fatal("expected error for empty catalog, got nil")
		}
	})
}
