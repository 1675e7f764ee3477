package catalog

import (
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/shopspring/decimal"
)

// Default returns the compiled-in product line and delivery tiers. It is used
// when no catalog file is configured.
func Default() *Catalog {
	sizes := []string{"55-gallon drum", "275-gallon tote", "1000-gallon tank"}

	items := []*entity.CatalogItem{
		{
			ID:          1,
			Name:        "N-CARE",
			Category:    "Nitrogen Fertilizer",
			Description: "High-efficiency nitrogen fertilizer for optimal crop growth and yield",
			Unit:        "per gallon",
			UnitPrice:   decimal.RequireFromString("14.75"),
			ImageRef:    "/n-care.png",
			Sizes:       sizes,
			MinOrder:    55,
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "K-RUSH",
			Category:    "Potassium Fertilizer",
			Description: "Advanced potassium solution for improved plant health and stress resistance",
			Unit:        "per gallon",
			UnitPrice:   decimal.RequireFromString("16.25"),
			ImageRef:    "/k-rush.png",
			Sizes:       sizes,
			MinOrder:    55,
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "BIOME CARE",
			Category:    "Biological Fertilizer",
			Description: "Beneficial microbial blend for enhanced soil health and root development",
			Unit:        "per gallon",
			UnitPrice:   decimal.RequireFromString("18.50"),
			ImageRef:    "/biome-care.png",
			Sizes:       sizes,
			MinOrder:    55,
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "KARANJA OIL",
			Category:    "Organic Pesticide",
			Description: "Natural organic pesticide derived from karanja tree for pest control",
			Unit:        "per gallon",
			UnitPrice:   decimal.RequireFromString("22.00"),
			ImageRef:    "/karanjaoil.png",
			Sizes:       []string{"55-gallon drum", "275-gallon tote"},
			MinOrder:    55,
			InStock:     true,
		},
	}

	delivery := []*entity.DeliveryOption{
		{
			ID:       "standard",
			Name:     "Standard Delivery",
			Price:    decimal.NewFromInt(150),
			LeadTime: "3-5 business days",
		},
		{
			ID:       "express",
			Name:     "Express Delivery",
			Price:    decimal.NewFromInt(250),
			LeadTime: "1-2 business days",
		},
		{
			ID:       "rush",
			Name:     "Rush Delivery",
			Price:    decimal.NewFromInt(400),
			LeadTime: "Same day (if ordered before 2 PM)",
		},
	}

	c, err := New(items, delivery)
	if err != nil {
		// The compiled-in data is validated by tests; reaching this is a bug.
		panic(err)
	}
	return c
}
