package catalog

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/shopspring/decimal"
)

type (
	catalogFile struct {
		Products []productSpec  `yaml:"products"`
		Delivery []deliverySpec `yaml:"delivery"`
	}

	productSpec struct {
		ID          int             `yaml:"id"`
		Name        string          `yaml:"name"`
		Category    string          `yaml:"category"`
		Description string          `yaml:"description"`
		Unit        string          `yaml:"unit"`
		UnitPrice   decimal.Decimal `yaml:"unit_price"`
		ImageRef    string          `yaml:"image_ref"`
		Sizes       []string        `yaml:"sizes"`
		MinOrder    int             `yaml:"min_order"`
		InStock     bool            `yaml:"in_stock"`
	}

	deliverySpec struct {
		ID       string          `yaml:"id"`
		Name     string          `yaml:"name"`
		Price    decimal.Decimal `yaml:"price"`
		LeadTime string          `yaml:"lead_time"`
	}
)

// Load builds a catalog from the YAML file at path. An empty path selects the
// compiled-in defaults.
func Load(path string) (*Catalog, error) {
	const op = "catalog.Load"

	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: checking catalog file: %w", op, err)
	}

	var file catalogFile
	if err := cleanenv.ReadConfig(path, &file); err != nil {
		return nil, fmt.Errorf("%s: read catalog file: %w", op, err)
	}

	items := make([]*entity.CatalogItem, 0, len(file.Products))
	for _, p := range file.Products {
		items = append(items, &entity.CatalogItem{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Unit:        p.Unit,
			UnitPrice:   p.UnitPrice,
			ImageRef:    p.ImageRef,
			Sizes:       p.Sizes,
			MinOrder:    p.MinOrder,
			InStock:     p.InStock,
		})
	}

	delivery := make([]*entity.DeliveryOption, 0, len(file.Delivery))
	for _, d := range file.Delivery {
		delivery = append(delivery, &entity.DeliveryOption{
			ID:       d.ID,
			Name:     d.Name,
			Price:    d.Price,
			LeadTime: d.LeadTime,
		})
	}

	c, err := New(items, delivery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}
