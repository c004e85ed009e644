// Package seed populates an empty database with a small sample catalog for
// local development.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/model"
)

// Run inserts the sample categories, products, variants and stock. It is
// idempotent: existing rows are left alone.
func Run(db *gorm.DB) error {
	categories := []model.Category{
		{Name: "Clothes", Slug: "clothes"},
		{Name: "Accessories", Slug: "accessories"},
	}
	for i := range categories {
		err := db.Where(model.Category{Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error
		if err != nil {
			return fmt.Errorf("seed category %s: %w", categories[i].Slug, err)
		}
	}

	colors := []model.Color{
		{Name: "Sage Green", HexCode: "#A8C3BC"},
		{Name: "Rust Red", HexCode: "#8B4513"},
		{Name: "Beige", HexCode: "#F5F5DC"},
		{Name: "Mustard Yellow", HexCode: "#E1AD01"},
	}
	for i := range colors {
		err := db.Where(model.Color{Name: colors[i].Name}).FirstOrCreate(&colors[i]).Error
		if err != nil {
			return fmt.Errorf("seed color %s: %w", colors[i].Name, err)
		}
	}

	sizes := []model.Size{
		{Name: "0-3M", Order: 1},
		{Name: "3-6M", Order: 2},
		{Name: "6-9M", Order: 3},
	}
	for i := range sizes {
		err := db.Where(model.Size{Name: sizes[i].Name}).FirstOrCreate(&sizes[i]).Error
		if err != nil {
			return fmt.Errorf("seed size %s: %w", sizes[i].Name, err)
		}
	}

	products := []model.Product{
		{
			Name:       "Unisex Organic Romper",
			Slug:       "organic-romper",
			Desc:       "Soft organic cotton romper for your little one.",
			CategoryID: categories[0].ID,
			BasePrice:  decimal.NewFromInt(25),
			IsActive:   true,
		},
		{
			Name:       "Sun Bucket Hat",
			Slug:       "bucket-hat",
			Desc:       "Protect your baby from the sun in style.",
			CategoryID: categories[1].ID,
			BasePrice:  decimal.NewFromInt(15),
			IsActive:   true,
		},
		{
			Name:       "Cozy Knit Sweater",
			Slug:       "knit-sweater",
			Desc:       "Warm and stylish knit sweater for easier seasons.",
			CategoryID: categories[0].ID,
			BasePrice:  decimal.NewFromInt(35),
			IsActive:   true,
		},
	}
	for i := range products {
		err := db.Where(model.Product{Slug: products[i].Slug}).FirstOrCreate(&products[i]).Error
		if err != nil {
			return fmt.Errorf("seed product %s: %w", products[i].Slug, err)
		}
	}

	store := model.StoreLocation{Name: "Main Warehouse", Address: "Cairo", IsActive: true}
	if err := db.Where(model.StoreLocation{Name: store.Name}).FirstOrCreate(&store).Error; err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	for _, product := range products {
		for _, color := range colors[:2] {
			for _, size := range sizes {
				variant := model.ProductVariant{
					ProductID: product.ID,
					Product:   product,
					ColorID:   color.ID,
					Color:     color,
					SizeID:    size.ID,
					Size:      size,
				}
				err := db.Where(model.ProductVariant{
					ProductID: product.ID,
					ColorID:   color.ID,
					SizeID:    size.ID,
				}).FirstOrCreate(&variant).Error
				if err != nil {
					return fmt.Errorf("seed variant for %s: %w", product.Slug, err)
				}

				stock := model.Stock{StoreID: store.ID, VariantID: variant.ID, Quantity: 15}
				err = db.Where(model.Stock{StoreID: store.ID, VariantID: variant.ID}).
					FirstOrCreate(&stock).Error
				if err != nil {
					return fmt.Errorf("seed stock for variant %d: %w", variant.ID, err)
				}
			}
		}
	}
	return nil
}
