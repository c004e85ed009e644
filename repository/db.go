package repository

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/model"
)

// Connect opens the postgres connection and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	err = db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Color{},
		&model.Size{},
		&model.ProductVariant{},
		&model.StoreLocation{},
		&model.Stock{},
		&model.Order{},
		&model.OrderItem{},
		&model.Invoice{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}
