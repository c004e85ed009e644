package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
}

type Product struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	CategoryID uint             `gorm:"not null" json:"category_id"`
	Category   Category         `json:"category"`
	Name       string           `gorm:"size:200;not null" json:"name"`
	Slug       string           `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Desc       string           `gorm:"type:text" json:"desc"`
	BasePrice  decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"base_price"`
	IsActive   bool             `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time        `json:"created_at"`
	Variants   []ProductVariant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

type Color struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:50;not null" json:"name"`
	HexCode string `gorm:"size:50" json:"hex_code"`
}

type Size struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:20;not null" json:"name"`
	Order uint   `gorm:"default:0" json:"order"`
}

// ProductVariant is one color/size combination of a product, independently
// priced and stocked. (product, color, size) is unique.
type ProductVariant struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ProductID       uint            `gorm:"not null;uniqueIndex:idx_variant" json:"product_id"`
	Product         Product         `json:"product"`
	ColorID         uint            `gorm:"not null;uniqueIndex:idx_variant" json:"color_id"`
	Color           Color           `json:"color"`
	SizeID          uint            `gorm:"not null;uniqueIndex:idx_variant" json:"size_id"`
	Size            Size            `json:"size"`
	SKU             string          `gorm:"size:100;uniqueIndex" json:"sku"`
	AdditionalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"additional_price"`
	Stocks          []Stock         `gorm:"constraint:OnDelete:CASCADE" json:"stocks,omitempty"`
}

// UnitPrice is the price a cart freezes when the variant is added.
func (v *ProductVariant) UnitPrice() decimal.Decimal {
	return v.Product.BasePrice.Add(v.AdditionalPrice)
}

// BeforeCreate derives the SKU from the product slug and the color/size names
// when one was not supplied.
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.SKU == "" {
		v.SKU = strings.ToUpper(fmt.Sprintf("%s-%s-%s", v.Product.Slug, v.Color.Name, v.Size.Name))
	}
	return nil
}

type StoreLocation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Address  string `gorm:"type:text" json:"address"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// Stock is the quantity of one variant available at one store. Only order
// materialization (decrement) and the admin reset mutate it.
type Stock struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StoreID   uint           `gorm:"not null;uniqueIndex:idx_store_variant" json:"store_id"`
	Store     StoreLocation  `json:"store"`
	VariantID uint           `gorm:"not null;uniqueIndex:idx_store_variant" json:"variant_id"`
	Variant   ProductVariant `json:"variant"`
	Quantity  int            `gorm:"not null;default:0" json:"quantity"`
}
