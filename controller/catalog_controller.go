package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storefront/repository"
)

type CatalogController struct {
	Catalog *repository.CatalogRepo
}

func (cc *CatalogController) List(c *fiber.Ctx) error {
	products, err := cc.Catalog.ActiveProducts(c.Context(), c.Query("category"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "category not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch products"})
	}
	return c.JSON(products)
}

func (cc *CatalogController) Search(c *fiber.Ctx) error {
	products, err := cc.Catalog.SearchProducts(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "search failed"})
	}
	return c.JSON(products)
}

func (cc *CatalogController) NewArrivals(c *fiber.Ctx) error {
	products, err := cc.Catalog.NewArrivals(c.Context(), 4)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch products"})
	}
	return c.JSON(products)
}

func (cc *CatalogController) Categories(c *fiber.Ctx) error {
	categories, err := cc.Catalog.Categories(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch categories"})
	}
	return c.JSON(categories)
}

// Get returns a product with its variant matrix: per color and size, the
// variant id and whether it is in stock, for the storefront's selector.
func (cc *CatalogController) Get(c *fiber.Ctx) error {
	product, err := cc.Catalog.ProductBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch product"})
	}

	type availability struct {
		VariantID uint `json:"variant_id"`
		Quantity  int  `json:"quantity"`
		InStock   bool `json:"in_stock"`
	}
	matrix := map[uint]map[uint]availability{}
	for _, variant := range product.Variants {
		qty := 0
		if len(variant.Stocks) > 0 {
			qty = variant.Stocks[0].Quantity
		}
		if matrix[variant.ColorID] == nil {
			matrix[variant.ColorID] = map[uint]availability{}
		}
		matrix[variant.ColorID][variant.SizeID] = availability{
			VariantID: variant.ID,
			Quantity:  qty,
			InStock:   qty > 0,
		}
	}

	return c.JSON(fiber.Map{
		"product":  product,
		"variants": matrix,
	})
}
