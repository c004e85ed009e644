package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storefront/cart"
	"storefront/repository"
)

type CartController struct {
	Carts   *cart.Manager
	Catalog *repository.CatalogRepo
}

func sessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals("session_id").(string)
	return sid
}

// Detail returns the cart's enriched items, count and total.
func (cc *CartController) Detail(c *fiber.Ctx) error {
	userCart, err := cc.Carts.Load(c.Context(), sessionID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load cart"})
	}

	variants, err := cc.Catalog.VariantsByIDs(c.Context(), userCart.VariantIDs())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to resolve cart items"})
	}

	return c.JSON(fiber.Map{
		"items": userCart.Items(variants),
		"count": userCart.Count(),
		"total": userCart.Total(),
	})
}

// Add puts a variant in the cart. Quantity defaults to 1 when missing or
// malformed; replace switches accumulate to overwrite.
func (cc *CartController) Add(c *fiber.Ctx) error {
	variantID, err := strconv.Atoi(c.Params("variantID"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid variant id"})
	}

	variant, err := cc.Catalog.VariantByID(c.Context(), uint(variantID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "variant not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch variant"})
	}

	var body struct {
		Quantity int  `json:"quantity" form:"quantity"`
		Replace  bool `json:"replace" form:"replace"`
	}
	if err := c.BodyParser(&body); err != nil || body.Quantity <= 0 {
		body.Quantity = 1
	}

	userCart, err := cc.Carts.Load(c.Context(), sessionID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load cart"})
	}
	userCart.Add(variant, body.Quantity, body.Replace)
	if err := cc.Carts.Persist(c.Context(), userCart); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save cart"})
	}

	return c.JSON(fiber.Map{"count": userCart.Count(), "total": userCart.Total()})
}

// Remove drops a variant from the cart; removing an absent variant succeeds.
func (cc *CartController) Remove(c *fiber.Ctx) error {
	variantID, err := strconv.Atoi(c.Params("variantID"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid variant id"})
	}

	userCart, err := cc.Carts.Load(c.Context(), sessionID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load cart"})
	}
	userCart.Remove(uint(variantID))
	if err := cc.Carts.Persist(c.Context(), userCart); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save cart"})
	}

	return c.JSON(fiber.Map{"count": userCart.Count(), "total": userCart.Total()})
}
