package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront/repository"
	"storefront/service"
)

type CheckoutController struct {
	Checkout *service.CheckoutService
}

// Submit handles both price previews and final order placement, depending on
// the place_order flag in the submission.
func (cc *CheckoutController) Submit(c *fiber.Ctx) error {
	var form service.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := cc.Checkout.Checkout(c.Context(), sessionID(c), form)

	var fieldErrs service.ValidationError
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		// Nothing to buy; send the customer back to the catalog.
		return c.Redirect("/api/products", fiber.StatusSeeOther)
	case errors.As(err, &fieldErrs):
		return c.Status(400).JSON(fiber.Map{"errors": fieldErrs})
	case errors.Is(err, repository.ErrStockUnavailable):
		return c.Status(409).JSON(fiber.Map{"error": "insufficient stock for one or more items"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"error": "checkout failed"})
	}

	if result.Order == nil {
		return c.JSON(result.Quote)
	}
	return c.Status(201).JSON(fiber.Map{
		"tracking_id": result.Order.TrackingID,
		"quote":       result.Quote,
		"order":       result.Order,
	})
}
