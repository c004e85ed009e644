package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"storefront/model"
	"storefront/service"
)

type TrackingController struct {
	Tracking *service.TrackingService
}

type trackedItem struct {
	Product  string `json:"product"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Track resolves a tracking token to the order's status and line items. The
// token is the only accepted lookup key.
func (tc *TrackingController) Track(c *fiber.Ctx) error {
	trackingID, err := uuid.Parse(c.Query("tracking_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"errors": fiber.Map{"tracking_id": "enter a valid order id"}})
	}

	order, err := tc.Tracking.Track(c.Context(), trackingID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return c.Status(404).JSON(fiber.Map{"errors": fiber.Map{"tracking_id": "Order not found"}})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "tracking lookup failed"})
	}

	items := make([]trackedItem, 0, len(order.Items))
	for _, item := range order.Items {
		entry := trackedItem{Quantity: item.Quantity}
		if item.Variant != nil {
			entry.Product = item.Variant.Product.Name
			entry.Color = item.Variant.Color.Name
			entry.Size = item.Variant.Size.Name
		}
		items = append(items, entry)
	}

	return c.JSON(fiber.Map{
		"tracking_id":  order.TrackingID,
		"status":       order.Status,
		"status_label": model.StatusLabel(order.Status),
		"is_paid":      order.IsPaid,
		"total_price":  order.TotalPrice,
		"created_at":   order.CreatedAt,
		"items":        items,
	})
}

// DownloadInvoice is a placeholder until invoice generation lands; it sends
// the caller back to the tracking view.
func (tc *TrackingController) DownloadInvoice(c *fiber.Ctx) error {
	return c.Redirect(trackURL(c.Params("trackingID")), fiber.StatusSeeOther)
}

// ResendInvoice is a placeholder until invoice generation lands.
func (tc *TrackingController) ResendInvoice(c *fiber.Ctx) error {
	return c.Redirect(trackURL(c.Params("trackingID")), fiber.StatusSeeOther)
}

func trackURL(trackingID string) string {
	return fmt.Sprintf("/api/orders/track?tracking_id=%s", trackingID)
}
