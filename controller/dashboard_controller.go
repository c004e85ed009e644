package controller

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"storefront/model"
	"storefront/report"
	"storefront/repository"
	"storefront/service"
)

type DashboardController struct {
	Dashboard *service.DashboardService
	Tracking  *service.TrackingService
	Orders    *repository.OrderRepo
	Catalog   *repository.CatalogRepo
}

func (dc *DashboardController) Overview(c *fiber.Ctx) error {
	dash, err := dc.Dashboard.Overview(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to build dashboard"})
	}
	return c.JSON(dash)
}

// Export streams a report. kind is customers or orders, format is csv or
// excel; filenames carry a date stamp. Optional from/to query params
// (2006-01-02) bound the order set, otherwise the full history is exported.
func (dc *DashboardController) Export(c *fiber.Ctx) error {
	kind := c.Params("kind")
	format := c.Params("format")

	var orders []model.Order
	var err error
	if fromParam, toParam := c.Query("from"), c.Query("to"); fromParam != "" || toParam != "" {
		from, to, parseErr := exportRange(fromParam, toParam)
		if parseErr != nil {
			return c.Status(400).JSON(fiber.Map{"error": "from/to must be YYYY-MM-DD dates"})
		}
		orders, err = dc.Orders.CreatedBetween(c.Context(), from, to)
	} else {
		orders, err = dc.Orders.All(c.Context())
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load orders"})
	}

	var table report.Table
	switch kind {
	case "customers":
		table = report.Customers(orders)
	case "orders":
		table = report.Orders(orders)
	default:
		return c.Status(404).JSON(fiber.Map{"error": "unknown report"})
	}

	var buf bytes.Buffer
	switch format {
	case "csv":
		if err := report.WriteCSV(&buf, table); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "export failed"})
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, report.Filename(kind, "csv", time.Now())))
	case "excel":
		if err := report.WriteExcel(&buf, table); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "export failed"})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, report.Filename(kind, "xlsx", time.Now())))
	default:
		return c.Status(404).JSON(fiber.Map{"error": "unknown format"})
	}

	return c.Send(buf.Bytes())
}

// exportRange parses the optional report bounds. A missing from means the
// beginning of time; a missing to means now. The upper bound is exclusive and
// rounded up a day so a date pair covers the whole last day.
func exportRange(fromParam, toParam string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now()
	if fromParam != "" {
		parsed, err := time.Parse("2006-01-02", fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toParam != "" {
		parsed, err := time.Parse("2006-01-02", toParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

// UpdateStatus moves an order through the fulfillment states.
func (dc *DashboardController) UpdateStatus(c *fiber.Ctx) error {
	trackingID, err := uuid.Parse(c.Params("trackingID"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tracking id"})
	}

	var body struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	order, err := dc.Tracking.SetStatus(c.Context(), trackingID, body.Status)
	if errors.Is(err, service.ErrInvalidStatus) {
		return c.Status(400).JSON(fiber.Map{"error": "invalid order status"})
	}
	if errors.Is(err, service.ErrOrderNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "order not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update status"})
	}

	return c.JSON(fiber.Map{
		"tracking_id":  order.TrackingID,
		"status":       order.Status,
		"status_label": model.StatusLabel(order.Status),
	})
}

// ResetStock sets every stock row to a fixed quantity (administrative reset).
func (dc *DashboardController) ResetStock(c *fiber.Ctx) error {
	var body struct {
		Quantity int `json:"quantity" form:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.Quantity < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "quantity must be a non-negative integer"})
	}

	updated, err := dc.Catalog.ResetStock(c.Context(), body.Quantity)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to reset stock"})
	}
	return c.JSON(fiber.Map{"updated": updated, "quantity": body.Quantity})
}
