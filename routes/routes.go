package routes

import (
	"github.com/gofiber/fiber/v2"

	"storefront/cart"
	"storefront/controller"
	"storefront/middleware"
	"storefront/repository"
	"storefront/service"
)

type Deps struct {
	Carts     *cart.Manager
	Catalog   *repository.CatalogRepo
	Orders    *repository.OrderRepo
	Checkout  *service.CheckoutService
	Tracking  *service.TrackingService
	Dashboard *service.DashboardService
	AdminKey  string
}

func Register(app *fiber.App, deps Deps) {
	catalogCtl := &controller.CatalogController{Catalog: deps.Catalog}
	cartCtl := &controller.CartController{Carts: deps.Carts, Catalog: deps.Catalog}
	checkoutCtl := &controller.CheckoutController{Checkout: deps.Checkout}
	trackingCtl := &controller.TrackingController{Tracking: deps.Tracking}
	dashboardCtl := &controller.DashboardController{
		Dashboard: deps.Dashboard,
		Tracking:  deps.Tracking,
		Orders:    deps.Orders,
		Catalog:   deps.Catalog,
	}

	session := middleware.Session()
	admin := middleware.AdminRequired(deps.AdminKey)

	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", catalogCtl.List)
	products.Get("/search", catalogCtl.Search)
	products.Get("/new", catalogCtl.NewArrivals)
	products.Get("/:slug", catalogCtl.Get)
	api.Get("/categories", catalogCtl.Categories)

	cartGroup := api.Group("/cart", session)
	cartGroup.Get("/", cartCtl.Detail)
	cartGroup.Post("/add/:variantID", cartCtl.Add)
	cartGroup.Post("/remove/:variantID", cartCtl.Remove)

	api.Post("/checkout", session, checkoutCtl.Submit)

	ordersGroup := api.Group("/orders")
	ordersGroup.Get("/track", trackingCtl.Track)
	ordersGroup.Get("/:trackingID/invoice", trackingCtl.DownloadInvoice)
	ordersGroup.Post("/:trackingID/invoice/resend", trackingCtl.ResendInvoice)

	adminGroup := api.Group("/admin", admin)
	adminGroup.Get("/dashboard", dashboardCtl.Overview)
	adminGroup.Get("/export/:kind/:format", dashboardCtl.Export)
	adminGroup.Post("/orders/:trackingID/status", dashboardCtl.UpdateStatus)
	adminGroup.Post("/stock/reset", dashboardCtl.ResetStock)
}
