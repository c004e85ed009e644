package main

import (
	"flag"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"

	"storefront/cache"
	"storefront/cart"
	"storefront/config"
	"storefront/kafka"
	"storefront/repository"
	"storefront/routes"
	"storefront/seed"
	"storefront/service"
)

func main() {
	seedFlag := flag.Bool("seed", false, "populate the database with sample catalog data and exit")
	flag.Parse()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := repository.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if *seedFlag {
		if err := seed.Run(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
		log.Info().Msg("database seeded")
		return
	}

	rdb, err := cache.Connect(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	producer, err := kafka.NewProducer(cfg.KafkaBroker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect kafka")
	}
	defer producer.Close()

	carts := cart.NewManager(cart.NewRedisStore(rdb))
	catalogRepo := repository.NewCatalogRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	checkoutSvc := service.NewCheckoutService(carts, catalogRepo, orderRepo, producer)
	trackingSvc := service.NewTrackingService(orderRepo, producer)
	dashboardSvc := service.NewDashboardService(orderRepo, catalogRepo)

	app := fiber.New()
	app.Use(logger.New())

	routes.Register(app, routes.Deps{
		Carts:     carts,
		Catalog:   catalogRepo,
		Orders:    orderRepo,
		Checkout:  checkoutSvc,
		Tracking:  trackingSvc,
		Dashboard: dashboardSvc,
		AdminKey:  cfg.AdminKey,
	})

	log.Info().Str("addr", cfg.ListenAddr).Msg("storefront listening")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
