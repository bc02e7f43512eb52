package main

import (
	"net/http"
	"time"

	"tastebite-be/internal/cart"
	"tastebite-be/internal/catalog"
	"tastebite-be/internal/checkout"
	"tastebite-be/internal/config"
	"tastebite-be/internal/db"
	"tastebite-be/internal/events"
	"tastebite-be/internal/geo"
	"tastebite-be/internal/kvstore"
	"tastebite-be/internal/logger"
	"tastebite-be/internal/middleware"
	"tastebite-be/internal/order"
	"tastebite-be/internal/payment"
	"tastebite-be/internal/transport"
	"tastebite-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	// durable state (profile, orders) lives in Postgres; the payment-page
	// hand-off lives in Redis with a short TTL
	kv := kvstore.NewPostgresStore(database)
	session := kvstore.NewRedisStore(cfg.RedisAddr, 30*time.Minute)
	defer session.Close()

	catalogSvc, err := catalog.NewService()
	if err != nil {
		logger.L().Fatal("catalog init failed", zap.Error(err))
	}

	provider, err := geo.NewORSProvider(cfg.GeocoderAPIKey, cfg.GeocoderBaseURL)
	if err != nil {
		logger.L().Fatal("geocoder init failed", zap.Error(err))
	}
	gateway := geo.NewGateway(provider)
	routeCache := geo.NewRouteCache()

	bus := events.NewBus()
	scheduler := order.NewScheduler(time.Minute)
	orders, err := order.NewStore(kv, gateway, scheduler, bus, cfg.RestaurantAddress)
	if err != nil {
		logger.L().Fatal("order store init failed", zap.Error(err))
	}

	cartSvc := cart.New()
	userSvc := user.NewService(kv, bus, orders)
	charger := payment.NewSimulatedGateway()
	checkoutSvc := checkout.NewService(cartSvc, orders, gateway, charger, session)

	handler := transport.NewHandler(catalogSvc, cartSvc, orders, userSvc, checkoutSvc, gateway, routeCache)

	var root http.Handler = handler.Routes()
	root = middleware.RateLimitMiddleware(root)
	root = middleware.AuthMiddleware(root)
	root = middleware.LoggingMiddleware(root)
	root = middleware.CORS(root)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, root); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
