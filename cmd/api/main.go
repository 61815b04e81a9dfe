package main

import (
	"log"

	"pos-shipment-tracking/internal/core/cache"
	"pos-shipment-tracking/internal/core/config"
	"pos-shipment-tracking/internal/core/logger"
	"pos-shipment-tracking/internal/core/server"
	authadapter "pos-shipment-tracking/internal/features/auth/adapters"
	authhandler "pos-shipment-tracking/internal/features/auth/handler"
	authservice "pos-shipment-tracking/internal/features/auth/service"
	trackingadapter "pos-shipment-tracking/internal/features/trackings/adapters"
	trackinghandler "pos-shipment-tracking/internal/features/trackings/handler"
	trackingservice "pos-shipment-tracking/internal/features/trackings/service"

	"go.uber.org/zap"
)

// @title POS Shipment Tracking API
// @version 1.0
// @description REST API for attaching shipment-tracking entries to WooCommerce orders from a POS integration.
// @contact.name API Support
// @contact.email support@doctorsstudio.com
// @license.name MIT
// @host localhost:8080
// @BasePath /ds-shipment/v1
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize order store and run Health Check
	wcStore := trackingadapter.NewWooCommerceStore(cfg.WooCommerce)
	if err := wcStore.HealthCheck(); err != nil {
		l.Fatal("WooCommerce Health Check Failed", zap.Error(err))
	}
	l.Info("WooCommerce connection verified")

	// Initialize credential store backed by Redis
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	credStore := authadapter.NewRedisCredentialStore(redisCache)
	authSvc := authservice.NewAuthService(credStore)

	// Initialize tracking manager & handler
	trackingMgr := trackingservice.NewTrackingManager(wcStore)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingMgr)

	srv := server.New(cfg)

	// Register routes; authorization runs before any handler logic
	v1 := srv.App.Group("/ds-shipment/v1", authhandler.New(authSvc))
	v1.Get("/orders/:order_id/trackings", trackingHdl.ListTrackings)
	v1.Post("/orders/:order_id/trackings", trackingHdl.CreateTracking)
	v1.Delete("/orders/:order_id/trackings/:tracking_id", trackingHdl.DeleteTracking)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
