package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ridepool/internal/config"
	"ridepool/internal/handlers"
	"ridepool/internal/middleware"
	"ridepool/internal/repositories/mongodb"
	"ridepool/internal/services"
	"ridepool/pkg/cache"
	"ridepool/pkg/database"
	"ridepool/pkg/logger"
	"ridepool/pkg/maps"
	"ridepool/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	// A missing cache is not fatal, ride reads just go straight to the store.
	var rideCache mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, continuing without ride cache")
		} else {
			rideCache = redisCache
			defer redisCache.Close()
		}
	}

	var geocoder maps.GeocodingProvider
	if cfg.Maps.Enabled {
		provider, err := maps.NewGoogleMapsProvider(cfg.Maps.GoogleAPIKey)
		if err != nil {
			appLogger.WithError(err).Warn("Google Maps unavailable, rides will not be geocoded")
		} else {
			geocoder = provider
		}
	}

	rideRepo := mongodb.NewRideRepository(db.Database, cfg.Database.RidesCollection, rideCache)
	requestRepo := mongodb.NewRideRequestRepository(db.Database, cfg.Database.RideRequestsCollection)
	notificationRepo := mongodb.NewNotificationRepository(db.Database, cfg.Database.NotificationsCollection)

	notificationService := services.NewNotificationService(notificationRepo, appLogger)
	seatLedger := services.NewSeatLedger(rideRepo, appLogger)
	requestService := services.NewRideRequestService(requestRepo, seatLedger, notificationService, appLogger)
	rideService := services.NewRideService(rideRepo, requestRepo, notificationService, geocoder, appLogger)

	rideHandler := handlers.NewRideHandler(rideService)
	requestHandler := handlers.NewRideRequestHandler(requestService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())

	v1 := router.Group("/api/v1")
	{
		routes.SetupRideRoutes(v1, cfg.Security.JWTSecret, rideHandler, requestHandler)
		routes.SetupRideRequestRoutes(v1, cfg.Security.JWTSecret, requestHandler)
		routes.SetupNotificationRoutes(v1, cfg.Security.JWTSecret, notificationHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server exited: %v", err)
	}
}
