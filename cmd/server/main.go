package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/vendops/backend/internal/application/catalog"
	locationapp "github.com/vendops/backend/internal/application/location"
	pricingapp "github.com/vendops/backend/internal/application/pricing"
	"github.com/vendops/backend/internal/infrastructure/auth"
	"github.com/vendops/backend/internal/infrastructure/cache"
	"github.com/vendops/backend/internal/infrastructure/config"
	"github.com/vendops/backend/internal/infrastructure/logger"
	"github.com/vendops/backend/internal/infrastructure/persistence"
	"github.com/vendops/backend/internal/infrastructure/scheduler"
	"github.com/vendops/backend/internal/infrastructure/telemetry"
	"github.com/vendops/backend/internal/interfaces/http/handler"
	"github.com/vendops/backend/internal/interfaces/http/middleware"
	"github.com/vendops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/vendops/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			VendOps Pricing API
//	@version		1.0
//	@description	Vending operations pricing backend - location-scoped price override resolution for product SKUs

//	@contact.name	API Support
//	@contact.url	https://github.com/vendops/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting VendOps Pricing",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize tracing (no-op provider when disabled)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:          true,
			LogFullSQL:       cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh:  cfg.Telemetry.DBSlowQueryThresh,
			DBSystem:         "postgresql",
			WithoutVariables: !cfg.Telemetry.DBLogFullSQL,
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Error("Failed to register database tracing plugin", zap.Error(err))
		}
	}

	// Initialize repositories
	overrideRepo := persistence.NewPriceOverrideRepository(db.DB)
	historyRepo := persistence.NewPriceOverrideHistoryRepository(db.DB)
	productRepo := persistence.NewProductRepository(db.DB)
	areaRepo := persistence.NewAreaRepository(db.DB)

	// Effective-price cache: Redis when configured, in-process otherwise
	var priceCache pricingapp.PriceCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisPriceCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cache.WithPriceTTL(cfg.Cache.PriceTTL))
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		priceCache = redisCache
		log.Info("Redis price cache enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Duration("ttl", cfg.Cache.PriceTTL),
		)
	} else {
		priceCache = cache.NewInMemoryPriceCache(cfg.Cache.PriceTTL)
		log.Info("In-memory price cache enabled", zap.Duration("ttl", cfg.Cache.PriceTTL))
	}

	// Initialize application services
	overrideService := pricingapp.NewOverrideService(overrideRepo, historyRepo, productRepo, areaRepo, priceCache, log)
	resolutionService := pricingapp.NewResolutionService(overrideRepo, productRepo, priceCache, log)
	historyService := pricingapp.NewHistoryService(historyRepo)
	expiryService := pricingapp.NewExpiryService(overrideRepo, historyRepo, priceCache, log)
	productService := catalogapp.NewProductQueryService(productRepo)
	areaService := locationapp.NewAreaQueryService(areaRepo)

	// Token validator for JWTs minted by the external identity service
	tokenValidator := auth.NewTokenValidator(cfg.JWT)

	// Initialize expiry sweeper schedule (if enabled)
	if cfg.Sweeper.Enabled {
		sweepScheduler := scheduler.NewScheduler(scheduler.SchedulerConfig{
			Enabled:           cfg.Sweeper.Enabled,
			MaxConcurrentJobs: cfg.Sweeper.MaxConcurrentJobs,
			JobTimeout:        cfg.Sweeper.JobTimeout,
			RetryAttempts:     cfg.Sweeper.RetryAttempts,
			RetryDelay:        cfg.Sweeper.RetryDelay,
		}, scheduler.NewSweepExecutor(expiryService, log), log)
		if err := sweepScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start sweep scheduler", zap.Error(err))
		}
		defer func() {
			if err := sweepScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping sweep scheduler", zap.Error(err))
			}
		}()

		cronTrigger, err := scheduler.NewCronTrigger(scheduler.CronTriggerConfig{
			Schedule:      cfg.Sweeper.CronSchedule,
			CheckInterval: time.Minute,
		}, sweepScheduler, log)
		if err != nil {
			log.Fatal("Invalid sweeper cron schedule", zap.Error(err))
		}
		if err := cronTrigger.Start(context.Background()); err != nil {
			log.Fatal("Failed to start sweeper cron trigger", zap.Error(err))
		}
		defer func() {
			if err := cronTrigger.Stop(context.Background()); err != nil {
				log.Error("Error stopping sweeper cron trigger", zap.Error(err))
			}
		}()
		log.Info("Expiry sweeper scheduled",
			zap.String("schedule", cfg.Sweeper.CronSchedule),
			zap.Duration("job_timeout", cfg.Sweeper.JobTimeout),
		)
	}

	// Initialize HTTP handlers
	overrideHandler := handler.NewPriceOverrideHandler(overrideService, resolutionService, historyService, expiryService)
	productHandler := handler.NewProductHandler(productService)
	areaHandler := handler.NewAreaHandler(areaService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	// 8. Tracing - Record request spans (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Request tracing (if enabled)
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		swaggerGuard := middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, middleware.JWTAuthMiddleware(tokenValidator))
		engine.GET("/swagger/*any", swaggerGuard, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		Validator: tokenValidator,
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Pricing domain (overrides, resolution, history, expiry)
	pricingRoutes := router.NewDomainGroup("pricing", "/price-overrides")
	pricingRoutes.POST("", overrideHandler.Create)
	pricingRoutes.GET("", overrideHandler.List)
	pricingRoutes.GET("/history", overrideHandler.ListHistory)
	pricingRoutes.POST("/expire", overrideHandler.TriggerExpiry)
	pricingRoutes.GET("/sku/:skuId", overrideHandler.ListBySKU)
	pricingRoutes.GET("/sku/:skuId/effective-price", overrideHandler.GetEffectivePrice)
	pricingRoutes.GET("/:id", overrideHandler.GetByID)
	pricingRoutes.PUT("/:id", overrideHandler.Update)
	pricingRoutes.PATCH("/:id/status", overrideHandler.UpdateStatus)
	pricingRoutes.DELETE("/:id", overrideHandler.Delete)
	pricingRoutes.GET("/:id/history", overrideHandler.ListHistoryByOverride)

	// Catalog domain (read-only SKU data)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)

	// Location domain (read-only area data)
	locationRoutes := router.NewDomainGroup("locations", "/locations")
	locationRoutes.GET("/areas", areaHandler.List)
	locationRoutes.GET("/areas/:id", areaHandler.GetByID)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(pricingRoutes).
		Register(catalogRoutes).
		Register(locationRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
