package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/dmstancu/workshop-api/internal/config"
	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/database"
	"github.com/dmstancu/workshop-api/internal/handlers"
	"github.com/dmstancu/workshop-api/internal/logger"
	"github.com/dmstancu/workshop-api/internal/middleware"
	"github.com/dmstancu/workshop-api/internal/repository"
	"github.com/dmstancu/workshop-api/internal/services"
	"github.com/dmstancu/workshop-api/internal/storage"
)

func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLog := logger.Get()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		appLog.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		appLog.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DatabaseURL != "" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			appLog.Fatalf("Failed to add indexes: %v", err)
		}
	}
	if cfg.SeedOnStartup {
		if err := database.Seed(); err != nil {
			appLog.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	logoStore, err := storage.NewLogoStore(cfg.UploadDir)
	if err != nil {
		appLog.Fatalf("Failed to initialize logo storage: %v", err)
	}

	r := gin.Default()

	store, err := newSessionStore(cfg)
	if err != nil {
		appLog.Fatalf("Failed to create session store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	mechanicRepo := repository.NewMechanicRepository(db)
	orderRepo := repository.NewWorkOrderRepository(db)

	authService := services.NewAuthService(userRepo, workshopRepo)
	workshopService := services.NewWorkshopService(workshopRepo)
	rosterService := services.NewRosterService(mechanicRepo)
	orderService := services.NewWorkOrderService(orderRepo)
	trackingService := services.NewTrackingService(orderRepo)
	dashboardService := services.NewDashboardService(orderRepo)
	exportService := services.NewExportService()

	authHandler := handlers.NewAuthHandler(authService)
	mechanicHandler := handlers.NewMechanicHandler(rosterService)
	orderHandler := handlers.NewWorkOrderHandler(orderService, exportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)
	adminHandler := handlers.NewAdminHandler(workshopService, authService, logoStore)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Public client tracking: the code is the only credential.
		api.GET("/client/:code", trackingHandler.Lookup)

		mechanics := api.Group("/mechanics")
		mechanics.Use(middleware.RequireAuth())
		{
			mechanics.GET("", mechanicHandler.ListMechanics)
			mechanics.POST("", mechanicHandler.AddMechanic)
			mechanics.DELETE("/:id", mechanicHandler.RemoveMechanic)
		}

		orders := api.Group("/workorders")
		orders.Use(middleware.RequireAuth())
		{
			orders.GET("", orderHandler.ListWorkOrders)
			orders.POST("", orderHandler.CreateWorkOrder)
			orders.GET("/:id", orderHandler.GetWorkOrder)
			orders.DELETE("/:id", orderHandler.DeleteWorkOrder)
			orders.GET("/:id/pdf", orderHandler.ExportWorkOrderPDF)
		}

		api.GET("/dashboard_data", middleware.RequireAuth(), dashboardHandler.GetDashboardData)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/workshops", adminHandler.ListWorkshops)
			admin.POST("/workshops", adminHandler.CreateWorkshop)
			admin.PUT("/workshops/:id/branding", adminHandler.UpdateBranding)
			admin.POST("/users", adminHandler.ProvisionUser)
		}
	}

	appLog.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatalf("Failed to start server: %v", err)
	}
}

// newSessionStore picks Redis-backed sessions when REDIS_HOST is set and
// falls back to signed cookies otherwise.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.RedisHost == "" {
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	return redisStore.NewStore(
		10,        // pool size
		"tcp",     // network type
		redisAddr, // address
		"",        // username
		"",        // password
		[]byte(cfg.SessionSecret),
	)
}
