package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/database"
	"github.com/dmstancu/workshop-api/internal/middleware"
	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
	"github.com/dmstancu/workshop-api/internal/services"
	"github.com/dmstancu/workshop-api/internal/storage"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService      *services.AuthService
	rosterService    *services.RosterService
	orderService     *services.WorkOrderService
	workshopService  *services.WorkshopService
	trackingService  *services.TrackingService
	dashboardService *services.DashboardService
}

// setupTestEnv builds an in-memory database and a router mirroring the
// production route table.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&models.Workshop{},
		&models.User{},
		&models.Mechanic{},
		&models.WorkOrder{},
		&models.LineItem{},
	))

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	mechanicRepo := repository.NewMechanicRepository(db)
	orderRepo := repository.NewWorkOrderRepository(db)

	env := &testEnv{
		db:               db,
		authService:      services.NewAuthService(userRepo, workshopRepo),
		rosterService:    services.NewRosterService(mechanicRepo),
		orderService:     services.NewWorkOrderService(orderRepo),
		workshopService:  services.NewWorkshopService(workshopRepo),
		trackingService:  services.NewTrackingService(orderRepo),
		dashboardService: services.NewDashboardService(orderRepo),
	}

	logoStore, err := storage.NewLogoStore(t.TempDir())
	require.NoError(t, err)

	authHandler := NewAuthHandler(env.authService)
	mechanicHandler := NewMechanicHandler(env.rosterService)
	orderHandler := NewWorkOrderHandler(env.orderService, services.NewExportService())
	dashboardHandler := NewDashboardHandler(env.dashboardService)
	trackingHandler := NewTrackingHandler(env.trackingService)
	adminHandler := NewAdminHandler(env.workshopService, env.authService, logoStore)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	api.GET("/client/:code", trackingHandler.Lookup)

	mechanics := api.Group("/mechanics", middleware.RequireAuth())
	mechanics.GET("", mechanicHandler.ListMechanics)
	mechanics.POST("", mechanicHandler.AddMechanic)
	mechanics.DELETE("/:id", mechanicHandler.RemoveMechanic)

	orders := api.Group("/workorders", middleware.RequireAuth())
	orders.GET("", orderHandler.ListWorkOrders)
	orders.POST("", orderHandler.CreateWorkOrder)
	orders.GET("/:id", orderHandler.GetWorkOrder)
	orders.DELETE("/:id", orderHandler.DeleteWorkOrder)
	orders.GET("/:id/pdf", orderHandler.ExportWorkOrderPDF)

	api.GET("/dashboard_data", middleware.RequireAuth(), dashboardHandler.GetDashboardData)

	admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/workshops", adminHandler.ListWorkshops)
	admin.POST("/workshops", adminHandler.CreateWorkshop)
	admin.PUT("/workshops/:id/branding", adminHandler.UpdateBranding)
	admin.POST("/users", adminHandler.ProvisionUser)

	env.router = r
	return env
}

func (e *testEnv) createWorkshop(t *testing.T, name string) *models.Workshop {
	t.Helper()
	workshop, err := e.workshopService.CreateWorkshop(name)
	require.NoError(t, err)
	return workshop
}

func (e *testEnv) createUser(t *testing.T, username string, role models.UserRole, workshopID uint64) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("parola123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		WorkshopID:   workshopID,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

// login performs a real login request and returns the session cookies.
func (e *testEnv) login(t *testing.T, username string) []*http.Cookie {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": "parola123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func (e *testEnv) do(t *testing.T, method, path string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
