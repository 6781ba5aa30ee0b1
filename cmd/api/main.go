package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/access"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/internal/websocket"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Materials Accounting API
// @version         1.0
// @description     Inventory and accounting backend: materials, supplies, spend records, equipment, users and reports behind a session-authenticated dispatch API.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey SessionAuth
// @in header
// @name X-Session-ID
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	log.Info("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	supplyRepo := repository.NewSupplyRepository(db)
	spendRepo := repository.NewSpendRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := service.NewAuthService(sessionRepo, userRepo)
	userService := service.NewUserService(userRepo)
	materialService := service.NewMaterialService(materialRepo, wsHub)
	supplierService := service.NewSupplierService(supplierRepo)
	supplyService := service.NewSupplyService(supplyRepo, materialRepo, supplierRepo, wsHub)
	spendService := service.NewSpendService(spendRepo, materialRepo, wsHub)
	equipmentService := service.NewEquipmentService(equipmentRepo)
	reportService := service.NewReportService(reportRepo, supplyRepo)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	materialHandler := handler.NewMaterialHandler(materialService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	supplyHandler := handler.NewSupplyHandler(supplyService)
	spendHandler := handler.NewSpendHandler(spendService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService)
	reportHandler := handler.NewReportHandler(reportService)

	status := &handler.ServerStatus{}

	// View descriptor document, one Register per entity view
	registry := uimeta.NewRegistry()
	registry.Register(reportHandler.Descriptor())
	registry.Register(userHandler.Descriptor())
	registry.Register(materialHandler.Descriptor())
	registry.Register(spendHandler.Descriptor())
	registry.Register(supplyHandler.Descriptor())
	registry.Register(supplierHandler.Descriptor())
	registry.Register(equipmentHandler.Descriptor())

	dispatcher := handler.NewDispatcher()
	dispatcher.Register(access.ResourceAuth, authHandler)
	dispatcher.Register(access.ResourceUsers, userHandler)
	dispatcher.Register(access.ResourceMaterials, materialHandler)
	dispatcher.Register(access.ResourceSuppliers, supplierHandler)
	dispatcher.Register(access.ResourceSupplies, supplyHandler)
	dispatcher.Register(access.ResourceSpend, spendHandler)
	dispatcher.Register(access.ResourceEquipment, equipmentHandler)
	dispatcher.Register(access.ResourceReports, reportHandler)
	dispatcher.Register(access.ResourceHealth, handler.NewHealthHandler(status))
	dispatcher.Register(access.ResourceSystem, handler.NewSystemHandler(registry))

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Session-ID", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket stock feed, session-authenticated
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, func(sessionID string) bool {
			return authService.ValidateSession(c.Request.Context(), sessionID)
		})
	})

	// Dispatch route with per-request auth resolution
	dispatcher.RegisterRoutes(router.Group("", middleware.Resolve(authService, userService)))

	// The maintenance flag is raised before the listener starts, so the
	// first health checks already answer 503 while the schema is prepared.
	status.Set(handler.StatusMaintenance)

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server listening")
		if err := router.Run(cfg.Addr()); err != nil {
			log.WithError(err).Fatal("server failed")
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if err := database.SeedAdmin(context.Background(), userRepo, "admin", "admin"); err != nil {
		log.WithError(err).Fatal("failed to seed administrator")
	}
	if authService.RemoveExpiredSessions(context.Background()) {
		log.Info("expired sessions removed")
	}
	status.Set(handler.StatusReady)
	log.Info("server ready")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
}
