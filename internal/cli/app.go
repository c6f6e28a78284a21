package cli

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"warehouse/internal/cache"
	"warehouse/internal/config"
	"warehouse/internal/database"
	"warehouse/internal/handler"
	"warehouse/internal/repository"
	"warehouse/internal/scheduler"
	"warehouse/internal/service"
	"warehouse/internal/websocket"
)

// app is the wired dependency graph shared by serve and the job commands
type app struct {
	cfg        *config.Config
	db         *gorm.DB
	hub        *websocket.Hub
	scheduler  *scheduler.Scheduler
	orders     service.ImportOrderService
	statistics service.StatisticsService
	references service.ReferenceService
	audit      service.AuditService
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	log.Printf("Connected to %s database", cfg.Database.Driver)

	store := cache.New(ctx, cfg.Redis)
	hub := websocket.NewHub(cfg.Server.CORSAllowedOrigins)

	// Repository -> Service
	txManager := repository.NewTransactionManager(db)
	orderRepo := repository.NewImportOrderRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)

	auditService := service.NewAuditService(repository.NewAuditRepository(db))
	statisticsService := service.NewStatisticsService(repository.NewStatisticsRepository(db), store, cfg.Redis.TTL)
	referenceService := service.NewReferenceService(warehouseRepo, supplierRepo, productRepo, store, cfg.Redis.TTL)
	orderService := service.NewImportOrderService(service.ImportOrderDeps{
		TxManager:  txManager,
		Orders:     orderRepo,
		Warehouses: warehouseRepo,
		Suppliers:  supplierRepo,
		Products:   productRepo,
		Users:      repository.NewUserRepository(db),
		Audit:      auditService,
		Numbering:  cfg.OrderNumber,
		Events:     service.MultiPublisher{hub, statisticsService},
	})

	jobs, err := scheduler.New(scheduler.DefaultJobs(cfg.Jobs.StatsRefreshSchedule, statisticsService))
	if err != nil {
		database.Close(db)
		return nil, err
	}

	return &app{
		cfg:        cfg,
		db:         db,
		hub:        hub,
		scheduler:  jobs,
		orders:     orderService,
		statistics: statisticsService,
		references: referenceService,
		audit:      auditService,
	}, nil
}

func (a *app) routerConfig() handler.RouterConfig {
	return handler.RouterConfig{
		AllowedOrigins: a.cfg.Server.CORSAllowedOrigins,
		Hub:            a.hub,
		Health:         handler.NewHealthHandler(a.db),
		ImportOrders:   handler.NewImportOrderHandler(a.orders),
		Statistics:     handler.NewStatisticsHandler(a.statistics),
		References:     handler.NewReferenceHandler(a.references),
		Audit:          handler.NewAuditHandler(a.audit),
	}
}

func (a *app) close() {
	a.hub.Stop()
	database.Close(a.db)
}
