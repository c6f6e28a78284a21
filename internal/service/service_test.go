package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse/internal/cache"
	"warehouse/internal/config"
	"warehouse/internal/database/dbtest"
	"warehouse/internal/repository"
	"warehouse/internal/service"
	"warehouse/pkg/ordernumber"
)

type recordedEvent struct {
	name string
	data interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{name: event, data: data})
}

func (p *fakePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.name
	}
	return out
}

var fixedNow = time.Date(2024, time.December, 1, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	db     *gorm.DB
	fx     dbtest.Fixtures
	orders service.ImportOrderService
	audit  service.AuditService
	stats  service.StatisticsService
	events *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := dbtest.Open(t)
	fx := dbtest.SeedFixtures(t, db)

	orderRepo := repository.NewImportOrderRepository(db)
	auditSvc := service.NewAuditService(repository.NewAuditRepository(db))
	events := &fakePublisher{}
	clock := func() time.Time { return fixedNow }

	svc := service.NewImportOrderService(service.ImportOrderDeps{
		TxManager:  repository.NewTransactionManager(db),
		Orders:     orderRepo,
		Warehouses: repository.NewWarehouseRepository(db),
		Suppliers:  repository.NewSupplierRepository(db),
		Products:   repository.NewProductRepository(db),
		Users:      repository.NewUserRepository(db),
		Audit:      auditSvc,
		Generator:  ordernumber.NewGenerator(orderRepo, ordernumber.WithClock(clock)),
		Numbering:  config.OrderNumberConfig{Prefix: "PNK"},
		Events:     events,
		Now:        clock,
	})

	return &testEnv{
		db:     db,
		fx:     fx,
		orders: svc,
		audit:  auditSvc,
		stats:  service.NewStatisticsService(repository.NewStatisticsRepository(db), cache.NewMemory(), time.Minute),
		events: events,
	}
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// scenarioInput is the two-line order totalling 2005.00
func (e *testEnv) scenarioInput() service.CreateImportOrderInput {
	return service.CreateImportOrderInput{
		WarehouseID:   e.fx.Warehouse.ID,
		SupplierID:    e.fx.Supplier.ID,
		CreatedBy:     e.fx.User.ID,
		InvoiceNumber: "HD-0001",
		Items: []service.ImportOrderItemInput{
			{ProductID: e.fx.Products[0].ID, QuantityOrdered: 10, UnitPrice: price("100.50")},
			{ProductID: e.fx.Products[1].ID, QuantityOrdered: 5, UnitPrice: price("200.00")},
		},
	}
}

func (e *testEnv) mustCreate(t *testing.T) *service.ImportOrderResponse {
	t.Helper()
	res, err := e.orders.Create(context.Background(), e.scenarioInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return res
}
