package service

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"warehouse/internal/cache"
	"warehouse/internal/model"
	"warehouse/internal/repository"
	"warehouse/pkg/apperror"
)

const (
	statisticsCacheKey = "import_orders:statistics"
	topProductsLimit   = 5
	invalidateTimeout  = 500 * time.Millisecond
)

// StatusStatistic is the count and value of orders in one status
type StatusStatistic struct {
	Status        model.ImportOrderStatus `json:"status"`
	StatusDisplay string                  `json:"status_display"`
	Count         int64                   `json:"count"`
	TotalValue    string                  `json:"total_value"`
}

// ImportOrderStatistics summarizes every import order.
// TotalValue excludes cancelled orders.
type ImportOrderStatistics struct {
	TotalOrders int64                       `json:"total_orders"`
	TotalValue  string                      `json:"total_value" example:"2005.00"`
	ByStatus    []StatusStatistic           `json:"by_status"`
	TopProducts []repository.ProductReceipt `json:"top_products"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

type StatisticsService interface {
	// GetStatistics serves the cached snapshot, computing it on a miss
	GetStatistics(ctx context.Context) (*ImportOrderStatistics, error)
	// Refresh recomputes the snapshot and stores it in the cache
	Refresh(ctx context.Context) (*ImportOrderStatistics, error)
	Invalidate(ctx context.Context)
	EventPublisher
}

type statisticsService struct {
	repo  repository.StatisticsRepository
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewStatisticsService(repo repository.StatisticsRepository, c cache.Cache, ttl time.Duration) StatisticsService {
	return &statisticsService{repo: repo, cache: c, ttl: ttl, now: time.Now}
}

func (s *statisticsService) GetStatistics(ctx context.Context) (*ImportOrderStatistics, error) {
	var cached ImportOrderStatistics
	ok, err := s.cache.Get(ctx, statisticsCacheKey, &cached)
	if err != nil {
		log.Printf("statistics: cache read failed: %v", err)
	}
	if ok {
		return &cached, nil
	}
	return s.Refresh(ctx)
}

func (s *statisticsService) Refresh(ctx context.Context) (*ImportOrderStatistics, error) {
	rows, err := s.repo.GetStatusSummary(ctx)
	if err != nil {
		return nil, apperror.Database("Failed to compute import order statistics", err)
	}
	top, err := s.repo.GetTopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, apperror.Database("Failed to compute import order statistics", err)
	}

	stats := buildStatistics(rows)
	stats.TopProducts = top
	stats.GeneratedAt = s.now().UTC()

	if err := s.cache.Set(ctx, statisticsCacheKey, stats, s.ttl); err != nil {
		log.Printf("statistics: cache write failed: %v", err)
	}
	return stats, nil
}

func (s *statisticsService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, statisticsCacheKey); err != nil {
		log.Printf("statistics: cache invalidate failed: %v", err)
	}
}

// buildStatistics lists every status, including those without orders, in lifecycle order
func buildStatistics(rows []model.ImportOrderStatusCount) *ImportOrderStatistics {
	byStatus := make(map[model.ImportOrderStatus]model.ImportOrderStatusCount, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r
	}

	stats := &ImportOrderStatistics{}
	total := decimal.Zero
	for _, status := range model.AllStatuses() {
		row := byStatus[status]
		stats.TotalOrders += row.Count
		if status != model.StatusCancelled {
			total = total.Add(row.TotalAmount)
		}
		stats.ByStatus = append(stats.ByStatus, StatusStatistic{
			Status:        status,
			StatusDisplay: status.DisplayName(),
			Count:         row.Count,
			TotalValue:    formatMoney(row.TotalAmount),
		})
	}
	stats.TotalValue = formatMoney(total)
	return stats
}

// Publish drops the cached snapshot whenever an import order changes.
// A slow cache is given at most invalidateTimeout.
func (s *statisticsService) Publish(string, interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()
	s.Invalidate(ctx)
}
