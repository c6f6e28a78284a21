package repository

import (
	"context"
	"fmt"

	"warehouse/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductReceipt ranks products by ordered quantity across import orders
type ProductReceipt struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

type StatisticsRepository interface {
	GetStatusSummary(ctx context.Context) ([]model.ImportOrderStatusCount, error)
	GetTopProducts(ctx context.Context, limit int) ([]ProductReceipt, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) GetStatusSummary(ctx context.Context) ([]model.ImportOrderStatusCount, error) {
	var rows []model.ImportOrderStatusCount
	if err := GetDB(ctx, r.db).Model(&model.ImportOrder{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(final_amount), 0) AS total_amount").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query status summary: %w", err)
	}
	return rows, nil
}

// GetTopProducts ignores cancelled orders
func (r *statisticsRepository) GetTopProducts(ctx context.Context, limit int) ([]ProductReceipt, error) {
	var rankings []ProductReceipt
	if err := GetDB(ctx, r.db).Table("import_order_items").
		Select("products.id AS product_id, products.code AS product_code, products.name AS product_name, "+
			"SUM(import_order_items.quantity_ordered) AS total_quantity, "+
			"SUM(import_order_items.quantity_ordered * import_order_items.unit_price) AS total_value").
		Joins("JOIN products ON products.id = import_order_items.product_id").
		Joins("JOIN import_orders ON import_orders.id = import_order_items.import_order_id").
		Where("import_orders.status <> ?", model.StatusCancelled).
		Group("products.id, products.code, products.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rankings).Error; err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	return rankings, nil
}
