package repository

import (
	"context"

	"warehouse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *model.Warehouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Warehouse, error)
	ListActive(ctx context.Context) ([]model.Warehouse, error)
}

type warehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, warehouse *model.Warehouse) error {
	return GetDB(ctx, r.db).Create(warehouse).Error
}

func (r *warehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := GetDB(ctx, r.db).First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepository) ListActive(ctx context.Context) ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := GetDB(ctx, r.db).Where("is_active = ?", true).Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}
