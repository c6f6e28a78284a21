package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"warehouse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImportOrderFilter holds the List filters. Zero values are ignored.
type ImportOrderFilter struct {
	WarehouseID        *uuid.UUID
	SupplierID         *uuid.UUID
	Status             model.ImportOrderStatus
	OrderDateFrom      *time.Time
	OrderDateTo        *time.Time
	DeliveryDateFrom   *time.Time
	DeliveryDateTo     *time.Time
	InvoiceNumber      string
	DeliveryNoteNumber string
	Search             string
	Offset             int
	Limit              int
}

type ImportOrderRepository interface {
	FindAll(ctx context.Context, filter ImportOrderFilter) ([]model.ImportOrder, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ImportOrder, error)
	// FindByIDForUpdate loads the header only, row-locked on PostgreSQL
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ImportOrder, error)
	Create(ctx context.Context, order *model.ImportOrder) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []model.ImportOrderItem) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	LastOrderNumber(ctx context.Context, pattern string) (string, error)
}

type importOrderRepository struct {
	db *gorm.DB
}

func NewImportOrderRepository(db *gorm.DB) ImportOrderRepository {
	return &importOrderRepository{db: db}
}

func (r *importOrderRepository) applyFilter(query *gorm.DB, f ImportOrderFilter) *gorm.DB {
	if f.WarehouseID != nil {
		query = query.Where("import_orders.warehouse_id = ?", *f.WarehouseID)
	}
	if f.SupplierID != nil {
		query = query.Where("import_orders.supplier_id = ?", *f.SupplierID)
	}
	if f.Status != "" {
		query = query.Where("import_orders.status = ?", f.Status)
	}
	if f.OrderDateFrom != nil {
		query = query.Where("import_orders.order_date >= ?", *f.OrderDateFrom)
	}
	if f.OrderDateTo != nil {
		query = query.Where("import_orders.order_date <= ?", *f.OrderDateTo)
	}
	if f.DeliveryDateFrom != nil {
		query = query.Where("import_orders.delivery_date >= ?", *f.DeliveryDateFrom)
	}
	if f.DeliveryDateTo != nil {
		query = query.Where("import_orders.delivery_date <= ?", *f.DeliveryDateTo)
	}
	if f.InvoiceNumber != "" {
		query = query.Where("LOWER(import_orders.invoice_number) LIKE ?", "%"+strings.ToLower(f.InvoiceNumber)+"%")
	}
	if f.DeliveryNoteNumber != "" {
		query = query.Where("LOWER(import_orders.delivery_note_number) LIKE ?", "%"+strings.ToLower(f.DeliveryNoteNumber)+"%")
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where(
			"LOWER(import_orders.order_number) LIKE ? OR "+
				"import_orders.warehouse_id IN (SELECT id FROM warehouses WHERE LOWER(name) LIKE ?) OR "+
				"import_orders.supplier_id IN (SELECT id FROM suppliers WHERE LOWER(name) LIKE ?)",
			like, like, like)
	}
	return query
}

func (r *importOrderRepository) FindAll(ctx context.Context, filter ImportOrderFilter) ([]model.ImportOrder, int64, error) {
	var orders []model.ImportOrder
	var total int64

	db := GetDB(ctx, r.db)
	if err := r.applyFilter(db.Model(&model.ImportOrder{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(db.Model(&model.ImportOrder{}), filter).
		Preload("Warehouse").
		Preload("Supplier").
		Preload("Creator").
		Order("import_orders.created_at DESC").
		Order("import_orders.order_number DESC").
		Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *importOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ImportOrder, error) {
	var order model.ImportOrder
	err := GetDB(ctx, r.db).
		Preload("Warehouse").
		Preload("Supplier").
		Preload("Creator").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC").Order("created_at ASC")
		}).
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *importOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ImportOrder, error) {
	var order model.ImportOrder
	db := GetDB(ctx, r.db)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := db.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts the header and then its items. Run it inside a transaction.
func (r *importOrderRepository) Create(ctx context.Context, order *model.ImportOrder) error {
	db := GetDB(ctx, r.db)
	items := order.Items

	if err := db.Omit(clause.Associations).Create(order).Error; err != nil {
		return err
	}
	if err := r.insertItems(db, order.ID, items); err != nil {
		return err
	}
	order.Items = items
	return nil
}

func (r *importOrderRepository) insertItems(db *gorm.DB, orderID uuid.UUID, items []model.ImportOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = uuid.Nil
		items[i].ImportOrderID = orderID
		items[i].LineNo = i + 1
	}
	return db.Omit(clause.Associations).Create(&items).Error
}

func (r *importOrderRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now()
	}
	return GetDB(ctx, r.db).Model(&model.ImportOrder{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceItems swaps the whole item set of an order
func (r *importOrderRepository) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []model.ImportOrderItem) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("import_order_id = ?", orderID).Delete(&model.ImportOrderItem{}).Error; err != nil {
		return err
	}
	return r.insertItems(db, orderID, items)
}

func (r *importOrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	db := GetDB(ctx, r.db)
	if err := db.Where("import_order_id = ?", id).Delete(&model.ImportOrderItem{}).Error; err != nil {
		return false, err
	}
	res := db.Where("id = ?", id).Delete(&model.ImportOrder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// LastOrderNumber returns the greatest order number starting with pattern, or "".
// Longer numbers rank first so a sequence that outgrew its padding stays on top.
func (r *importOrderRepository) LastOrderNumber(ctx context.Context, pattern string) (string, error) {
	var numbers []string
	err := GetDB(ctx, r.db).Model(&model.ImportOrder{}).
		Where(`order_number LIKE ? ESCAPE '\'`, escapeLike(pattern)+"%").
		Order("LENGTH(order_number) DESC, order_number DESC").
		Limit(1).
		Pluck("order_number", &numbers).Error
	if err != nil {
		return "", err
	}
	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes the LIKE wildcards in s
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// IsUniqueViolation reports whether err comes from a unique constraint
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsNotFound reports whether err means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
