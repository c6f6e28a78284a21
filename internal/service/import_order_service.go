package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"warehouse/internal/config"
	"warehouse/internal/model"
	"warehouse/internal/repository"
	"warehouse/pkg/apperror"
	"warehouse/pkg/ordernumber"
	"warehouse/pkg/pagination"
)

const (
	maxCreateAttempts = 3
	MaxExportRows     = 1000
)

type ImportOrderService interface {
	List(ctx context.Context, q ListImportOrdersQuery) ([]ImportOrderResponse, pagination.Meta, error)
	// Export returns up to MaxExportRows orders matching the List filters, ignoring pagination
	Export(ctx context.Context, q ListImportOrdersQuery) ([]ImportOrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ImportOrderResponse, error)
	Create(ctx context.Context, in CreateImportOrderInput) (*ImportOrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateImportOrderInput) (*ImportOrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ImportOrderStatus) (*ImportOrderResponse, error)
	Receive(ctx context.Context, id uuid.UUID, in ReceiveImportOrderInput) (*ImportOrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// NextOrderNumber previews the number the next Create would allocate
	NextOrderNumber(ctx context.Context, warehouseCode string) string
}

type importOrderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.ImportOrderRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	auditService  AuditService
	generator     *ordernumber.Generator
	numbering     config.OrderNumberConfig
	events        EventPublisher
	now           func() time.Time
}

// ImportOrderDeps bundles the collaborators of the import order service
type ImportOrderDeps struct {
	TxManager  repository.TransactionManager
	Orders     repository.ImportOrderRepository
	Warehouses repository.WarehouseRepository
	Suppliers  repository.SupplierRepository
	Products   repository.ProductRepository
	Users      repository.UserRepository
	Audit      AuditService
	Generator  *ordernumber.Generator
	Numbering  config.OrderNumberConfig
	Events     EventPublisher
	Now        func() time.Time
}

func NewImportOrderService(deps ImportOrderDeps) ImportOrderService {
	s := &importOrderService{
		txManager:     deps.TxManager,
		orderRepo:     deps.Orders,
		warehouseRepo: deps.Warehouses,
		supplierRepo:  deps.Suppliers,
		productRepo:   deps.Products,
		userRepo:      deps.Users,
		auditService:  deps.Audit,
		generator:     deps.Generator,
		numbering:     deps.Numbering,
		events:        deps.Events,
		now:           deps.Now,
	}
	if s.generator == nil {
		s.generator = ordernumber.NewGenerator(deps.Orders)
	}
	if s.events == nil {
		s.events = noopPublisher{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *importOrderService) toFilter(q ListImportOrdersQuery) (repository.ImportOrderFilter, pagination.Params, error) {
	var errs []apperror.FieldError
	filter := repository.ImportOrderFilter{
		InvoiceNumber:      q.InvoiceNumber,
		DeliveryNoteNumber: q.DeliveryNoteNumber,
		Search:             q.Search,
	}

	parseID := func(field, raw string) *uuid.UUID {
		if raw == "" {
			return nil
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, apperror.FieldError{Field: field, Message: "must be a valid UUID"})
			return nil
		}
		return &id
	}
	parseDay := func(field, raw string) *time.Time {
		if raw == "" {
			return nil
		}
		t, err := ParseDate(raw)
		if err != nil {
			errs = append(errs, apperror.FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
			return nil
		}
		return &t
	}

	filter.WarehouseID = parseID("warehouse_id", q.WarehouseID)
	filter.SupplierID = parseID("supplier_id", q.SupplierID)
	filter.OrderDateFrom = parseDay("order_date_from", q.OrderDateFrom)
	filter.OrderDateTo = parseDay("order_date_to", q.OrderDateTo)
	filter.DeliveryDateFrom = parseDay("delivery_date_from", q.DeliveryDateFrom)
	filter.DeliveryDateTo = parseDay("delivery_date_to", q.DeliveryDateTo)

	if q.Status != "" {
		status := model.ImportOrderStatus(q.Status)
		if !status.IsValid() {
			errs = append(errs, apperror.FieldError{Field: "status", Message: "must be one of draft, pending, partial, received, cancelled"})
		}
		filter.Status = status
	}

	if len(errs) > 0 {
		return filter, pagination.Params{}, apperror.Validation("Invalid filters", errs...)
	}

	page := pagination.New(q.Page, q.Limit)
	filter.Offset = page.Offset
	filter.Limit = page.Limit
	return filter, page, nil
}

func (s *importOrderService) List(ctx context.Context, q ListImportOrdersQuery) ([]ImportOrderResponse, pagination.Meta, error) {
	filter, page, err := s.toFilter(q)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	orders, total, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, apperror.Database("Failed to list import orders", err)
	}

	res := make([]ImportOrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, toImportOrderResponse(&orders[i]))
	}
	return res, pagination.NewMeta(page.Page, page.Limit, total), nil
}

func (s *importOrderService) Export(ctx context.Context, q ListImportOrdersQuery) ([]ImportOrderResponse, error) {
	filter, _, err := s.toFilter(q)
	if err != nil {
		return nil, err
	}
	filter.Offset = 0
	filter.Limit = MaxExportRows

	orders, _, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperror.Database("Failed to export import orders", err)
	}

	res := make([]ImportOrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, toImportOrderResponse(&orders[i]))
	}
	return res, nil
}

func (s *importOrderService) GetByID(ctx context.Context, id uuid.UUID) (*ImportOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify("Failed to load import order", err, id)
	}
	res := toImportOrderResponse(order)
	return &res, nil
}

func (s *importOrderService) Create(ctx context.Context, in CreateImportOrderInput) (*ImportOrderResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	generated := strings.TrimSpace(in.OrderNumber) == ""
	var created *model.ImportOrder

	for attempt := 1; ; attempt++ {
		err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			warehouse, err := s.checkReferences(txCtx, &in.WarehouseID, &in.SupplierID, &in.CreatedBy, productIDs(in.Items))
			if err != nil {
				return err
			}

			order := in.toModel(s.now())
			if generated {
				order.OrderNumber = s.generator.Generate(txCtx, s.numbering.Prefix, s.numbering.Options(warehouse.Code))
			}

			if err := s.orderRepo.Create(txCtx, order); err != nil {
				return err
			}

			if err := s.auditService.Record(txCtx, AuditEntry{
				UserID:     &order.CreatedBy,
				Action:     model.ActionCreateImportOrder,
				EntityID:   order.ID.String(),
				EntityName: order.OrderNumber,
				Details: map[string]interface{}{
					"status":       order.Status,
					"item_count":   len(order.Items),
					"total_amount": formatMoney(order.TotalAmount),
				},
			}); err != nil {
				return err
			}

			created = order
			return nil
		})
		if err == nil {
			break
		}

		if repository.IsUniqueViolation(err) {
			if generated && attempt < maxCreateAttempts {
				log.Printf("import order: order number collision on attempt %d, retrying", attempt)
				continue
			}
			if generated {
				return nil, apperror.Conflict("Could not allocate a unique order number, please retry")
			}
			return nil, apperror.Conflict("Order number %s already exists", in.OrderNumber)
		}
		return nil, s.classify("Failed to create import order", err, uuid.Nil)
	}

	log.Printf("import order created: id=%s number=%s items=%d total=%s",
		created.ID, created.OrderNumber, len(created.Items), formatMoney(created.TotalAmount))

	res, err := s.GetByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	s.events.Publish(EventImportOrderCreated, res)
	return res, nil
}

func (s *importOrderService) Update(ctx context.Context, id uuid.UUID, in UpdateImportOrderInput) (*ImportOrderResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var orderNumber string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.orderRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !current.Status.IsEditable() {
			return apperror.BusinessRule("Import order %s cannot be edited in status %s", current.OrderNumber, current.Status)
		}
		orderNumber = current.OrderNumber

		orderDate := current.OrderDate
		if d := datePtr(in.OrderDate); d != nil {
			orderDate = *d
		}
		deliveryDate := current.DeliveryDate
		if in.DeliveryDate.Set {
			deliveryDate = datePtr(in.DeliveryDate.Value)
		}
		if deliveryDate != nil && dateOnly(*deliveryDate).Before(dateOnly(orderDate)) {
			return apperror.Validation("Invalid import order update",
				apperror.FieldError{Field: "delivery_date", Message: "must not be before order_date"})
		}

		var ids []uuid.UUID
		if in.Items != nil {
			ids = productIDs(*in.Items)
		}
		if _, err := s.checkReferences(txCtx, in.WarehouseID, in.SupplierID, nil, ids); err != nil {
			return err
		}

		fields := in.fields()
		if in.Items != nil {
			items := itemModels(*in.Items)
			if err := s.orderRepo.ReplaceItems(txCtx, id, items); err != nil {
				return err
			}
			total := model.CalculateTotalAmount(items)
			fields["total_amount"] = total
			fields["final_amount"] = model.CalculateFinalAmount(total)
		}

		if err := s.orderRepo.Update(txCtx, id, fields); err != nil {
			return err
		}

		changed := make([]string, 0, len(fields))
		for k := range fields {
			if k != "updated_at" {
				changed = append(changed, k)
			}
		}
		details := map[string]interface{}{"changed_fields": changed, "items_replaced": in.Items != nil}
		actor, err := s.auditActor(txCtx, details)
		if err != nil {
			return err
		}
		return s.auditService.Record(txCtx, AuditEntry{
			UserID:     actor,
			Action:     model.ActionUpdateImportOrder,
			EntityID:   id.String(),
			EntityName: current.OrderNumber,
			Details:    details,
		})
	})
	if err != nil {
		return nil, s.classify("Failed to update import order", err, id)
	}

	log.Printf("import order updated: id=%s number=%s", id, orderNumber)

	res, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.events.Publish(EventImportOrderUpdated, res)
	return res, nil
}

func (s *importOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ImportOrderStatus) (*ImportOrderResponse, error) {
	return s.changeStatus(ctx, id, status, nil)
}

func (s *importOrderService) Receive(ctx context.Context, id uuid.UUID, in ReceiveImportOrderInput) (*ImportOrderResponse, error) {
	extra := map[string]interface{}{}
	if d := datePtr(in.ReceivedDate); d != nil {
		extra["received_date"] = d
	}
	if in.WarehouseKeeper != nil {
		extra["warehouse_keeper"] = *in.WarehouseKeeper
	}
	if in.Accountant != nil {
		extra["accountant"] = *in.Accountant
	}
	return s.changeStatus(ctx, id, model.StatusReceived, extra)
}

// changeStatus applies one transition of the status policy together with any extra columns
func (s *importOrderService) changeStatus(ctx context.Context, id uuid.UUID, target model.ImportOrderStatus, extra map[string]interface{}) (*ImportOrderResponse, error) {
	if !target.IsValid() {
		return nil, apperror.Validation("Invalid status",
			apperror.FieldError{Field: "status", Message: "must be one of draft, pending, partial, received, cancelled"})
	}

	var from model.ImportOrderStatus
	var orderNumber string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.orderRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !model.IsValidTransition(current.Status, target) {
			return apperror.BusinessRule("Invalid status transition from %s to %s", current.Status, target)
		}
		from, orderNumber = current.Status, current.OrderNumber

		fields := map[string]interface{}{"status": target}
		for k, v := range extra {
			fields[k] = v
		}
		if _, ok := fields["received_date"]; target == model.StatusReceived && !ok && current.ReceivedDate == nil {
			fields["received_date"] = dateOnly(s.now())
		}

		if err := s.orderRepo.Update(txCtx, id, fields); err != nil {
			return err
		}

		details := map[string]interface{}{"from": current.Status, "to": target}
		actor, err := s.auditActor(txCtx, details)
		if err != nil {
			return err
		}
		return s.auditService.Record(txCtx, AuditEntry{
			UserID:     actor,
			Action:     model.ActionChangeImportOrderStatus,
			EntityID:   id.String(),
			EntityName: current.OrderNumber,
			Details:    details,
		})
	})
	if err != nil {
		return nil, s.classify("Failed to update import order status", err, id)
	}

	log.Printf("import order status changed: number=%s %s -> %s", orderNumber, from, target)

	res, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.events.Publish(EventImportOrderStatusChanged, map[string]interface{}{
		"id":           res.ID,
		"order_number": res.OrderNumber,
		"from":         from,
		"to":           target,
		"order":        res,
	})
	return res, nil
}

func (s *importOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	var orderNumber string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.orderRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !current.Status.IsDeletable() {
			return apperror.BusinessRule("Import order %s cannot be deleted in status %s", current.OrderNumber, current.Status)
		}
		orderNumber = current.OrderNumber

		deleted, err := s.orderRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperror.NotFound("Import order %s not found", id)
		}

		details := map[string]interface{}{"total_amount": formatMoney(current.TotalAmount)}
		actor, err := s.auditActor(txCtx, details)
		if err != nil {
			return err
		}
		return s.auditService.Record(txCtx, AuditEntry{
			UserID:     actor,
			Action:     model.ActionDeleteImportOrder,
			EntityID:   id.String(),
			EntityName: current.OrderNumber,
			Details:    details,
		})
	})
	if err != nil {
		return s.classify("Failed to delete import order", err, id)
	}

	log.Printf("import order deleted: id=%s number=%s", id, orderNumber)
	s.events.Publish(EventImportOrderDeleted, map[string]string{"id": id.String(), "order_number": orderNumber})
	return nil
}

func (s *importOrderService) NextOrderNumber(ctx context.Context, warehouseCode string) string {
	return s.generator.Generate(ctx, s.numbering.Prefix, s.numbering.Options(warehouseCode))
}

// checkReferences verifies that every referenced row exists. Nil ids are skipped.
// It returns the warehouse when warehouseID is set.
func (s *importOrderService) checkReferences(ctx context.Context, warehouseID, supplierID, userID *uuid.UUID, products []uuid.UUID) (*model.Warehouse, error) {
	var warehouse *model.Warehouse
	if warehouseID != nil {
		w, err := s.warehouseRepo.FindByID(ctx, *warehouseID)
		if err != nil {
			return nil, s.classifyRef("Warehouse", *warehouseID, err)
		}
		warehouse = w
	}
	if supplierID != nil {
		if _, err := s.supplierRepo.FindByID(ctx, *supplierID); err != nil {
			return nil, s.classifyRef("Supplier", *supplierID, err)
		}
	}
	if userID != nil {
		if _, err := s.userRepo.FindByID(ctx, *userID); err != nil {
			return nil, s.classifyRef("User", *userID, err)
		}
	}
	if len(products) > 0 {
		found, err := s.productRepo.FindByIDs(ctx, products)
		if err != nil {
			return nil, apperror.Database("Failed to load products", err)
		}
		existing := make(map[uuid.UUID]bool, len(found))
		for _, p := range found {
			existing[p.ID] = true
		}
		for _, id := range products {
			if !existing[id] {
				return nil, apperror.NotFound("Product %s not found", id)
			}
		}
	}
	return warehouse, nil
}

func (s *importOrderService) classifyRef(entity string, id uuid.UUID, err error) error {
	if repository.IsNotFound(err) {
		return apperror.NotFound("%s %s not found", entity, id)
	}
	return apperror.Database(fmt.Sprintf("Failed to load %s", entity), err)
}

// classify maps repository errors onto the application error taxonomy
func (s *importOrderService) classify(message string, err error, id uuid.UUID) error {
	if appErr := asAppError(err); appErr != nil {
		return appErr
	}
	if repository.IsNotFound(err) {
		return apperror.NotFound("Import order %s not found", id)
	}
	return apperror.Database(message, err)
}

// auditActor returns the acting user for an audit row. An actor with no users
// row is kept out of user_id and recorded under details["actor"] instead.
func (s *importOrderService) auditActor(ctx context.Context, details map[string]interface{}) (*uuid.UUID, error) {
	id, ok := ActorFromContext(ctx)
	if !ok {
		return nil, nil
	}
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			log.Printf("import order: actor %s is not a known user, auditing without user_id", id)
			details["actor"] = id.String()
			return nil, nil
		}
		return nil, apperror.Database("Failed to load User", err)
	}
	return &id, nil
}
