package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"warehouse/internal/cache"
	"warehouse/internal/model"
	"warehouse/internal/repository"
	"warehouse/pkg/apperror"
)

const (
	warehousesCacheKey = "reference:warehouses"
	suppliersCacheKey  = "reference:suppliers"
	productsCacheKey   = "reference:products"
)

// WarehouseResponse is an active warehouse offered for selection
type WarehouseResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	OrganizationName string `json:"organization_name"`
	Department       string `json:"department"`
}

type SupplierResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	TaxCode       string `json:"tax_code"`
}

type ProductResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	CostPrice string `json:"cost_price"`
}

// ReferenceService lists the lookup data used by import order forms.
// Unfiltered lists are cached.
type ReferenceService interface {
	ListWarehouses(ctx context.Context) ([]WarehouseResponse, error)
	ListSuppliers(ctx context.Context, search string) ([]SupplierResponse, error)
	ListProducts(ctx context.Context, search string) ([]ProductResponse, error)
	GetWarehouse(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error)
	Invalidate(ctx context.Context)
}

type referenceService struct {
	warehouses repository.WarehouseRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	cache      cache.Cache
	ttl        time.Duration
}

func NewReferenceService(
	warehouses repository.WarehouseRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	c cache.Cache,
	ttl time.Duration,
) ReferenceService {
	return &referenceService{
		warehouses: warehouses,
		suppliers:  suppliers,
		products:   products,
		cache:      c,
		ttl:        ttl,
	}
}

// cached serves key from the cache or fills it with load
func cached[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var value T
	if ok, err := c.Get(ctx, key, &value); err != nil {
		log.Printf("reference: cache read %s failed: %v", key, err)
	} else if ok {
		return value, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Printf("reference: cache write %s failed: %v", key, err)
	}
	return value, nil
}

func (s *referenceService) ListWarehouses(ctx context.Context) ([]WarehouseResponse, error) {
	return cached(ctx, s.cache, warehousesCacheKey, s.ttl, func() ([]WarehouseResponse, error) {
		rows, err := s.warehouses.ListActive(ctx)
		if err != nil {
			return nil, apperror.Database("Failed to list warehouses", err)
		}
		res := make([]WarehouseResponse, 0, len(rows))
		for i := range rows {
			res = append(res, toWarehouseResponse(&rows[i]))
		}
		return res, nil
	})
}

func (s *referenceService) GetWarehouse(ctx context.Context, id uuid.UUID) (*WarehouseResponse, error) {
	w, err := s.warehouses.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.NotFound("Warehouse %s not found", id)
		}
		return nil, apperror.Database("Failed to load warehouse", err)
	}
	res := toWarehouseResponse(w)
	return &res, nil
}

func (s *referenceService) ListSuppliers(ctx context.Context, search string) ([]SupplierResponse, error) {
	search = strings.TrimSpace(search)
	load := func() ([]SupplierResponse, error) {
		rows, err := s.suppliers.ListActive(ctx, search)
		if err != nil {
			return nil, apperror.Database("Failed to list suppliers", err)
		}
		res := make([]SupplierResponse, 0, len(rows))
		for _, sp := range rows {
			res = append(res, SupplierResponse{
				ID:            sp.ID.String(),
				Code:          sp.Code,
				Name:          sp.Name,
				ContactPerson: sp.ContactPerson,
				Phone:         sp.Phone,
				Email:         sp.Email,
				Address:       sp.Address,
				TaxCode:       sp.TaxCode,
			})
		}
		return res, nil
	}
	if search != "" {
		return load()
	}
	return cached(ctx, s.cache, suppliersCacheKey, s.ttl, load)
}

func (s *referenceService) ListProducts(ctx context.Context, search string) ([]ProductResponse, error) {
	search = strings.TrimSpace(search)
	load := func() ([]ProductResponse, error) {
		rows, err := s.products.ListActive(ctx, search)
		if err != nil {
			return nil, apperror.Database("Failed to list products", err)
		}
		res := make([]ProductResponse, 0, len(rows))
		for _, p := range rows {
			unit := p.Unit
			if unit == "" {
				unit = model.DefaultProductUnit
			}
			res = append(res, ProductResponse{
				ID:        p.ID.String(),
				Code:      p.Code,
				Name:      p.Name,
				Unit:      unit,
				CostPrice: formatMoney(p.CostPrice),
			})
		}
		return res, nil
	}
	if search != "" {
		return load()
	}
	return cached(ctx, s.cache, productsCacheKey, s.ttl, load)
}

func (s *referenceService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, warehousesCacheKey, suppliersCacheKey, productsCacheKey); err != nil {
		log.Printf("reference: cache invalidate failed: %v", err)
	}
}

func toWarehouseResponse(w *model.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:               w.ID.String(),
		Code:             w.Code,
		Name:             w.Name,
		Address:          w.Address,
		Phone:            w.Phone,
		OrganizationName: w.OrganizationName,
		Department:       w.Department,
	}
}
