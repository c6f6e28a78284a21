package dbtest

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse/internal/model"
)

// Fixtures is the reference data most import order tests need
type Fixtures struct {
	User      model.User
	Warehouse model.Warehouse
	Supplier  model.Supplier
	Products  []model.Product
}

// SeedFixtures inserts one user, warehouse and supplier plus two products
func SeedFixtures(t testing.TB, db *gorm.DB) Fixtures {
	t.Helper()

	f := Fixtures{
		User:      model.User{Username: "thukho", FullName: "Nguyễn Văn Kho"},
		Warehouse: model.Warehouse{Code: "HN", Name: "Kho Hà Nội", OrganizationName: "Công ty ABC", Department: "Kho vận", IsActive: true},
		Supplier:  model.Supplier{Code: "NCC001", Name: "Sao Mai Supplies", IsActive: true},
		Products: []model.Product{
			{Code: "SP001", Name: "Monitor", Unit: "chiếc", CostPrice: decimal.NewFromInt(100), IsActive: true},
			{Code: "SP002", Name: "Keyboard", Unit: "chiếc", CostPrice: decimal.NewFromInt(20), IsActive: true},
		},
	}

	for _, v := range []interface{}{&f.User, &f.Warehouse, &f.Supplier, &f.Products} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed fixture %T: %v", v, err)
		}
	}
	return f
}
