package database_test

import (
	"testing"

	"warehouse/internal/database"
	"warehouse/internal/database/dbtest"
	"warehouse/internal/model"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)

	first, err := database.Seed(db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if first.Warehouses != 2 || first.Suppliers != 2 || first.Products != 3 || first.Users != 2 {
		t.Fatalf("first run inserted %+v", first)
	}

	second, err := database.Seed(db)
	if err != nil {
		t.Fatalf("Seed again: %v", err)
	}
	if second != (database.SeedResult{}) {
		t.Errorf("second run inserted %+v", second)
	}

	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 3 {
		t.Errorf("products = %d, want 3", count)
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	db := dbtest.Open(t)
	for _, table := range []string{"import_orders", "import_order_items", "warehouses", "audit_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("missing table %s", table)
		}
	}
	if database.IsPostgres(db) {
		t.Error("sqlite connection reported as postgres")
	}
	if err := database.Ping(db); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
