package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse/internal/model"
)

// SeedResult counts rows inserted by Seed
type SeedResult struct {
	Users      int
	Warehouses int
	Suppliers  int
	Products   int
}

// Seed inserts sample reference data. Rows whose code already exists are skipped.
func Seed(db *gorm.DB) (SeedResult, error) {
	var res SeedResult

	users := []model.User{
		{Username: "admin", FullName: "Quản trị hệ thống"},
		{Username: "thukho", FullName: "Nguyễn Văn Kho"},
	}
	for i := range users {
		created, err := firstOrCreate(db, &users[i], "username = ?", users[i].Username)
		if err != nil {
			return res, err
		}
		res.Users += created
	}

	warehouses := []model.Warehouse{
		{Code: "HN", Name: "Kho Hà Nội", Address: "Số 1 Phạm Văn Đồng, Hà Nội", OrganizationName: "Công ty TNHH Thương mại ABC", Department: "Phòng Kho vận", IsActive: true},
		{Code: "HCM", Name: "Kho Hồ Chí Minh", Address: "Số 10 Nguyễn Văn Linh, TP.HCM", OrganizationName: "Công ty TNHH Thương mại ABC", Department: "Phòng Kho vận", IsActive: true},
	}
	for i := range warehouses {
		created, err := firstOrCreate(db, &warehouses[i], "code = ?", warehouses[i].Code)
		if err != nil {
			return res, err
		}
		res.Warehouses += created
	}

	suppliers := []model.Supplier{
		{Code: "NCC001", Name: "Công ty CP Điện tử Việt", ContactPerson: "Trần Thị B", Phone: "0901234567", Email: "sales@dientuviet.vn", TaxCode: "0101234567", IsActive: true},
		{Code: "NCC002", Name: "Công ty TNHH Văn phòng phẩm Sao Mai", ContactPerson: "Lê Văn C", Phone: "0912345678", TaxCode: "0309876543", IsActive: true},
	}
	for i := range suppliers {
		created, err := firstOrCreate(db, &suppliers[i], "code = ?", suppliers[i].Code)
		if err != nil {
			return res, err
		}
		res.Suppliers += created
	}

	products := []model.Product{
		{Code: "SP001", Name: "Màn hình 24 inch", Unit: "chiếc", CostPrice: decimal.NewFromInt(2500000), IsActive: true},
		{Code: "SP002", Name: "Bàn phím cơ", Unit: "chiếc", CostPrice: decimal.NewFromInt(850000), IsActive: true},
		{Code: "SP003", Name: "Giấy A4", Unit: "ram", CostPrice: decimal.NewFromInt(65000), IsActive: true},
	}
	for i := range products {
		created, err := firstOrCreate(db, &products[i], "code = ?", products[i].Code)
		if err != nil {
			return res, err
		}
		res.Products += created
	}

	log.Printf("seed: users=%d warehouses=%d suppliers=%d products=%d inserted",
		res.Users, res.Warehouses, res.Suppliers, res.Products)
	return res, nil
}

func firstOrCreate(db *gorm.DB, dest interface{}, query string, arg interface{}) (int, error) {
	var count int64
	if err := db.Model(dest).Where(query, arg).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("seed lookup %T: %w", dest, err)
	}
	if count > 0 {
		return 0, nil
	}
	if err := db.Create(dest).Error; err != nil {
		return 0, fmt.Errorf("seed %T: %w", dest, err)
	}
	return 1, nil
}
