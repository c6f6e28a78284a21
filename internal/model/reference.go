package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultProductUnit is used when a product has no unit of measure
const DefaultProductUnit = "chiếc"

// Warehouse receives goods; organization/department are printed on the VT-01 header
type Warehouse struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code             string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Address          string    `gorm:"type:text" json:"address"`
	Phone            string    `gorm:"type:varchar(50)" json:"phone"`
	OrganizationName string    `gorm:"type:varchar(255)" json:"organization_name"`
	Department       string    `gorm:"type:varchar(255)" json:"department"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Supplier delivers goods into a warehouse
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(255)" json:"contact_person"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Address       string    `gorm:"type:text" json:"address"`
	TaxCode       string    `gorm:"type:varchar(50)" json:"tax_code"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Product represents an item that can be received
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Unit      string          `gorm:"type:varchar(50);not null;default:'chiếc'" json:"unit"`
	CostPrice decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"cost_price"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// User is the actor recorded as created_by on import orders
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	FullName  string    `gorm:"type:varchar(255)" json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
