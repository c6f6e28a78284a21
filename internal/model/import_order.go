package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultFormTemplate is the VT-01 warehouse receipt form code
const DefaultFormTemplate = "01-VT"

// ImportOrder is an inbound receipt (phiếu nhập kho) following form VT-01
type ImportOrder struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber  string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	FormTemplate string     `gorm:"type:varchar(20);not null;default:'01-VT'" json:"form_template"`
	OrderDate    time.Time  `gorm:"type:date;not null" json:"order_date"`
	DeliveryDate *time.Time `gorm:"type:date" json:"delivery_date"`

	WarehouseID uuid.UUID  `gorm:"type:uuid;not null;index" json:"warehouse_id"`
	Warehouse   *Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier    *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by"`
	Creator     *User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	InvoiceNumber          string     `gorm:"type:varchar(100);index" json:"invoice_number"`
	DeliveryNoteNumber     string     `gorm:"type:varchar(100);index" json:"delivery_note_number"`
	ReferenceDocument      string     `gorm:"type:varchar(255)" json:"reference_document"`
	ReferenceDocumentDate  *time.Time `gorm:"type:date" json:"reference_document_date"`
	AttachedDocumentsCount int        `gorm:"not null;default:0" json:"attached_documents_count"`
	AttachedDocumentsList  string     `gorm:"type:text" json:"attached_documents_list"`

	// Free-text names printed on the form, not user references
	ReceiverName    string `gorm:"type:varchar(255)" json:"receiver_name"`
	DeliveryPerson  string `gorm:"type:varchar(255)" json:"delivery_person"`
	WarehouseKeeper string `gorm:"type:varchar(255)" json:"warehouse_keeper"`
	Accountant      string `gorm:"type:varchar(255)" json:"accountant"`

	ReceivedDate *time.Time        `gorm:"type:date" json:"received_date"`
	Status       ImportOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Notes        string            `gorm:"type:text" json:"notes"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_amount"`
	FinalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"final_amount"`

	Items     []ImportOrderItem `gorm:"foreignKey:ImportOrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (o *ImportOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// ApplyTotals recomputes total_amount and final_amount from the given items
func (o *ImportOrder) ApplyTotals(items []ImportOrderItem) {
	o.TotalAmount = CalculateTotalAmount(items)
	o.FinalAmount = CalculateFinalAmount(o.TotalAmount)
}

// ImportOrderItem is one line of a receipt. It only exists as a child of its order.
type ImportOrderItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ImportOrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"import_order_id"`
	LineNo           int             `gorm:"not null" json:"line_no"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product          *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	QuantityOrdered  int             `gorm:"not null" json:"quantity_ordered"`
	QuantityReceived int             `gorm:"not null;default:0" json:"quantity_received"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Notes            string          `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (i *ImportOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// LineTotal is quantity_ordered * unit_price; it is always derived, never stored
func (i ImportOrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(i.QuantityOrdered)).Mul(i.UnitPrice)
}

// ImportOrderStatusCount aggregates orders per status
type ImportOrderStatusCount struct {
	Status      ImportOrderStatus
	Count       int64
	TotalAmount decimal.Decimal
}
