package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"warehouse/internal/model"
	"warehouse/pkg/apperror"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It accepts "2006-01-02" or RFC 3339 and renders "2006-01-02".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: dateOnly(t)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// ParseDate reads a calendar day from "2006-01-02" or an RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return dateOnly(t), nil
}

// dateOnly keeps the calendar day of t at UTC midnight
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OptionalDate is a date field of an update request. Set is true when the key
// was present, and a present null or "" clears the column.
type OptionalDate struct {
	Set   bool
	Value *Date
}

// DateValue builds a present OptionalDate holding d
func DateValue(d Date) OptionalDate {
	return OptionalDate{Set: true, Value: &d}
}

// NullDate builds a present OptionalDate that clears the column
func NullDate() OptionalDate {
	return OptionalDate{Set: true}
}

func (o *OptionalDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Value = nil
	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	if !d.IsZero() {
		o.Value = &d
	}
	return nil
}

func datePtr(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := dateOnly(d.Time)
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ImportOrderItemInput is one line of a create or update request
type ImportOrderItemInput struct {
	ProductID        uuid.UUID        `json:"product_id" binding:"required"`
	QuantityOrdered  int              `json:"quantity_ordered" binding:"required,gt=0"`
	QuantityReceived *int             `json:"quantity_received" binding:"omitempty,gte=0"`
	UnitPrice        *decimal.Decimal `json:"unit_price" binding:"required"`
	Notes            string           `json:"notes"`
}

func (in ImportOrderItemInput) toModel() model.ImportOrderItem {
	item := model.ImportOrderItem{
		ProductID:       in.ProductID,
		QuantityOrdered: in.QuantityOrdered,
		Notes:           strings.TrimSpace(in.Notes),
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.QuantityReceived != nil {
		item.QuantityReceived = *in.QuantityReceived
	}
	return item
}

// Money columns are decimal(15,2)
const moneyScale = 2

var maxMoney = decimal.New(1, 13)

func validateItems(items []ImportOrderItemInput) []apperror.FieldError {
	var errs []apperror.FieldError
	total := decimal.Zero
	if len(items) == 0 {
		return append(errs, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		if item.ProductID == uuid.Nil {
			errs = append(errs, apperror.FieldError{Field: prefix + "product_id", Message: "is required"})
		}
		if item.QuantityOrdered <= 0 {
			errs = append(errs, apperror.FieldError{Field: prefix + "quantity_ordered", Message: "must be greater than 0"})
		}
		if item.QuantityReceived != nil && *item.QuantityReceived < 0 {
			errs = append(errs, apperror.FieldError{Field: prefix + "quantity_received", Message: "must not be negative"})
		}
		if item.UnitPrice == nil {
			errs = append(errs, apperror.FieldError{Field: prefix + "unit_price", Message: "is required"})
		} else if item.UnitPrice.IsNegative() {
			errs = append(errs, apperror.FieldError{Field: prefix + "unit_price", Message: "must not be negative"})
		} else if !item.UnitPrice.Equal(item.UnitPrice.Round(moneyScale)) {
			errs = append(errs, apperror.FieldError{Field: prefix + "unit_price", Message: "must have at most 2 decimal places"})
		} else if item.UnitPrice.GreaterThanOrEqual(maxMoney) {
			errs = append(errs, apperror.FieldError{Field: prefix + "unit_price", Message: "is too large"})
		} else if item.QuantityOrdered > 0 {
			total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.QuantityOrdered))))
		}
	}
	if total.GreaterThanOrEqual(maxMoney) {
		errs = append(errs, apperror.FieldError{Field: "items", Message: "total amount is too large"})
	}
	return errs
}

func itemModels(items []ImportOrderItemInput) []model.ImportOrderItem {
	out := make([]model.ImportOrderItem, len(items))
	for i, in := range items {
		out[i] = in.toModel()
	}
	return out
}

func productIDs(items []ImportOrderItemInput) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

// CreateImportOrderInput is the validated create request
type CreateImportOrderInput struct {
	OrderNumber            string                 `json:"order_number" binding:"omitempty,max=50"`
	FormTemplate           string                 `json:"form_template" binding:"omitempty,max=20"`
	OrderDate              *Date                  `json:"order_date" swaggertype:"string" example:"2024-12-01"`
	DeliveryDate           *Date                  `json:"delivery_date" swaggertype:"string" example:"2024-12-05"`
	WarehouseID            uuid.UUID              `json:"warehouse_id" binding:"required"`
	SupplierID             uuid.UUID              `json:"supplier_id" binding:"required"`
	CreatedBy              uuid.UUID              `json:"created_by" binding:"required"`
	InvoiceNumber          string                 `json:"invoice_number" binding:"omitempty,max=100"`
	DeliveryNoteNumber     string                 `json:"delivery_note_number" binding:"omitempty,max=100"`
	ReferenceDocument      string                 `json:"reference_document" binding:"omitempty,max=255"`
	ReferenceDocumentDate  *Date                  `json:"reference_document_date" swaggertype:"string"`
	AttachedDocumentsCount *int                   `json:"attached_documents_count" binding:"omitempty,gte=0"`
	AttachedDocumentsList  string                 `json:"attached_documents_list"`
	ReceiverName           string                 `json:"receiver_name" binding:"omitempty,max=255"`
	DeliveryPerson         string                 `json:"delivery_person" binding:"omitempty,max=255"`
	WarehouseKeeper        string                 `json:"warehouse_keeper" binding:"omitempty,max=255"`
	Accountant             string                 `json:"accountant" binding:"omitempty,max=255"`
	Notes                  string                 `json:"notes"`
	Items                  []ImportOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// Validate checks the rules that do not need the database
func (in CreateImportOrderInput) Validate() error {
	var errs []apperror.FieldError
	if in.WarehouseID == uuid.Nil {
		errs = append(errs, apperror.FieldError{Field: "warehouse_id", Message: "is required"})
	}
	if in.SupplierID == uuid.Nil {
		errs = append(errs, apperror.FieldError{Field: "supplier_id", Message: "is required"})
	}
	if in.CreatedBy == uuid.Nil {
		errs = append(errs, apperror.FieldError{Field: "created_by", Message: "is required"})
	}
	if len(in.OrderNumber) > 50 {
		errs = append(errs, apperror.FieldError{Field: "order_number", Message: "must be at most 50 characters"})
	}
	if in.AttachedDocumentsCount != nil && *in.AttachedDocumentsCount < 0 {
		errs = append(errs, apperror.FieldError{Field: "attached_documents_count", Message: "must not be negative"})
	}
	if datePtr(in.OrderDate) != nil && datePtr(in.DeliveryDate) != nil && datePtr(in.DeliveryDate).Before(*datePtr(in.OrderDate)) {
		errs = append(errs, apperror.FieldError{Field: "delivery_date", Message: "must not be before order_date"})
	}
	errs = append(errs, validateItems(in.Items)...)

	if len(errs) > 0 {
		return apperror.Validation("Invalid import order", errs...)
	}
	return nil
}

func (in CreateImportOrderInput) toModel(now time.Time) *model.ImportOrder {
	order := &model.ImportOrder{
		OrderNumber:           strings.TrimSpace(in.OrderNumber),
		FormTemplate:          strings.TrimSpace(in.FormTemplate),
		OrderDate:             dateOnly(now),
		DeliveryDate:          datePtr(in.DeliveryDate),
		WarehouseID:           in.WarehouseID,
		SupplierID:            in.SupplierID,
		CreatedBy:             in.CreatedBy,
		InvoiceNumber:         strings.TrimSpace(in.InvoiceNumber),
		DeliveryNoteNumber:    strings.TrimSpace(in.DeliveryNoteNumber),
		ReferenceDocument:     strings.TrimSpace(in.ReferenceDocument),
		ReferenceDocumentDate: datePtr(in.ReferenceDocumentDate),
		AttachedDocumentsList: in.AttachedDocumentsList,
		ReceiverName:          strings.TrimSpace(in.ReceiverName),
		DeliveryPerson:        strings.TrimSpace(in.DeliveryPerson),
		WarehouseKeeper:       strings.TrimSpace(in.WarehouseKeeper),
		Accountant:            strings.TrimSpace(in.Accountant),
		Status:                model.StatusDraft,
		Notes:                 in.Notes,
		Items:                 itemModels(in.Items),
	}
	if order.FormTemplate == "" {
		order.FormTemplate = model.DefaultFormTemplate
	}
	if d := datePtr(in.OrderDate); d != nil {
		order.OrderDate = *d
	}
	if in.AttachedDocumentsCount != nil {
		order.AttachedDocumentsCount = *in.AttachedDocumentsCount
	}
	order.ApplyTotals(order.Items)
	return order
}

// UpdateImportOrderInput changes only the fields that are present. Items, when
// present, replace the whole item set. Status changes go through UpdateStatus.
type UpdateImportOrderInput struct {
	FormTemplate           *string                 `json:"form_template" binding:"omitempty,max=20"`
	OrderDate              *Date                   `json:"order_date" swaggertype:"string"`
	DeliveryDate           OptionalDate            `json:"delivery_date" swaggertype:"string"`
	WarehouseID            *uuid.UUID              `json:"warehouse_id"`
	SupplierID             *uuid.UUID              `json:"supplier_id"`
	InvoiceNumber          *string                 `json:"invoice_number" binding:"omitempty,max=100"`
	DeliveryNoteNumber     *string                 `json:"delivery_note_number" binding:"omitempty,max=100"`
	ReferenceDocument      *string                 `json:"reference_document" binding:"omitempty,max=255"`
	ReferenceDocumentDate  OptionalDate            `json:"reference_document_date" swaggertype:"string"`
	AttachedDocumentsCount *int                    `json:"attached_documents_count" binding:"omitempty,gte=0"`
	AttachedDocumentsList  *string                 `json:"attached_documents_list"`
	ReceiverName           *string                 `json:"receiver_name" binding:"omitempty,max=255"`
	DeliveryPerson         *string                 `json:"delivery_person" binding:"omitempty,max=255"`
	WarehouseKeeper        *string                 `json:"warehouse_keeper" binding:"omitempty,max=255"`
	Accountant             *string                 `json:"accountant" binding:"omitempty,max=255"`
	Notes                  *string                 `json:"notes"`
	Items                  *[]ImportOrderItemInput `json:"items" binding:"omitempty,dive"`
}

func (in UpdateImportOrderInput) Validate() error {
	var errs []apperror.FieldError
	if in.WarehouseID != nil && *in.WarehouseID == uuid.Nil {
		errs = append(errs, apperror.FieldError{Field: "warehouse_id", Message: "must not be empty"})
	}
	if in.SupplierID != nil && *in.SupplierID == uuid.Nil {
		errs = append(errs, apperror.FieldError{Field: "supplier_id", Message: "must not be empty"})
	}
	if in.OrderDate != nil && in.OrderDate.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "order_date", Message: "must not be empty"})
	}
	if in.AttachedDocumentsCount != nil && *in.AttachedDocumentsCount < 0 {
		errs = append(errs, apperror.FieldError{Field: "attached_documents_count", Message: "must not be negative"})
	}
	if in.Items != nil {
		errs = append(errs, validateItems(*in.Items)...)
	}
	if len(errs) > 0 {
		return apperror.Validation("Invalid import order update", errs...)
	}
	return nil
}

// fields returns the column updates for the header fields present in the input
func (in UpdateImportOrderInput) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = strings.TrimSpace(*v)
		}
	}
	setOptionalDate := func(column string, v OptionalDate) {
		if v.Set {
			fields[column] = datePtr(v.Value)
		}
	}

	setString("form_template", in.FormTemplate)
	if in.OrderDate != nil {
		fields["order_date"] = datePtr(in.OrderDate)
	}
	setOptionalDate("delivery_date", in.DeliveryDate)
	if in.WarehouseID != nil {
		fields["warehouse_id"] = *in.WarehouseID
	}
	if in.SupplierID != nil {
		fields["supplier_id"] = *in.SupplierID
	}
	setString("invoice_number", in.InvoiceNumber)
	setString("delivery_note_number", in.DeliveryNoteNumber)
	setString("reference_document", in.ReferenceDocument)
	setOptionalDate("reference_document_date", in.ReferenceDocumentDate)
	if in.AttachedDocumentsCount != nil {
		fields["attached_documents_count"] = *in.AttachedDocumentsCount
	}
	if in.AttachedDocumentsList != nil {
		fields["attached_documents_list"] = *in.AttachedDocumentsList
	}
	setString("receiver_name", in.ReceiverName)
	setString("delivery_person", in.DeliveryPerson)
	setString("warehouse_keeper", in.WarehouseKeeper)
	setString("accountant", in.Accountant)
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	return fields
}

// UpdateStatusInput is the body of PATCH /import-orders/:id/status
type UpdateStatusInput struct {
	Status model.ImportOrderStatus `json:"status" binding:"required,import_status" enums:"draft,pending,partial,received,cancelled"`
}

// ReceiveImportOrderInput is the body of PATCH /import-orders/:id/receive
type ReceiveImportOrderInput struct {
	ReceivedDate    *Date   `json:"received_date" swaggertype:"string"`
	WarehouseKeeper *string `json:"warehouse_keeper" binding:"omitempty,max=255"`
	Accountant      *string `json:"accountant" binding:"omitempty,max=255"`
}

// ListImportOrdersQuery carries the raw List filters from the query string
type ListImportOrdersQuery struct {
	WarehouseID        string `form:"warehouse_id"`
	SupplierID         string `form:"supplier_id"`
	Status             string `form:"status" binding:"omitempty,import_status"`
	OrderDateFrom      string `form:"order_date_from"`
	OrderDateTo        string `form:"order_date_to"`
	DeliveryDateFrom   string `form:"delivery_date_from"`
	DeliveryDateTo     string `form:"delivery_date_to"`
	InvoiceNumber      string `form:"invoice_number"`
	DeliveryNoteNumber string `form:"delivery_note_number"`
	Search             string `form:"search"`
	Page               int    `form:"page"`
	Limit              int    `form:"limit"`
}

// ImportOrderItemResponse is one line of an order as returned to clients
type ImportOrderItemResponse struct {
	ID               string `json:"id"`
	LineNo           int    `json:"line_no"`
	ProductID        string `json:"product_id"`
	ProductCode      string `json:"product_code"`
	ProductName      string `json:"product_name"`
	Unit             string `json:"unit"`
	QuantityOrdered  int    `json:"quantity_ordered"`
	QuantityReceived int    `json:"quantity_received"`
	UnitPrice        string `json:"unit_price" example:"100.50"`
	LineTotal        string `json:"line_total" example:"1005.00"`
	Notes            string `json:"notes"`
}

// ImportOrderResponse is the normalized order representation
type ImportOrderResponse struct {
	ID                     string                    `json:"id"`
	OrderNumber            string                    `json:"order_number"`
	FormTemplate           string                    `json:"form_template"`
	OrderDate              string                    `json:"order_date" example:"2024-12-01"`
	DeliveryDate           *string                   `json:"delivery_date"`
	WarehouseID            string                    `json:"warehouse_id"`
	WarehouseCode          string                    `json:"warehouse_code"`
	WarehouseName          string                    `json:"warehouse_name"`
	OrganizationName       string                    `json:"organization_name"`
	Department             string                    `json:"department"`
	SupplierID             string                    `json:"supplier_id"`
	SupplierCode           string                    `json:"supplier_code"`
	SupplierName           string                    `json:"supplier_name"`
	SupplierAddress        string                    `json:"supplier_address"`
	InvoiceNumber          string                    `json:"invoice_number"`
	DeliveryNoteNumber     string                    `json:"delivery_note_number"`
	ReferenceDocument      string                    `json:"reference_document"`
	ReferenceDocumentDate  *string                   `json:"reference_document_date"`
	AttachedDocumentsCount int                       `json:"attached_documents_count"`
	AttachedDocumentsList  string                    `json:"attached_documents_list"`
	ReceiverName           string                    `json:"receiver_name"`
	DeliveryPerson         string                    `json:"delivery_person"`
	WarehouseKeeper        string                    `json:"warehouse_keeper"`
	Accountant             string                    `json:"accountant"`
	ReceivedDate           *string                   `json:"received_date"`
	Status                 model.ImportOrderStatus   `json:"status"`
	StatusDisplay          string                    `json:"status_display"`
	AllowedTransitions     []model.ImportOrderStatus `json:"allowed_transitions"`
	IsEditable             bool                      `json:"is_editable"`
	IsDeletable            bool                      `json:"is_deletable"`
	Notes                  string                    `json:"notes"`
	TotalAmount            string                    `json:"total_amount" example:"2005.00"`
	FinalAmount            string                    `json:"final_amount" example:"2005.00"`
	CreatedBy              string                    `json:"created_by"`
	CreatedByName          string                    `json:"created_by_name"`
	CreatedAt              time.Time                 `json:"created_at"`
	UpdatedAt              time.Time                 `json:"updated_at"`
	Items                  []ImportOrderItemResponse `json:"items,omitempty"`
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toImportOrderResponse(o *model.ImportOrder) ImportOrderResponse {
	res := ImportOrderResponse{
		ID:                     o.ID.String(),
		OrderNumber:            o.OrderNumber,
		FormTemplate:           o.FormTemplate,
		OrderDate:              o.OrderDate.Format(dateLayout),
		DeliveryDate:           formatDate(o.DeliveryDate),
		WarehouseID:            o.WarehouseID.String(),
		SupplierID:             o.SupplierID.String(),
		InvoiceNumber:          o.InvoiceNumber,
		DeliveryNoteNumber:     o.DeliveryNoteNumber,
		ReferenceDocument:      o.ReferenceDocument,
		ReferenceDocumentDate:  formatDate(o.ReferenceDocumentDate),
		AttachedDocumentsCount: o.AttachedDocumentsCount,
		AttachedDocumentsList:  o.AttachedDocumentsList,
		ReceiverName:           o.ReceiverName,
		DeliveryPerson:         o.DeliveryPerson,
		WarehouseKeeper:        o.WarehouseKeeper,
		Accountant:             o.Accountant,
		ReceivedDate:           formatDate(o.ReceivedDate),
		Status:                 o.Status,
		StatusDisplay:          o.Status.DisplayName(),
		AllowedTransitions:     o.Status.AllowedTransitions(),
		IsEditable:             o.Status.IsEditable(),
		IsDeletable:            o.Status.IsDeletable(),
		Notes:                  o.Notes,
		TotalAmount:            formatMoney(o.TotalAmount),
		FinalAmount:            formatMoney(o.FinalAmount),
		CreatedBy:              o.CreatedBy.String(),
		CreatedAt:              o.CreatedAt,
		UpdatedAt:              o.UpdatedAt,
	}
	if o.Warehouse != nil {
		res.WarehouseCode = o.Warehouse.Code
		res.WarehouseName = o.Warehouse.Name
		res.OrganizationName = o.Warehouse.OrganizationName
		res.Department = o.Warehouse.Department
	}
	if o.Supplier != nil {
		res.SupplierCode = o.Supplier.Code
		res.SupplierName = o.Supplier.Name
		res.SupplierAddress = o.Supplier.Address
	}
	if o.Creator != nil {
		res.CreatedByName = o.Creator.FullName
		if res.CreatedByName == "" {
			res.CreatedByName = o.Creator.Username
		}
	}

	if len(o.Items) > 0 {
		res.Items = make([]ImportOrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			line := ImportOrderItemResponse{
				ID:               item.ID.String(),
				LineNo:           item.LineNo,
				ProductID:        item.ProductID.String(),
				QuantityOrdered:  item.QuantityOrdered,
				QuantityReceived: item.QuantityReceived,
				UnitPrice:        formatMoney(item.UnitPrice),
				LineTotal:        formatMoney(item.LineTotal()),
				Notes:            item.Notes,
				Unit:             model.DefaultProductUnit,
			}
			if item.Product != nil {
				line.ProductCode = item.Product.Code
				line.ProductName = item.Product.Name
				if item.Product.Unit != "" {
					line.Unit = item.Product.Unit
				}
			}
			res.Items = append(res.Items, line)
		}
	}
	return res
}
