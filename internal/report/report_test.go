package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"warehouse/internal/model"
	"warehouse/internal/service"
)

func sampleOrder() *service.ImportOrderResponse {
	received := "2024-12-03"
	return &service.ImportOrderResponse{
		OrderNumber:      "PNK-20241201-0001",
		FormTemplate:     "01-VT",
		OrderDate:        "2024-12-01",
		ReceivedDate:     &received,
		WarehouseCode:    "HN",
		WarehouseName:    "Kho Hà Nội",
		OrganizationName: "Công ty ABC",
		SupplierCode:     "NCC001",
		SupplierName:     "Sao Mai Supplies",
		Status:           model.StatusReceived,
		StatusDisplay:    "Đã nhận",
		WarehouseKeeper:  "Phạm Thủ Kho",
		TotalAmount:      "2005.00",
		FinalAmount:      "2005.00",
		Items: []service.ImportOrderItemResponse{
			{ProductCode: "SP001", ProductName: "Monitor", Unit: "chiếc", QuantityOrdered: 10, QuantityReceived: 10, UnitPrice: "100.50", LineTotal: "1005.00"},
			{ProductCode: "SP002", ProductName: "Keyboard", Unit: "chiếc", QuantityOrdered: 5, QuantityReceived: 5, UnitPrice: "200.00", LineTotal: "1000.00"},
		},
	}
}

func open(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteReceipt(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReceipt(&buf, sampleOrder()); err != nil {
		t.Fatalf("WriteReceipt: %v", err)
	}
	f := open(t, &buf)

	rows, err := f.GetRows(receiptSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	var headerRow, totalRow int
	for i, r := range rows {
		if len(r) > 0 && r[0] == "STT" {
			headerRow = i + 1
		}
		if len(r) > 0 && r[0] == "Cộng" {
			totalRow = i + 1
		}
	}
	if headerRow == 0 || totalRow != headerRow+3 {
		t.Fatalf("header row %d, total row %d", headerRow, totalRow)
	}

	if got, _ := f.GetCellValue(receiptSheet, cell(2, headerRow+1)); got != "Monitor" {
		t.Errorf("first item name = %q", got)
	}
	if got, _ := f.GetCellValue(receiptSheet, cell(8, headerRow+2), excelize.Options{RawCellValue: true}); got != "1000" {
		t.Errorf("second line total = %q", got)
	}
	if got, _ := f.GetCellValue(receiptSheet, cell(8, totalRow), excelize.Options{RawCellValue: true}); got != "2005" {
		t.Errorf("total = %q", got)
	}
	if got, _ := f.GetCellValue(receiptSheet, "A5"); got != "Ngày 2024-12-01    Số: PNK-20241201-0001" {
		t.Errorf("title line = %q", got)
	}
}

func TestWriteReceiptWithoutItems(t *testing.T) {
	order := sampleOrder()
	order.Items = nil

	var buf bytes.Buffer
	if err := WriteReceipt(&buf, order); err != nil {
		t.Fatalf("WriteReceipt: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook")
	}
}

func TestWriteOrderList(t *testing.T) {
	a := *sampleOrder()
	b := *sampleOrder()
	b.OrderNumber = "PNK-20241201-0002"
	b.StatusDisplay = "Nháp"

	var buf bytes.Buffer
	if err := WriteOrderList(&buf, []service.ImportOrderResponse{a, b}); err != nil {
		t.Fatalf("WriteOrderList: %v", err)
	}
	f := open(t, &buf)

	rows, err := f.GetRows(listSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Số phiếu" || rows[2][0] != "PNK-20241201-0002" || rows[2][7] != "Nháp" {
		t.Errorf("rows = %v", rows)
	}
}

func TestReceiptFilename(t *testing.T) {
	if got := ReceiptFilename("PNK-20241201-0001"); got != "phieu-nhap-kho-PNK-20241201-0001.xlsx" {
		t.Errorf("got %q", got)
	}
}
