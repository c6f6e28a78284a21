// Package report renders import orders as Excel workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"warehouse/internal/service"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	receiptSheet = "Phieu nhap kho"
	listSheet    = "Danh sach"
)

var receiptColumns = []string{
	"STT", "Tên hàng hóa", "Mã số", "Đơn vị tính",
	"SL theo chứng từ", "SL thực nhập", "Đơn giá", "Thành tiền",
}

var listColumns = []string{
	"Số phiếu", "Ngày lập", "Ngày giao", "Kho", "Nhà cung cấp",
	"Số hóa đơn", "Số phiếu giao hàng", "Trạng thái", "Tổng tiền", "Thành tiền",
}

type styles struct {
	title  int
	bold   int
	header int
	cell   int
	money  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}); err != nil {
		return s, err
	}
	if s.cell, err = f.NewStyle(&excelize.Style{Border: border}); err != nil {
		return s, err
	}
	s.money, err = f.NewStyle(&excelize.Style{Border: border, NumFmt: 4})
	return s, err
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// amount converts a formatted money string into a numeric cell value
func amount(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

func derefDate(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WriteReceipt renders order as a 01-VT goods received note
func WriteReceipt(w io.Writer, order *service.ImportOrderResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", receiptSheet); err != nil {
		return err
	}
	st, err := newStyles(f)
	if err != nil {
		return err
	}
	sh := receiptSheet
	last := len(receiptColumns)

	f.SetCellValue(sh, "A1", "Đơn vị: "+order.OrganizationName)
	f.SetCellValue(sh, "A2", "Bộ phận: "+order.Department)
	f.SetCellValue(sh, cell(last, 1), "Mẫu số "+order.FormTemplate)

	f.MergeCell(sh, "A4", cell(last, 4))
	f.SetCellValue(sh, "A4", "PHIẾU NHẬP KHO")
	f.SetCellStyle(sh, "A4", "A4", st.title)

	f.MergeCell(sh, "A5", cell(last, 5))
	f.SetCellValue(sh, "A5", fmt.Sprintf("Ngày %s    Số: %s", order.OrderDate, order.OrderNumber))

	header := [][2]string{
		{"Họ và tên người giao:", order.DeliveryPerson},
		{"Theo hóa đơn số:", order.InvoiceNumber},
		{"Phiếu giao hàng số:", order.DeliveryNoteNumber},
		{"Nhà cung cấp:", fmt.Sprintf("%s - %s", order.SupplierCode, order.SupplierName)},
		{"Nhập tại kho:", fmt.Sprintf("%s - %s", order.WarehouseCode, order.WarehouseName)},
	}
	row := 7
	for _, h := range header {
		f.SetCellValue(sh, cell(1, row), h[0])
		f.SetCellStyle(sh, cell(1, row), cell(1, row), st.bold)
		f.SetCellValue(sh, cell(3, row), h[1])
		row++
	}

	row++
	for i, title := range receiptColumns {
		f.SetCellValue(sh, cell(i+1, row), title)
	}
	f.SetCellStyle(sh, cell(1, row), cell(last, row), st.header)

	for i, item := range order.Items {
		row++
		values := []interface{}{
			i + 1, item.ProductName, item.ProductCode, item.Unit,
			item.QuantityOrdered, item.QuantityReceived, amount(item.UnitPrice), amount(item.LineTotal),
		}
		for col, v := range values {
			f.SetCellValue(sh, cell(col+1, row), v)
		}
		f.SetCellStyle(sh, cell(1, row), cell(6, row), st.cell)
		f.SetCellStyle(sh, cell(7, row), cell(8, row), st.money)
	}

	row++
	f.MergeCell(sh, cell(1, row), cell(last-1, row))
	f.SetCellValue(sh, cell(1, row), "Cộng")
	f.SetCellStyle(sh, cell(1, row), cell(last-1, row), st.header)
	f.SetCellValue(sh, cell(last, row), amount(order.FinalAmount))
	f.SetCellStyle(sh, cell(last, row), cell(last, row), st.money)

	row += 2
	f.SetCellValue(sh, cell(1, row), fmt.Sprintf("Số chứng từ gốc kèm theo: %d", order.AttachedDocumentsCount))
	if order.ReceivedDate != nil {
		row++
		f.SetCellValue(sh, cell(1, row), "Ngày nhập: "+*order.ReceivedDate)
	}

	row += 2
	signatures := []struct {
		col   int
		title string
		name  string
	}{
		{1, "Người lập phiếu", order.CreatedByName},
		{3, "Người giao hàng", order.DeliveryPerson},
		{5, "Thủ kho", order.WarehouseKeeper},
		{7, "Kế toán trưởng", order.Accountant},
	}
	for _, sig := range signatures {
		f.SetCellValue(sh, cell(sig.col, row), sig.title)
		f.SetCellStyle(sh, cell(sig.col, row), cell(sig.col, row), st.bold)
		f.SetCellValue(sh, cell(sig.col, row+3), sig.name)
	}

	f.SetColWidth(sh, "A", "A", 6)
	f.SetColWidth(sh, "B", "B", 32)
	f.SetColWidth(sh, "C", "F", 14)
	f.SetColWidth(sh, "G", "H", 16)

	return f.Write(w)
}

// WriteOrderList renders one row per order
func WriteOrderList(w io.Writer, orders []service.ImportOrderResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", listSheet); err != nil {
		return err
	}
	st, err := newStyles(f)
	if err != nil {
		return err
	}
	sh := listSheet

	for i, title := range listColumns {
		f.SetCellValue(sh, cell(i+1, 1), title)
	}
	f.SetCellStyle(sh, "A1", cell(len(listColumns), 1), st.header)

	for i, o := range orders {
		row := i + 2
		values := []interface{}{
			o.OrderNumber, o.OrderDate, derefDate(o.DeliveryDate), o.WarehouseName, o.SupplierName,
			o.InvoiceNumber, o.DeliveryNoteNumber, o.StatusDisplay, amount(o.TotalAmount), amount(o.FinalAmount),
		}
		for col, v := range values {
			f.SetCellValue(sh, cell(col+1, row), v)
		}
		f.SetCellStyle(sh, cell(1, row), cell(8, row), st.cell)
		f.SetCellStyle(sh, cell(9, row), cell(10, row), st.money)
	}

	f.SetColWidth(sh, "A", "A", 22)
	f.SetColWidth(sh, "B", "C", 12)
	f.SetColWidth(sh, "D", "E", 28)
	f.SetColWidth(sh, "F", "J", 16)
	if err := f.SetPanes(sh, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}

	return f.Write(w)
}

// ReceiptFilename names the receipt download after the order number
func ReceiptFilename(orderNumber string) string {
	return fmt.Sprintf("phieu-nhap-kho-%s.xlsx", orderNumber)
}
