package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouse/internal/report"
	"warehouse/internal/service"
	"warehouse/pkg/apperror"
	"warehouse/pkg/response"
)

type ImportOrderHandler struct {
	importOrderService service.ImportOrderService
}

func NewImportOrderHandler(importOrderService service.ImportOrderService) *ImportOrderHandler {
	return &ImportOrderHandler{importOrderService: importOrderService}
}

func (h *ImportOrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/import-orders")
	{
		group.GET("", h.List)
		group.GET("/export", h.ExportList)
		group.GET("/:id", h.GetByID)
		group.GET("/:id/export", h.ExportReceipt)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id/status", h.UpdateStatus)
		group.PATCH("/:id/receive", h.Receive)
		group.DELETE("/:id", h.Delete)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperror.Validation("Invalid import order id",
			apperror.FieldError{Field: "id", Message: "must be a valid UUID"}))
		return uuid.Nil, false
	}
	return id, true
}

// List returns import orders matching the filters, newest first
// @Summary      List import orders
// @Description  Filter by warehouse, supplier, status, date ranges and document numbers. search matches order number, warehouse name or supplier name.
// @Tags         import-orders
// @Produce      json
// @Param        warehouse_id          query  string  false  "Warehouse ID"
// @Param        supplier_id           query  string  false  "Supplier ID"
// @Param        status                query  string  false  "Status"  Enums(draft, pending, partial, received, cancelled)
// @Param        order_date_from       query  string  false  "Order date from (YYYY-MM-DD)"
// @Param        order_date_to         query  string  false  "Order date to (YYYY-MM-DD)"
// @Param        delivery_date_from    query  string  false  "Delivery date from (YYYY-MM-DD)"
// @Param        delivery_date_to      query  string  false  "Delivery date to (YYYY-MM-DD)"
// @Param        invoice_number        query  string  false  "Invoice number (substring)"
// @Param        delivery_note_number  query  string  false  "Delivery note number (substring)"
// @Param        search                query  string  false  "Free text search"
// @Param        page                  query  int     false  "Page number (default 1)"
// @Param        limit                 query  int     false  "Items per page (default 20, max 100)"
// @Success      200  {object}  response.Response{data=[]service.ImportOrderResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/v1/import-orders [get]
func (h *ImportOrderHandler) List(c *gin.Context) {
	var q service.ListImportOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, bindError(err))
		return
	}

	orders, meta, err := h.importOrderService.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(orders, meta, "Import orders retrieved successfully"))
}

// GetByID returns one order with its items
// @Summary      Get import order
// @Tags         import-orders
// @Produce      json
// @Param        id   path      string  true  "Import order ID"
// @Success      200  {object}  response.Response{data=service.ImportOrderResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/import-orders/{id} [get]
func (h *ImportOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.importOrderService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(order, "Import order retrieved successfully"))
}

// Create stores a draft order and its items
// @Summary      Create import order
// @Description  order_number is allocated when omitted. Totals are computed from the items.
// @Tags         import-orders
// @Accept       json
// @Produce      json
// @Param        request  body      service.CreateImportOrderInput  true  "Import order"
// @Success      201      {object}  response.Response{data=service.ImportOrderResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/v1/import-orders [post]
func (h *ImportOrderHandler) Create(c *gin.Context) {
	var in service.CreateImportOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err))
		return
	}

	order, err := h.importOrderService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(order, "Import order created successfully"))
}

// Update changes the fields present in the body; items replace the whole item set
// @Summary      Update import order
// @Description  Only draft and pending orders can be edited.
// @Tags         import-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Import order ID"
// @Param        request  body      service.UpdateImportOrderInput  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.ImportOrderResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/v1/import-orders/{id} [put]
func (h *ImportOrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.UpdateImportOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err))
		return
	}

	order, err := h.importOrderService.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(order, "Import order updated successfully"))
}

// UpdateStatus moves the order along the status lifecycle
// @Summary      Change import order status
// @Tags         import-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Import order ID"
// @Param        request  body      service.UpdateStatusInput  true  "Target status"
// @Success      200      {object}  response.Response{data=service.ImportOrderResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response  "Transition not allowed"
// @Router       /api/v1/import-orders/{id}/status [patch]
func (h *ImportOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err))
		return
	}

	order, err := h.importOrderService.UpdateStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(order, "Import order status updated successfully"))
}

// Receive marks the order received and records the receiving personnel
// @Summary      Receive import order
// @Tags         import-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true   "Import order ID"
// @Param        request  body      service.ReceiveImportOrderInput  false  "Receipt details"
// @Success      200      {object}  response.Response{data=service.ImportOrderResponse}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/v1/import-orders/{id}/receive [patch]
func (h *ImportOrderHandler) Receive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// the body is optional
	var in service.ReceiveImportOrderInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, bindError(err))
		return
	}

	order, err := h.importOrderService.Receive(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(order, "Import order received successfully"))
}

// Delete removes a draft order
// @Summary      Delete import order
// @Tags         import-orders
// @Produce      json
// @Param        id   path      string  true  "Import order ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response  "Only draft orders can be deleted"
// @Router       /api/v1/import-orders/{id} [delete]
func (h *ImportOrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.importOrderService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil, "Import order deleted successfully"))
}

// ExportReceipt downloads the 01-VT goods received note
// @Summary      Export import order receipt
// @Tags         import-orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Import order ID"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /api/v1/import-orders/{id}/export [get]
func (h *ImportOrderHandler) ExportReceipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.importOrderService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteReceipt(&buf, order); err != nil {
		respondError(c, apperror.Internal(err))
		return
	}
	sendWorkbook(c, report.ReceiptFilename(order.OrderNumber), &buf)
}

// ExportList downloads the orders matching the List filters
// @Summary      Export import orders
// @Description  Same filters as the list endpoint; pagination is ignored and at most 1000 rows are exported.
// @Tags         import-orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "Status"  Enums(draft, pending, partial, received, cancelled)
// @Param        search  query  string  false  "Free text search"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /api/v1/import-orders/export [get]
func (h *ImportOrderHandler) ExportList(c *gin.Context) {
	var q service.ListImportOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, bindError(err))
		return
	}

	orders, err := h.importOrderService.Export(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteOrderList(&buf, orders); err != nil {
		respondError(c, apperror.Internal(err))
		return
	}
	sendWorkbook(c, "danh-sach-phieu-nhap-kho.xlsx", &buf)
}

func sendWorkbook(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
