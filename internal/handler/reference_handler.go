package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse/internal/service"
	"warehouse/pkg/response"
)

// ReferenceHandler serves the lookup lists used by the import order form
type ReferenceHandler struct {
	referenceService service.ReferenceService
}

func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/warehouses", h.ListWarehouses)
	router.GET("/suppliers", h.ListSuppliers)
	router.GET("/products", h.ListProducts)
}

// @Summary      List warehouses
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.WarehouseResponse}
// @Router       /api/v1/warehouses [get]
func (h *ReferenceHandler) ListWarehouses(c *gin.Context) {
	rows, err := h.referenceService.ListWarehouses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(rows, "Warehouses retrieved successfully"))
}

// @Summary      List suppliers
// @Tags         reference
// @Produce      json
// @Param        search  query     string  false  "Name, code, phone or email"
// @Success      200     {object}  response.Response{data=[]service.SupplierResponse}
// @Router       /api/v1/suppliers [get]
func (h *ReferenceHandler) ListSuppliers(c *gin.Context) {
	rows, err := h.referenceService.ListSuppliers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(rows, "Suppliers retrieved successfully"))
}

// @Summary      List products
// @Tags         reference
// @Produce      json
// @Param        search  query     string  false  "Name or code"
// @Success      200     {object}  response.Response{data=[]service.ProductResponse}
// @Router       /api/v1/products [get]
func (h *ReferenceHandler) ListProducts(c *gin.Context) {
	rows, err := h.referenceService.ListProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(rows, "Products retrieved successfully"))
}
