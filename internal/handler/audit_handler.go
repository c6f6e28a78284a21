package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse/internal/service"
	"warehouse/pkg/response"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/audit-logs")
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs lists recorded actions newest first, with users preloaded
// @Summary      Get audit logs
// @Description  Every import order create, update, status change and delete is recorded
// @Tags         audit
// @Produce      json
// @Param        entity_id  query     string  false  "Import order ID"
// @Param        action     query     string  false  "Action, e.g. CHANGE_IMPORT_ORDER_STATUS"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20)"
// @Success      200        {object}  response.Response{data=[]service.AuditLogResponse}
// @Router       /api/v1/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var q service.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, bindError(err))
		return
	}

	logs, meta, err := h.auditService.GetAuditLogs(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(logs, meta, "Audit logs retrieved successfully"))
}
