package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse/internal/service"
	"warehouse/pkg/response"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/import-orders/statistics", h.GetStatistics)
}

// @Summary      Get import order statistics
// @Description  Order counts and values per status. total_value excludes cancelled orders. Served from a snapshot refreshed in the background.
// @Tags         import-orders
// @Produce      json
// @Param        refresh  query     bool  false  "Recompute instead of serving the cached snapshot"
// @Success      200      {object}  response.Response{data=service.ImportOrderStatistics}
// @Failure      500      {object}  response.Response
// @Router       /api/v1/import-orders/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	get := h.statisticsService.GetStatistics
	if c.Query("refresh") == "true" {
		get = h.statisticsService.Refresh
	}

	stats, err := get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(stats, "Statistics retrieved successfully"))
}
