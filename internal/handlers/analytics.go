// internal/handlers/analytics.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GET /dashboard/stats
func (h *AnalyticsHandler) GetDashboardStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.DashboardStats(userID)
	if err != nil {
		serviceErrorResponse(c, err, "Dashboard")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats":          report.Stats,
		"recent_sales":   report.RecentSales,
		"platform_stats": report.PlatformStats,
	})
}
