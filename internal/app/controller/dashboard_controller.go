package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/service"
	"github.com/etimad/showroom-backend/internal/middleware"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats returns the headline figures and the revenue series
// GET /api/v1/dashboard
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats := ctrl.dashboardService.Stats()

	log.Debug("Dashboard stats computed", map[string]interface{}{
		"total_revenue":     stats.TotalRevenue,
		"active_quotations": stats.ActiveQuotations,
	})

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}

// GetNavigation lists the back-office views
// GET /api/v1/navigation
func (ctrl *DashboardController) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"views": model.Views,
	})
}
