package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: svc}
}

// GetDashboard re-renders the dashboard from a live fetch on every call.
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	rows, err := ctrl.Dashboard.Refresh()
	if err != nil {
		log.Printf("GetDashboard error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchDashboard", "could not render dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rows": rows})
}
