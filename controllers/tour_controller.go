package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type TourController struct {
	Tours *services.TourService
}

func NewTourController(svc *services.TourService) *TourController {
	return &TourController{Tours: svc}
}

func (ctrl *TourController) GetTours(c *gin.Context) {
	tours, err := ctrl.Tours.List()
	if err != nil {
		log.Printf("GetTours error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchTours", "could not fetch tour packages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tours": tours})
}
