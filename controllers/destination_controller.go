package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type DestinationController struct {
	Destinations *services.DestinationService
}

func NewDestinationController(svc *services.DestinationService) *DestinationController {
	return &DestinationController{Destinations: svc}
}

func (ctrl *DestinationController) GetDestinations(c *gin.Context) {
	destinations, err := ctrl.Destinations.List()
	if err != nil {
		log.Printf("GetDestinations error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchDestinations", "could not fetch destinations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "destinations": destinations})
}
