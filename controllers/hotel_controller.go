package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{Hotels: svc}
}

func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.Hotels.List()
	if err != nil {
		log.Printf("GetHotels error: %v", err)
		utils.JSONErrorCode(c, http.StatusInternalServerError, "error.fetchHotels", "could not fetch hotels")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hotels": hotels})
}
