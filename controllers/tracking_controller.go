package controllers

import (
	"swift-courier/models"
	"swift-courier/services"

	"github.com/gin-gonic/gin"
)

type TrackingController struct {
	trackingService *services.TrackingService
}

func NewTrackingController() *TrackingController {
	return &TrackingController{trackingService: services.NewTrackingService()}
}

// @Summary Track a package
// @Description Simulated tracking: a tracking code always reports the same timeline and progress
// @Tags Tracking
// @Produce json
// @Param code path string true "Tracking code"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /track/{code} [get]
func (ctrl *TrackingController) Track(c *gin.Context) {
	info, err := ctrl.trackingService.Track(c.Param("code"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Tracking code is required"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Tracking info retrieved",
		Data:    info,
	})
}
