package controllers

import (
	"strconv"

	"swift-courier/models"
	"swift-courier/services"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	quoteService *services.QuoteService
}

func NewQuoteController() *QuoteController {
	return &QuoteController{quoteService: services.NewQuoteService()}
}

// @Summary Estimate shipping price
// @Description Estimate a quote from weight, delivery zone and service tier. Malformed inputs fall back to defaults.
// @Tags Quotes
// @Produce json
// @Param weight query number false "Weight in kg" default(1)
// @Param zone query string false "Delivery zone" Enums(local, regional, national, international) default(local)
// @Param service query string false "Service tier" Enums(express, standard, economy) default(standard)
// @Success 200 {object} models.Response
// @Router /quotes/estimate [get]
func (ctrl *QuoteController) Estimate(c *gin.Context) {
	weight, err := strconv.ParseFloat(c.DefaultQuery("weight", "1"), 64)
	if err != nil {
		weight = 1
	}
	zone := c.Query("zone")
	service := c.Query("service")

	quote := ctrl.quoteService.Estimate(weight, zone, service)

	c.JSON(200, models.Response{
		Success: true,
		Message: "Quote estimated",
		Data:    quote,
	})
}
