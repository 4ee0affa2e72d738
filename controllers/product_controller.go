package controllers

import (
	"swift-courier/models"
	"swift-courier/repositories"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productRepo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{productRepo: repositories.NewProductRepository()}
}

// @Summary Get packing supplies
// @Description Get the fixed supplies catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    ctrl.productRepo.GetAllProducts(),
	})
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productRepo.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
