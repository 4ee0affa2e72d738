package controllers

import (
	"errors"
	"log"

	"swift-courier/models"
	"swift-courier/repositories"
	"swift-courier/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService  *services.CartService
	productRepo  *repositories.ProductRepository
	emailService *models.EmailService
}

func NewCartController() *CartController {
	productRepo := repositories.NewProductRepository()

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
		emailService = nil
	}

	return &CartController{
		cartService:  services.NewCartService(repositories.NewCartRepository(), productRepo.Catalog()),
		productRepo:  productRepo,
		emailService: emailService,
	}
}

// @Summary Get cart
// @Description Get the current cart lines and total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	lines := ctrl.cartService.GetCart()

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data: models.CartResponse{
			Lines: lines,
			Total: ctrl.cartService.Total(lines),
		},
	})
}

// @Summary Add product to cart
// @Description Add one unit of a product; an existing line is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if _, err := ctrl.productRepo.GetProductByID(req.ProductID); err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	lines, err := ctrl.cartService.AddToCart(req.ProductID)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save cart", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product added to cart",
		Data: models.CartResponse{
			Lines: lines,
			Total: ctrl.cartService.Total(lines),
		},
	})
}

// @Summary Change line quantity
// @Description Adjust a cart line by a signed delta; a line reaching zero is removed
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ChangeQuantityRequest true "Quantity Delta"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	var req models.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	lines, err := ctrl.cartService.ChangeQuantity(c.Param("id"), req.Delta)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save cart", Error: err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart updated",
		Data: models.CartResponse{
			Lines: lines,
			Total: ctrl.cartService.Total(lines),
		},
	})
}

// @Summary Checkout
// @Description Simulated checkout: clears the cart and returns a shipment number
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest false "Checkout Details"
// @Success 200 {object} models.Response
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	_ = c.ShouldBindJSON(&req)

	result, err := ctrl.cartService.Checkout()
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			c.JSON(200, models.Response{
				Success: true,
				Message: "Cart is empty, nothing to check out",
			})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Checkout failed", Error: err.Error()})
		return
	}

	if ctrl.emailService != nil && req.Email != "" {
		if err := ctrl.emailService.SendBookingConfirmation(req.Email, result.ShipmentNumber, result.Total); err != nil {
			log.Println("Failed to send confirmation email:", err)
		}
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Checkout complete",
		Data:    result,
	})
}
