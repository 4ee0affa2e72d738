package controllers

import (
	"swift-courier/models"
	"swift-courier/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{authService: services.NewAuthService()}
}

// Register godoc
// @Summary Register new user
// @Description Register a demo customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	resp, err := ctrl.authService.Register(req)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Registration successful",
		Data:    resp,
	})
}

// Login godoc
// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	resp, err := ctrl.authService.Login(req)
	if err != nil {
		c.JSON(401, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}

// GetProfile godoc
// @Summary Get profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	email := c.GetString("user_email")

	user, err := ctrl.authService.GetProfile(email)
	if err != nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "User not found"})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Profile retrieved",
		Data:    user,
	})
}
