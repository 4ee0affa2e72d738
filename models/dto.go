package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

type CheckoutRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Address  string `json:"address"`
}
