package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CartResponse struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

type CheckoutResult struct {
	ShipmentNumber string  `json:"shipment_number"`
	Total          float64 `json:"total"`
}
