package models

type Quote struct {
	WeightKg float64 `json:"weight_kg"`
	Zone     string  `json:"zone"`
	Service  string  `json:"service"`
	Price    float64 `json:"price"`
}
