package models

type TrackingStep struct {
	Label   string `json:"label"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}

type TrackingInfo struct {
	Code              string         `json:"code"`
	Status            string         `json:"status"`
	Progress          int            `json:"progress"`
	Steps             []TrackingStep `json:"steps"`
	EstimatedDelivery string         `json:"estimated_delivery,omitempty"`
}
