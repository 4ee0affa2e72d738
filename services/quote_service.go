package services

import (
	"math"
	"strings"

	"swift-courier/models"
)

// Per-zone pricing tables. An unknown zone falls back to the regional value,
// and the base and per-kg tables fall back independently of each other.
var (
	zoneBaseFees = map[string]float64{
		"local":         6,
		"regional":      9,
		"national":      14,
		"international": 25,
	}
	zonePerKgRates = map[string]float64{
		"local":         1.2,
		"regional":      1.8,
		"national":      2.6,
		"international": 4.5,
	}
	serviceMultipliers = map[string]float64{
		"express":  1.5,
		"standard": 1.0,
		"economy":  0.8,
	}
)

const (
	fallbackZone      = "regional"
	minBillableWeight = 0.5
	minQuotePrice     = 5.0
	defaultWeightKg   = 1.0
)

type QuoteService struct{}

func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

// Estimate prices a shipment from weight, zone and service tier. It is a
// total function: malformed inputs degrade to defaults instead of failing,
// and no quote goes below the price floor.
func (s *QuoteService) Estimate(weightKg float64, zone, service string) models.Quote {
	if weightKg < 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		weightKg = defaultWeightKg
	}
	zone = normalizeKey(zone, "local")
	service = normalizeKey(service, "standard")

	base, ok := zoneBaseFees[zone]
	if !ok {
		base = zoneBaseFees[fallbackZone]
	}
	perKg, ok := zonePerKgRates[zone]
	if !ok {
		perKg = zonePerKgRates[fallbackZone]
	}
	multiplier, ok := serviceMultipliers[service]
	if !ok {
		multiplier = 1.0
	}

	billableWeight := math.Max(minBillableWeight, weightKg)
	rawPrice := (base + perKg*billableWeight) * multiplier
	price := math.Max(minQuotePrice, round2(rawPrice))

	return models.Quote{
		WeightKg: weightKg,
		Zone:     zone,
		Service:  service,
		Price:    price,
	}
}

func normalizeKey(value, def string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return def
	}
	return value
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
