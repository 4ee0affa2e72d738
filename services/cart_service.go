package services

import (
	"errors"
	"fmt"
	"time"

	"swift-courier/models"
	"swift-courier/repositories"
)

// ErrCartEmpty marks the "nothing to check out" outcome. It is informational,
// not a failure: the cart slot is left untouched.
var ErrCartEmpty = errors.New("cart is empty")

type CartService struct {
	repo    repositories.CartRepository
	catalog models.Catalog
}

func NewCartService(repo repositories.CartRepository, catalog models.Catalog) *CartService {
	return &CartService{repo: repo, catalog: catalog}
}

func (s *CartService) GetCart() []models.CartLine {
	return s.repo.Get()
}

func (s *CartService) SetCart(lines []models.CartLine) error {
	return s.repo.Set(lines)
}

// AddToCart increments the existing line for the product, or appends a new
// line with quantity 1. At most one line per product id is kept.
func (s *CartService) AddToCart(productID string) ([]models.CartLine, error) {
	lines := s.repo.Get()

	found := false
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{ID: productID, Qty: 1})
	}

	if err := s.repo.Set(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// ChangeQuantity adjusts the matching line by delta, clamped at zero. A line
// reaching zero is removed rather than stored. Unknown product ids leave the
// cart as it was.
func (s *CartService) ChangeQuantity(productID string, delta int) ([]models.CartLine, error) {
	lines := s.repo.Get()

	updated := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID == productID {
			line.Qty += delta
			if line.Qty <= 0 {
				continue
			}
		}
		updated = append(updated, line)
	}

	if err := s.repo.Set(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CartService) Total(lines []models.CartLine) float64 {
	return ComputeTotal(lines, s.catalog)
}

// ComputeTotal sums price*quantity over the cart. A line whose product id is
// absent from the catalog contributes nothing.
func ComputeTotal(lines []models.CartLine, catalog models.Catalog) float64 {
	total := 0.0
	for _, line := range lines {
		if product, ok := catalog.Lookup(line.ID); ok {
			total += product.Price * float64(line.Qty)
		}
	}
	return round2(total)
}

// Checkout clears the cart and returns a simulated shipment number. An empty
// cart returns ErrCartEmpty without touching the slot.
func (s *CartService) Checkout() (*models.CheckoutResult, error) {
	lines := s.repo.Get()
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	total := ComputeTotal(lines, s.catalog)
	if err := s.repo.Set([]models.CartLine{}); err != nil {
		return nil, err
	}

	return &models.CheckoutResult{
		ShipmentNumber: fmt.Sprintf("SHP-%d", time.Now().Unix()),
		Total:          total,
	}, nil
}
