package services

import (
	"reflect"
	"strings"
	"testing"

	"swift-courier/models"
	"swift-courier/repositories"
)

var testCatalog = models.Catalog{
	{ID: "bx-s", Name: "Small Box", Price: 1.99},
	{ID: "tap", Name: "Packing Tape", Price: 2.49},
}

func newTestCartService() *CartService {
	return NewCartService(repositories.NewMemoryCartRepository(), testCatalog)
}

func TestAddToCartNewLine(t *testing.T) {
	svc := newTestCartService()

	lines, err := svc.AddToCart("bx-s")
	if err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].ID != "bx-s" || lines[0].Qty != 1 {
		t.Errorf("expected {bx-s 1}, got %+v", lines[0])
	}
}

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	svc := newTestCartService()

	svc.AddToCart("bx-s")
	lines, err := svc.AddToCart("bx-s")
	if err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d lines", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("expected qty 2, got %d", lines[0].Qty)
	}
}

func TestChangeQuantityRemovesLineAtZero(t *testing.T) {
	svc := newTestCartService()

	svc.AddToCart("bx-s")
	lines, err := svc.ChangeQuantity("bx-s", -1)
	if err != nil {
		t.Fatalf("ChangeQuantity failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected line removed entirely, got %+v", lines)
	}
}

func TestChangeQuantityClampsBelowZero(t *testing.T) {
	svc := newTestCartService()

	svc.AddToCart("bx-s")
	lines, err := svc.ChangeQuantity("bx-s", -5)
	if err != nil {
		t.Fatalf("ChangeQuantity failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected line removed, got %+v", lines)
	}
	if got := svc.GetCart(); len(got) != 0 {
		t.Errorf("persisted cart should be empty, got %+v", got)
	}
}

func TestChangeQuantityUnknownProductLeavesCart(t *testing.T) {
	svc := newTestCartService()

	svc.AddToCart("bx-s")
	lines, err := svc.ChangeQuantity("bx-l", 2)
	if err != nil {
		t.Fatalf("ChangeQuantity failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ID != "bx-s" || lines[0].Qty != 1 {
		t.Errorf("expected cart unchanged, got %+v", lines)
	}
}

func TestComputeTotal(t *testing.T) {
	cart := []models.CartLine{
		{ID: "bx-s", Qty: 2},
		{ID: "tap", Qty: 1},
	}

	if got := ComputeTotal(cart, testCatalog); got != 6.47 {
		t.Errorf("ComputeTotal = %v, want 6.47", got)
	}
}

func TestComputeTotalSkipsUnknownProducts(t *testing.T) {
	cart := []models.CartLine{
		{ID: "bx-s", Qty: 1},
		{ID: "discontinued", Qty: 3},
	}

	if got := ComputeTotal(cart, testCatalog); got != 1.99 {
		t.Errorf("ComputeTotal = %v, want 1.99 with unknown product ignored", got)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	svc := newTestCartService()

	svc.AddToCart("bx-s")
	result, err := svc.Checkout()
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if !strings.HasPrefix(result.ShipmentNumber, "SHP-") {
		t.Errorf("unexpected shipment number %q", result.ShipmentNumber)
	}
	if result.Total != 1.99 {
		t.Errorf("expected total 1.99, got %v", result.Total)
	}
	if got := svc.GetCart(); len(got) != 0 {
		t.Errorf("expected cart cleared after checkout, got %+v", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newTestCartService()

	result, err := svc.Checkout()
	if err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got result=%+v err=%v", result, err)
	}
	if got := svc.GetCart(); len(got) != 0 {
		t.Errorf("empty checkout must leave the cart untouched, got %+v", got)
	}
}

func TestCartOperationsLeaveCatalogUntouched(t *testing.T) {
	snapshot := append(models.Catalog(nil), models.SuppliesCatalog...)
	svc := NewCartService(repositories.NewMemoryCartRepository(), models.SuppliesCatalog)

	svc.AddToCart("bx-s")
	svc.AddToCart("tap")
	svc.ChangeQuantity("tap", 2)
	svc.Total(svc.GetCart())
	if _, err := svc.Checkout(); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if !reflect.DeepEqual(models.SuppliesCatalog, snapshot) {
		t.Errorf("cart operations mutated the catalog:\ngot  %+v\nwant %+v",
			models.SuppliesCatalog, snapshot)
	}
}

func TestSequentialAdjustmentsAllApply(t *testing.T) {
	svc := newTestCartService()

	for i := 0; i < 5; i++ {
		if _, err := svc.AddToCart("tap"); err != nil {
			t.Fatalf("AddToCart failed: %v", err)
		}
	}
	svc.ChangeQuantity("tap", -1)
	svc.ChangeQuantity("tap", -1)

	lines := svc.GetCart()
	if len(lines) != 1 || lines[0].Qty != 3 {
		t.Errorf("expected qty 3 after 5 increments and 2 decrements, got %+v", lines)
	}
}
