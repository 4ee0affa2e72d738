package repositories

import (
	"reflect"
	"testing"

	"swift-courier/models"
)

var seedCatalog = models.Catalog{
	{ID: "bx-s", Name: "Small Box", Price: 1.99, Description: "Corrugated box, 25x20x15 cm"},
	{ID: "bx-m", Name: "Medium Box", Price: 2.99, Description: "Corrugated box, 40x30x25 cm"},
	{ID: "bx-l", Name: "Large Box", Price: 4.49, Description: "Corrugated box, 60x40x40 cm"},
	{ID: "tap", Name: "Packing Tape", Price: 2.49, Description: "48 mm x 50 m, brown"},
	{ID: "bbl", Name: "Bubble Wrap Roll", Price: 6.99, Description: "50 cm x 10 m"},
	{ID: "lbl", Name: "Shipping Labels", Price: 3.49, Description: "Pack of 50 self-adhesive labels"},
}

func TestSuppliesCatalogSeedOrder(t *testing.T) {
	if !reflect.DeepEqual(models.SuppliesCatalog, seedCatalog) {
		t.Errorf("built-in catalog diverged from the seed:\ngot  %+v\nwant %+v",
			models.SuppliesCatalog, seedCatalog)
	}
}

func TestProductRepositoryReadsLeaveCatalogUntouched(t *testing.T) {
	repo := NewStaticProductRepository(models.SuppliesCatalog)

	repo.GetAllProducts()
	repo.GetProductByID("tap")
	repo.GetProductByID("no-such")
	repo.Catalog().Lookup("bx-l")

	if !reflect.DeepEqual(models.SuppliesCatalog, seedCatalog) {
		t.Errorf("repository reads mutated the catalog: %+v", models.SuppliesCatalog)
	}
	if !reflect.DeepEqual(repo.GetAllProducts(), seedCatalog) {
		t.Errorf("GetAllProducts order diverged from the seed: %+v", repo.GetAllProducts())
	}
}

func TestProductRepositoryLookups(t *testing.T) {
	repo := NewStaticProductRepository(models.SuppliesCatalog)

	product, err := repo.GetProductByID("bx-s")
	if err != nil {
		t.Fatalf("GetProductByID failed: %v", err)
	}
	if product.Name != "Small Box" || product.Price != 1.99 {
		t.Errorf("unexpected product %+v", product)
	}

	if _, err := repo.GetProductByID("no-such"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
