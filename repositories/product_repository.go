package repositories

import (
	"context"
	"errors"
	"log"
	"sync"

	"swift-courier/config"
	"swift-courier/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	catalog models.Catalog
}

var (
	catalogOnce sync.Once
	catalog     models.Catalog
)

// NewProductRepository loads the supplies catalog once per process: from the
// products table when a database is connected, otherwise the built-in seed.
// The catalog is immutable after that.
func NewProductRepository() *ProductRepository {
	catalogOnce.Do(func() {
		catalog = loadCatalog()
	})
	return &ProductRepository{catalog: catalog}
}

func NewStaticProductRepository(c models.Catalog) *ProductRepository {
	return &ProductRepository{catalog: c}
}

func (r *ProductRepository) GetAllProducts() models.Catalog {
	return r.catalog
}

func (r *ProductRepository) GetProductByID(id string) (*models.Product, error) {
	p, ok := r.catalog.Lookup(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) Catalog() models.Catalog {
	return r.catalog
}

func loadCatalog() models.Catalog {
	if config.DB == nil {
		return models.SuppliesCatalog
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, price, description FROM products ORDER BY sort_order`)
	if err != nil {
		log.Println("Failed to load catalog from database:", err)
		log.Println("Using built-in supplies catalog")
		return models.SuppliesCatalog
	}
	defer rows.Close()

	loaded := models.Catalog{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description); err != nil {
			log.Println("Failed to scan product row:", err)
			continue
		}
		loaded = append(loaded, p)
	}

	if len(loaded) == 0 {
		return models.SuppliesCatalog
	}

	log.Printf("Catalog loaded from database (%d products)", len(loaded))
	return loaded
}
