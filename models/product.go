package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Catalog is the fixed, ordered list of packing supplies. It is loaded once
// at startup and never mutated afterwards.
type Catalog []Product

func (c Catalog) Lookup(id string) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SuppliesCatalog is the built-in seed used when no database is configured.
var SuppliesCatalog = Catalog{
	{ID: "bx-s", Name: "Small Box", Price: 1.99, Description: "Corrugated box, 25x20x15 cm"},
	{ID: "bx-m", Name: "Medium Box", Price: 2.99, Description: "Corrugated box, 40x30x25 cm"},
	{ID: "bx-l", Name: "Large Box", Price: 4.49, Description: "Corrugated box, 60x40x40 cm"},
	{ID: "tap", Name: "Packing Tape", Price: 2.49, Description: "48 mm x 50 m, brown"},
	{ID: "bbl", Name: "Bubble Wrap Roll", Price: 6.99, Description: "50 cm x 10 m"},
	{ID: "lbl", Name: "Shipping Labels", Price: 3.49, Description: "Pack of 50 self-adhesive labels"},
}
