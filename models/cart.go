package models

// CartLine is one product/quantity pairing in the cart. The persisted cart is
// a JSON array of these under a single key; a stored line always has Qty > 0
// and there is at most one line per product id.
type CartLine struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}
