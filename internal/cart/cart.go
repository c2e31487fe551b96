package cart

import "github.com/jvdzdigital/storefront/internal/catalog"

// Product aliases the catalog entity; cart lines hold read-only snapshots of
// it.
type Product = catalog.Product

// Line is one product's accumulated quantity in the cart. Invariants: at
// most one line per product uuid, quantity >= 1 always. The embedded product
// snapshot is what gets serialized into the order payload, matching the
// order endpoint's itemsJson shape.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (l Line) Subtotal() int {
	return l.Price * l.Quantity
}
