package catalog

// StockStatus values match the wire format of the remote catalog.
const (
	StockAvailable = "Available"
	StockOut       = "Out of Stock"
)

// Product is one purchasable digital good. Products are immutable once
// loaded; the whole catalog is replaced when the remote fetch succeeds.
// JSON tags follow the camelCase convention of the order endpoint.
type Product struct {
	UUID            string `json:"uuid"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	Category        string `json:"category"`
	Platform        string `json:"platform"`
	Region          string `json:"region"`
	ImageURL        string `json:"imageUrl"`
	StockStatus     string `json:"stockStatus"`
	Description     string `json:"description"`
	ActivationGuide string `json:"activationGuide,omitempty"`
}

// Available reports whether the product can be added to the cart from the
// storefront surface. The cart ledger itself places no stock guard.
func (p Product) Available() bool {
	return p.StockStatus != StockOut
}
