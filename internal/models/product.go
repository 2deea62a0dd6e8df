package models

// Product is a product as returned by the storefront API.
// swagger:model Product
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      int      `json:"rating"`
	Stock       int      `json:"stock"`
	Categories  []string `json:"categories"`
}

// ProductResponse is the product detail view returned to the browser.
// swagger:model ProductResponse
type ProductResponse struct {
	Product

	// Page title
	// example: Espresso beans
	Title string `json:"title"`

	// Rating rendered as stars
	// example: ★★★★
	Stars string `json:"stars"`

	// Price label
	// example: 4990 Ft
	PriceLabel string `json:"priceLabel"`
}

// ProductErrorResponse represents an error response for product lookups
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// example: This product does not exist
	Error string `json:"error"`
	// example: Unknown product
	Title string `json:"title"`
}
