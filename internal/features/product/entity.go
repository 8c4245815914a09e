package product

import "time"

// Product is immutable once created; there are no update or delete
// endpoints, so the stored record is exactly what clients see forever.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Stock       int       `json:"stock"` // informational only, never decremented
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Collection is the persisted collection name for products.
const Collection = "products"
