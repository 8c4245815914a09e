package product

// CreateProductRequest carries the admin-supplied draft. Price and Stock are
// pointers so absence is distinguishable from zero: a missing price fails
// validation while a missing stock falls back to its default.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Unit        string   `json:"unit"`
	Stock       *int     `json:"stock"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}
