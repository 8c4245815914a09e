package order

import "time"

// StatusReceived is the only status an order ever has; there is no further
// lifecycle.
const StatusReceived = "received"

// Collection is the persisted collection name for orders.
const Collection = "orders"

// LineItem snapshots the product name and unit price as of order time, so
// later catalog changes never rewrite history.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Customer is stored exactly as submitted; none of its fields are validated.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Order struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Customer  Customer   `json:"customer"`
	CreatedAt time.Time  `json:"createdAt"`
	Status    string     `json:"status"`
}
