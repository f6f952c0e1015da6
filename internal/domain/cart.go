package domain

import "time"

// Cart holds one product id per link row. Repeating an id is how more than one
// unit of a product is expressed; there is no quantity field.
type Cart struct {
	ID         int64
	CustomerID string
	ProductIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
