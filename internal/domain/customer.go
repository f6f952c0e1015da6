package domain

import (
	"strings"
	"time"
)

// Customer is identified by its cedula, a national or business id string.
type Customer struct {
	ID      string
	Name    string
	Address string
	Email   string
	Phone   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return NewInvalidRequest("customer id required")
	}

	return nil
}
