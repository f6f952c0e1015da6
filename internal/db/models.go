package db

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        string
	Name      string
	Address   *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.NullDecimal
	Stock       int32
	Weight      decimal.NullDecimal
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Cart struct {
	ID         int64
	CustomerID string
	ProductIds []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Invoice struct {
	ID              int64
	CartID          *int64
	PaymentMethodID *int32
	CreatedAt       time.Time
}

type PaymentMethod struct {
	ID   int32
	Cash bool
	Card bool
}
