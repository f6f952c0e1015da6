package domain

type PaymentMethod struct {
	ID   int32
	Cash bool
	Card bool
}
