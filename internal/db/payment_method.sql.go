package db

import "context"

const getPaymentMethod = `
SELECT id, cash, card
FROM payment_methods
WHERE id = $1
`

func (q *Queries) GetPaymentMethod(ctx context.Context, id int32) (PaymentMethod, error) {
	row := q.db.QueryRow(ctx, getPaymentMethod, id)
	var i PaymentMethod
	err := row.Scan(&i.ID, &i.Cash, &i.Card)
	return i, err
}

const listPaymentMethods = `
SELECT id, cash, card
FROM payment_methods
ORDER BY id
`

func (q *Queries) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	rows, err := q.db.Query(ctx, listPaymentMethods)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentMethod
	for rows.Next() {
		var i PaymentMethod
		if err := rows.Scan(&i.ID, &i.Cash, &i.Card); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
