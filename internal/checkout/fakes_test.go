package checkout_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

// memDB is an in-memory store whose transactions restore a snapshot on rollback.
type memDB struct {
	mu sync.Mutex

	catalog   map[int64]bool
	customers map[string]domain.Customer
	carts     map[int64]domain.Cart
	invoices  map[int64]domain.Invoice
	nextID    int64

	// failInvoice makes CreateInvoice fail with a driver-like error.
	failInvoice error
}

func newMemDB(catalog ...int64) *memDB {
	db := &memDB{
		catalog:   make(map[int64]bool),
		customers: make(map[string]domain.Customer),
		carts:     make(map[int64]domain.Cart),
		invoices:  make(map[int64]domain.Invoice),
	}
	for _, id := range catalog {
		db.catalog[id] = true
	}
	return db
}

func (db *memDB) WithinTx(ctx context.Context, fn func(ctx context.Context, stores port.Stores) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	customers := maps.Clone(db.customers)
	carts := maps.Clone(db.carts)
	invoices := maps.Clone(db.invoices)
	nextID := db.nextID

	if err := fn(ctx, port.Stores{Customers: memCustomers{db}, Carts: memCarts{db}, Invoices: memInvoices{db}}); err != nil {
		db.customers, db.carts, db.invoices, db.nextID = customers, carts, invoices, nextID
		return err
	}

	return nil
}

type memCustomers struct{ db *memDB }

func (m memCustomers) GetCustomer(_ context.Context, id string) (domain.Customer, error) {
	c, ok := m.db.customers[id]
	if !ok {
		return domain.Customer{}, domain.NotFound("customer", id)
	}
	return c, nil
}

func (m memCustomers) ListCustomers(context.Context) ([]domain.Customer, error) {
	return slices.Collect(maps.Values(m.db.customers)), nil
}

func (m memCustomers) SaveCustomer(_ context.Context, c domain.Customer) (domain.Customer, error) {
	if err := c.Validate(); err != nil {
		return domain.Customer{}, err
	}
	c.CreatedAt = time.Now()
	m.db.customers[c.ID] = c
	return c, nil
}

func (m memCustomers) DeleteCustomer(_ context.Context, id string) error {
	delete(m.db.customers, id)
	return nil
}

type memCarts struct{ db *memDB }

func (m memCarts) GetCart(_ context.Context, id int64) (domain.Cart, error) {
	c, ok := m.db.carts[id]
	if !ok {
		return domain.Cart{}, domain.NotFound("cart", id)
	}
	return c, nil
}

func (m memCarts) ListCarts(context.Context) ([]domain.Cart, error) {
	return slices.Collect(maps.Values(m.db.carts)), nil
}

func (m memCarts) CreateCart(_ context.Context, customerID string, productIDs []int64) (domain.Cart, error) {
	missing := lo.Uniq(lo.Filter(productIDs, func(id int64, _ int) bool {
		return !m.db.catalog[id]
	}))
	if len(missing) > 0 {
		return domain.Cart{}, &domain.ReferentialIntegrityError{MissingIDs: missing}
	}

	m.db.nextID++
	cart := domain.Cart{ID: m.db.nextID, CustomerID: customerID, ProductIDs: slices.Clone(productIDs)}
	m.db.carts[cart.ID] = cart
	return cart, nil
}

func (m memCarts) UpdateCart(context.Context, int64, string) (domain.Cart, error) {
	return domain.Cart{}, errors.New("not implemented")
}

func (m memCarts) DeleteCart(_ context.Context, id int64) error {
	delete(m.db.carts, id)
	return nil
}

type memInvoices struct{ db *memDB }

func (m memInvoices) GetInvoice(_ context.Context, id int64) (domain.Invoice, error) {
	inv, ok := m.db.invoices[id]
	if !ok {
		return domain.Invoice{}, domain.NotFound("invoice", id)
	}
	return inv, nil
}

func (m memInvoices) ListInvoices(context.Context) ([]domain.Invoice, error) {
	return slices.Collect(maps.Values(m.db.invoices)), nil
}

func (m memInvoices) GetResolvedInvoice(context.Context, int64) (domain.ResolvedInvoice, error) {
	return domain.ResolvedInvoice{}, errors.New("not implemented")
}

func (m memInvoices) CreateInvoice(_ context.Context, cartID int64, paymentMethodID *int32) (domain.Invoice, error) {
	if m.db.failInvoice != nil {
		return domain.Invoice{}, m.db.failInvoice
	}

	m.db.nextID++
	inv := domain.Invoice{ID: m.db.nextID, CartID: cartID, PaymentMethodID: paymentMethodID}
	m.db.invoices[inv.ID] = inv
	return inv, nil
}

func (m memInvoices) DeleteInvoice(_ context.Context, id int64) error {
	delete(m.db.invoices, id)
	return nil
}

type emailCall struct {
	invoiceID        int64
	to               string
	subject, body    string
	ctxErrAtDelivery error
}

type fakeEmailer struct {
	err   error
	calls []emailCall
}

func (f *fakeEmailer) EmailInvoice(ctx context.Context, invoiceID int64, to, subject, body string) error {
	f.calls = append(f.calls, emailCall{
		invoiceID:        invoiceID,
		to:               to,
		subject:          subject,
		body:             body,
		ctxErrAtDelivery: ctx.Err(),
	})
	return f.err
}

type fakeMetrics struct {
	outcomes      []string
	notifications []string
}

func (f *fakeMetrics) ObserveCheckout(outcome string, _ time.Duration) {
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeMetrics) IncNotification(result string) {
	f.notifications = append(f.notifications, result)
}
