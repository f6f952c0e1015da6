package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/nikolayk812/indukitchen/internal/repository"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type invoiceRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.InvoiceRepository
	carts     port.CartRepository
	customers port.CustomerRepository
	products  port.ProductRepository
	payments  port.PaymentMethodRepository
	tx        port.Transactor
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestInvoiceRepositorySuite(t *testing.T) {
	suite.Run(t, new(invoiceRepositorySuite))
}

// before all tests in the suite
func (suite *invoiceRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewInvoice(suite.pool)
	suite.carts = repository.NewCart(suite.pool)
	suite.customers = repository.NewCustomer(suite.pool)
	suite.products = repository.NewProduct(suite.pool)
	suite.payments = repository.NewPaymentMethod(suite.pool)
	suite.tx = repository.NewTransactor(suite.pool)
}

// after all tests in the suite
func (suite *invoiceRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *invoiceRepositorySuite) SetupTest() {
	suite.Require().NoError(truncateAll(suite.T().Context(), suite.pool))
}

func (suite *invoiceRepositorySuite) TestCreateInvoice() {
	ctx := suite.T().Context()

	cart := suite.createCart()
	invoicedCart := suite.createCart()
	_, err := suite.repo.CreateInvoice(ctx, invoicedCart.ID, nil)
	suite.Require().NoError(err)

	tests := []struct {
		name            string
		cartID          int64
		paymentMethodID *int32
		wantError       error
	}{
		{
			name:            "unknown payment method is accepted: ok",
			cartID:          cart.ID,
			paymentMethodID: lo.ToPtr[int32](987),
		},
		{
			name:      "cart already invoiced: conflict",
			cartID:    invoicedCart.ID,
			wantError: domain.ErrConflict,
		},
		{
			name:      "missing cart: not found",
			cartID:    123456,
			wantError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			invoice, err := suite.repo.CreateInvoice(t.Context(), tt.cartID, tt.paymentMethodID)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			actual, err := suite.repo.GetInvoice(t.Context(), invoice.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.cartID, actual.CartID)
			assert.Equal(t, tt.paymentMethodID, actual.PaymentMethodID)
			assert.False(t, actual.CreatedAt.IsZero())
		})
	}
}

func (suite *invoiceRepositorySuite) TestGetResolvedInvoice() {
	ctx := suite.T().Context()

	customer, err := suite.customers.SaveCustomer(ctx, fakeCustomer())
	suite.Require().NoError(err)

	p1, err := suite.products.InsertProduct(ctx, fakeProduct())
	suite.Require().NoError(err)

	noPrice := fakeProduct()
	noPrice.Price = nil
	p2, err := suite.products.InsertProduct(ctx, noPrice)
	suite.Require().NoError(err)

	cart, err := suite.carts.CreateCart(ctx, customer.ID, []int64{p2.ID, p1.ID, p2.ID})
	suite.Require().NoError(err)

	invoice, err := suite.repo.CreateInvoice(ctx, cart.ID, lo.ToPtr[int32](1))
	suite.Require().NoError(err)

	emptyCart, err := suite.carts.CreateCart(ctx, customer.ID, nil)
	suite.Require().NoError(err)
	emptyInvoice, err := suite.repo.CreateInvoice(ctx, emptyCart.ID, nil)
	suite.Require().NoError(err)

	suite.Run("cart with products: ok", func() {
		t := suite.T()

		resolved, err := suite.repo.GetResolvedInvoice(t.Context(), invoice.ID)
		require.NoError(t, err)

		assert.Equal(t, invoice.ID, resolved.Invoice.ID)
		require.NotNil(t, resolved.Cart)
		assert.Equal(t, []int64{p2.ID, p1.ID, p2.ID}, resolved.Cart.ProductIDs)
		require.NotNil(t, resolved.Customer)
		assert.Equal(t, customer.Email, resolved.Customer.Email)
		assertProducts(t, []domain.Product{p2, p1, p2}, resolved.Products)
	})

	suite.Run("cart without products: ok", func() {
		t := suite.T()

		resolved, err := suite.repo.GetResolvedInvoice(t.Context(), emptyInvoice.ID)
		require.NoError(t, err)

		require.NotNil(t, resolved.Cart)
		assert.Empty(t, resolved.Products)
		assert.True(t, resolved.Totals().Total.IsZero())
	})

	suite.Run("cart deleted after invoicing: no cart", func() {
		t := suite.T()

		require.NoError(t, suite.carts.DeleteCart(t.Context(), cart.ID))

		resolved, err := suite.repo.GetResolvedInvoice(t.Context(), invoice.ID)
		require.NoError(t, err)

		assert.Nil(t, resolved.Cart)
		assert.Nil(t, resolved.Customer)
		assert.Zero(t, resolved.Invoice.CartID)
	})

	suite.Run("missing invoice: not found", func() {
		t := suite.T()

		_, err := suite.repo.GetResolvedInvoice(t.Context(), 999)
		require.EqualError(t, err, "q.GetResolvedInvoice: invoice[999]: not found")
	})
}

func (suite *invoiceRepositorySuite) TestDeleteInvoice() {
	ctx := suite.T().Context()

	cart := suite.createCart()
	invoice, err := suite.repo.CreateInvoice(ctx, cart.ID, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.DeleteInvoice(ctx, invoice.ID))

	_, err = suite.repo.GetInvoice(ctx, invoice.ID)
	suite.ErrorIs(err, domain.ErrNotFound)

	suite.ErrorIs(suite.repo.DeleteInvoice(ctx, invoice.ID), domain.ErrNotFound)

	invoices, err := suite.repo.ListInvoices(ctx)
	suite.Require().NoError(err)
	suite.Empty(invoices)
}

func (suite *invoiceRepositorySuite) TestWithinTx() {
	customer := fakeCustomer()

	boom := errors.New("boom")

	tests := []struct {
		name       string
		fail       bool
		wantError  error
		wantCommit bool
	}{
		{
			name:       "all steps succeed: committed",
			wantCommit: true,
		},
		{
			name:      "last step fails: rolled back",
			fail:      true,
			wantError: boom,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			require.NoError(t, truncateAll(ctx, suite.pool))

			p, err := suite.products.InsertProduct(ctx, fakeProduct())
			require.NoError(t, err)

			err = suite.tx.WithinTx(ctx, func(ctx context.Context, stores port.Stores) error {
				if _, err := stores.Customers.SaveCustomer(ctx, customer); err != nil {
					return err
				}

				cart, err := stores.Carts.CreateCart(ctx, customer.ID, []int64{p.ID})
				if err != nil {
					return err
				}

				if _, err := stores.Invoices.CreateInvoice(ctx, cart.ID, nil); err != nil {
					return err
				}

				if tt.fail {
					return boom
				}
				return nil
			})
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}

			_, err = suite.customers.GetCustomer(ctx, customer.ID)
			carts, listErr := suite.carts.ListCarts(ctx)
			require.NoError(t, listErr)
			invoices, listErr := suite.repo.ListInvoices(ctx)
			require.NoError(t, listErr)

			if tt.wantCommit {
				assert.NoError(t, err)
				assert.Len(t, carts, 1)
				assert.Len(t, invoices, 1)
				return
			}

			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Empty(t, carts)
			assert.Empty(t, invoices)
		})
	}
}

func (suite *invoiceRepositorySuite) TestPaymentMethods() {
	ctx := suite.T().Context()

	methods, err := suite.payments.ListPaymentMethods(ctx)
	suite.Require().NoError(err)
	suite.Len(methods, 3)

	pm, err := suite.payments.GetPaymentMethod(ctx, methods[0].ID)
	suite.Require().NoError(err)
	suite.Equal(methods[0], pm)

	_, err = suite.payments.GetPaymentMethod(ctx, 404)
	suite.ErrorIs(err, domain.ErrNotFound)
}

func (suite *invoiceRepositorySuite) createCart() domain.Cart {
	ctx := suite.T().Context()

	customer, err := suite.customers.SaveCustomer(ctx, fakeCustomer())
	suite.Require().NoError(err)

	p, err := suite.products.InsertProduct(ctx, fakeProduct())
	suite.Require().NoError(err)

	cart, err := suite.carts.CreateCart(ctx, customer.ID, []int64{p.ID})
	suite.Require().NoError(err)

	return cart
}
