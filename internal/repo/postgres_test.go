package repo_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresRepo(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, m.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "postgres"), m
}

var orderRowColumns = []string{
	"id", "public_token", "payment_order_id", "idempotency_key", "status",
	"shipping_method", "payment_method",
	"name", "phone", "line1", "city", "postal_code", "country",
	"subtotal", "shipping", "cod_fee", "tax", "grand_total", "currency",
	"payment_intent_id", "created_at",
}

func TestPostgresRepo_GetProducts(t *testing.T) {
	db, m := newPostgresRepo(t)
	r := repo.NewPostgresRepo(db)

	m.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id IN ($1,$2)")).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "producer_id", "producer_name", "name", "price", "weight_grams", "stock"}).
			AddRow(1, 10, "Kritsa Groves", "Extra Virgin Olive Oil 1L", 1250, 1000, 100).
			AddRow(3, 20, "Epirus Dairy", "Feta PDO 400g", 850, 400, 100))

	products, err := r.GetProducts(context.Background(), []int64{1, 3})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(20), products[3].ProducerID)
	assert.Equal(t, int64(1250), products[1].Price)
}

func TestPostgresRepo_SaveOrder(t *testing.T) {
	testCases := []struct {
		name    string
		rows    *sqlmock.Rows
		wantID  int64
		wantErr error
	}{
		{
			name:   "inserted",
			rows:   sqlmock.NewRows([]string{"id"}).AddRow(7),
			wantID: 7,
		},
		{
			name:    "idempotency key taken",
			rows:    sqlmock.NewRows([]string{"id"}),
			wantErr: entities.ErrDuplicateOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, m := newPostgresRepo(t)
			r := repo.NewPostgresRepo(db)

			m.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
				WillReturnRows(tc.rows)

			order := testOrder("key-1", "tok-1")
			order.CreatedAt = time.Now()
			id, err := r.SaveOrder(context.Background(), order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestPostgresRepo_ReserveStock(t *testing.T) {
	testCases := []struct {
		name     string
		expect   func(m sqlmock.Sqlmock)
		wantConf bool
	}{
		{
			name: "every line reserved",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $3")).
					WithArgs(2, 1, 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $3")).
					WithArgs(1, 3, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "short line is a conflict",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE products")).
					WithArgs(2, 1, 2).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantConf: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, m := newPostgresRepo(t)
			r := repo.NewPostgresRepo(db)
			tc.expect(m)

			err := r.ReserveStock(context.Background(), []entities.OrderItem{
				{ProductID: 1, Quantity: 2},
				{ProductID: 3, Quantity: 1},
			})
			if tc.wantConf {
				var stock *entities.StockConflictError
				assert.ErrorAs(t, err, &stock)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostgresRepo_GetOrderByToken(t *testing.T) {
	t.Run("found with items", func(t *testing.T) {
		db, m := newPostgresRepo(t)
		r := repo.NewPostgresRepo(db)
		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		m.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE public_token = $1")).
			WithArgs("tok-1").
			WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(
				7, "tok-1", "po_1", "key-1", "pending_payment",
				"HOME", "CARD",
				"Maria Papadopoulou", "+302101234567", "Ermou 10", "Athens", "10431", "GR",
				1250, 350, 0, 300, 1900, "EUR",
				"pi_0123456789", created,
			))
		m.ExpectQuery(regexp.QuoteMeta("FROM order_items WHERE order_id = $1 ORDER BY product_id")).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "unit_price"}).
				AddRow(7, 1, 1, 1250))

		got, err := r.GetOrderByToken(context.Background(), "tok-1")
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, entities.OrderStatusPendingPayment, got.Status)
		assert.Equal(t, "10431", got.Address.PostalCode)
		assert.Equal(t, int64(1900), got.Totals.GrandTotal)
		assert.Equal(t, "pi_0123456789", got.PaymentIntentID)
		assert.Equal(t, []entities.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 1250}}, got.Items)
	})

	t.Run("not found", func(t *testing.T) {
		db, m := newPostgresRepo(t)
		r := repo.NewPostgresRepo(db)

		m.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE public_token = $1")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		_, err := r.GetOrderByToken(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestPostgresRepo_UpdateStatus(t *testing.T) {
	db, m := newPostgresRepo(t)
	r := repo.NewPostgresRepo(db)

	m.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1 WHERE id = $2")).
		WithArgs("paid", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1 WHERE id = $2")).
		WithArgs("paid", 8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.UpdateStatus(context.Background(), 7, entities.OrderStatusPaid))
	assert.ErrorIs(t, r.UpdateStatus(context.Background(), 8, entities.OrderStatusPaid), entities.ErrOrderNotFound)
}

func TestPostgresRepo_UsesTransaction(t *testing.T) {
	db, m := newPostgresRepo(t)
	r := repo.NewPostgresRepo(db)
	manager := trm.NewManager(db)

	m.ExpectBegin()
	m.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (order_id,product_id,quantity,unit_price) VALUES ($1,$2,$3,$4) ON CONFLICT (order_id, product_id) DO NOTHING")).
		WithArgs(7, 1, 1, 1250).
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectCommit()

	items := []entities.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 1250}}
	err := manager.Do(context.Background(), func(ctx context.Context) error {
		if err := r.ReserveStock(ctx, items); err != nil {
			return err
		}
		return r.SaveItems(ctx, 7, items)
	})
	require.NoError(t, err)
}
