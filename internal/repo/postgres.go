package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]entities.Product, error) {
	res := make(map[int64]entities.Product, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	for _, p := range products {
		res[p.ID] = ProductToEntity(p)
	}
	return res, nil
}

// ReserveStock decrements stock only where enough is left, so concurrent orders cannot oversell.
func (r *postgresRepo) ReserveStock(ctx context.Context, items []entities.OrderItem) error {
	for _, it := range items {
		query, args := r.qb.Update("products").
			Set("stock", sq.Expr("stock - ?", it.Quantity)).
			Where(sq.Eq{"id": it.ProductID}).
			Where(sq.GtOrEq{"stock": it.Quantity}).
			MustSql()

		res, err := r.execContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to reserve stock: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to reserve stock: %w", err)
		}
		if n == 0 {
			return &entities.StockConflictError{Message: fmt.Sprintf("product %d is out of stock", it.ProductID)}
		}
	}
	return nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns[1:]...).
		Values(
			o.PublicToken, o.PaymentOrderID, o.IdempotencyKey, string(o.Status),
			string(o.ShippingMethod), string(o.PaymentMethod),
			o.Address.Name, o.Address.Phone, o.Address.Line1, o.Address.City, o.Address.PostalCode, o.Address.Country,
			o.Totals.Subtotal, o.Totals.Shipping, o.Totals.CODFee, o.Totals.Tax, o.Totals.GrandTotal, o.Totals.Currency,
			nullString(o.PaymentIntentID), o.CreatedAt,
		).
		Suffix("ON CONFLICT (idempotency_key) DO NOTHING RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrDuplicateOrder
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	builder := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		builder = builder.Values(orderID, it.ProductID, it.Quantity, it.UnitPrice)
	}
	query, args := builder.
		Suffix("ON CONFLICT (order_id, product_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetOrderByToken(ctx context.Context, token string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"public_token": token})
}

func (r *postgresRepo) GetOrderByKey(ctx context.Context, key string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"idempotency_key": key})
}

func (r *postgresRepo) SetPaymentIntent(ctx context.Context, orderID int64, intentID string) error {
	return r.updateOrder(ctx, orderID, "payment_intent_id", intentID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	return r.updateOrder(ctx, orderID, "status", string(status))
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("product_id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) updateOrder(ctx context.Context, orderID int64, column string, value any) error {
	query, args := r.qb.Update("orders").
		Set(column, value).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
