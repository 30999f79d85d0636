package repo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type memTxKey struct{}

// memoryRepo keeps everything in process. Do doubles as its transaction
// manager: writes inside Do are rolled back when the callback fails.
type memoryRepo struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	products map[int64]entities.Product
	orders   map[int64]entities.Order
	byKey    map[string]int64
	byToken  map[string]int64
	nextID   int64
}

func NewMemoryRepo(products []entities.Product) *memoryRepo {
	r := &memoryRepo{
		products: make(map[int64]entities.Product, len(products)),
		orders:   make(map[int64]entities.Order),
		byKey:    make(map[string]int64),
		byToken:  make(map[string]int64),
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

type memSnapshot struct {
	products map[int64]entities.Product
	orders   map[int64]entities.Order
	byKey    map[string]int64
	byToken  map[string]int64
	nextID   int64
}

func (r *memoryRepo) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if inMemTx(ctx) {
		return callback(ctx)
	}

	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.RLock()
	snap := memSnapshot{
		products: maps.Clone(r.products),
		orders:   maps.Clone(r.orders),
		byKey:    maps.Clone(r.byKey),
		byToken:  maps.Clone(r.byToken),
		nextID:   r.nextID,
	}
	r.mu.RUnlock()

	if err := callback(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		r.mu.Lock()
		r.products, r.orders, r.byKey, r.byToken, r.nextID = snap.products, snap.orders, snap.byKey, snap.byToken, snap.nextID
		r.mu.Unlock()
		return err
	}
	return nil
}

func inMemTx(ctx context.Context) bool {
	v, _ := ctx.Value(memTxKey{}).(bool)
	return v
}

// write serializes a mutation with running transactions.
func (r *memoryRepo) write(ctx context.Context, fn func() error) error {
	if !inMemTx(ctx) {
		r.txMu.Lock()
		defer r.txMu.Unlock()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn()
}

func (r *memoryRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make(map[int64]entities.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (r *memoryRepo) ReserveStock(ctx context.Context, items []entities.OrderItem) error {
	return r.write(ctx, func() error {
		need := make(map[int64]int, len(items))
		for _, it := range items {
			need[it.ProductID] += it.Quantity
		}
		for id, qty := range need {
			p, ok := r.products[id]
			if !ok {
				return fmt.Errorf("%w %d", entities.ErrUnknownProduct, id)
			}
			if p.Stock < qty {
				return &entities.StockConflictError{Message: p.Name + " is out of stock"}
			}
		}
		for id, qty := range need {
			p := r.products[id]
			p.Stock -= qty
			r.products[id] = p
		}
		return nil
	})
}

func (r *memoryRepo) SaveOrder(ctx context.Context, o entities.Order) (int64, error) {
	var id int64
	err := r.write(ctx, func() error {
		if _, ok := r.byKey[o.IdempotencyKey]; ok {
			return entities.ErrDuplicateOrder
		}
		r.nextID++
		id = r.nextID
		o.ID = id
		o.Items = nil
		r.orders[id] = o
		r.byKey[o.IdempotencyKey] = id
		r.byToken[o.PublicToken] = id
		return nil
	})
	return id, err
}

func (r *memoryRepo) SaveItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	return r.write(ctx, func() error {
		o, ok := r.orders[orderID]
		if !ok {
			return entities.ErrOrderNotFound
		}
		o.Items = slices.Clone(items)
		r.orders[orderID] = o
		return nil
	})
}

func (r *memoryRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orderLocked(id)
}

func (r *memoryRepo) GetOrderByToken(ctx context.Context, token string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byToken[token]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.orderLocked(id)
}

func (r *memoryRepo) GetOrderByKey(ctx context.Context, key string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[key]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.orderLocked(id)
}

func (r *memoryRepo) SetPaymentIntent(ctx context.Context, orderID int64, intentID string) error {
	return r.update(ctx, orderID, func(o *entities.Order) {
		o.PaymentIntentID = intentID
	})
}

func (r *memoryRepo) UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	return r.update(ctx, orderID, func(o *entities.Order) {
		o.Status = status
	})
}

func (r *memoryRepo) update(ctx context.Context, orderID int64, fn func(o *entities.Order)) error {
	return r.write(ctx, func() error {
		o, ok := r.orders[orderID]
		if !ok {
			return entities.ErrOrderNotFound
		}
		fn(&o)
		r.orders[orderID] = o
		return nil
	})
}

func (r *memoryRepo) orderLocked(id int64) (entities.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o.Items = slices.Clone(o.Items)
	return o, nil
}
