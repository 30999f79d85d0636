package cache

import (
	"context"
	"testing"
	"time"
)

type quote struct {
	zone  string
	price int64
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[quote], t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[quote], t *testing.T) {
				c.Set("10431|HOME|COD", quote{zone: "Attica", price: 350})
				if v, ok := c.Get("10431|HOME|COD"); !ok || v.price != 350 {
					t.Errorf("expected price=350, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[quote], t *testing.T) {
				c.Set("a", quote{price: 1})
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[quote], t *testing.T) {
				c.Set("a", quote{price: 1})
				c.Set("b", quote{price: 2})
				c.Set("c", quote{price: 3})
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("b"); !ok || v.price != 2 {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v.price != 3 {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[quote], t *testing.T) {
				c.Set("a", quote{price: 1})
				time.Sleep(time.Millisecond * 30)
				c.Set("a", quote{price: 2})
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get("a"); !ok || v.price != 2 {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes entry",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[quote], t *testing.T) {
				c.Set("a", quote{price: 1})
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
			},
		},
		{
			name:     "clear drops everything",
			capacity: 3,
			ttl:      time.Second,
			actions: func(c *LRUCache[quote], t *testing.T) {
				c.Set("a", quote{price: 1})
				c.Set("b", quote{price: 2})
				c.Clear()
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
				c.Set("c", quote{price: 3})
				if v, ok := c.Get("c"); !ok || v.price != 3 {
					t.Errorf("expected price=3 after clear, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[quote], t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				c.StartJanitor(ctx)

				c.Set("a", quote{price: 1})
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if c.Size() != 0 {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache[quote](tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
