package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/Soloken19/shapewear-dev/pkg/logger"
)

// Lister is the fetch surface the cache sits in front of.
type Lister interface {
	ListProducts(ctx context.Context) ([]Product, error)
}

// Cache memoizes the product listing for a TTL so filter queries do
// not hit the catalog service per request. A fetch failure with a warm
// cache serves the stale listing; with a cold cache it propagates.
type Cache struct {
	source Lister
	ttl    time.Duration
	logg   *logger.Logger
	now    func() time.Time

	mu        sync.Mutex
	products  []Product
	fetchedAt time.Time
}

// NewCache wraps the lister with TTL memoization.
func NewCache(source Lister, ttl time.Duration, logg *logger.Logger) *Cache {
	return &Cache{
		source: source,
		ttl:    ttl,
		logg:   logg,
		now:    time.Now,
	}
}

// ListProducts returns the cached listing, refreshing when stale.
func (c *Cache) ListProducts(ctx context.Context) ([]Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	warm := c.products != nil
	if warm && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.copyLocked(), nil
	}

	fresh, err := c.source.ListProducts(ctx)
	if err != nil {
		if warm {
			if c.logg != nil {
				c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()),
					"catalog refresh failed, serving stale listing")
			}
			return c.copyLocked(), nil
		}
		return nil, err
	}

	c.products = fresh
	c.fetchedAt = c.now()
	return c.copyLocked(), nil
}

func (c *Cache) copyLocked() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
