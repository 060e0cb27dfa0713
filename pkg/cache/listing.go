package cache

import (
	"context"
	"sync"
	"time"

	"github.com/filehub/filehubctl/internal/models"
)

// Lister performs a live bucket listing.
type Lister interface {
	ListObjects(ctx context.Context, bucket string) ([]models.ObjectInfo, error)
}

// ListingCache memoizes the most recent bucket listing to bound call
// volume against the store. The memoized entry is reused while the
// requested epoch matches and the TTL has not elapsed; a new epoch or
// an elapsed TTL forces exactly one live listing call.
type ListingCache struct {
	mu     sync.Mutex
	lister Lister
	bucket string
	ttl    time.Duration
	now    func() time.Time

	epoch     string
	fetchedAt time.Time
	objects   []models.ObjectInfo
	valid     bool
}

// New creates a ListingCache over the given lister and bucket.
func New(lister Lister, bucket string, ttl time.Duration) *ListingCache {
	return &ListingCache{
		lister: lister,
		bucket: bucket,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns the listing snapshot for the given epoch, performing a
// live store call only on a miss. Store errors propagate to the caller
// and leave the memoized entry untouched.
func (c *ListingCache) Get(ctx context.Context, epoch string) ([]models.ObjectInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.valid && c.epoch == epoch && now.Sub(c.fetchedAt) < c.ttl {
		return c.objects, nil
	}

	objects, err := c.lister.ListObjects(ctx, c.bucket)
	if err != nil {
		return nil, err
	}

	c.epoch = epoch
	c.fetchedAt = now
	c.objects = objects
	c.valid = true

	return objects, nil
}

// Invalidate drops the memoized listing so the next Get performs a live
// call regardless of epoch or TTL.
func (c *ListingCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.objects = nil
}
