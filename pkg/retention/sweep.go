package retention

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/filehub/filehubctl/internal/models"
	"github.com/filehub/filehubctl/pkg/utils"
)

// Deleter deletes a single object from the transfer bucket.
type Deleter interface {
	DeleteObject(ctx context.Context, bucket, key string) error
}

// Sweeper deletes objects whose age is strictly greater than the active
// TTL. Objects exactly at the TTL are left for the next sweep.
type Sweeper struct {
	deleter Deleter
	bucket  string
	ttl     time.Duration
	warnOut io.Writer
}

// NewSweeper creates a Sweeper for the given bucket and TTL.
func NewSweeper(deleter Deleter, bucket string, ttl time.Duration) *Sweeper {
	return &Sweeper{
		deleter: deleter,
		bucket:  bucket,
		ttl:     ttl,
		warnOut: os.Stderr,
	}
}

// Sweep walks the listing snapshot it is given and deletes every object
// past the TTL. A failed delete is reported as a warning and skipped;
// the sweep never aborts early. The snapshot is not re-listed, so an
// object removed by someone else in the meantime surfaces as a per-key
// warning, not a failure of the sweep. Returned entries are the
// deletions that succeeded.
func (s *Sweeper) Sweep(ctx context.Context, objects []models.ObjectInfo, now time.Time) []models.DeletionLogEntry {
	ttlSeconds := int64(s.ttl.Seconds())

	var deleted []models.DeletionLogEntry
	for _, obj := range objects {
		if utils.AgeSeconds(now, obj.LastModified) <= ttlSeconds {
			continue
		}

		if err := s.deleter.DeleteObject(ctx, s.bucket, obj.Key); err != nil {
			fmt.Fprintf(s.warnOut, "Warning: failed to delete %s: %v\n", obj.Key, err)
			continue
		}

		deleted = append(deleted, models.DeletionLogEntry{
			Key:       obj.Key,
			DeletedAt: now.UTC(),
		})
	}

	return deleted
}
