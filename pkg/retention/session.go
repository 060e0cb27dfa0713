package retention

import (
	"context"
	"sync"
	"time"

	"github.com/filehub/filehubctl/internal/models"
)

// Lister returns the listing snapshot for a refresh epoch. Implemented
// by the listing cache, which reuses a memoized snapshot while the
// epoch is unchanged.
type Lister interface {
	Get(ctx context.Context, epoch string) ([]models.ObjectInfo, error)
}

// Snapshot is the result of one refresh tick, ready for rendering.
type Snapshot struct {
	Taken     time.Time
	Objects   []models.ClassifiedObject
	Deletions []models.DeletionLogEntry
}

// Session owns the per-process console state: the current refresh
// epoch, the last sweep time and the append-only deletion log. A single
// mutex guards the state so overlapping refresh drivers cannot race the
// sweep gate into duplicate sweeps or lost log entries.
type Session struct {
	mu        sync.Mutex
	listings  Lister
	sweeper   *Sweeper
	activeTTL time.Duration
	interval  time.Duration
	now       func() time.Time

	epoch     string
	lastSweep time.Time
	deletions []models.DeletionLogEntry
}

// NewSession creates a Session. The first Tick always sweeps; later
// sweeps are gated to at most one per refresh interval.
func NewSession(listings Lister, sweeper *Sweeper, activeTTL, interval time.Duration) *Session {
	s := &Session{
		listings:  listings,
		sweeper:   sweeper,
		activeTTL: activeTTL,
		interval:  interval,
		now:       time.Now,
	}
	s.epoch = mintEpoch(s.now())
	return s
}

// Tick runs one refresh cycle: when the sweep gate has elapsed it mints
// a new epoch (forcing a fresh listing), sweeps expired objects and
// stamps the gate; it then classifies the current listing. A listing
// error fails the whole tick and leaves the session state untouched, so
// the next tick retries.
func (s *Session) Tick(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()

	if now.Sub(s.lastSweep) > s.interval {
		epoch := mintEpoch(now)
		objects, err := s.listings.Get(ctx, epoch)
		if err != nil {
			return Snapshot{}, err
		}
		s.epoch = epoch
		s.deletions = append(s.deletions, s.sweeper.Sweep(ctx, objects, now)...)
		s.lastSweep = now
	}

	objects, err := s.listings.Get(ctx, s.epoch)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Taken:   now,
		Objects: Classify(objects, now, s.activeTTL),
	}
	// copy so the caller cannot observe later appends
	snap.Deletions = append([]models.DeletionLogEntry(nil), s.deletions...)

	return snap, nil
}

// Deletions returns a copy of the deletion log recorded this session.
func (s *Session) Deletions() []models.DeletionLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DeletionLogEntry(nil), s.deletions...)
}

func mintEpoch(now time.Time) string {
	return now.UTC().Format(time.RFC3339Nano)
}
