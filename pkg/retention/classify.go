package retention

import (
	"sort"
	"time"

	"github.com/filehub/filehubctl/internal/models"
	"github.com/filehub/filehubctl/pkg/utils"
)

const (
	// ActiveTTL is the window after which a transfer object is
	// considered expired and becomes eligible for deletion.
	ActiveTTL = 900 * time.Second

	// RefreshInterval gates how often the listing is refreshed and the
	// sweeper runs.
	RefreshInterval = 300 * time.Second

	// DisplayHorizon orders and labels the all-objects view. It carries
	// no deletion semantics; the sweeper only honors ActiveTTL.
	DisplayHorizon = 24 * time.Hour
)

// Classify computes retention metrics for every object against the
// active TTL at the given evaluation time. Pure function: no side
// effects, input order preserved.
func Classify(objects []models.ObjectInfo, now time.Time, activeTTL time.Duration) []models.ClassifiedObject {
	ttlSeconds := int64(activeTTL.Seconds())

	classified := make([]models.ClassifiedObject, 0, len(objects))
	for _, obj := range objects {
		age := utils.AgeSeconds(now, obj.LastModified)
		classified = append(classified, models.ClassifiedObject{
			ObjectInfo:       obj,
			AgeSeconds:       age,
			RemainingSeconds: ttlSeconds - age,
			Active:           age < ttlSeconds,
		})
	}

	return classified
}

// ActiveObjects returns the active subset sorted soonest-to-expire
// first.
func ActiveObjects(objects []models.ClassifiedObject) []models.ClassifiedObject {
	var active []models.ClassifiedObject
	for _, obj := range objects {
		if obj.Active {
			active = append(active, obj)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].RemainingSeconds < active[j].RemainingSeconds
	})

	return active
}

// AllObjects returns every object sorted by ascending time until the
// display horizon, i.e. oldest first.
func AllObjects(objects []models.ClassifiedObject, horizon time.Duration) []models.ClassifiedObject {
	all := make([]models.ClassifiedObject, len(objects))
	copy(all, objects)

	horizonSeconds := int64(horizon.Seconds())
	sort.SliceStable(all, func(i, j int) bool {
		return horizonSeconds-all[i].AgeSeconds < horizonSeconds-all[j].AgeSeconds
	})

	return all
}

// HorizonRemaining returns the signed seconds left until the object
// crosses the display horizon.
func HorizonRemaining(obj models.ClassifiedObject, horizon time.Duration) int64 {
	return int64(horizon.Seconds()) - obj.AgeSeconds
}
