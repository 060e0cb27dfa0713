package models

import "time"

// ObjectInfo represents a single object in the FileHub transfer bucket
// as returned by a bucket listing. It is an immutable snapshot of the
// store state at listing time.
type ObjectInfo struct {
	Key          string
	SizeBytes    int64
	LastModified time.Time // normalized to UTC
}

// ClassifiedObject is an ObjectInfo enriched with retention metrics
// computed against the active TTL at a fixed evaluation time.
type ClassifiedObject struct {
	ObjectInfo

	// Retention metrics
	AgeSeconds       int64
	RemainingSeconds int64 // signed; negative means past expiry
	Active           bool  // age < active TTL
}

// DeletionLogEntry records one successful object deletion performed by
// the sweeper. Entries are append-only and live only for the duration
// of the running process.
type DeletionLogEntry struct {
	Key       string
	DeletedAt time.Time
}

// String renders the entry the way the deletion log section prints it.
func (e DeletionLogEntry) String() string {
	return "Deleted " + e.Key + " at " + e.DeletedAt.UTC().Format("2006-01-02 15:04:05") + " UTC"
}
