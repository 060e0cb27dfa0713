package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/filehub/filehubctl/internal/models"
	"github.com/filehub/filehubctl/pkg/retention"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestExpiryText(t *testing.T) {
	assert.Equal(t, "Expires in 800 sec", expiryText(800))
	assert.Equal(t, "Expires in 0 sec", expiryText(0))
	assert.Equal(t, "EXPIRED 42 sec ago", expiryText(-42))
}

func TestExpiryBadgeThresholds(t *testing.T) {
	// with colors disabled the badge degrades to the plain label
	assert.Equal(t, "Expires in 450 sec", expiryBadge(450))
	assert.Equal(t, "Expires in 449 sec", expiryBadge(449))
	assert.Equal(t, "Expires in 180 sec", expiryBadge(180))
	assert.Equal(t, "Expires in 179 sec", expiryBadge(179))
	assert.Equal(t, "EXPIRED 10 sec ago", expiryBadge(-10))
}

func TestDeletionText(t *testing.T) {
	assert.Equal(t, "Deletes in 84400 seconds", deletionText(84400))
	assert.Equal(t, "Expired 3600 sec ago (may be deleted)", deletionText(-3600))
}

func classifiedAged(key string, now time.Time, age time.Duration) models.ClassifiedObject {
	objects := []models.ObjectInfo{{
		Key:          key,
		SizeBytes:    2 * 1024 * 1024,
		LastModified: now.Add(-age),
	}}
	return retention.Classify(objects, now, retention.ActiveTTL)[0]
}

func TestPrintActiveObjectsTableMasksKeys(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	objects := []models.ClassifiedObject{
		classifiedAged("docs/AbCdEfGh__report.pdf", now, 100*time.Second),
	}

	var out bytes.Buffer
	PrintActiveObjectsTable(&out, objects)

	assert.Contains(t, out.String(), "docs/XXXXXXGh__report.pdf")
	assert.NotContains(t, out.String(), "AbCdEfGh")
	assert.Contains(t, out.String(), "2.00 MB")
	assert.Contains(t, out.String(), "Expires in 800 sec")
}

func TestPrintActiveObjectsTableEmpty(t *testing.T) {
	var out bytes.Buffer
	PrintActiveObjectsTable(&out, nil)
	assert.Contains(t, out.String(), "No active files.")
}

func TestPrintAllObjectsTableLabelsAgainstHorizon(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	objects := []models.ClassifiedObject{
		classifiedAged("docs/AbCdEfGh__old.pdf", now, 90000*time.Second),
		classifiedAged("docs/ZyXwVuTs__new.pdf", now, 2000*time.Second),
	}

	var out bytes.Buffer
	PrintAllObjectsTable(&out, objects, retention.DisplayHorizon)

	assert.Contains(t, out.String(), "Expired 3600 sec ago (may be deleted)")
	assert.Contains(t, out.String(), "Deletes in 84400 seconds")
}

func TestPrintAllObjectsTableEmpty(t *testing.T) {
	var out bytes.Buffer
	PrintAllObjectsTable(&out, nil, retention.DisplayHorizon)
	assert.Contains(t, out.String(), "No files currently stored.")
}

func TestPrintObjectsSummary(t *testing.T) {
	summary := models.ListingSummary{
		ActiveCount: 2,
		ActiveBytes: 3 * 1024 * 1024,
		TotalCount:  5,
		TotalBytes:  10 * 1024 * 1024,
	}

	var out bytes.Buffer
	PrintObjectsSummary(&out, summary)

	assert.Contains(t, out.String(), "Active file count:")
	assert.Contains(t, out.String(), "3.00 MB")
	assert.Contains(t, out.String(), "10.00 MB")
}

func TestPrintDeletionLog(t *testing.T) {
	entries := []models.DeletionLogEntry{
		{Key: "in/aaaaaaaa__a.txt", DeletedAt: time.Date(2026, 8, 25, 12, 34, 56, 0, time.UTC)},
	}

	var out bytes.Buffer
	PrintDeletionLog(&out, entries)
	assert.Contains(t, out.String(), "- Deleted in/aaaaaaaa__a.txt at 2026-08-25 12:34:56 UTC")

	out.Reset()
	PrintDeletionLog(&out, nil)
	assert.Contains(t, out.String(), "No deletions recorded this session.")
}
