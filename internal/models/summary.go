package models

// ListingSummary holds the headline counts shown above the object
// tables.
type ListingSummary struct {
	ActiveCount int
	ActiveBytes int64
	TotalCount  int
	TotalBytes  int64
}

// Summarize computes the headline counts from a classified listing.
func Summarize(objects []ClassifiedObject) ListingSummary {
	var s ListingSummary
	for _, obj := range objects {
		s.TotalCount++
		s.TotalBytes += obj.SizeBytes
		if obj.Active {
			s.ActiveCount++
			s.ActiveBytes += obj.SizeBytes
		}
	}
	return s
}
