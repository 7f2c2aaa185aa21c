package utils

import "time"

// Layouts accepted for snapshot dates. The sheets export M/D/YYYY; the
// remaining layouts cover hand-edited rows seen in older tabs.
var snapshotDateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate parses an API query date (YYYY-MM-DD). An empty string yields
// the zero time so optional bounds stay optional.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseSnapshotDate parses a date string coming from a snapshot row,
// preferring the M/D/YYYY sheet format. The boolean reports whether any
// layout matched; callers decide how to degrade.
func ParseSnapshotDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range snapshotDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// MonthLabel renders the long month label used as a period key ("January 2024").
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// ShortMonthLabel renders the compact heatmap month label ("Jan 24").
func ShortMonthLabel(t time.Time) string {
	return t.Format("Jan 06")
}

// ParseMonthLabel is the inverse of MonthLabel.
func ParseMonthLabel(label string) (time.Time, bool) {
	t, err := time.Parse("January 2006", label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
