package services

import "time"

// DateAtLocation truncates a timestamp to the start of its day in the given
// location. All engine comparisons happen at day granularity.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysBetween(earlier, later time.Time) int {
	return int(dateOnly(later).Sub(dateOnly(earlier)).Hours() / 24)
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
