package handlers

import "time"

// parseDate interprets a YYYY-MM-DD query value in the studio timezone.
func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
