package dialog

import "time"

// FormatDate renders an ISO-8601 timestamp with UTC offset as a
// user-friendly "04 May 2063" form. Anything that doesn't parse is returned
// unchanged.
func FormatDate(dateStr string) string {
	parsed, err := time.Parse("2006-01-02T15:04:05Z07:00", dateStr)
	if err != nil {
		return dateStr
	}
	return parsed.Format("02 January 2006")
}
