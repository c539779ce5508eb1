package format

import "time"

// DateISO is the storage layout of business dates (due dates, rental periods).
const DateISO = "2006-01-02"

// DateCourt renders an ISO date as dd/mm/yyyy for tables and exports.
// Unparseable input is returned unchanged, "-" when empty.
func DateCourt(iso string) string {
	if iso == "" {
		return "-"
	}
	t, err := ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// ParseDate parses a business date, accepting either a bare ISO date or a
// full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateISO, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
