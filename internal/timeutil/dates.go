package timeutil

import "time"

// Layouts for the ISO strings the ledger compares lexicographically.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05Z07:00"
)

// ValidISODate reports whether s is a well-formed yyyy-mm-dd date.
func ValidISODate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns today's date as an ISO string in UTC.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
