package timeutil

import (
	"log"
	"time"
)

var location *time.Location

func init() {
	loc, err := time.LoadLocation("Africa/Casablanca")
	if err != nil {
		log.Printf("[Timeutil] Africa/Casablanca not available, falling back to UTC: %v", err)
		loc = time.UTC
	}
	location = loc
}

// Now returns the current time in the company's local timezone.
// Document dates and sequence years are derived from it.
func Now() time.Time {
	return time.Now().In(location)
}

// Location returns the configured timezone.
func Location() *time.Location {
	return location
}
