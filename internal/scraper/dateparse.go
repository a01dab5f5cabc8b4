package scraper

import (
	"strings"
	"time"
)

// dateLayouts is tried in order; the first match wins. ISO-8601 comes
// first (a trailing Z parses as UTC), then the hyphen and dot forms the
// Polish sources print in article listings.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02.01.2006",
}

// ParseDate converts a scraped date string to a timestamp. It returns
// nil for anything it cannot parse instead of failing the article; no
// plausibility check is applied, so far-future dates pass through.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}
