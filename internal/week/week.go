// Package week resolves timestamps to canonical ISO week identifiers.
// Two timestamps in the same ISO week always resolve to the same ID,
// which makes weekly seeding idempotent across re-runs.
package week

import "time"

// Layout is the date-only format of a week identifier.
const Layout = "2006-01-02"

// ID identifies an ISO week by the date of its Monday (UTC).
type ID string

// Resolve returns the ID of the week containing t.
// The anchor is the Monday at or before t, in UTC, with the
// time-of-day zeroed by formatting date-only.
func Resolve(t time.Time) ID {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started 6 days earlier
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return ID(monday.Format(Layout))
}

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}

// Seed derives a deterministic integer from the identifier, used to
// rotate sport assignment week over week. It is computed from the ISO
// year and week number rather than the formatted digits, so the value
// is stable regardless of how the ID is rendered. Returns 1 when the
// ID does not parse or the derived value would be 0.
func (id ID) Seed() int {
	t, err := time.Parse(Layout, string(id))
	if err != nil {
		return 1
	}
	year, wk := t.ISOWeek()
	seed := year*100 + wk
	if seed == 0 {
		return 1
	}
	return seed
}
