// Package sun calculates sunrise and sunset for any point on earth and the
// resulting day/night phase, including polar day and polar night.
//
// All functions are pure and safe for concurrent use. Instants are returned
// in UTC; places are described by a numeric UTC offset rather than a time
// zone name.
package sun

import "time"

// DayWindowForDate returns sunrise and sunset (UTC) on the given day at
// latitude, longitude. Polar day yields midnight to midnight+24h, polar
// night yields midnight twice. It panics on an invalid date.
func DayWindowForDate(year, month, day int, latitude, longitude float64) (sunrise, sunset time.Time) {
	w := Location{latitude, longitude}.Window(NewDate(year, time.Month(month), day))
	return w.Sunrise, w.Sunset
}

// DayWindowForInstant is DayWindowForDate for the UTC calendar day of t.
func DayWindowForInstant(t time.Time, latitude, longitude float64) (sunrise, sunset time.Time) {
	w := Location{latitude, longitude}.WindowForUTCDay(t)
	return w.Sunrise, w.Sunset
}

// NextPhase returns the phase at t and when it next changes. offset is the
// place's UTC offset in seconds.
func NextPhase(t time.Time, latitude, longitude float64, offset int) (Phase, time.Time) {
	return Location{latitude, longitude}.NextPhase(t, offset)
}
