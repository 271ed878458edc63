package sun

import (
	"fmt"
	"time"
)

// Window is the span of daylight on one day. Sunrise is never after Sunset.
// A polar day is the full day from midnight UTC, a polar night is empty and
// anchored at midnight UTC.
type Window struct {
	Sunrise time.Time
	Sunset  time.Time
}

func polarDayWindow(d Date) Window {
	midnight := d.Midnight()
	return Window{Sunrise: midnight, Sunset: midnight.Add(oneDay)}
}

func polarNightWindow(d Date) Window {
	midnight := d.Midnight()
	return Window{Sunrise: midnight, Sunset: midnight}
}

func (w Window) IsPolarDay() bool {
	return w.Sunset.Sub(w.Sunrise) == oneDay
}

func (w Window) IsPolarNight() bool {
	return w.Sunrise.Equal(w.Sunset)
}

func (w Window) IsPolar() bool {
	return w.IsPolarDay() || w.IsPolarNight()
}

// Contains reports whether t is in [Sunrise, Sunset).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Sunrise) && t.Before(w.Sunset)
}

// Daylight is the length of the window.
func (w Window) Daylight() time.Duration {
	return w.Sunset.Sub(w.Sunrise)
}

func (w Window) midpoint() time.Time {
	return w.Sunrise.Add(w.Daylight() / 2)
}

func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.Sunrise.Format(time.RFC3339), w.Sunset.Format(time.RFC3339))
}

// Window returns the official sunrise and sunset on day d. It panics if d
// is not a valid calendar date.
//
// Close to polar day the day can be nearly 24 hours long, and sunrise or
// sunset may then fall on the previous or following UTC day.
func (loc Location) Window(d Date) Window {
	return loc.Twilight(d, ZenithOfficial)
}

// Twilight is Window for an arbitrary zenith, e.g. ZenithCivil for civil
// dawn and dusk.
func (loc Location) Twilight(d Date, zenith float64) Window {
	rise := loc.calculate(d, zenith, true)
	set := loc.calculate(d, zenith, false)

	var w Window
	switch {
	case rise.Kind == EventPolarDay || set.Kind == EventPolarDay:
		w = polarDayWindow(d)
	case rise.Kind == EventPolarNight || set.Kind == EventPolarNight:
		w = polarNightWindow(d)
	default:
		w = Window{Sunrise: rise.At, Sunset: set.At}
		if w.Sunrise.After(w.Sunset) {
			w = loc.unwrap(d, w)
		}
	}
	if w.Sunrise.After(w.Sunset) {
		panic(fmt.Sprintf("sun: sunrise after sunset at %s on %s: %s", loc, d, w))
	}
	return w
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// unwrap repairs a day of almost 24 hours where the day rollover has put
// sunset shortly before sunrise. One of the two moves by a day, whichever
// centres the window closest to the solar noon of d.
func (loc Location) unwrap(d Date, w Window) Window {
	if w.Sunrise.Sub(w.Sunset) >= oneDay {
		return w
	}
	noon := d.Midnight().Add(time.Duration((12 - loc.Longitude/15) * float64(time.Hour)))
	early := Window{Sunrise: w.Sunrise.Add(-oneDay), Sunset: w.Sunset}
	late := Window{Sunrise: w.Sunrise, Sunset: w.Sunset.Add(oneDay)}
	if absDuration(early.midpoint().Sub(noon)) <= absDuration(late.midpoint().Sub(noon)) {
		return early
	}
	return late
}

// WindowForUTCDay returns the window of the UTC calendar day containing t.
func (loc Location) WindowForUTCDay(t time.Time) Window {
	return loc.Window(DateOf(t))
}

// localDate is the calendar day at t for a place offset seconds east of UTC.
func localDate(t time.Time, offset int) Date {
	return DateOf(t.Add(time.Duration(offset) * time.Second))
}

// WindowForLocalDay returns the window of the local calendar day at t, for a
// place whose clocks are offset seconds east of UTC. Once that day's sunset
// has passed, the following day's window is returned instead.
func (loc Location) WindowForLocalDay(t time.Time, offset int) Window {
	d := localDate(t, offset)
	w := loc.Window(d)
	if !w.IsPolar() && !t.Before(w.Sunset) {
		return loc.Window(d.AddDays(1))
	}
	return w
}
