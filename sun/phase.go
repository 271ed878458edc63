package sun

import (
	"fmt"
	"time"
)

// Phase is the state of daylight at an instant.
type Phase int

const (
	DayTime Phase = iota
	NightTime
	PolarDay
	PolarNight
)

func (p Phase) String() string {
	switch p {
	case DayTime:
		return "DayTime"
	case NightTime:
		return "NightTime"
	case PolarDay:
		return "PolarDay"
	case PolarNight:
		return "PolarNight"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// NextPhase returns the phase at t and the instant it next changes, for a
// place whose clocks are offset seconds east of UTC. The offset only
// selects which calendar day is local at t; all instants are UTC.
//
// During polar day or night the returned instant is t plus 24 hours, the
// time at which the regime should be checked again rather than the instant
// it ends.
func (loc Location) NextPhase(t time.Time, offset int) (Phase, time.Time) {
	t = t.UTC()
	return loc.phaseOn(t, localDate(t, offset), true)
}

func (loc Location) phaseOn(t time.Time, d Date, rollover bool) (Phase, time.Time) {
	w := loc.Window(d)
	switch {
	case w.IsPolarNight():
		return PolarNight, t.Add(oneDay)
	case w.IsPolarDay():
		return PolarDay, t.Add(oneDay)
	case t.Before(w.Sunrise):
		return NightTime, w.Sunrise
	case w.Contains(t):
		return DayTime, w.Sunset
	}

	// Tomorrow's window may already have begun when the offset does not
	// match the longitude, e.g. offset 0 far east of Greenwich. The phase
	// then still comes from today, which is not polar.
	next := loc.Window(d.AddDays(1))
	switch {
	case next.Sunrise.After(t):
		return NightTime, next.Sunrise
	case next.IsPolarNight():
		return NightTime, t.Add(oneDay)
	case next.IsPolarDay():
		return DayTime, next.Sunset
	case rollover:
		return loc.phaseOn(t, d.AddDays(1), false)
	}
	return NightTime, t.Add(oneDay)
}
