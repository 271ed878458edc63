// Service to track sunrise and sunset and emit events when they occur.
//
// The order of events on an ordinary day is:
// sunrise -> light -> dark -> sunset
//
// sunrise/sunset correspond to official sunrise and sunset, the sun crossing
// the horizon.
//
// light/dark correspond to when the sun is 2° above the horizon, which
// is fairly light. These events are a better trigger for household
// lights, because at sunrise/set it will likely still be rather dark
// inside! Where the sun never climbs 2° they are skipped.
//
// Inside the polar circles the sun may not cross the horizon at all. The
// service then emits polarday or polarnight once every 24 hours, each time
// checking whether the regime has ended.
package earth

import (
	"context"
	"log"
	"time"

	"github.com/barnybug/daylight/pubsub"
	"github.com/barnybug/daylight/sun"
	"github.com/barnybug/daylight/util"
)

// Clock supplies the current time and timers.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// NextEvent returns the next event after now and its name.
func NextEvent(loc sun.Location, offset int, now time.Time) (at time.Time, name string) {
	phase, at := loc.NextPhase(now, offset)
	switch phase {
	case sun.DayTime:
		name = "sunset"
	case sun.NightTime:
		name = "sunrise"
	case sun.PolarDay:
		name = "polarday"
	case sun.PolarNight:
		name = "polarnight"
	}
	if phase != sun.DayTime {
		return
	}

	// light and dark fall between sunrise and sunset
	today := sun.DateOf(now)
	for i := -1; i <= 1; i++ {
		light := loc.Twilight(today.AddDays(i), sun.ZenithLight)
		if light.IsPolar() {
			continue
		}
		if light.Sunrise.After(now) && light.Sunrise.Before(at) {
			at, name = light.Sunrise, "light"
		}
		if light.Sunset.After(now) && light.Sunset.Before(at) {
			at, name = light.Sunset, "dark"
		}
	}
	return
}

// Service earth
type Service struct {
	Location sun.Location
	// Offset in seconds east of UTC of the local calendar day.
	Offset int
	// Status is the interval between status events, zero to disable.
	Status    time.Duration
	Publisher pubsub.Publisher
	Clock     Clock
}

// ID of the service
func (self *Service) ID() string {
	return "earth"
}

func (self *Service) clock() Clock {
	if self.Clock == nil {
		return realClock{}
	}
	return self.Clock
}

func (self *Service) fields(command string, at time.Time) pubsub.Fields {
	phase, next := self.Location.NextPhase(at, self.Offset)
	return pubsub.Fields{
		"device":  "earth",
		"command": command,
		"phase":   phase.String(),
		"next":    next.Format(time.RFC3339),
		"in":      util.ShortDuration(next.Sub(at)),
	}
}

// status adds the current, or once past sunset the next, local day's
// window.
func (self *Service) status(at time.Time) pubsub.Fields {
	fields := self.fields("status", at)
	w := self.Location.WindowForLocalDay(at, self.Offset)
	fields["sunrise"] = w.Sunrise.Format(time.RFC3339)
	fields["sunset"] = w.Sunset.Format(time.RFC3339)
	return fields
}

// Run the service until ctx is cancelled.
func (self *Service) Run(ctx context.Context) error {
	clock := self.clock()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := clock.Now()
		at, event := NextEvent(self.Location, self.Offset, now)
		log.Printf("Next: %s at %v (in %s)\n", event, at.Local(), util.FriendlyDuration(at.Sub(now)))

		wake, status := at, false
		if self.Status > 0 {
			if tick := util.NextSchedule(now, 0, self.Status); tick.Before(at) {
				wake, status = tick, true
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(wake.Sub(now)):
		}

		if status {
			self.Publisher.Emit(pubsub.NewEventAt("earth", wake, self.status(wake)))
		} else {
			self.Publisher.Emit(pubsub.NewEventAt("earth", at, self.fields(event, at)))
		}
	}
}
