package earth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/barnybug/daylight/pubsub"
	"github.com/barnybug/daylight/pubsub/dummy"
	"github.com/barnybug/daylight/sun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	london = sun.Location{Latitude: 51.5072, Longitude: -0.1275}
	tiksi  = sun.Location{Latitude: 71.635604, Longitude: 128.882922}
)

// fakeClock advances instantly to whatever instant is waited for.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

// stopAfter cancels the context once n events have been published.
type stopAfter struct {
	dummy.Publisher
	n      int
	cancel context.CancelFunc
}

func (p *stopAfter) Emit(ev *pubsub.Event) {
	p.Publisher.Emit(ev)
	if len(p.Events) >= p.n {
		p.cancel()
	}
}

func run(t *testing.T, service *Service, n int) *stopAfter {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pub := &stopAfter{n: n, cancel: cancel}
	service.Publisher = pub
	err := service.Run(ctx)
	assert.Equal(t, context.Canceled, err)
	require.Len(t, pub.Events, n)
	return pub
}

func ExampleNextEvent() {
	now := time.Date(2014, 1, 2, 3, 4, 5, 6, time.UTC)
	fmt.Println(NextEvent(london, 0, now))
	// Output:
	// 2014-01-02 08:06:15 +0000 UTC sunrise
}

func TestNextEvent(t *testing.T) {
	at, name := NextEvent(london, 0, time.Date(2014, 1, 2, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "dark", name)
	assert.Equal(t, time.Date(2014, 1, 2, 15, 39, 28, 0, time.UTC), at)

	at, name = NextEvent(london, 0, time.Date(2014, 1, 2, 15, 39, 28, 0, time.UTC))
	assert.Equal(t, "sunset", name)
	assert.Equal(t, time.Date(2014, 1, 2, 16, 3, 8, 0, time.UTC), at)

	// the sun stays below 2° all day
	at, name = NextEvent(tiksi, 9*3600, time.Date(2014, 11, 12, 2, 0, 0, 0, time.UTC))
	assert.Equal(t, "sunset", name)
	assert.WithinDuration(t, time.Date(2014, 11, 12, 4, 46, 30, 0, time.UTC), at, time.Minute)

	now := time.Date(2014, 6, 28, 0, 0, 0, 0, time.UTC)
	at, name = NextEvent(tiksi, 9*3600, now)
	assert.Equal(t, "polarday", name)
	assert.Equal(t, now.Add(24*time.Hour), at)

	now = time.Date(2014, 12, 21, 0, 0, 0, 0, time.UTC)
	at, name = NextEvent(tiksi, 9*3600, now)
	assert.Equal(t, "polarnight", name)
	assert.Equal(t, now.Add(24*time.Hour), at)
}

func TestServiceID(t *testing.T) {
	assert.Equal(t, "earth", (&Service{}).ID())
}

func TestRunEmitsDayEvents(t *testing.T) {
	clock := &fakeClock{time.Date(2014, 1, 2, 0, 0, 0, 0, time.UTC)}
	service := &Service{Location: london, Clock: clock}
	pub := run(t, service, 5)
	assert.Equal(t, []string{"sunrise", "light", "dark", "sunset", "sunrise"}, pub.Commands())

	events := pub.Events
	for _, ev := range events {
		assert.Equal(t, "earth", ev.Topic)
		assert.Equal(t, "earth", ev.StringField("device"))
	}

	assert.Equal(t, time.Date(2014, 1, 2, 8, 6, 15, 0, time.UTC), events[0].Timestamp)
	assert.Equal(t, "DayTime", events[0].StringField("phase"))
	assert.Equal(t, "2014-01-02T16:03:08Z", events[0].StringField("next"))
	assert.Equal(t, "7h 56m", events[0].StringField("in"))
	assert.NotContains(t, events[0].Fields, "sunrise")

	assert.Equal(t, time.Date(2014, 1, 2, 8, 29, 57, 0, time.UTC), events[1].Timestamp)
	assert.Equal(t, "DayTime", events[1].StringField("phase"))
	assert.Equal(t, time.Date(2014, 1, 2, 15, 39, 28, 0, time.UTC), events[2].Timestamp)
	assert.Equal(t, "DayTime", events[2].StringField("phase"))

	assert.Equal(t, time.Date(2014, 1, 2, 16, 3, 8, 0, time.UTC), events[3].Timestamp)
	assert.Equal(t, "NightTime", events[3].StringField("phase"))

	assert.WithinDuration(t, time.Date(2014, 1, 3, 8, 6, 0, 0, time.UTC), events[4].Timestamp, 5*time.Minute)
}

func TestRunStatus(t *testing.T) {
	clock := &fakeClock{time.Date(2014, 1, 2, 5, 30, 0, 0, time.UTC)}
	service := &Service{Location: london, Clock: clock, Status: time.Hour}
	pub := run(t, service, 6)
	assert.Equal(t, []string{"status", "status", "status", "sunrise", "light", "status"}, pub.Commands())

	events := pub.Events
	assert.Equal(t, time.Date(2014, 1, 2, 6, 0, 0, 0, time.UTC), events[0].Timestamp)
	assert.Equal(t, "NightTime", events[0].StringField("phase"))
	assert.Equal(t, "2014-01-02T08:06:15Z", events[0].StringField("next"))
	assert.Equal(t, "2h 6m", events[0].StringField("in"))
	assert.Equal(t, "2014-01-02T08:06:15Z", events[0].StringField("sunrise"))
	assert.Equal(t, "2014-01-02T16:03:08Z", events[0].StringField("sunset"))
	assert.Equal(t, time.Date(2014, 1, 2, 9, 0, 0, 0, time.UTC), events[5].Timestamp)
	assert.Equal(t, "DayTime", events[5].StringField("phase"))
}

func TestRunPolar(t *testing.T) {
	start := time.Date(2014, 6, 28, 0, 0, 0, 0, time.UTC)
	clock := &fakeClock{start}
	service := &Service{Location: tiksi, Offset: 9 * 3600, Clock: clock}
	pub := run(t, service, 2)
	for i, ev := range pub.Events {
		assert.Equal(t, "polarday", ev.Command())
		assert.Equal(t, "PolarDay", ev.StringField("phase"))
		assert.Equal(t, "1d", ev.StringField("in"))
		assert.Equal(t, start.Add(time.Duration(i+1)*24*time.Hour), ev.Timestamp)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pub := &dummy.Publisher{}
	service := &Service{Location: london, Publisher: pub}
	assert.Equal(t, context.Canceled, service.Run(ctx))
	assert.Empty(t, pub.Events)
}
