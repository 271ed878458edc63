package dummy

import (
	"sync"

	"github.com/barnybug/daylight/pubsub"
)

// Dummy Publisher for testing
type Publisher struct {
	mu     sync.Mutex
	Events []*pubsub.Event
}

func (self *Publisher) ID() string {
	return "dummy"
}

func (self *Publisher) Emit(ev *pubsub.Event) {
	self.mu.Lock()
	self.Events = append(self.Events, ev)
	self.mu.Unlock()
}

// Commands returns the command field of every event emitted so far.
func (self *Publisher) Commands() []string {
	self.mu.Lock()
	defer self.mu.Unlock()
	var ret []string
	for _, ev := range self.Events {
		ret = append(ret, ev.Command())
	}
	return ret
}
