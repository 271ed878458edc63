// Package stream publishes events as JSON lines to a writer.
package stream

import (
	"io"
	"log"
	"sync"

	"github.com/barnybug/daylight/pubsub"
)

type Publisher struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPublisher(w io.Writer) *Publisher {
	return &Publisher{w: w}
}

func (self *Publisher) ID() string {
	return "stream"
}

func (self *Publisher) Emit(ev *pubsub.Event) {
	line := append(ev.Bytes(), '\n')
	self.mu.Lock()
	defer self.mu.Unlock()
	if _, err := self.w.Write(line); err != nil {
		log.Println("Error writing event:", err)
	}
}
