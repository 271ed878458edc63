package pubsub

import (
	"encoding/json"
	"time"
)

type Fields map[string]interface{}

type Event struct {
	Topic     string
	Timestamp time.Time
	Fields    Fields
}

// NewEventAt creates an event stamped with the given time.
func NewEventAt(topic string, timestamp time.Time, fields Fields) *Event {
	if fields == nil {
		fields = Fields{}
	}
	return &Event{Topic: topic, Timestamp: timestamp.UTC(), Fields: fields}
}

const TimeFormat = "2006-01-02 15:04:05.000"

func (event *Event) Map() map[string]interface{} {
	data := make(map[string]interface{})
	data["topic"] = event.Topic
	data["timestamp"] = event.Timestamp.Format(TimeFormat)
	for k, v := range event.Fields {
		data[k] = v
	}
	return data
}

func (event *Event) Bytes() []byte {
	v, _ := json.Marshal(event.Map())
	return v
}

func (event *Event) String() string {
	return string(event.Bytes())
}

func (event *Event) StringField(name string) string {
	ret, _ := event.Fields[name].(string)
	return ret
}

func (event *Event) Command() string {
	return event.StringField("command")
}
