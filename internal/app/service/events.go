package service

import "time"

// EventPublisher is notified after every successful store mutation
type EventPublisher interface {
	Publish(eventType, entityID string)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

const dateLayout = "2006-01-02"

// today is swapped in tests
var today = func() string {
	return time.Now().Format(dateLayout)
}
