// Package messaging defines the event publishing contract used by the service.
package messaging

import (
	"context"
)

// Event is a message with a subject and a serialized payload.
type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
