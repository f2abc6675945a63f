// Package notify pushes cache invalidation events to connected clients over
// websockets so they can drop stale collections without polling.
package notify

import "time"

const (
	EventConnected  = "connected"
	EventInvalidate = "invalidate"
)

type Event struct {
	Type      string    `json:"type"`
	Keys      []string  `json:"keys,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
