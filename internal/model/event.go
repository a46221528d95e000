// internal/model/event.go
package model

import "time"

// EventLevel classifies an ops log entry
type EventLevel string

const (
	EventInfo  EventLevel = "info"
	EventSpike EventLevel = "spike"
	EventBound EventLevel = "bound"
)

// Event is a single line in the ops log panel
type Event struct {
	At      time.Time
	Level   EventLevel
	Message string
}
