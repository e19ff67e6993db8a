package xmapping

import (
	"time"
)

// EventType enumerates processor lifecycle events for Observer pattern.
type EventType string

const (
	MapStart EventType = "map_start"
	MapDone  EventType = "map_done"
	Dropped  EventType = "dropped"
	Error    EventType = "error"
)

// Event carries telemetry for observers.
type Event struct {
	Type      EventType
	Direction Direction
	Mapper    string
	Topic     string
	Produced  int
	Duration  time.Duration
	Err       error
	// Reason explains a Dropped event.
	Reason string
}

// Metrics is a snapshot of processor counters.
type Metrics struct {
	Inbound          uint64
	Outbound         uint64
	Produced         uint64
	Dropped          uint64
	Errors           uint64
	AvgMappingTimeMs float64
}
