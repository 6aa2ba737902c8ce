package core

import "fmt"

// EventKind is the category of a lifecycle event. The numeric order is the
// tie-break applied to events sharing a tick.
type EventKind int

const (
	EventArrived EventKind = iota
	EventFinished
	EventSelected
	EventIdle
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "arrived"
	case EventFinished:
		return "finished"
	case EventSelected:
		return "selected"
	case EventIdle:
		return "idle"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	if k < EventArrived || k > EventIdle {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "arrived":
		*k = EventArrived
	case "finished":
		*k = EventFinished
	case "selected":
		*k = EventSelected
	case "idle":
		*k = EventIdle
	default:
		return fmt.Errorf("unknown event kind %q", text)
	}
	return nil
}

// Event is one entry of the lifecycle log. Burst is only meaningful for
// selected events and holds the remaining burst at dispatch.
type Event struct {
	Time  int       `json:"time"`
	Kind  EventKind `json:"kind"`
	Name  string    `json:"name,omitempty"`
	Burst int       `json:"burst,omitempty"`
}

func Arrived(tick int, name string) Event {
	return Event{Time: tick, Kind: EventArrived, Name: name}
}

func Selected(tick int, name string, remaining int) Event {
	return Event{Time: tick, Kind: EventSelected, Name: name, Burst: remaining}
}

func Finished(tick int, name string) Event {
	return Event{Time: tick, Kind: EventFinished, Name: name}
}

func Idle(tick int) Event {
	return Event{Time: tick, Kind: EventIdle}
}
