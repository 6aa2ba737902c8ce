package core

import "sort"

// EventLog buckets events by tick and tracks which ticks had a running
// process. Idle events are derived from the idle ticks when the log is read.
type EventLog struct {
	horizon int
	buckets map[int][]Event
	busy    []bool
}

func NewEventLog(horizon int) *EventLog {
	if horizon < 0 {
		horizon = 0
	}
	return &EventLog{
		horizon: horizon,
		buckets: make(map[int][]Event),
		busy:    make([]bool, horizon),
	}
}

func (l *EventLog) Horizon() int {
	return l.horizon
}

// Add records an event. Events at or past the horizon are dropped, except a
// Finished event landing exactly on the horizon.
func (l *EventLog) Add(e Event) {
	if e.Time < 0 || e.Time > l.horizon {
		return
	}
	if e.Time == l.horizon && e.Kind != EventFinished {
		return
	}
	l.buckets[e.Time] = append(l.buckets[e.Time], e)
}

// MarkRunning records that some process executed during tick.
func (l *EventLog) MarkRunning(tick int) {
	if tick >= 0 && tick < l.horizon {
		l.busy[tick] = true
	}
}

// MarkRunningRange marks ticks [from, to) as busy.
func (l *EventLog) MarkRunningRange(from, to int) {
	for t := from; t < to; t++ {
		l.MarkRunning(t)
	}
}

func (l *EventLog) BusyTicks() int {
	n := 0
	for _, b := range l.busy {
		if b {
			n++
		}
	}
	return n
}

func (l *EventLog) IdleTicks() int {
	return l.horizon - l.BusyTicks()
}

// Events returns the log in tick order. Within a tick events are ordered by
// kind, then by the order they were added.
func (l *EventLog) Events() []Event {
	events := make([]Event, 0, len(l.buckets)+l.horizon)
	for t := 0; t <= l.horizon; t++ {
		bucket := l.buckets[t]
		if len(bucket) > 1 {
			bucket = append([]Event(nil), bucket...)
			sort.SliceStable(bucket, func(i, j int) bool {
				return bucket[i].Kind < bucket[j].Kind
			})
		}
		events = append(events, bucket...)
		if t < l.horizon && !l.busy[t] {
			events = append(events, Idle(t))
		}
	}
	return events
}
