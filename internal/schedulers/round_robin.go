package schedulers

import (
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/responses"
)

// RoundRobin grants each dispatch at most Quantum ticks. Arrivals during a
// slice join the queue immediately but never cut the slice short.
type RoundRobin struct {
	Quantum int
}

func (r RoundRobin) Name() string { return "Round-Robin" }
func (RoundRobin) Policy() Policy { return PolicyRR }

func (r RoundRobin) Run(processes []*core.Process, horizon int) *core.EventLog {
	eventLog := core.NewEventLog(horizon)
	arrivals := newArrivalQueue(processes)
	queue := make([]*core.Process, 0, len(processes))
	admit := func(tick int) {
		arrivals.admit(tick, func(p *core.Process) {
			queue = append(queue, p)
			eventLog.Add(core.Arrived(tick, p.Name))
		})
	}

	clock := 0
	for clock < horizon {
		admit(clock)

		if len(queue) == 0 {
			// Nothing to run: skipped ticks stay unmarked and read back as idle.
			if next := arrivals.peek(); next != nil {
				clock = next.Arrival
			} else {
				clock = horizon
			}
			continue
		}

		current := queue[0]
		queue = queue[1:]
		current.Dispatch(clock)
		eventLog.Add(core.Selected(clock, current.Name, current.Remaining))

		slice := min(current.Remaining, r.Quantum)
		for i := 0; i < slice && clock < horizon; i++ {
			eventLog.MarkRunning(clock)
			clock++
			current.Execute(clock)
			admit(clock)
		}

		if current.Finished() {
			eventLog.Add(core.Finished(clock, current.Name))
		} else {
			queue = append(queue, current)
		}
	}
	return eventLog
}

func ScheduleRoundRobin(request requests.ScheduleRequest, timeQuantum int) (responses.ScheduleResponse, error) {
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, configError("quantum", timeQuantum, ErrMissingQuantum)
	}
	request.Quantum = timeQuantum
	return schedule(RoundRobin{Quantum: timeQuantum}, request)
}
