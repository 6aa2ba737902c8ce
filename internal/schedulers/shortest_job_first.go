package schedulers

import (
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/responses"
)

// ShortestJobFirst is the preemptive variant: every tick the ready process
// with the least remaining burst may take the CPU, but only when it is
// strictly shorter than the running one.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string   { return "preemptive Shortest Job First" }
func (ShortestJobFirst) Policy() Policy { return PolicySJF }

func (ShortestJobFirst) Run(processes []*core.Process, horizon int) *core.EventLog {
	eventLog := core.NewEventLog(horizon)
	arrivals := newArrivalQueue(processes)
	ready := &readyQueue{}
	var running *core.Process

	for tick := 0; tick < horizon; tick++ {
		arrivals.admit(tick, func(p *core.Process) {
			ready.push(p)
			eventLog.Add(core.Arrived(tick, p.Name))
		})

		if next := ready.peek(); next != nil && (running == nil || next.Remaining < running.Remaining) {
			if running != nil {
				ready.push(running)
			}
			running = ready.pop()
			running.Dispatch(tick)
			eventLog.Add(core.Selected(tick, running.Name, running.Remaining))
		}

		if running == nil {
			continue
		}
		eventLog.MarkRunning(tick)
		if running.Execute(tick + 1) {
			eventLog.Add(core.Finished(tick+1, running.Name))
			running = nil
		}
	}
	return eventLog
}

func ScheduleShortestJobFirst(request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	return schedule(ShortestJobFirst{}, request)
}
