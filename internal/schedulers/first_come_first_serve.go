package schedulers

import (
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/responses"
)

// FirstComeFirstServe runs processes to completion in arrival order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string   { return "First-Come First-Served" }
func (FirstComeFirstServe) Policy() Policy { return PolicyFCFS }

func (FirstComeFirstServe) Run(processes []*core.Process, horizon int) *core.EventLog {
	eventLog := core.NewEventLog(horizon)
	clock := 0
	for _, p := range sortByArrival(processes) {
		eventLog.Add(core.Arrived(p.Arrival, p.Name))

		start := max(clock, p.Arrival)
		if start >= horizon {
			continue
		}
		p.Dispatch(start)
		eventLog.Add(core.Selected(start, p.Name, p.Remaining))

		finish := start + p.Remaining
		clock = finish
		if finish > horizon {
			eventLog.MarkRunningRange(start, horizon)
			p.Remaining -= horizon - start
			continue
		}
		eventLog.MarkRunningRange(start, finish)
		p.Remaining = 0
		p.FinishTime = finish
		eventLog.Add(core.Finished(finish, p.Name))
	}
	return eventLog
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	return schedule(FirstComeFirstServe{}, request)
}
