package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/requests"
)

func job(name string, arrival, burst int) requests.Job {
	return requests.Job{Name: name, Arrival: arrival, Burst: burst}
}

func runEngine(engine Engine, horizon int, jobs ...requests.Job) ([]core.Event, []*core.Process, *core.EventLog) {
	processes := buildProcesses(jobs)
	eventLog := engine.Run(processes, horizon)
	return eventLog.Events(), processes, eventLog
}

func assertEvents(t *testing.T, want, got []core.Event) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("event log mismatch (-want +got):\n%s", diff)
	}
}

func byName(processes []*core.Process) map[string]*core.Process {
	m := make(map[string]*core.Process, len(processes))
	for _, p := range processes {
		m[p.Name] = p
	}
	return m
}

func allEngines() []Engine {
	return []Engine{FirstComeFirstServe{}, ShortestJobFirst{}, RoundRobin{Quantum: 2}}
}
