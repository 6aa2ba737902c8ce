package schedulers

import (
	"fmt"
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/requests"
	"strings"
)

// MaxRunFor bounds the horizon of a single run. The event log holds one slot
// per tick, so the horizon sizes every allocation of a run.
const MaxRunFor = 100000

type Policy string

const (
	PolicyFCFS Policy = "fcfs"
	PolicySJF  Policy = "sjf"
	PolicyRR   Policy = "rr"
)

// Policies lists the supported policies in the order comparisons report them.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicyRR}
}

// Engine runs one scheduling policy over validated processes. Run mutates the
// processes and returns the lifecycle log bounded by horizon.
type Engine interface {
	Name() string
	Policy() Policy
	Run(processes []*core.Process, horizon int) *core.EventLog
}

// NewEngine returns the engine for algorithm. The quantum is only consulted
// for round robin.
func NewEngine(algorithm string, quantum int) (Engine, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(algorithm))) {
	case PolicyFCFS:
		return FirstComeFirstServe{}, nil
	case PolicySJF:
		return ShortestJobFirst{}, nil
	case PolicyRR:
		if quantum <= 0 {
			return nil, configError("quantum", quantum, ErrMissingQuantum)
		}
		return RoundRobin{Quantum: quantum}, nil
	default:
		return nil, configError("use", algorithm, ErrUnsupportedPolicy)
	}
}

// ValidateHorizon rejects a run_for that is not positive or exceeds limit.
func ValidateHorizon(runFor, limit int) error {
	if runFor <= 0 {
		return configError("run_for", runFor, ErrInvalidHorizon)
	}
	if runFor > limit {
		return configError("run_for", runFor, ErrHorizonTooLarge)
	}
	return nil
}

func validateRequest(request requests.ScheduleRequest) error {
	if err := ValidateHorizon(request.RunFor, MaxRunFor); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(request.Jobs))
	for i, job := range request.Jobs {
		field := fmt.Sprintf("processes[%d]", i)
		if job.Name == "" {
			return configError(field+".name", job.Name, ErrEmptyName)
		}
		if _, ok := seen[job.Name]; ok {
			return configError(field+".name", job.Name, ErrDuplicateProcess)
		}
		seen[job.Name] = struct{}{}
		if job.Arrival < 0 {
			return configError(field+".arrival", job.Arrival, ErrInvalidArrival)
		}
		if job.Burst <= 0 {
			return configError(field+".burst", job.Burst, ErrInvalidBurst)
		}
	}
	return nil
}

func buildProcesses(jobs []requests.Job) []*core.Process {
	processes := make([]*core.Process, len(jobs))
	for i, job := range jobs {
		processes[i] = core.NewProcess(job.Name, job.Arrival, job.Burst)
	}
	return processes
}
