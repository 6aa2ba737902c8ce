package core

// Unset marks a start or finish time that has not been reached yet.
const Unset = -1

// Process is the mutable per-process state of one simulation run.
type Process struct {
	Name       string
	Arrival    int
	Burst      int
	Remaining  int
	StartTime  int
	FinishTime int
}

func NewProcess(name string, arrival, burst int) *Process {
	return &Process{
		Name:       name,
		Arrival:    arrival,
		Burst:      burst,
		Remaining:  burst,
		StartTime:  Unset,
		FinishTime: Unset,
	}
}

func (p *Process) Started() bool {
	return p.StartTime != Unset
}

func (p *Process) Finished() bool {
	return p.FinishTime != Unset
}

// Dispatch records the first dispatch time. Later calls are no-ops.
func (p *Process) Dispatch(tick int) {
	if !p.Started() {
		p.StartTime = tick
	}
}

// Execute runs the process for one tick ending at end. It reports whether the
// process completed on that tick.
func (p *Process) Execute(end int) bool {
	p.Remaining--
	if p.Remaining == 0 {
		p.FinishTime = end
		return true
	}
	return false
}
