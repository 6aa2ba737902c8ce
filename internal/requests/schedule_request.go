package requests

type Job struct {
	Name    string `json:"name"`
	Arrival int    `json:"arrival"`
	Burst   int    `json:"burst"`
}

// ScheduleRequest describes one simulation run. RunFor and Quantum are
// optional over HTTP, where configured defaults fill them in.
type ScheduleRequest struct {
	Algorithm string `json:"use,omitempty"`
	RunFor    int    `json:"run_for,omitempty"`
	Quantum   int    `json:"quantum,omitempty"`
	Jobs      []Job  `json:"processes"`
}
