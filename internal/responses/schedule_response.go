package responses

import "os-scheduler-sim/internal/core"

type ProcessStatus string

const (
	StatusCompleted     ProcessStatus = "completed"
	StatusNeverSelected ProcessStatus = "never_selected"
	StatusDidNotFinish  ProcessStatus = "did_not_finish"
)

// ProcessResponse carries the metrics of one process. Wait, turnaround and
// response times are only meaningful when Status is StatusCompleted.
type ProcessResponse struct {
	Name           string        `json:"name"`
	Arrival        int           `json:"arrival"`
	Burst          int           `json:"burst"`
	StartTime      int           `json:"start_time"`
	FinishTime     int           `json:"finish_time"`
	Status         ProcessStatus `json:"status"`
	WaitingTime    int           `json:"waiting_time"`
	TurnAroundTime int           `json:"turn_around_time"`
	ResponseTime   int           `json:"response_time"`
}

func (p ProcessResponse) Completed() bool {
	return p.Status == StatusCompleted
}

type ScheduleResponse struct {
	RunID                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	AlgorithmName         string            `json:"algorithm_name"`
	Quantum               int               `json:"quantum,omitempty"`
	ProcessCount          int               `json:"process_count"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Events                []core.Event      `json:"events"`
	Details               []ProcessResponse `json:"details"`
}

type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results"`
}
