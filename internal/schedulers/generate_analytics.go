package schedulers

import (
	"log"
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/responses"
	"os-scheduler-sim/internal/util"
	"sync"
)

// Simulate validates request, runs the engine named by request.Algorithm and
// derives the metrics.
func Simulate(request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	engine, err := NewEngine(request.Algorithm, request.Quantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedule(engine, request)
}

// ScheduleAll runs every policy over the same input. Each engine gets its own
// copy of the processes; results come back in Policies() order.
func ScheduleAll(request requests.ScheduleRequest) (responses.ComparisonResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ComparisonResponse{}, err
	}
	policies := Policies()
	engines := make([]Engine, len(policies))
	for i, policy := range policies {
		engine, err := NewEngine(string(policy), request.Quantum)
		if err != nil {
			return responses.ComparisonResponse{}, err
		}
		engines[i] = engine
	}

	results := make([]responses.ScheduleResponse, len(engines))
	var wg sync.WaitGroup
	wg.Add(len(engines))
	for i, engine := range engines {
		go func(i int, engine Engine) {
			defer wg.Done()
			results[i] = run(engine, request)
		}(i, engine)
	}
	wg.Wait()

	return responses.ComparisonResponse{Results: results}, nil
}

func schedule(engine Engine, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := validateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return run(engine, request), nil
}

func run(engine Engine, request requests.ScheduleRequest) responses.ScheduleResponse {
	log.Printf("running %s algorithm: processes=%d run_for=%d", engine.Policy(), len(request.Jobs), request.RunFor)
	processes := buildProcesses(request.Jobs)
	eventLog := engine.Run(processes, request.RunFor)
	return generateResponse(engine, processes, eventLog)
}

func generateResponse(engine Engine, processes []*core.Process, eventLog *core.EventLog) responses.ScheduleResponse {
	horizon := eventLog.Horizon()
	proccessDetails := CalculateMetrics(processes, horizon)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	completed := 0
	for _, details := range proccessDetails {
		if details.Completed() {
			completed++
		}
	}

	cpuMetric := core.MeasureCpu(eventLog)
	response := responses.ScheduleResponse{
		Algorithm:             string(engine.Policy()),
		AlgorithmName:         engine.Name(),
		ProcessCount:          len(processes),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Events:                eventLog.Events(),
		Details:               proccessDetails,
	}
	if horizon > 0 {
		response.CpuThroughput = float64(completed) / float64(horizon)
	}
	if rr, ok := engine.(RoundRobin); ok {
		response.Quantum = rr.Quantum
	}
	return response
}

// CalculateMetrics derives per-process metrics in input order.
func CalculateMetrics(processes []*core.Process, horizon int) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(processes))
	for i, p := range processes {
		details[i] = generateProcessDetails(p, horizon)
	}
	return details
}

func generateProcessDetails(p *core.Process, horizon int) responses.ProcessResponse {
	details := responses.ProcessResponse{
		Name:       p.Name,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		StartTime:  p.StartTime,
		FinishTime: p.FinishTime,
	}
	switch {
	case !p.Started():
		details.Status = responses.StatusNeverSelected
	case !p.Finished() || p.FinishTime > horizon:
		details.Status = responses.StatusDidNotFinish
	default:
		details.Status = responses.StatusCompleted
		details.WaitingTime = p.FinishTime - p.Arrival - p.Burst
		details.TurnAroundTime = p.FinishTime - p.Arrival
		details.ResponseTime = p.StartTime - p.Arrival
	}
	return details
}
