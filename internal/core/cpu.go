package core

// CpuMetric summarizes processor usage over one run, in ticks.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

func MeasureCpu(log *EventLog) CpuMetric {
	busy := log.BusyTicks()
	return CpuMetric{
		TotalTime:       log.Horizon(),
		UtilizationTime: busy,
		IdleTime:        log.IdleTicks(),
	}
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}
