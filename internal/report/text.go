// Package report renders simulation results as the plain-text .out layout,
// a summary table, or an HTML page.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/responses"
)

// WriteText writes the event timeline followed by per-process metrics.
func WriteText(w io.Writer, response responses.ScheduleResponse) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%3d processes\n", response.ProcessCount)
	fmt.Fprintf(bw, "Using %s\n", response.AlgorithmName)
	if response.Quantum > 0 {
		fmt.Fprintf(bw, "Quantum %3d\n", response.Quantum)
	}
	fmt.Fprintln(bw)

	for _, e := range response.Events {
		fmt.Fprintln(bw, EventLine(e))
	}
	fmt.Fprintf(bw, "Finished at time %3d\n\n", response.TotalTime)

	for _, d := range response.Details {
		fmt.Fprintln(bw, MetricLine(d))
	}
	return bw.Flush()
}

func EventLine(e core.Event) string {
	switch e.Kind {
	case core.EventArrived:
		return fmt.Sprintf("Time %3d : %s arrived", e.Time, e.Name)
	case core.EventSelected:
		return fmt.Sprintf("Time %3d : %s selected (burst %3d)", e.Time, e.Name, e.Burst)
	case core.EventFinished:
		return fmt.Sprintf("Time %3d : %s finished", e.Time, e.Name)
	default:
		return fmt.Sprintf("Time %3d : Idle", e.Time)
	}
}

func MetricLine(d responses.ProcessResponse) string {
	switch d.Status {
	case responses.StatusNeverSelected:
		return fmt.Sprintf("%s was never selected", d.Name)
	case responses.StatusDidNotFinish:
		return fmt.Sprintf("%s did not finish", d.Name)
	default:
		return fmt.Sprintf("%s wait %3d turnaround %3d response %3d", d.Name, d.WaitingTime, d.TurnAroundTime, d.ResponseTime)
	}
}
