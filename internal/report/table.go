package report

import (
	"fmt"
	"io"
	"os-scheduler-sim/internal/core"
	"os-scheduler-sim/internal/responses"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary writes the per-process metrics table with averages in the
// footer.
func WriteSummary(w io.Writer, response responses.ScheduleResponse) {
	title := response.AlgorithmName
	if response.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.Quantum)
	}
	_, _ = fmt.Fprintln(w, title)

	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			d.Name,
			strconv.Itoa(d.Arrival),
			strconv.Itoa(d.Burst),
			tick(d.StartTime),
			tick(d.FinishTime),
			metric(d, d.WaitingTime),
			metric(d, d.TurnAroundTime),
			metric(d, d.ResponseTime),
			string(d.Status),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Arrival", "Burst", "Start", "Finish", "Wait", "Turnaround", "Response", "Status"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("CPU\n%.0f%%", response.CpuUtilization*100),
	})
	table.Render()
}

func tick(t int) string {
	if t == core.Unset {
		return "-"
	}
	return strconv.Itoa(t)
}

func metric(d responses.ProcessResponse, v int) string {
	if !d.Completed() {
		return "-"
	}
	return strconv.Itoa(v)
}
