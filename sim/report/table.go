package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/cpusched/sim"
)

// WriteComparison renders one row per policy with its averages.
func WriteComparison(w io.Writer, results []*sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response", "Dispatches", "Switches", "Makespan", "Idle", "Throughput"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, res := range results {
		table.Append([]string{
			res.Policy,
			fmt.Sprintf("%.2f", res.AverageWaitingTime),
			fmt.Sprintf("%.2f", res.AverageTurnaround()),
			fmt.Sprintf("%.2f", res.AverageResponse()),
			fmt.Sprint(len(res.Schedule)),
			fmt.Sprint(res.ContextSwitches()),
			fmt.Sprint(res.Makespan),
			fmt.Sprint(res.IdleTime),
			fmt.Sprintf("%.3f/t", res.Throughput()),
		})
	}
	table.Render()
}

// WriteProcessTable renders per-record timing for one policy, with averages
// in the footer.
func WriteProcessTable(w io.Writer, res *sim.Result) {
	rows := make([][]string, 0, len(res.Processes))
	for _, p := range res.Processes {
		rows = append(rows, []string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.FirstRun),
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.Waiting),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Response),
		})
	}

	_, _ = fmt.Fprintf(w, "%s schedule table\n", res.Policy)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaround()),
		fmt.Sprintf("Average\n%.2f", res.AverageResponse())})
	table.Render()
}
