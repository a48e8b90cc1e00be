package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/inference-sim/cpusched/sim"
)

const ganttCellWidth = 8

// WriteGantt renders the CPU occupancy of res as a one-line Gantt chart with
// the boundary times underneath. Idle gaps are shown as "-".
func WriteGantt(w io.Writer, res *sim.Result) {
	type cell struct {
		label string
		start int64
	}
	var cells []cell
	var clock int64
	for _, s := range res.Segments {
		if s.Start > clock {
			cells = append(cells, cell{label: "-", start: clock})
		}
		cells = append(cells, cell{label: fmt.Sprint(s.ProcessID), start: s.Start})
		clock = s.End
	}

	var bars, times strings.Builder
	bars.WriteString("|")
	for _, c := range cells {
		pad := ganttCellWidth - 1 - len(c.label)
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		bars.WriteString(strings.Repeat(" ", left) + c.label + strings.Repeat(" ", pad-left) + "|")
		times.WriteString(fmt.Sprintf("%-*d", ganttCellWidth, c.start))
	}
	times.WriteString(fmt.Sprint(clock))

	_, _ = fmt.Fprintf(w, "%s Gantt schedule\n", res.Policy)
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, times.String())
}
