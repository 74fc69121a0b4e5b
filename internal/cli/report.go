package cli

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/okian/staffgen/internal/domain/model"
)

const (
	notAvailable = "n/a"
	dateLayout   = "2006-01-02"
)

// RenderStatistics prints the batch statistics as a two column table.
func RenderStatistics(w io.Writer, runID string, s model.Statistics) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Statistics")

	t.AppendHeader(table.Row{"Metric", "Value"})
	if runID != "" {
		t.AppendRow(table.Row{"Run ID", runID})
		t.AppendSeparator()
	}
	t.AppendRows([]table.Row{
		{"Total", s.Total},
		{"Workload 10", s.Workload10},
		{"Workload 20", s.Workload20},
		{"Workload 30", s.Workload30},
		{"Workload 40", s.Workload40},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Average age", formatFloat(s.AverageAge)},
		{"Min age", formatIntPtr(s.MinAge)},
		{"Max age", formatIntPtr(s.MaxAge)},
		{"Median age", formatFloatPtr(s.MedianAge)},
		{"Median workload", formatFloatPtr(s.MedianWorkload)},
		{"Average female workload", formatFloat(s.AverageFemaleWorkload)},
	})

	t.Render()
}

// RenderEmployees prints employees as a table in the order given.
func RenderEmployees(w io.Writer, employees []model.Employee) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Employees")

	t.AppendHeader(table.Row{"#", "Gender", "First name", "Last name", "Date of birth", "Workload"})
	for i, e := range employees {
		t.AppendRow(table.Row{
			i + 1,
			string(e.Gender),
			e.FirstName,
			e.LastName,
			e.DateOfBirth.UTC().Format(dateLayout),
			e.Workload,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(employees)})

	t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return formatFloat(*v)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}
