package usecase

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olekukonko/tablewriter"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

var (
	headerColor    = color.New(color.FgCyan, color.Bold)
	labelColor     = color.New(color.FgBlue)
	availableColor = color.New(color.FgGreen)
	unavailColor   = color.New(color.FgRed)
	noWarnColor    = color.New(color.FgYellow)
)

// Render writes the report in the requested format. The format must have
// been validated already; an unknown value here is a programming error.
func Render(w io.Writer, report *model.StatusReport, format types.Format) error {
	switch format {
	case types.FormatSummary:
		renderSummary(w, report)
		return nil

	case types.FormatDetailed:
		renderSummary(w, report)
		renderTable(w, report)
		return nil

	case types.FormatJSON:
		return renderJSON(w, report.Raw)

	case types.FormatDetailedJSON:
		return renderJSON(w, report)

	default:
		return goerr.New("unsupported output format", goerr.V("format", format))
	}
}

func renderSummary(w io.Writer, report *model.StatusReport) {
	headerColor.Fprintln(w, "============================================================")
	headerColor.Fprintln(w, "  DIALPAD EMPLOYEE DUTY STATUS REPORT")
	headerColor.Fprintln(w, "============================================================")
	fmt.Fprintln(w)

	officeName := report.Metadata.OfficeName
	labelColor.Fprint(w, "Office: ")
	fmt.Fprintf(w, "%s (ID: %s)\n", officeName, report.Metadata.OfficeID)
	labelColor.Fprint(w, "Cache Fetched: ")
	fmt.Fprintln(w, report.Metadata.FetchedAt.Format("2006-01-02 15:04:05 MST"))
	labelColor.Fprint(w, "Generated: ")
	fmt.Fprintln(w, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if report.CacheStale {
		noWarnColor.Fprintf(w, "Warning: roster cache is %s old, re-run fetch\n", report.CacheAge.Round(time.Second))
	}
	fmt.Fprintln(w)

	s := report.Summary
	fmt.Fprintf(w, "Total Employees: %d\n", s.Total)
	availableColor.Fprintf(w, "Available: %d\n", s.Available)
	unavailColor.Fprintf(w, "Unavailable: %d\n", s.Unavailable)
	noWarnColor.Fprintf(w, "No Duty Status: %d\n", s.NoDutyStatus)
	if s.Unknown > 0 {
		noWarnColor.Fprintf(w, "Unknown (lookup failed): %d\n", s.Unknown)
	}
}

func renderTable(w io.Writer, report *model.StatusReport) {
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Email", "Duty Status", "Reason", "Duration"})
	table.SetAutoWrapText(false)

	for _, emp := range report.Employees {
		reason := "-"
		if emp.Reason != "" {
			reason = emp.Reason.String()
		}
		table.Append([]string{
			emp.Name,
			emp.Email,
			colorizeStatus(emp),
			reason,
			emp.DurationText,
		})
	}

	table.Render()
}

func colorizeStatus(emp *model.EmployeeStatus) string {
	label := emp.StatusLabel()
	switch emp.State {
	case types.DutyAvailable:
		return availableColor.Sprint(label)
	case types.DutyUnavailable:
		return unavailColor.Sprint(label)
	default:
		return noWarnColor.Sprint(label)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode report")
	}
	return nil
}
