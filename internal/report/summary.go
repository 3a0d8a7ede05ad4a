package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aetools/aetools/internal/autosys"
)

// SystemLogSummary is the minimal JSON document produced by aesys: the
// scheduler-internal log for one job, optionally scoped to a run number.
// A failed fetch leaves SystemLogs null rather than aborting.
type SystemLogSummary struct {
	JobName    string  `json:"job_name"`
	RunNumber  *int    `json:"run_number"`
	SystemLogs *string `json:"system_logs"`
}

// CollectSystemLog fetches the system log best-effort.
func CollectSystemLog(ctx context.Context, c *autosys.Client, log *zap.Logger, job string, run int) SystemLogSummary {
	s := SystemLogSummary{JobName: job, RunNumber: runNumber(run)}
	s.SystemLogs = fetch(log, "system log", func() (string, error) {
		return c.SystemLog(ctx, job, run)
	})
	return s
}

// JobReport is the full report document produced by aereport: job metadata
// scraped from the definition, plus the raw system-log, run-detail, and
// status-history text blocks. Failed secondary fetches become null fields.
type JobReport struct {
	ReportID      string            `json:"report_id"`
	JobName       string            `json:"job_name"`
	RunNumber     *int              `json:"run_number"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Metadata      map[string]string `json:"metadata"`
	SystemLogs    *string           `json:"system_logs"`
	RunDetails    *string           `json:"run_details"`
	StatusHistory *string           `json:"status_history"`
}

// BuildJobReport gathers every section of the full report. Each external
// query is best-effort: failures are logged and the field stays null.
func BuildJobReport(ctx context.Context, c *autosys.Client, log *zap.Logger, job string, run int) JobReport {
	r := JobReport{
		ReportID:    uuid.NewString(),
		JobName:     job,
		RunNumber:   runNumber(run),
		GeneratedAt: time.Now().UTC(),
		Metadata:    map[string]string{},
	}

	if info := fetch(log, "job info", func() (string, error) {
		return c.JobInfo(ctx, job)
	}); info != nil {
		r.Metadata = autosys.JobMetadata(*info)
	}
	r.SystemLogs = fetch(log, "system log", func() (string, error) {
		return c.SystemLog(ctx, job, run)
	})
	r.RunDetails = fetch(log, "run details", func() (string, error) {
		return c.RunDetails(ctx, job, run)
	})
	r.StatusHistory = fetch(log, "status history", func() (string, error) {
		return c.StatusHistory(ctx, job)
	})
	return r
}

// WriteJSON encodes v to w, indented when pretty is set.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteText renders the full report as a human-readable sectioned document.
func (r JobReport) WriteText(w io.Writer, styles Styles) error {
	section := func(title string) string {
		return styles.Header.Render(fmt.Sprintf("=== %s ===", title))
	}

	runLabel := "Latest"
	if r.RunNumber != nil {
		runLabel = fmt.Sprintf("%d", *r.RunNumber)
	}

	if _, err := fmt.Fprintf(w, "%s\nRun Number: %s\nGenerated: %s\nReport ID: %s\n",
		section("System Logs for Job: "+r.JobName),
		runLabel,
		r.GeneratedAt.Format(time.RFC3339),
		r.ReportID); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", section("Job Metadata")); err != nil {
		return err
	}
	for _, k := range sortedKeys(r.Metadata) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", styles.Label.Render(k), r.Metadata[k]); err != nil {
			return err
		}
	}
	if len(r.Metadata) == 0 {
		if _, err := fmt.Fprintln(w, "Not available"); err != nil {
			return err
		}
	}

	for _, part := range []struct {
		title string
		text  *string
	}{
		{"Run Details", r.RunDetails},
		{"Status History", r.StatusHistory},
		{"System Logs", r.SystemLogs},
	} {
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", section(part.title), orNotAvailable(part.text)); err != nil {
			return err
		}
	}
	return nil
}

// fetch runs one best-effort query, returning nil on failure.
func fetch(log *zap.Logger, what string, call func() (string, error)) *string {
	out, err := call()
	if err != nil {
		log.Warn("secondary query failed", zap.String("query", what), zap.Error(err))
		return nil
	}
	out = strings.TrimSpace(out)
	return &out
}

func runNumber(run int) *int {
	if run <= 0 {
		return nil
	}
	return &run
}

func orNotAvailable(s *string) string {
	if s == nil {
		return "Not available"
	}
	return *s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
