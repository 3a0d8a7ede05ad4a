package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aetools/aetools/internal/autosys"
)

const ruleWidth = 80

// LogPresenter writes the delimited stdout/stderr log report for one job.
type LogPresenter struct {
	Out    io.Writer
	Client *autosys.Client
	Styles Styles
	Log    *zap.Logger
}

// Present writes the full report: a header with the job identity, then one
// labeled section per stream, stdout first. Stream failures degrade the
// corresponding section; only write errors on Out are returned.
//
// A scratch directory is created for the duration of the report and removed
// on every exit path. The stock autosyslog honors TMPDIR when staging
// remote log copies.
func (p *LogPresenter) Present(ctx context.Context, d autosys.JobDetails) error {
	tmp, err := os.MkdirTemp("", "aelog_")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	if err := p.header(d); err != nil {
		return err
	}
	if err := p.section(ctx, log, d.JobName, "STDOUT LOG", d.StdOutFile, autosys.Stdout); err != nil {
		return err
	}
	return p.section(ctx, log, d.JobName, "STDERR LOG", d.StdErrFile, autosys.Stderr)
}

func (p *LogPresenter) header(d autosys.JobDetails) error {
	rule := p.Styles.Separator.Render(strings.Repeat("=", ruleWidth))
	_, err := fmt.Fprintf(p.Out, "\n%s\n%s %s\n%s %s\n%s %s\n%s\n\n",
		rule,
		p.Styles.Label.Render("Job Name:"), p.Styles.Header.Render(d.JobName),
		p.Styles.Label.Render("Status:"), p.Styles.Status(orUnknown(d.Status)),
		p.Styles.Label.Render("Last Run:"), orUnknown(d.LastRun),
		rule)
	return err
}

// section renders one stream. No resolved path means the stream is reported
// unavailable without invoking anything; an unreadable path falls back to
// autosyslog exactly once.
func (p *LogPresenter) section(ctx context.Context, log *zap.Logger, job, label, path string, stream autosys.Stream) error {
	if path == "" {
		_, err := fmt.Fprintf(p.Out, "\n%s: Not available\n", label)
		return err
	}

	if _, err := fmt.Fprintf(p.Out, "\n%s (%s):\n%s\n",
		p.Styles.Label.Render(label), path,
		p.Styles.Separator.Render(strings.Repeat("-", ruleWidth))); err != nil {
		return err
	}

	content, readErr := FileSource{Path: path}.Fetch(ctx)
	if readErr == nil {
		_, err := fmt.Fprintln(p.Out, content)
		return err
	}

	log.Debug("direct log read failed, falling back to autosyslog",
		zap.String("path", path), zap.Error(readErr))
	if _, err := fmt.Fprintf(p.Out, "Log file not directly accessible; retrieving via %s...\n",
		autosys.DefaultAutosyslog); err != nil {
		return err
	}

	content, fetchErr := SyslogSource{Client: p.Client, Job: job, Stream: stream}.Fetch(ctx)
	if fetchErr != nil {
		log.Warn("log fallback failed", zap.String("stream", string(stream)), zap.Error(fetchErr))
		if ce, ok := autosys.AsCommandError(fetchErr); ok {
			_, err := fmt.Fprintf(p.Out, "Error retrieving %s log (exit code %d): %s\n",
				stream, ce.ExitCode, strings.TrimSpace(ce.Stderr))
			return err
		}
		_, err := fmt.Fprintf(p.Out, "Error retrieving %s log: %v\n", stream, fetchErr)
		return err
	}
	_, err := fmt.Fprintln(p.Out, content)
	return err
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
