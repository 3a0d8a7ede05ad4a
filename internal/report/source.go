// Package report renders job log and summary reports. All report output is
// written to stdout; diagnostics stay on the logger.
package report

import (
	"context"
	"fmt"
	"os"

	"github.com/aetools/aetools/internal/autosys"
)

// LogSource fetches the content of one job output stream. Two
// implementations exist: direct filesystem reads and the autosyslog
// fallback. The presenter selects by availability.
type LogSource interface {
	Fetch(ctx context.Context) (string, error)
}

// FileSource reads a job log straight from its reported or derived path.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(b), nil
}

// SyslogSource fetches a job log via the external autosyslog command,
// used when the log file itself is not readable from this host.
type SyslogSource struct {
	Client *autosys.Client
	Job    string
	Stream autosys.Stream
}

func (s SyslogSource) Fetch(ctx context.Context) (string, error) {
	return s.Client.StreamLog(ctx, s.Job, s.Stream)
}
