// Package autosys wraps the AutoSys AE command-line utilities (autorep and
// autosyslog). It builds command lines, invokes the external tools, and
// scrapes their labeled free-text reports into structured values.
//
// Nothing here talks to the scheduler by any other means: the CLIs own the
// session, the authentication fallback, and the report formats.
package autosys

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

const (
	// DefaultAutorep is the status-report command.
	DefaultAutorep = "autorep"
	// DefaultAutosyslog is the log-fetch command.
	DefaultAutosyslog = "autosyslog"
)

// Stream selects a job output stream for autosyslog.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

func (s Stream) flag() string {
	if s == Stderr {
		return "-e"
	}
	return "-o"
}

// Client invokes the scheduler CLIs for one job-scoped session. It holds no
// state beyond configuration; every method is one synchronous invocation.
type Client struct {
	autorep    string
	autosyslog string
	creds      Credentials
	runner     Runner
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCommands overrides the external command names, for site-local wrapper
// scripts. Empty values keep the defaults.
func WithCommands(autorep, autosyslog string) Option {
	return func(c *Client) {
		if autorep != "" {
			c.autorep = autorep
		}
		if autosyslog != "" {
			c.autosyslog = autosyslog
		}
	}
}

// WithCredentials sets the credential flags appended to every invocation.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.creds = creds }
}

// WithRunner substitutes the command runner. Tests use this to feed canned
// report text.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// WithLogger sets the diagnostic logger. A nil logger keeps the no-op
// default.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient returns a Client with the stock autorep/autosyslog commands.
func NewClient(opts ...Option) *Client {
	c := &Client{
		autorep:    DefaultAutorep,
		autosyslog: DefaultAutosyslog,
		runner:     ExecRunner{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns the credential set the client appends to commands.
func (c *Client) Credentials() Credentials { return c.creds }

// DetailReport runs the primary job-detail query (autorep -L) and returns
// the raw report text. This is the one call whose failure is fatal to the
// tools; everything else is best-effort.
func (c *Client) DetailReport(ctx context.Context, job string) (string, error) {
	return c.autorepQuery(ctx, job, "-L")
}

// JobDetails runs DetailReport and scrapes it into a JobDetails record.
func (c *Client) JobDetails(ctx context.Context, job string) (JobDetails, error) {
	report, err := c.DetailReport(ctx, job)
	if err != nil {
		return JobDetails{}, err
	}
	return ParseJobDetails(job, report), nil
}

// JobInfo fetches the job definition text (autorep -q).
func (c *Client) JobInfo(ctx context.Context, job string) (string, error) {
	return c.autorepQuery(ctx, job, "-q")
}

// RunDetails fetches detail for one run, or for the latest run when run is
// zero (autorep -r N / autorep -l).
func (c *Client) RunDetails(ctx context.Context, job string, run int) (string, error) {
	if run > 0 {
		return c.autorepQuery(ctx, job, "-r", strconv.Itoa(run))
	}
	return c.autorepQuery(ctx, job, "-l")
}

// StatusHistory fetches the job's status event history (autorep -s).
func (c *Client) StatusHistory(ctx context.Context, job string) (string, error) {
	return c.autorepQuery(ctx, job, "-s")
}

// SystemLog fetches the scheduler-internal log for the job, scoped to a run
// number when run is positive.
func (c *Client) SystemLog(ctx context.Context, job string, run int) (string, error) {
	args := []string{"-j", job}
	if run > 0 {
		args = append(args, "-r", strconv.Itoa(run))
	}
	return c.invoke(ctx, c.autosyslog, args)
}

// StreamLog fetches one output stream of the job's most recent run via
// autosyslog. Used as the fallback when the log file is not readable.
func (c *Client) StreamLog(ctx context.Context, job string, stream Stream) (string, error) {
	return c.invoke(ctx, c.autosyslog, []string{"-j", job, stream.flag()})
}

// JobMetadata scrapes the job-info attribute allow-list from autorep -q
// output.
func JobMetadata(info string) map[string]string {
	return infoTable.Extract(info)
}

func (c *Client) autorepQuery(ctx context.Context, job string, extra ...string) (string, error) {
	args := append([]string{"-j", job}, extra...)
	return c.invoke(ctx, c.autorep, args)
}

func (c *Client) invoke(ctx context.Context, name string, args []string) (string, error) {
	args = append(args, c.creds.Flags()...)
	c.log.Debug("invoking scheduler command",
		zap.String("command", name),
		zap.Strings("args", redactPassword(args)))

	res, err := c.runner.Run(ctx, name, args)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// redactPassword masks the value following -p in diagnostic output.
func redactPassword(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == "-p" {
			out[i+1] = "****"
		}
	}
	return out
}
