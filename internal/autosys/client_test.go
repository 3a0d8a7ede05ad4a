package autosys

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures every invocation and replays canned results
// keyed by the joined command line.
type recordingRunner struct {
	calls   []string
	results map[string]Result
	errs    map[string]error
}

func (r *recordingRunner) Run(_ context.Context, name string, args []string) (Result, error) {
	key := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if err, ok := r.errs[key]; ok {
		return Result{}, err
	}
	return r.results[key], nil
}

func TestClientAppendsCredentialFlags(t *testing.T) {
	runner := &recordingRunner{results: map[string]Result{
		"autorep -j J1 -L -u u -p pw -i ACE": {Stdout: "Status/Event: SUCCESS\n"},
	}}
	c := NewClient(
		WithCredentials(Credentials{User: "u", Password: "pw", Instance: "ACE"}),
		WithRunner(runner),
	)

	out, err := c.DetailReport(context.Background(), "J1")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS")
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "autorep -j J1 -L -u u -p pw -i ACE", runner.calls[0])
}

func TestClientSameFlagsOnSyslog(t *testing.T) {
	runner := &recordingRunner{results: map[string]Result{}}
	c := NewClient(
		WithCredentials(Credentials{User: "u", Password: "pw"}),
		WithRunner(runner),
	)

	_, err := c.StreamLog(context.Background(), "J1", Stderr)
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "autosyslog -j J1 -e -u u -p pw", runner.calls[0])
}

func TestClientCommandOverrides(t *testing.T) {
	runner := &recordingRunner{}
	c := NewClient(
		WithCommands("/opt/ae/bin/autorep", ""),
		WithRunner(runner),
	)

	_, err := c.JobInfo(context.Background(), "J1")
	require.NoError(t, err)
	assert.Equal(t, "/opt/ae/bin/autorep -j J1 -q", runner.calls[0])
}

func TestClientRunSelection(t *testing.T) {
	runner := &recordingRunner{}
	c := NewClient(WithRunner(runner))
	ctx := context.Background()

	_, _ = c.RunDetails(ctx, "J1", 0)
	_, _ = c.RunDetails(ctx, "J1", 42)
	_, _ = c.SystemLog(ctx, "J1", 0)
	_, _ = c.SystemLog(ctx, "J1", 42)

	assert.Equal(t, []string{
		"autorep -j J1 -l",
		"autorep -j J1 -r 42",
		"autosyslog -j J1",
		"autosyslog -j J1 -r 42",
	}, runner.calls)
}

func TestClientPrimaryFailure(t *testing.T) {
	cmdErr := &CommandError{Name: "autorep", ExitCode: 1, Stderr: "CAUAJM_E_10062 Invalid job name"}
	runner := &recordingRunner{errs: map[string]error{
		"autorep -j NOPE -L": cmdErr,
	}}
	c := NewClient(WithRunner(runner))

	_, err := c.JobDetails(context.Background(), "NOPE")
	require.Error(t, err)

	ce, ok := AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, 1, ce.ExitCode)
	assert.Contains(t, ce.Error(), "CAUAJM_E_10062")
}

func TestRedactPassword(t *testing.T) {
	args := []string{"-j", "J1", "-u", "u", "-p", "secret", "-i", "ACE"}
	redacted := redactPassword(args)

	assert.Equal(t, "****", redacted[5])
	assert.Equal(t, "secret", args[5], "input must not be mutated")
}
