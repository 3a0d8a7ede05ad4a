// Package cli carries the flag surface and client wiring shared by the
// aetools binaries.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aetools/aetools/internal/autosys"
	"github.com/aetools/aetools/internal/config"
)

// CommonOptions are the flags every tool accepts.
type CommonOptions struct {
	ConfigFile string
	Job        string
	User       string
	Password   string
	Instance   string
	Server     string
	Autorep    string
	Autosyslog string
	Verbose    bool
}

// Bind registers the common flags on cmd.
func (o *CommonOptions) Bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.Job, "job", "j", "", "job name (may also be given as a positional argument)")
	f.StringVarP(&o.User, "user", "u", "", "scheduler username")
	f.StringVarP(&o.Password, "password", "p", "", "scheduler password (omit for a secure prompt)")
	f.StringVarP(&o.Instance, "instance", "i", "", "scheduler instance identifier")
	f.StringVarP(&o.Server, "server", "s", "", "application server address")
	f.StringVar(&o.Autorep, "autorep", "", "status-report command to invoke (default autorep)")
	f.StringVar(&o.Autosyslog, "autosyslog", "", "log-fetch command to invoke (default autosyslog)")
	f.StringVarP(&o.ConfigFile, "config", "c", "", "config file (default $HOME/.aetools.yaml)")
	f.BoolVarP(&o.Verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
}

// ResolveJob fills Job from the positional argument when the flag was not
// given. A missing job name is a usage error.
func (o *CommonOptions) ResolveJob(args []string) error {
	if o.Job == "" && len(args) > 0 {
		o.Job = args[0]
	}
	if o.Job == "" {
		return errors.New("job name is required: use -j/--job or a positional argument")
	}
	return nil
}

// NewClient loads site defaults, resolves credentials (prompting
// interactively when a username lacks a password or instance), and builds
// the scheduler client. Flag values override config and environment.
func (o *CommonOptions) NewClient(log *zap.Logger) (*autosys.Client, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, err
	}

	creds := autosys.Credentials{
		User:     firstNonEmpty(o.User, cfg.User),
		Password: o.Password,
		Instance: firstNonEmpty(o.Instance, cfg.Instance),
		Server:   firstNonEmpty(o.Server, cfg.Server),
	}
	if err := creds.Resolve(autosys.TerminalPrompter{}); err != nil {
		return nil, fmt.Errorf("resolve credentials: %w", err)
	}

	return autosys.NewClient(
		autosys.WithCommands(
			firstNonEmpty(o.Autorep, cfg.Autorep),
			firstNonEmpty(o.Autosyslog, cfg.Autosyslog),
		),
		autosys.WithCredentials(creds),
		autosys.WithLogger(log),
	), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
