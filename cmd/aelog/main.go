// Command aelog retrieves the stdout and stderr logs for an AutoSys job's
// most recent run. Log files are read directly when the paths reported by
// autorep are accessible; otherwise the content is fetched through
// autosyslog.
//
// Usage:
//
//	aelog [-j] job_name [-u user] [-p password] [-i instance] [-s server]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aetools/aetools/internal/cli"
	"github.com/aetools/aetools/internal/logging"
	"github.com/aetools/aetools/internal/report"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aelog: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		opts    cli.CommonOptions
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "aelog [flags] [job_name]",
		Short: "Retrieve stdout and stderr logs for an AutoSys job",
		Long: `aelog queries autorep for a job's detail report, resolves the job's
stdout and stderr log paths, and prints their content. A path that is not
readable from this host is fetched through autosyslog instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ResolveJob(args); err != nil {
				return err
			}

			log := logging.New(opts.Verbose)
			defer log.Sync()

			client, err := opts.NewClient(log)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Retrieving logs for job: %s\n", opts.Job)

			// The one fatal query: without the detail report there is
			// nothing to present.
			details, err := client.JobDetails(cmd.Context(), opts.Job)
			if err != nil {
				return fmt.Errorf("retrieve job details: %w", err)
			}

			styles := report.DefaultStyles()
			if noColor {
				styles = report.PlainStyles()
			}
			presenter := &report.LogPresenter{
				Out:    os.Stdout,
				Client: client,
				Styles: styles,
				Log:    log,
			}
			return presenter.Present(cmd.Context(), details)
		},
	}

	opts.Bind(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
