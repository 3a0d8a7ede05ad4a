// Command aesys collects the scheduler-internal system log for an AutoSys
// job and prints it as a minimal JSON document. Job stdout/stderr files are
// deliberately not retrieved; see aelog for those.
//
// Usage:
//
//	aesys --job job_name [--run N] [--pretty]
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
		fmt.Fprintf(os.Stderr, "aesys: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		opts   cli.CommonOptions
		run    int
		pretty bool
	)

	cmd := &cobra.Command{
		Use:           "aesys [flags] [job_name]",
		Short:         "Collect an AutoSys job's system log as JSON",
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

			summary := report.CollectSystemLog(cmd.Context(), client, log, opts.Job, run)
			return report.WriteJSON(os.Stdout, summary, pretty)
		},
	}

	opts.Bind(cmd)
	cmd.Flags().IntVar(&run, "run", 0, "specific run number (default: latest run)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	return cmd
}
