// Command aereport produces a full report for an AutoSys job: metadata
// scraped from the job definition, the scheduler-internal system log, run
// details, and the status event history, as a JSON document or a sectioned
// text report.
//
// Usage:
//
//	aereport --job job_name [--run N] [--format json|text] [--pretty]
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
		fmt.Fprintf(os.Stderr, "aereport: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		opts    cli.CommonOptions
		run     int
		format  string
		pretty  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "aereport [flags] [job_name]",
		Short: "Produce a metadata and system-log report for an AutoSys job",
		Long: `aereport gathers the job definition, system log, run details, and
status history through the scheduler CLIs. Sections whose query fails are
reported as null (JSON) or "Not available" (text) rather than aborting.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ResolveJob(args); err != nil {
				return err
			}
			if format != "json" && format != "text" {
				return fmt.Errorf("invalid --format %q: must be json or text", format)
			}

			log := logging.New(opts.Verbose)
			defer log.Sync()

			client, err := opts.NewClient(log)
			if err != nil {
				return err
			}

			doc := report.BuildJobReport(cmd.Context(), client, log, opts.Job, run)
			if format == "json" {
				return report.WriteJSON(os.Stdout, doc, pretty)
			}

			styles := report.DefaultStyles()
			if noColor {
				styles = report.PlainStyles()
			}
			return doc.WriteText(os.Stdout, styles)
		},
	}

	opts.Bind(cmd)
	cmd.Flags().IntVar(&run, "run", 0, "specific run number (default: latest run)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or text")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output (text format)")
	return cmd
}
