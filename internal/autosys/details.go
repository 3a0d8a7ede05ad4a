package autosys

import "path/filepath"

// JobDetails is the per-invocation record scraped from one autorep report.
// An empty string means the field was absent from the report (or present
// with no value, which the extractor treats the same way).
type JobDetails struct {
	JobName    string
	Status     string
	LastRun    string
	StdOutFile string
	StdErrFile string
}

// ParseJobDetails scrapes an autorep -L report for job. Explicitly reported
// stdout/stderr paths win; missing ones are derived from job_dir as
// <dir>/<job>.out and <dir>/<job>.err. With no job_dir either, the paths
// stay unset and the presenter reports the stream as unavailable.
func ParseJobDetails(job, report string) JobDetails {
	fields := reportTable.Extract(report)

	d := JobDetails{
		JobName:    job,
		Status:     fields["status"],
		LastRun:    fields["last_run"],
		StdOutFile: fields["std_out_file"],
		StdErrFile: fields["std_err_file"],
	}
	d.resolveLogPaths(fields["job_dir"])
	return d
}

func (d *JobDetails) resolveLogPaths(jobDir string) {
	if jobDir == "" {
		return
	}
	if d.StdOutFile == "" {
		d.StdOutFile = filepath.Join(jobDir, d.JobName+".out")
	}
	if d.StdErrFile == "" {
		d.StdErrFile = filepath.Join(jobDir, d.JobName+".err")
	}
}
