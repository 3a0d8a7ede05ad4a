package autosys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleReport = `
Job Name    Last Start           Last End             ST/Ex  Run/Ntry  Pri/Xit
________    ____________________ ____________________ _____  ________  _______
NIGHTLY_ETL 04/09/2025 02:00:03  04/09/2025 02:14:55  SU     1234/1    0

Status/Event: SUCCESS
Last Run: 04/09/2025 02:14:55
std_out_file: /apps/etl/logs/nightly.out
std_err_file: /apps/etl/logs/nightly.err
job_dir: /apps/etl/logs
`

func TestReportTableExtract(t *testing.T) {
	fields := reportTable.Extract(sampleReport)

	assert.Equal(t, "SUCCESS", fields["status"])
	assert.Equal(t, "04/09/2025 02:14:55", fields["last_run"])
	assert.Equal(t, "/apps/etl/logs/nightly.out", fields["std_out_file"])
	assert.Equal(t, "/apps/etl/logs/nightly.err", fields["std_err_file"])
	assert.Equal(t, "/apps/etl/logs", fields["job_dir"])
}

func TestReportTableAbsentFields(t *testing.T) {
	fields := reportTable.Extract("no labels anywhere in this text")
	assert.Empty(t, fields)
}

func TestReportTableEmptyValueIsAbsent(t *testing.T) {
	// A label with no value must behave exactly like an absent label so the
	// path resolver still derives defaults.
	report := "std_out_file: \nstd_err_file: /a/b.err\n"
	fields := reportTable.Extract(report)

	_, ok := fields["std_out_file"]
	assert.False(t, ok, "empty capture should be absent")
	assert.Equal(t, "/a/b.err", fields["std_err_file"])
}

func TestReportTableDoesNotCrossLines(t *testing.T) {
	// The value for a trailing label must not be pulled from the next line.
	report := "job_dir:\n/apps/etl/logs\n"
	fields := reportTable.Extract(report)

	_, ok := fields["job_dir"]
	assert.False(t, ok)
}

func TestReportTableMultipleLabelsOneLine(t *testing.T) {
	report := "std_out_file: /a/b.out std_err_file: /a/b.err\n"
	fields := reportTable.Extract(report)

	assert.Equal(t, "/a/b.out", fields["std_out_file"])
	assert.Equal(t, "/a/b.err", fields["std_err_file"])
}

func TestInfoTableAllowList(t *testing.T) {
	info := `
insert_job: NIGHTLY_ETL  job_type: CMD
command: /apps/etl/bin/run_nightly.sh
machine: etl-host-01
owner: batch@etl-host-01
priority: 10
alarm_if_fail: 1
custom_attr: ignored
`
	fields := infoTable.Extract(info)

	assert.Equal(t, "CMD", fields["job_type"])
	assert.Equal(t, "/apps/etl/bin/run_nightly.sh", fields["command"])
	assert.Equal(t, "etl-host-01", fields["machine"])
	assert.Equal(t, "10", fields["priority"])
	assert.Equal(t, "1", fields["alarm_if_fail"])

	// Only allow-listed attributes are extracted.
	_, ok := fields["custom_attr"]
	assert.False(t, ok)
	_, ok = fields["owner"]
	assert.False(t, ok)
}

func TestFieldLookup(t *testing.T) {
	v, ok := reportTable.Field(sampleReport, "status")
	assert.True(t, ok)
	assert.Equal(t, "SUCCESS", v)

	_, ok = reportTable.Field(sampleReport, "no_such_field")
	assert.False(t, ok)
}
