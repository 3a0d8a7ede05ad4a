package autosys

import "regexp"

// The scheduler CLIs emit labeled free text ("label: value"). All patterns
// that scrape that text live in one versioned table so a format change in
// the external tool means editing one place.

// FieldPattern extracts a single named field from report text.
type FieldPattern struct {
	Name string
	re   *regexp.Regexp
}

// FieldTable is an ordered set of field patterns evaluated independently
// against the same report text.
type FieldTable struct {
	Version string
	fields  []FieldPattern
}

// labeled builds the standard pattern for "<label>: value" lines. The value
// runs to the next whitespace. Only spaces and tabs may follow the colon so a
// label with no value never captures a token from the following line.
func labeled(name, label string) FieldPattern {
	return FieldPattern{
		Name: name,
		re:   regexp.MustCompile(label + `:[ \t]*([^\s]*)`),
	}
}

// pattern builds a field with an explicit regular expression. The expression
// must contain exactly one capture group.
func pattern(name, expr string) FieldPattern {
	return FieldPattern{Name: name, re: regexp.MustCompile(expr)}
}

// reportTable scrapes autorep -L detail reports.
var reportTable = FieldTable{
	Version: "autorep-11.3",
	fields: []FieldPattern{
		pattern("status", `Status/Event:[ \t]*(\w+)`),
		pattern("last_run", `Last Run:[ \t]*([\d/]+[ \t]+[\d:]+)`),
		labeled("std_out_file", "std_out_file"),
		labeled("std_err_file", "std_err_file"),
		labeled("job_dir", "job_dir"),
	},
}

// infoTable is the attribute allow-list scraped from autorep -q job
// definitions for report metadata.
var infoTable = FieldTable{
	Version: "autorep-11.3",
	fields: []FieldPattern{
		labeled("machine", "machine"),
		labeled("box_name", "box_name"),
		labeled("command", "command"),
		labeled("condition", "condition"),
		labeled("date_conditions", "date_conditions"),
		labeled("days_of_week", "days_of_week"),
		labeled("start_times", "start_times"),
		labeled("job_type", "job_type"),
		labeled("priority", "priority"),
		labeled("max_run_alarm", "max_run_alarm"),
		labeled("alarm_if_fail", "alarm_if_fail"),
	},
}

// Extract applies every pattern to text and returns the fields that matched
// with a non-empty value. A label that is present but carries no value is
// treated the same as an absent label.
func (t FieldTable) Extract(text string) map[string]string {
	out := make(map[string]string, len(t.fields))
	for _, f := range t.fields {
		if v, ok := f.match(text); ok {
			out[f.Name] = v
		}
	}
	return out
}

// Field extracts a single named field; ok is false when the field is absent
// or empty.
func (t FieldTable) Field(text, name string) (string, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f.match(text)
		}
	}
	return "", false
}

func (f FieldPattern) match(text string) (string, bool) {
	m := f.re.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}
