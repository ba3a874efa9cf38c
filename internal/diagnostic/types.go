package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostics holds all diagnostic information from one pass or run.
type Diagnostics struct {
	Errors []Diagnostic
	Infos  []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// Construct identifies which schema construct this relates to (if any),
	// e.g. "WGPUColor.r" or "wgpuDeviceCreateBuffer".
	Construct string
	// Line is the zero-based source line this relates to, or -1.
	Line int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message, construct string, line int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Message:   message,
		Construct: construct,
		Line:      line,
	})
}

// AddErrorf adds an error diagnostic with a formatted message and no source
// position.
func (d *Diagnostics) AddErrorf(format string, args ...any) {
	d.AddError(fmt.Sprintf(format, args...), "", -1)
}

// AddInfo adds a plain notice.
func (d *Diagnostics) AddInfo(message, construct string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Message:   message,
		Construct: construct,
		Line:      line,
	})
}

// AddInfof adds a plain notice with a formatted message and no source
// position.
func (d *Diagnostics) AddInfof(format string, args ...any) {
	d.AddInfo(fmt.Sprintf(format, args...), "", -1)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Lines renders all diagnostics as report-stream lines, errors first.
// Error lines carry the "ERROR:" prefix; notices are plain.
func (d *Diagnostics) Lines() []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.String())
	}

	for _, n := range d.Infos {
		out = append(out, n.String())
	}

	return out
}

// String returns a formatted report-stream line.
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.Severity == SeverityError {
		sb.WriteString("ERROR: ")
	}

	sb.WriteString(d.Message)

	if d.Line >= 0 {
		sb.WriteString(fmt.Sprintf(" (line %d)", d.Line+1))
	}

	return sb.String()
}
