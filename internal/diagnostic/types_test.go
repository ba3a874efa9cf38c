package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "error with line",
			diag:     Diagnostic{Severity: SeverityError, Message: "unknown C function wgpuFoo", Line: 41},
			expected: "ERROR: unknown C function wgpuFoo (line 42)",
		},
		{
			name:     "error without line",
			diag:     Diagnostic{Severity: SeverityError, Message: "field never used", Line: -1},
			expected: "ERROR: field never used",
		},
		{
			name:     "notice is plain",
			diag:     Diagnostic{Severity: SeverityInfo, Message: "Enum Foo missing in native header", Line: -1},
			expected: "Enum Foo missing in native header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnosticsLinesErrorsFirst(t *testing.T) {
	var d Diagnostics

	d.AddInfof("notice one")
	d.AddError("boom", "wgpuFoo", -1)
	d.AddInfof("notice two")

	assert.Equal(t, []string{"ERROR: boom", "notice one", "notice two"}, d.Lines())
	assert.True(t, d.HasErrors())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfof("kept")
	b.AddError("added", "", -1)
	a.Merge(b)

	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Errors, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(99).String())
}
