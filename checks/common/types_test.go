package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/R167/tlscheck/internal/output"
	"github.com/R167/tlscheck/internal/report"
	"github.com/R167/tlscheck/internal/scan"
)

func TestVulnCode(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"cipherlist_NULL", "PTV-WEB-MISC-CIPHERLISTNULL"},
		{"TLS1_1", "PTV-WEB-MISC-TLS11"},
		{"POODLE_SSL", "PTV-WEB-MISC-POODLESSL"},
		{"secure_renego", "PTV-WEB-MISC-SECURERENEGO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VulnCode(tt.id))
	}
}

func TestReportRecord_OK(t *testing.T) {
	out := output.NewBufferedOutput()
	rep := report.New()

	ReportRecord(out, rep, scan.Record{ID: "cipherlist_NULL", Severity: SeverityOK, Finding: "not offered"})

	lines := out.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, output.LevelOK, lines[0].Level)
	assert.Empty(t, rep.Findings())
}

func TestReportRecord_InfoIsWarningWithFinding(t *testing.T) {
	out := output.NewBufferedOutput()
	rep := report.New()

	ReportRecord(out, rep, scan.Record{ID: "cipherlist_3DES_IDEA", Severity: SeverityInfo, Finding: "offered"})

	lines := out.Lines()
	assert.Equal(t, output.LevelWarning, lines[0].Level)
	assert.Equal(t, []report.Finding{{Code: "PTV-WEB-MISC-CIPHERLIST3DESIDEA"}}, rep.Findings())
}

func TestReportRecord_OtherSeveritiesAreVulns(t *testing.T) {
	for _, severity := range []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		out := output.NewBufferedOutput()
		rep := report.New()

		ReportRecord(out, rep, scan.Record{ID: "cipherlist_EXPORT", Severity: severity, Finding: "offered"})

		lines := out.Lines()
		assert.Equal(t, output.LevelVuln, lines[0].Level, "severity %s", severity)
		assert.Len(t, rep.Findings(), 1)
	}
}
