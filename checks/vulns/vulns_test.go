package vulns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R167/tlscheck/internal/check"
	"github.com/R167/tlscheck/internal/output"
	"github.com/R167/tlscheck/internal/report"
	"github.com/R167/tlscheck/internal/scan"
)

func TestVulnCheck_FlagsVulnerableProbes(t *testing.T) {
	result := scan.Result{
		{ID: "heartbleed", Severity: "OK", Finding: "not vulnerable, no heartbeat extension"},
		{ID: "ROBOT", Severity: "OK", Finding: "not vulnerable"},
		{ID: "SWEET32", Severity: "LOW", Finding: "uses 64 bit block ciphers"},
		{ID: "BREACH", Severity: "MEDIUM", Finding: "potentially vulnerable, gzip compression detected"},
	}
	rep := report.New()
	out := output.NewBufferedOutput()
	ctx := check.NewContext(context.Background()).
		WithReport(rep).
		WithResult(result).
		WithOutput(out)

	require.NoError(t, New().Run(ctx))

	// Findings follow the probe id list order, not scan record order.
	findings := rep.Findings()
	require.Len(t, findings, 2)
	assert.Equal(t, "PTV-WEB-MISC-BREACH", findings[0].Code)
	assert.Equal(t, "PTV-WEB-MISC-SWEET32", findings[1].Code)

	var vulnLines int
	for _, line := range out.Lines() {
		if line.Level == output.LevelVuln {
			vulnLines++
		}
	}
	assert.Equal(t, 2, vulnLines)
}

func TestVulnCheck_MissingSectionIsFatal(t *testing.T) {
	rep := report.New()
	ctx := check.NewContext(context.Background()).
		WithReport(rep).
		WithResult(scan.Result{{ID: "TLS1_2", Severity: "OK", Finding: "offered"}})

	err := New().Run(ctx)

	var fatal *report.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "testssl could not provide vulnerability section", fatal.Message)
	assert.True(t, rep.Aborted())
}
