package protocols

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

func TestProtocolCheck_FlagsLegacyVersions(t *testing.T) {
	result := scan.Result{
		{ID: "SSLv2", Severity: "OK", Finding: "not offered"},
		{ID: "SSLv3", Severity: "OK", Finding: "not offered"},
		{ID: "TLS1", Severity: "LOW", Finding: "offered (deprecated)"},
		{ID: "TLS1_1", Severity: "LOW", Finding: "offered (deprecated)"},
		{ID: "TLS1_2", Severity: "OK", Finding: "offered"},
		{ID: "TLS1_3", Severity: "OK", Finding: "offered with final version"},
	}
	rep := report.New()
	out := output.NewBufferedOutput()
	ctx := check.NewContext(context.Background()).
		WithReport(rep).
		WithResult(result).
		WithOutput(out)

	require.NoError(t, New().Run(ctx))

	findings := rep.Findings()
	require.Len(t, findings, 2)
	assert.Equal(t, "PTV-WEB-MISC-TLS1", findings[0].Code)
	assert.Equal(t, "PTV-WEB-MISC-TLS11", findings[1].Code)
}

func TestProtocolCheck_PartialSection(t *testing.T) {
	// A scanner run that only reports modern versions is still usable.
	result := scan.Result{
		{ID: "TLS1_2", Severity: "OK", Finding: "offered"},
		{ID: "TLS1_3", Severity: "OK", Finding: "offered with final version"},
	}
	rep := report.New()
	ctx := check.NewContext(context.Background()).
		WithReport(rep).
		WithResult(result)

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, rep.Findings())
}

func TestProtocolCheck_MissingSectionIsFatal(t *testing.T) {
	rep := report.New()
	ctx := check.NewContext(context.Background()).
		WithReport(rep).
		WithResult(scan.Result{{ID: "heartbleed", Severity: "OK", Finding: "not vulnerable"}})

	err := New().Run(ctx)

	var fatal *report.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "testssl could not provide protocol section", fatal.Message)
}
