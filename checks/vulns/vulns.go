package vulns

import (
	"github.com/R167/tlscheck/checks/common"
	"github.com/R167/tlscheck/internal/check"
)

// Known TLS vulnerability probes reported by testssl.
var vulnerabilityIDs = []string{
	"heartbleed",
	"CCS",
	"ticketbleed",
	"ROBOT",
	"secure_renego",
	"BREACH",
	"POODLE_SSL",
	"SWEET32",
	"LUCKY13",
}

type VulnCheck struct{}

func New() check.Check {
	return &VulnCheck{}
}

func (c *VulnCheck) Name() string {
	return "vuln"
}

func (c *VulnCheck) Label() string {
	return "Testing for known TLS vulnerabilities:"
}

// Run reports the outcome of the scanner's vulnerability probes.
func (c *VulnCheck) Run(ctx *check.Context) error {
	ctx.Out.Title(c.Label())

	found := 0
	for _, id := range vulnerabilityIDs {
		rec, ok := ctx.Result.Lookup(id)
		if !ok {
			continue
		}
		found++
		common.ReportRecord(ctx.Out, ctx.Report, rec)
	}

	if found == 0 {
		return ctx.Report.Fatal("testssl could not provide vulnerability section")
	}
	return nil
}
