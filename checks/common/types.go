package common

import (
	"fmt"
	"strings"

	"github.com/R167/tlscheck/internal/output"
	"github.com/R167/tlscheck/internal/report"
	"github.com/R167/tlscheck/internal/scan"
)

// Severity classifications emitted by testssl.sh.
const (
	SeverityOK       = "OK"
	SeverityInfo     = "INFO"
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

const vulnCodePrefix = "PTV-WEB-MISC-"

// VulnCode derives the stable finding code for a scan record id:
// the uppercased alphanumerics of the id behind a fixed prefix.
func VulnCode(id string) string {
	var b strings.Builder
	for _, ch := range id {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	return vulnCodePrefix + strings.ToUpper(b.String())
}

// ReportRecord prints one scan record and registers a finding when it is
// not clean: OK records print as OK, INFO records print as warnings, and
// everything else prints as a vulnerability. INFO and worse both append a
// finding to the report.
func ReportRecord(out output.Output, rep *report.Report, rec scan.Record) {
	line := fmt.Sprintf("%-23s  %s", rec.ID, rec.Finding)
	switch rec.Severity {
	case SeverityOK:
		out.OK("%s", line)
	case SeverityInfo:
		out.Warning("%s", line)
		rep.AddFinding(VulnCode(rec.ID))
	default:
		out.Vuln("%s", line)
		rep.AddFinding(VulnCode(rec.ID))
	}
}

// ReportSection runs ReportRecord over a whole section.
func ReportSection(out output.Output, rep *report.Report, section []scan.Record) {
	for _, rec := range section {
		ReportRecord(out, rep, rec)
	}
}
