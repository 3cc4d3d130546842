package ciphers

import (
	"github.com/R167/tlscheck/checks/common"
	"github.com/R167/tlscheck/internal/check"
)

// The cipher section of a testssl report is a fixed run of records
// starting at the NULL cipher list entry.
const (
	sectionAnchor = "cipherlist_NULL"
	sectionLength = 8
)

type CipherCheck struct{}

func New() check.Check {
	return &CipherCheck{}
}

func (c *CipherCheck) Name() string {
	return "ct"
}

func (c *CipherCheck) Label() string {
	return "Testing for supported ciphers:"
}

// Run walks the cipher list section and flags weak or vulnerable cipher
// classes the target still offers. A report without the cipher section is
// unusable for this check and aborts the run.
func (c *CipherCheck) Run(ctx *check.Context) error {
	ctx.Out.Title(c.Label())

	section := ctx.Result.Section(sectionAnchor, sectionLength)
	if section == nil {
		return ctx.Report.Fatal("testssl could not provide cipher list section")
	}

	common.ReportSection(ctx.Out, ctx.Report, section)
	return nil
}
