package certificate

import (
	"github.com/R167/tlscheck/checks/common"
	"github.com/R167/tlscheck/internal/check"
)

// Certificate hygiene record ids. testssl numbers these per certificate
// when a host serves several; the unnumbered ids cover the common case.
var certificateIDs = []string{
	"cert_trust",
	"cert_chain_of_trust",
	"cert_expirationStatus",
	"cert_notAfter",
	"cert_signatureAlgorithm",
	"cert_keySize",
}

type CertificateCheck struct{}

func New() check.Check {
	return &CertificateCheck{}
}

func (c *CertificateCheck) Name() string {
	return "cert"
}

func (c *CertificateCheck) Label() string {
	return "Testing server certificate:"
}

// Run inspects trust, expiration and key strength of the served
// certificate chain.
func (c *CertificateCheck) Run(ctx *check.Context) error {
	ctx.Out.Title(c.Label())

	found := 0
	for _, id := range certificateIDs {
		rec, ok := ctx.Result.Lookup(id)
		if !ok {
			continue
		}
		found++
		common.ReportRecord(ctx.Out, ctx.Report, rec)
	}

	if found == 0 {
		return ctx.Report.Fatal("testssl could not provide certificate section")
	}
	return nil
}
