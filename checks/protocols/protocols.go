package protocols

import (
	"github.com/R167/tlscheck/checks/common"
	"github.com/R167/tlscheck/internal/check"
)

// Protocol record ids in testssl emission order. Older scanner versions
// may omit ids, so absence of a single id is not an error.
var protocolIDs = []string{
	"SSLv2",
	"SSLv3",
	"TLS1",
	"TLS1_1",
	"TLS1_2",
	"TLS1_3",
}

type ProtocolCheck struct{}

func New() check.Check {
	return &ProtocolCheck{}
}

func (c *ProtocolCheck) Name() string {
	return "proto"
}

func (c *ProtocolCheck) Label() string {
	return "Testing for supported protocol versions:"
}

// Run flags deprecated protocol versions the target still offers.
func (c *ProtocolCheck) Run(ctx *check.Context) error {
	ctx.Out.Title(c.Label())

	found := 0
	for _, id := range protocolIDs {
		rec, ok := ctx.Result.Lookup(id)
		if !ok {
			continue
		}
		found++
		common.ReportRecord(ctx.Out, ctx.Report, rec)
	}

	if found == 0 {
		return ctx.Report.Fatal("testssl could not provide protocol section")
	}
	return nil
}
