package mcp

import (
	"bytes"
	"context"
	"fmt"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/R167/tlscheck/checks"
	"github.com/R167/tlscheck/internal/check"
	"github.com/R167/tlscheck/internal/report"
	"github.com/R167/tlscheck/internal/runner"
)

// RunServer serves the check engine as MCP tools over stdio. The base
// context carries the loaded scan result; each tool call gets a fresh
// report and a private output buffer.
func RunServer(base *check.Context) error {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "tlscheck",
		Version: "1.0.0",
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list_checks",
		Description: "List the available TLS check modules",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input ListChecksInput) (*mcpsdk.CallToolResult, ListChecksOutput, error) {
		out := ListChecksOutput{}
		text := ""
		for _, name := range checks.Names() {
			label := checks.Describe(name)
			out.Checks = append(out.Checks, CheckInfo{Name: name, Label: label})
			text += fmt.Sprintf("%s: %s\n", name, label)
		}
		return textResult(text), out, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "run_check",
		Description: "Run a single TLS check module against the loaded scan result",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input RunCheckInput) (*mcpsdk.CallToolResult, CheckToolOutput, error) {
		if input.Check == "" {
			return nil, CheckToolOutput{}, fmt.Errorf("check name is required")
		}
		out := execute(ctx, base, []string{input.Check})
		return textResult(out.Report), out, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "run_all_checks",
		Description: "Run every available TLS check module against the loaded scan result",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input RunAllInput) (*mcpsdk.CallToolResult, CheckToolOutput, error) {
		out := execute(ctx, base, checks.Names())
		return textResult(out.Report), out, nil
	})

	if err := server.Run(context.Background(), &mcpsdk.StdioTransport{}); err != nil {
		log.Printf("MCP server failed: %v", err)
		return err
	}

	return nil
}

// execute runs the named checks through the regular engine with a private
// writer and converts the outcome into tool output.
func execute(ctx context.Context, base *check.Context, names []string) CheckToolOutput {
	rep := report.New()
	var buf bytes.Buffer

	taskBase := check.NewContext(ctx).
		WithConfig(base.Config).
		WithHelpers(base.Helpers).
		WithResult(base.Result).
		WithReport(rep)

	opts := runner.Options{Workers: 1, Writer: &buf}
	if base.Config != nil {
		opts.Workers = base.Config.Workers
		opts.CheckTimeout = base.Config.CheckTimeout
	}

	r := runner.New(checks.Lookup, taskBase, opts)
	r.Run(ctx, names)

	findings := make([]Finding, 0)
	for _, f := range rep.Findings() {
		findings = append(findings, Finding{Code: f.Code})
	}

	return CheckToolOutput{
		Status:   rep.Status(),
		Findings: findings,
		Summary:  fmt.Sprintf("Ran %d check(s), %d finding(s)", len(names), len(findings)),
		Report:   buf.String(),
	}
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}
}
