package check

import (
	"context"

	"github.com/R167/tlscheck/internal/config"
	"github.com/R167/tlscheck/internal/output"
	"github.com/R167/tlscheck/internal/report"
	"github.com/R167/tlscheck/internal/scan"
)

// Check is one unit of check logic. Run inspects the shared scan result
// and reports findings through the context's report. Implementations must
// be safe to run concurrently with other checks: read the result, append
// to the report, write text only to the context's output sink.
type Check interface {
	Name() string
	Label() string
	Run(ctx *Context) error
}

// Context carries the shared resources for one check execution. The
// Config, Report, Helpers and Result fields are shared by all concurrently
// running checks; Out and Ctx are private to the executing task.
//
// The context uses a builder pattern for easy construction:
//
//	ctx := check.NewContext(context.Background()).
//	    WithConfig(cfg).
//	    WithReport(rep).
//	    WithResult(result)
type Context struct {
	Ctx     context.Context
	Config  *config.Config
	Report  *report.Report
	Helpers *Helpers
	Result  scan.Result
	Out     output.Output
}

func NewContext(ctx context.Context) *Context {
	return &Context{
		Ctx: ctx,
		Out: output.NewNoOpOutput(),
	}
}

func (c *Context) WithConfig(cfg *config.Config) *Context {
	c.Config = cfg
	return c
}

func (c *Context) WithReport(rep *report.Report) *Context {
	c.Report = rep
	return c
}

func (c *Context) WithHelpers(h *Helpers) *Context {
	c.Helpers = h
	return c
}

func (c *Context) WithResult(result scan.Result) *Context {
	c.Result = result
	return c
}

func (c *Context) WithOutput(out output.Output) *Context {
	c.Out = out
	return c
}

// Task returns a shallow copy bound to the given deadline context and
// output sink. The runner calls this once per task so that concurrently
// executing checks never share a sink.
func (c *Context) Task(ctx context.Context, out output.Output) *Context {
	task := *c
	task.Ctx = ctx
	task.Out = out
	return &task
}
