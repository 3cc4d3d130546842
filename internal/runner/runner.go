package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/R167/tlscheck/internal/check"
	"github.com/R167/tlscheck/internal/output"
	"github.com/R167/tlscheck/internal/report"
)

// LookupFunc resolves a check name to an executable check. It returns an
// error when no such check exists.
type LookupFunc func(name string) (check.Check, error)

// Options configures a Runner.
type Options struct {
	// Workers bounds how many checks execute concurrently. Values below 1
	// are clamped to 1.
	Workers int
	// CheckTimeout limits a single check's execution. Zero means no limit.
	CheckTimeout time.Duration
	// Writer is the real output stream buffered blocks are flushed to.
	Writer io.Writer
}

// Runner owns the worker pool. It dispatches check names to workers,
// enforces the concurrency bound and serializes check lookup, output
// flushing and report finalization behind a single lock.
type Runner struct {
	lookup LookupFunc
	base   *check.Context
	opts   Options

	// mu guards registry lookups and flushes to the real stream. Check
	// execution itself never runs under it.
	mu sync.Mutex
}

func New(lookup LookupFunc, base *check.Context, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &Runner{lookup: lookup, base: base, opts: opts}
}

// Run executes the named checks with bounded concurrency and blocks until
// every dispatched check reaches a terminal state. Duplicate names are
// collapsed (case-insensitively, first occurrence wins). Per-check
// failures are reported and contained; Run itself never fails. When a
// check records a fatal input error, checks already in flight finish
// normally and checks not yet started are no longer dispatched.
func (r *Runner) Run(ctx context.Context, names []string) {
	sem := make(chan struct{}, r.opts.Workers)
	var wg sync.WaitGroup

	for _, name := range dedupe(names) {
		sem <- struct{}{}
		// Acquiring a slot can block while an in-flight check records a
		// fatal error, so the abort state is only meaningful once we hold
		// the slot.
		if r.base.Report.Aborted() {
			<-sem
			log.Debugf("fatal input error recorded, skipping remaining checks")
			break
		}

		wg.Add(1)
		go func(name string) {
			defer func() {
				<-sem
				wg.Done()
			}()
			r.runOne(ctx, name)
		}(name)
	}

	wg.Wait()
	r.base.Report.Finish()
}

// runOne executes a single named check: lookup under the shared lock,
// execution against a private buffer, then one contiguous flush of that
// buffer under the same lock.
func (r *Runner) runOne(ctx context.Context, name string) {
	r.mu.Lock()
	c, err := r.lookup(name)
	r.mu.Unlock()

	buf := output.NewBufferedOutput()

	switch {
	case err != nil:
		buf.Warning("Check '%s' not found", name)
	case c == nil:
		buf.Warning("Check '%s' does not have a run entry point", name)
	default:
		r.execute(ctx, name, c, buf)
	}

	r.mu.Lock()
	buf.Flush(r.opts.Writer)
	r.mu.Unlock()
}

func (r *Runner) execute(ctx context.Context, name string, c check.Check, buf *output.BufferedOutput) {
	cctx := ctx
	if r.opts.CheckTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, r.opts.CheckTimeout)
		defer cancel()
	}

	start := time.Now()
	err := r.invoke(cctx, c, buf)
	log.Debugf("check %s finished in %s", name, time.Since(start))

	var fatal *report.FatalError
	switch {
	case err == nil:
	case errors.As(err, &fatal):
		// Already recorded on the report; surface it in the text stream.
		buf.Error("%s", fatal.Message)
	case errors.Is(err, context.DeadlineExceeded):
		buf.Error("Check '%s' timed out after %s", name, r.opts.CheckTimeout)
	default:
		buf.Error("Error running check '%s': %v", name, err)
	}
}

// invoke runs the check body on its own goroutine so a deadline can be
// enforced even on a check that never returns. A timed-out check keeps its
// goroutine; it only ever writes into its own mutex-guarded buffer, so
// abandoning it is safe.
func (r *Runner) invoke(ctx context.Context, c check.Check, buf *output.BufferedOutput) error {
	done := make(chan error, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- fmt.Errorf("check panicked: %v", rec)
			}
		}()
		done <- c.Run(r.base.Task(ctx, buf))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dedupe lowercases names and drops duplicates, preserving first-seen
// order. No check is ever scheduled twice within one run.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
