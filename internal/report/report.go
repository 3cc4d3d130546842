package report

import (
	"encoding/json"
	"sync"
)

const (
	StatusRunning  = "running"
	StatusFinished = "finished"
	StatusError    = "error"
)

// FatalError signals that the shared scan input is unusable for any check.
// It is the only failure that stops dispatch of not-yet-started checks;
// every other check error stays contained within its own task.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}

// Finding is one detected issue, identified by a stable code.
type Finding struct {
	Code string `json:"code"`
}

// Report is the shared findings store for a run. All mutation goes through
// its methods, so no two mutations ever interleave. A single instance is
// shared by every concurrently running check.
type Report struct {
	mu       sync.Mutex
	status   string
	findings []Finding
	fatalMsg string
	aborted  bool
	finished bool
}

func New() *Report {
	return &Report{
		status:   StatusRunning,
		findings: make([]Finding, 0),
	}
}

// AddFinding appends a finding. Duplicate codes are kept; the aggregate
// never drops or rewrites earlier entries.
func (r *Report) AddFinding(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findings = append(r.findings, Finding{Code: code})
}

// Fatal marks the whole run as unable to continue and returns the error a
// check should propagate. Findings appended before the call remain intact.
func (r *Report) Fatal(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.aborted {
		r.aborted = true
		r.fatalMsg = message
	}
	return &FatalError{Message: message}
}

// Aborted reports whether a fatal input error has been recorded.
func (r *Report) Aborted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.aborted
}

// FatalMessage returns the first recorded fatal message, if any.
func (r *Report) FatalMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fatalMsg
}

// SetStatus overrides the run status. Ignored once the report is finished.
func (r *Report) SetStatus(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.status = status
}

// Finish transitions the report into its terminal status exactly once:
// "error" when a fatal input error was recorded, "finished" otherwise.
func (r *Report) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.finished = true
	if r.aborted {
		r.status = StatusError
		return
	}
	r.status = StatusFinished
}

func (r *Report) Status() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Findings returns a copy of the findings appended so far.
func (r *Report) Findings() []Finding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Finding{}, r.findings...)
}

type document struct {
	Status          string    `json:"status"`
	Message         string    `json:"message,omitempty"`
	Vulnerabilities []Finding `json:"vulnerabilities"`
}

// JSON serializes the report.
func (r *Report) JSON() (string, error) {
	r.mu.Lock()
	doc := document{
		Status:          r.status,
		Message:         r.fatalMsg,
		Vulnerabilities: append([]Finding{}, r.findings...),
	}
	r.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
