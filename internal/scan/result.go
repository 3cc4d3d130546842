package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Record is a single entry of a testssl.sh JSON report.
type Record struct {
	ID       string `json:"id"`
	IP       string `json:"ip,omitempty"`
	Port     string `json:"port,omitempty"`
	Severity string `json:"severity"`
	Finding  string `json:"finding"`
	CVE      string `json:"cve,omitempty"`
	CWE      string `json:"cwe,omitempty"`
}

// Result is the full scanner output, in scanner emission order.
// It is shared read-only between all concurrently running checks.
type Result []Record

// Index returns the position of the first record with the given id,
// or -1 when no such record exists.
func (r Result) Index(id string) int {
	for i, rec := range r {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the first record with the given id.
func (r Result) Lookup(id string) (Record, bool) {
	if i := r.Index(id); i >= 0 {
		return r[i], true
	}
	return Record{}, false
}

// Section returns up to n consecutive records starting at the record with
// the given anchor id. It returns nil when the anchor is absent.
func (r Result) Section(anchor string, n int) []Record {
	i := r.Index(anchor)
	if i < 0 {
		return nil
	}
	end := i + n
	if end > len(r) {
		end = len(r)
	}
	return r[i:end]
}

// Load parses a testssl.sh JSON report from the given reader.
func Load(reader io.Reader) (Result, error) {
	var result Result
	dec := json.NewDecoder(reader)
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing testssl JSON: %w", err)
	}
	return result, nil
}

// LoadFile parses a testssl.sh JSON report from a file on disk.
func LoadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading testssl JSON: %w", err)
	}
	defer f.Close()
	return Load(f)
}
