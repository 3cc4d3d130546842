package scan

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// RunTestssl invokes testssl.sh against the target URL with JSON output
// directed to a temporary file and the live log passed through to stdout.
// The temporary file is removed after the report has been read.
func RunTestssl(ctx context.Context, url string) (Result, error) {
	if _, err := exec.LookPath("testssl"); err != nil {
		return nil, fmt.Errorf("testssl.sh is not installed or not found in PATH; install it first via `sudo apt install testssl.sh`")
	}

	tmp, err := os.CreateTemp("", "tlscheck-*.json")
	if err != nil {
		return nil, fmt.Errorf("creating temp report file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()
	// testssl refuses to write into an existing file
	os.Remove(path)
	defer os.Remove(path)

	log.Debugf("running testssl against %s (report: %s)", url, path)

	cmd := exec.CommandContext(ctx, "testssl", "--jsonfile", path, "--logfile", "/dev/stdout", url)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running testssl: %w", err)
	}

	return LoadFile(path)
}
