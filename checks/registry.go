package checks

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/R167/tlscheck/checks/certificate"
	"github.com/R167/tlscheck/checks/ciphers"
	"github.com/R167/tlscheck/checks/protocols"
	"github.com/R167/tlscheck/checks/vulns"
	"github.com/R167/tlscheck/internal/check"
)

// ErrNotFound is returned by Lookup for unknown check names.
var ErrNotFound = errors.New("check not found")

// internalPrefix hides experimental checks from listings. Hidden checks
// can still be looked up by exact name.
const internalPrefix = "_"

// All returns every registered check. The registry is assembled at compile
// time; checks keep no cross-run state, so fresh instances per call are
// cheap and safe.
func All() []check.Check {
	return []check.Check{
		ciphers.New(),
		protocols.New(),
		certificate.New(),
		vulns.New(),
	}
}

// Lookup resolves a name to its check, case-insensitively.
func Lookup(name string) (check.Check, error) {
	for _, c := range All() {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Names returns the listable check names, sorted for deterministic help
// output. Names carrying the internal-use prefix are excluded.
func Names() []string {
	var names []string
	for _, c := range All() {
		if strings.HasPrefix(c.Name(), internalPrefix) {
			continue
		}
		names = append(names, c.Name())
	}
	sort.Strings(names)
	return names
}

// Describe returns the human-readable label for a check, falling back to a
// generated default when the check does not supply one.
func Describe(name string) string {
	if c, err := Lookup(name); err == nil && c.Label() != "" {
		return c.Label()
	}
	return "Test for " + strings.ToUpper(name)
}
