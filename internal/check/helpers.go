package check

import (
	"net/http"

	"github.com/R167/tlscheck/internal/security"
)

// Helpers bundles the shared utilities every check receives: the
// normalized target origin and an HTTP client hardened for probing
// endpoints with defective TLS setups.
type Helpers struct {
	Target string
	Client *http.Client
}

func NewHelpers(target string) *Helpers {
	return &Helpers{
		Target: target,
		Client: security.NewHTTPClient(security.DefaultHTTPClientConfig()),
	}
}
