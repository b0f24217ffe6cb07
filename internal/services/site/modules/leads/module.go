package leads

import (
	"net/http"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

// Module provides the lead-generation form routes.
type Module struct{}

// New returns a leads module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "leads" }

// Mount wires lead route handlers behind a per-client rate limit.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps)))
	limiter := httpx.NewRateLimiter(deps.LeadsRatePerMinute)
	return module.Mount{Prefix: routepath.LeadsPrefix, Handler: limiter.Middleware()(mux)}, nil
}
