package enquiry

import (
	"net/http"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

// Module provides the visitor enquiry list routes.
type Module struct{}

// New returns an enquiry module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "enquiry" }

// Mount wires enquiry route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(deps), deps)
	registerRoutes(mux, h, httpx.NewRateLimiter(deps.LeadsRatePerMinute))
	return module.Mount{Prefix: routepath.EnquiryPrefix, Handler: mux}, nil
}
