package content

import (
	"net/http"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

// Module provides the informational content routes.
type Module struct{}

// New returns a content module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "content" }

// Mount wires content route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps)))
	return module.Mount{Prefix: routepath.ContentPrefix, Handler: mux}, nil
}
