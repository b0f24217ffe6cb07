package catalog

import (
	"net/http"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

// Module provides product catalog routes.
type Module struct {
	gateway catalogGateway
}

// New returns a catalog module backed by the dependencies' catalog service.
func New() Module { return Module{} }

// NewWithGateway returns a catalog module backed by gateway.
func NewWithGateway(gateway module.CatalogService) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "catalog" }

// Mount wires catalog route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = newGateway(deps)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway)))
	return module.Mount{Prefix: routepath.CatalogPrefix, Handler: mux}, nil
}
