package download

import (
	"net/http"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

// Module serves the company brochure download.
type Module struct{}

// New returns a download module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "download" }

// Mount wires the brochure route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newBrochure(deps.PublicDir, deps.BrochureFile), deps.Logger))
	return module.Mount{Prefix: routepath.DownloadPrefix, Handler: mux}, nil
}
