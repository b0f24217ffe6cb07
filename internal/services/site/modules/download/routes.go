package download

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	// GET patterns also match HEAD.
	mux.HandleFunc(http.MethodGet+" "+routepath.Download, h.handleBrochure)
	mux.HandleFunc(routepath.Download, httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodHead))
}
