package public

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodPost+" "+routepath.Health, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc("/{rest...}", h.handleNotFound)
}
