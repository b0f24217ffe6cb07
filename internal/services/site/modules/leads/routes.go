package leads

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.LeadsContact, h.handleContact)
	mux.HandleFunc(http.MethodGet+" "+routepath.LeadsContact, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.LeadsCareers, h.handleCareers)
	mux.HandleFunc(http.MethodGet+" "+routepath.LeadsCareers, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.LeadsProducts, h.handleProductEnquiry)
	mux.HandleFunc(http.MethodGet+" "+routepath.LeadsProducts, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.LeadsServices, h.handleServiceEnquiry)
	mux.HandleFunc(http.MethodGet+" "+routepath.LeadsServices, httpx.MethodNotAllowed(http.MethodPost))
}
