package content

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentCompany, h.handleCompany)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentServices, h.handleServices)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentService, h.handleService)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentCareers, h.handleCareers)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentJob, h.handleJob)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentGallery, h.handleGallery)
	mux.HandleFunc(http.MethodGet+" "+routepath.ContentContact, h.handleContact)
}
