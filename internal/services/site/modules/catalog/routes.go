package catalog

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.CatalogProducts, h.handleProducts)
	mux.HandleFunc(http.MethodGet+" "+routepath.CatalogProduct, h.handleProduct)
	mux.HandleFunc(http.MethodGet+" "+routepath.CatalogCategories, h.handleCategories)
}
